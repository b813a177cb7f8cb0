package types

const (
	AppName    = "Katana"
	AppVersion = "1.4.0"
)

// InfoResponse is the response body for GET /api/self/v1/info.
type InfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	RuntimeMode string `json:"runtimeMode"`
}
