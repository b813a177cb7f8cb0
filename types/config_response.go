package types

// ConfigResponse is the response body for GET /api/self/v1/config.
// Upload headers are left out since they usually carry credentials.
type ConfigResponse struct {
	ShowIcon     bool     `json:"showIcon"`
	StartAtLogin bool     `json:"startAtLogin"`
	UploadURL    string   `json:"uploadURL"`
	UploadField  string   `json:"uploadField"`
	LinkPath     []string `json:"linkPath"`
	RecentLimit  int      `json:"recentLimit"`
	ApiPort      int      `json:"apiPort"`
}

// ConfigPatchRequest is the request body for PATCH /api/self/v1/config; nil fields are left unchanged.
type ConfigPatchRequest struct {
	ShowIcon     *bool    `json:"showIcon"`
	StartAtLogin *bool    `json:"startAtLogin"`
	UploadURL    *string  `json:"uploadURL"`
	UploadField  *string  `json:"uploadField"`
	LinkPath     []string `json:"linkPath"`
}
