package types

// RecentUpload is one successful upload kept for the tray "Recent" submenu.
type RecentUpload struct {
	Link       string `json:"link"`
	FileName   string `json:"fileName"`
	UploadedAt int64  `json:"uploadedAt"`
	MtimeStr   string `json:"uploadedAtStr"`
}

// RecentListResponse is the response body for GET /api/self/v1/recent.
type RecentListResponse struct {
	Uploads []RecentUpload `json:"uploads"`
	Count   int            `json:"count"`
}

// DropRequest is the request body for POST /api/self/v1/drop.
type DropRequest struct {
	Files []string `json:"files"`
}
