package types

// Sound selects the sound played with a notification.
type Sound string

const (
	SoundDefault Sound = "default"
	SoundNone    Sound = ""
)

const (
	NotifyTypeUploadSuccess = "upload_success"
	NotifyTypeUploadFailed  = "upload_failed"
	NotifyTypeInfo          = "info"
)

// Notification represents a notification message structure.
// Built once per notification and never modified after it is handed to the gateway.
type Notification struct {
	Type    string         `json:"type,omitempty"`    // Notification type, e.g. "upload_success"
	Title   string         `json:"title,omitempty"`   // Notification title
	Message string         `json:"message,omitempty"` // Notification message/content
	Sound   Sound          `json:"sound,omitempty"`   // "default" or empty for silent
	Open    string         `json:"open,omitempty"`    // URL opened when the notification is clicked, empty when absent
	Data    map[string]any `json:"data,omitempty"`    // Additional data fields
}

// HasAction reports whether clicking the notification opens a URL.
func (n *Notification) HasAction() bool {
	return n != nil && n.Open != ""
}
