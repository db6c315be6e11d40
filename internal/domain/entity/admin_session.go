package entity

// AdminSession describes the dashboard operator behind a session cookie.
// The core never issues sessions; it only reports this static descriptor
// once a session cookie is present.
type AdminSession struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Roles  Roles  `json:"roles"`
}
