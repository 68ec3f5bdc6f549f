package models

// MessageResponse is the body of every non-profile response, successful or
// not. Error responses carry a human-readable description and never internal
// details.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the body of GET /api/version for clients accepting JSON.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
