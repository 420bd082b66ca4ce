package dto

// StatusResponse reports the API's dependency status (see /v1/status).
type StatusResponse struct {
	UpdatedAt    string             `json:"updated_at"`
	Dependencies StatusDependencies `json:"dependencies"`
}

type StatusDependencies struct {
	Database DatabaseStatus `json:"database"`
}

// DatabaseStatus mirrors what postgres reports about itself.
type DatabaseStatus struct {
	Version           string `json:"version"`
	MaxConnections    int    `json:"max_connections"`
	OpenedConnections int    `json:"opened_connections"`
}
