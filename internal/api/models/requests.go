package models

// GenerateFixtureRequest represents the request to generate a fixture file.
// Both fields are optional; omitted fields use the server configuration.
type GenerateFixtureRequest struct {
	Count      *int   `json:"count,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

// RunCountResponse represents the ledger size
type RunCountResponse struct {
	Count int `json:"count"`
}
