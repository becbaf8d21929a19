package models

// WorkspacePlan is an entry of the workspace plan catalog.
type WorkspacePlan struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Storage  string `json:"storage" yaml:"storage"`
	MaxUsers int    `json:"maxUsers" yaml:"maxUsers"`
}

// Dashboard is a reporting artifact assignable to a client workspace.
type Dashboard struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category"`
}

// DashboardSearchResponse is the filtered dashboard catalog.
type DashboardSearchResponse struct {
	Dashboards []Dashboard `json:"dashboards"`
	NoResults  bool        `json:"noResults"`
}
