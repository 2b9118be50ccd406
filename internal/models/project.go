package models

// Project represents a named grouping of tasks in the external service.
// Projects are the top-level organizational unit tasks belong to.
// Attributes beyond ID and Name are passed through from the API unused.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Order          int    `json:"order"`
	IsShared       bool   `json:"is_shared"`
	IsFavorite     bool   `json:"is_favorite"`
	IsInboxProject bool   `json:"is_inbox_project"`
	URL            string `json:"url"`
}

// ProjectLookup maps project IDs to projects for one import run.
// It is built once by the aggregation step and read-only afterwards.
type ProjectLookup map[string]Project
