package models

// Due is the optional due-date structure attached to a task.
type Due struct {
	Date        string `json:"date"`
	Datetime    string `json:"datetime"`
	String      string `json:"string"`
	Timezone    string `json:"timezone"`
	IsRecurring bool   `json:"is_recurring"`
}

// Task represents a single to-do item fetched from the service.
//
// Comments is not part of the API response for a task; it is populated
// during enrichment by the importer.
type Task struct {
	ID           string   `json:"id"`
	Content      string   `json:"content"`
	Description  string   `json:"description"`
	IsCompleted  bool     `json:"is_completed"`
	Labels       []string `json:"labels"`
	Priority     int      `json:"priority"`
	Due          *Due     `json:"due"`
	ProjectID    string   `json:"project_id"`
	SectionID    string   `json:"section_id"`
	ParentID     string   `json:"parent_id"`
	Order        int      `json:"order"`
	URL          string   `json:"url"`
	CommentCount int      `json:"comment_count"`
	CreatedAt    string   `json:"created_at"`

	Comments []Comment `json:"-"`
}
