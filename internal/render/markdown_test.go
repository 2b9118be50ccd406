package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/tmuir/todomark/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func workLookup() models.ProjectLookup {
	return models.ProjectLookup{
		"p1": {ID: "p1", Name: "Work Stuff"},
	}
}

func reportTask() models.Task {
	return models.Task{
		ID:          "t1",
		Content:     "Write report",
		IsCompleted: false,
		Priority:    3,
		Labels:      []string{"urgent"},
		ProjectID:   "p1",
		CreatedAt:   "2024-01-05T10:00:00Z",
	}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestTask_FullBlock(t *testing.T) {
	t.Parallel()

	got, err := Task(reportTask(), workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "- [ ] Write report #urgent #project-Work-Stuff [created:: 2024-01-05] [priority:: high] [id:: t1] \n\n"
	if got != want {
		t.Errorf("Rendered block mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestTask_CheckboxMarker(t *testing.T) {
	t.Parallel()

	task := reportTask()

	task.IsCompleted = true
	got, err := Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(got, "- [x] ") {
		t.Errorf("Completed task should render a checked box, got %q", got[:10])
	}

	task.IsCompleted = false
	got, err = Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(got, "- [ ] ") {
		t.Errorf("Incomplete task should render an unchecked box, got %q", got[:10])
	}
}

func TestTask_PriorityLabels(t *testing.T) {
	t.Parallel()

	// The raw 1-4 priority indexes the five-element label list directly,
	// so 1 renders as "low" and 4 as "highest"
	tests := []struct {
		priority int
		want     string
	}{
		{1, "[priority:: low]"},
		{2, "[priority:: medium]"},
		{3, "[priority:: high]"},
		{4, "[priority:: highest]"},
	}

	for _, tt := range tests {
		task := reportTask()
		task.Priority = tt.priority

		got, err := Task(task, workLookup())
		if err != nil {
			t.Fatalf("priority %d: expected no error, got %v", tt.priority, err)
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("priority %d: output %q should contain %q", tt.priority, got, tt.want)
		}
	}
}

func TestProjectTag_ReplacesOnlyFirstSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Work", "Work"},
		{"Work Stuff", "Work-Stuff"},
		{"Very Long Project Name", "Very-Long Project Name"},
	}

	for _, tt := range tests {
		if got := ProjectTag(tt.name); got != tt.want {
			t.Errorf("ProjectTag(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTask_DueDate(t *testing.T) {
	t.Parallel()

	task := reportTask()

	// Without a due structure there is no due annotation
	got, err := Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(got, "[due::") {
		t.Errorf("Task without due should have no due annotation, got %q", got)
	}

	// With a due structure, the datetime sub-field renders as YYYY-MM-DD
	task.Due = &models.Due{Datetime: "2024-02-01T09:00:00Z", Date: "2024-02-02"}
	got, err = Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, "[due:: 2024-02-01]") {
		t.Errorf("Output %q should contain the due annotation from datetime", got)
	}

	// All-day due dates only carry date
	task.Due = &models.Due{Date: "2024-02-02"}
	got, err = Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(got, "[due:: 2024-02-02]") {
		t.Errorf("Output %q should fall back to the due date field", got)
	}
}

func TestTask_Description(t *testing.T) {
	t.Parallel()

	task := reportTask()
	task.Description = "Quarterly numbers for the board."

	got, err := Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Description sits on its own line surrounded by blank lines
	if !strings.Contains(got, "\n\nQuarterly numbers for the board.\n\n") {
		t.Errorf("Description should be surrounded by blank lines, got %q", got)
	}
}

func TestTask_Comments(t *testing.T) {
	t.Parallel()

	task := reportTask()
	task.Comments = []models.Comment{
		{ID: "c1", TaskID: "t1", Content: "First draft done"},
		{ID: "c2", TaskID: "t1", Content: "Needs numbers from finance"},
	}

	got, err := Task(task, workLookup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(got, "First draft done\n\nNeeds numbers from finance") {
		t.Errorf("Comments should be separated by a blank line, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Block should end with a trailing newline, got %q", got)
	}
}

func TestTask_UnknownProject(t *testing.T) {
	t.Parallel()

	task := reportTask()
	task.ProjectID = "missing"

	_, err := Task(task, workLookup())
	if err == nil {
		t.Fatal("Expected error for unknown project, got nil")
	}
	if !errors.Is(err, models.ErrUnknownProject) {
		t.Errorf("Expected ErrUnknownProject, got %v", err)
	}
}

func TestTask_Deterministic(t *testing.T) {
	t.Parallel()

	task := reportTask()
	task.Due = &models.Due{Datetime: "2024-02-01T09:00:00Z"}
	task.Description = "desc"
	task.Comments = []models.Comment{{Content: "note"}}
	lookup := workLookup()

	first, err := Task(task, lookup)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Task(task, lookup)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Error("Rendering the same inputs twice must yield byte-identical output")
	}
}

func TestTasks_SeparatorAndFailFast(t *testing.T) {
	t.Parallel()

	lookup := workLookup()
	first := reportTask()
	second := reportTask()
	second.ID = "t2"
	second.Content = "Send invoices"

	out, err := Tasks([]models.Task{first, second}, lookup, "\n---\n\n")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Count(out, "\n---\n\n") != 1 {
		t.Errorf("Two tasks should be joined by exactly one separator, got %q", out)
	}

	// Any unknown project fails the whole render with no partial output
	second.ProjectID = "nope"
	out, err = Tasks([]models.Task{first, second}, lookup, "\n---\n\n")
	if err == nil {
		t.Fatal("Expected error when any task has an unknown project")
	}
	if out != "" {
		t.Errorf("Failed render must produce no partial output, got %q", out)
	}
}

func TestTasks_Empty(t *testing.T) {
	t.Parallel()

	out, err := Tasks(nil, workLookup(), "\n---\n\n")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "" {
		t.Errorf("No tasks should render to an empty string, got %q", out)
	}
}
