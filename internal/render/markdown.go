// Package render converts enriched task records into the Markdown blocks
// written into a note. Rendering is a pure function of its inputs: the same
// task and project lookup always produce byte-identical output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmuir/todomark/internal/models"
)

// Tasks renders every task as one block and joins the blocks with the
// given separator. The first task whose project_id is missing from the
// lookup aborts the whole render; no partial output is returned.
func Tasks(tasks []models.Task, projects models.ProjectLookup, separator string) (string, error) {
	blocks := make([]string, 0, len(tasks))
	for _, task := range tasks {
		block, err := Task(task, projects)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, separator), nil
}

// Task renders a single enriched task as a Markdown checkbox block.
//
// The block is a header line (checkbox, title, label tags, project tag,
// bracketed metadata), an optional description paragraph surrounded by
// blank lines, and the comments block. The comments block is always
// present, so a task without comments ends in a blank line.
func Task(task models.Task, projects models.ProjectLookup) (string, error) {
	project, ok := projects[task.ProjectID]
	if !ok {
		return "", fmt.Errorf("rendering task %s (project_id %q): %w",
			task.ID, task.ProjectID, models.ErrUnknownProject)
	}

	var b strings.Builder

	check := " "
	if task.IsCompleted {
		check = "x"
	}
	fmt.Fprintf(&b, "- [%s] %s", check, task.Content)

	for _, label := range task.Labels {
		b.WriteString(" #")
		b.WriteString(label)
	}

	b.WriteString(" #project-")
	b.WriteString(ProjectTag(project.Name))

	// The trailing space is deliberate: the due annotation, when present,
	// follows it directly, and notes imported without a due date carry the
	// space. Reordering or trimming here changes every imported note.
	fmt.Fprintf(&b, " [created:: %s] [priority:: %s] [id:: %s] ",
		dateOnly(task.CreatedAt), models.PriorityLabel(task.Priority), task.ID)

	if task.Due != nil {
		fmt.Fprintf(&b, "[due:: %s]", dueDate(task.Due))
	}

	if task.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(task.Description)
		b.WriteString("\n")
	}

	contents := make([]string, len(task.Comments))
	for i, c := range task.Comments {
		contents[i] = c.Content
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(contents, "\n\n"))
	b.WriteString("\n")

	return b.String(), nil
}

// ProjectTag derives the hash-tag form of a project name. Only the FIRST
// space is replaced by a hyphen; multi-word names keep their later spaces.
// This matches what existing imported notes contain (see DESIGN.md before
// changing it).
func ProjectTag(name string) string {
	return strings.Replace(name, " ", "-", 1)
}

// dateOnly reduces an RFC 3339 timestamp to YYYY-MM-DD. Unparseable
// values fall back to their first ten characters so a rendering run never
// fails on a timestamp.
func dateOnly(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format("2006-01-02")
	}
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// dueDate picks the datetime sub-field of a due structure, falling back to
// the all-day date when the service sent no datetime.
func dueDate(due *models.Due) string {
	if due.Datetime != "" {
		return dateOnly(due.Datetime)
	}
	return dateOnly(due.Date)
}
