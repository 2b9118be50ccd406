// Package importer orchestrates the fetch-and-join sequence that turns the
// service's three endpoints into fully enriched task records.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tmuir/todomark/internal/models"
)

// Fetcher is the subset of the API client the importer depends on
type Fetcher interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListComments(ctx context.Context, taskID string) ([]models.Comment, error)
}

// Snapshot is the result of one aggregation run: a point-in-time copy of
// every task, enriched with its comments, plus the project lookup the
// renderer needs. Nothing in a Snapshot is persisted.
type Snapshot struct {
	Projects models.ProjectLookup
	Tasks    []models.Task
}

// Service implements the aggregation pipeline
type Service struct {
	client Fetcher
}

// NewService creates a new importer service
func NewService(client Fetcher) *Service {
	return &Service{client: client}
}

// FetchAll runs the three-step fetch in dependency order: projects first
// (the renderer needs project names), then all tasks, then the comments of
// every task concurrently. The comment fetches are a single join point; if
// any one fails the whole aggregation fails and no partial result is
// returned.
//
// Tasks and comments keep whatever order the upstream service returned.
func (s *Service) FetchAll(ctx context.Context) (*Snapshot, error) {
	projects, err := s.client.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	lookup := make(models.ProjectLookup, len(projects))
	for _, p := range projects {
		lookup[p.ID] = p
	}
	slog.Debug("fetched projects", "count", len(projects))

	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	slog.Debug("fetched tasks", "count", len(tasks))

	// Issue all comment fetches before waiting on any of them. Each
	// goroutine writes only its own task's Comments field, and the lookup
	// map sees no writers past this point.
	g, gctx := errgroup.WithContext(ctx)
	for i := range tasks {
		g.Go(func() error {
			comments, err := s.client.ListComments(gctx, tasks[i].ID)
			if err != nil {
				return fmt.Errorf("fetching comments for task %s: %w", tasks[i].ID, err)
			}
			tasks[i].Comments = comments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{Projects: lookup, Tasks: tasks}, nil
}
