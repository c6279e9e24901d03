package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/internal/task/repository"
	pkgLog "voice-todo-assistant/pkg/log"
)

const defaultListLimit = 100

type implRepository struct {
	client        *Client
	cache         *repository.CollectionCache
	databaseTitle string
	parentPageID  string
	l             pkgLog.Logger
}

// New creates the Notion-backed task repository. The collection id cache is
// injected from the composition root so it can be invalidated explicitly.
func New(client *Client, cache *repository.CollectionCache, databaseTitle, parentPageID string, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:        client,
		cache:         cache,
		databaseTitle: databaseTitle,
		parentPageID:  parentPageID,
		l:             l,
	}
}

func (r *implRepository) EnsureCollection(ctx context.Context) (string, error) {
	if id := r.cache.Get(); id != "" {
		return id, nil
	}

	id, err := r.client.SearchDatabase(ctx, r.databaseTitle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrCollectionUnavailable, err)
	}

	if id == "" {
		r.l.Infof(ctx, "notion repository: task database %q not found, creating", r.databaseTitle)
		id, err = r.client.CreateDatabase(ctx, r.parentPageID, r.databaseTitle)
		if err != nil {
			return "", fmt.Errorf("%w: %v", repository.ErrCollectionUnavailable, err)
		}
	}

	// First-use race: two concurrent commands may both create the database.
	// Accepted; the cache converges on whichever id was stored last.
	r.cache.Set(id)
	return id, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	text := strings.TrimSpace(opt.Text)
	if text == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	dbID, err := r.EnsureCollection(ctx)
	if err != nil {
		return model.Task{}, err
	}

	priority := opt.Priority
	if !priority.Valid() {
		priority = model.PriorityMedium
	}
	category := opt.Category
	if !category.Valid() {
		category = model.CategoryOther
	}

	props := PageProperties{
		Name:     NewTitle(text),
		Status:   NewSelect(string(model.StatusTodo)),
		Priority: NewSelect(string(priority)),
		Category: NewSelect(string(category)),
	}
	if !opt.DueAt.IsZero() {
		props.Due = &DateProperty{Date: &DateValue{Start: opt.DueAt.Format(time.RFC3339)}}
	}

	page, err := r.client.CreatePage(ctx, dbID, props)
	if err != nil {
		r.l.Errorf(ctx, "notion repository: failed to create task %q: %v", text, err)
		return model.Task{}, err
	}
	return pageToTask(page), nil
}

func (r *implRepository) FindByFuzzyTitle(ctx context.Context, query string) (model.Task, error) {
	tasks, err := r.List(ctx, repository.ListTasksOptions{})
	if err != nil {
		return model.Task{}, err
	}
	t, ok := repository.MatchByTitle(tasks, query)
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *implRepository) FindByPosition(ctx context.Context, token string) (model.Task, error) {
	tasks, err := r.List(ctx, repository.ListTasksOptions{OnlyOpen: true})
	if err != nil {
		return model.Task{}, err
	}
	t, ok := repository.MatchByPosition(tasks, token)
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *implRepository) Complete(ctx context.Context, taskID string) (model.Task, error) {
	patch := UpdatePageRequest{
		Properties: &PageProperties{Status: NewSelect(string(model.StatusDone))},
	}
	page, err := r.client.UpdatePage(ctx, taskID, patch)
	if err != nil {
		return model.Task{}, mapClientError(err)
	}
	return pageToTask(page), nil
}

func (r *implRepository) Update(ctx context.Context, taskID, newText string) (model.Task, error) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	patch := UpdatePageRequest{
		Properties: &PageProperties{Name: NewTitle(newText)},
	}
	page, err := r.client.UpdatePage(ctx, taskID, patch)
	if err != nil {
		return model.Task{}, mapClientError(err)
	}
	return pageToTask(page), nil
}

func (r *implRepository) Delete(ctx context.Context, taskID string) error {
	archived := true
	_, err := r.client.UpdatePage(ctx, taskID, UpdatePageRequest{Archived: &archived})
	if err != nil {
		return mapClientError(err)
	}
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context) (int, error) {
	tasks, err := r.List(ctx, repository.ListTasksOptions{})
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, t := range tasks {
		if delErr := r.Delete(ctx, t.ID); delErr != nil {
			r.l.Errorf(ctx, "notion repository: failed to archive task %s: %v", t.ID, delErr)
			continue // partial success: keep archiving the rest
		}
		archived++
	}
	return archived, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	dbID, err := r.EnsureCollection(ctx)
	if err != nil {
		return nil, err
	}

	limit := opt.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	pages, err := r.client.QueryDatabase(ctx, dbID, buildFilter(opt), limit)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(pages))
	for i := range pages {
		if pages[i].Archived {
			continue
		}
		tasks = append(tasks, pageToTask(&pages[i]))
	}

	repository.SortForDisplay(tasks)
	return tasks, nil
}

// buildFilter translates list options into a Notion filter object.
func buildFilter(opt repository.ListTasksOptions) map[string]any {
	var conds []map[string]any

	if opt.OnlyOpen {
		conds = append(conds, map[string]any{
			"property": "Status",
			"select":   map[string]any{"does_not_equal": string(model.StatusDone)},
		})
	}
	if !opt.CreatedAfter.IsZero() {
		conds = append(conds, map[string]any{
			"timestamp":    "created_time",
			"created_time": map[string]any{"on_or_after": opt.CreatedAfter.Format(time.RFC3339)},
		})
	}

	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return map[string]any{"and": conds}
	}
}

// mapClientError converts Notion 404s to the repository sentinel.
func mapClientError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return repository.ErrTaskNotFound
	}
	return err
}

// pageToTask converts a Notion page object to the internal model.Task.
func pageToTask(p *Page) model.Task {
	status := model.Status(p.Properties.Status.Value())
	if status != model.StatusDone {
		status = model.StatusTodo
	}

	priority := model.Priority(p.Properties.Priority.Value())
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	category := model.Category(p.Properties.Category.Value())
	if !category.Valid() {
		category = model.CategoryOther
	}

	createdAt, _ := time.Parse(time.RFC3339, p.CreatedTime)

	var dueAt time.Time
	if raw := p.Properties.Due.Value(); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			dueAt = t
		} else if t, err := time.Parse("2006-01-02", raw); err == nil {
			dueAt = t
		}
	}

	return model.Task{
		ID:        p.ID,
		Text:      p.Properties.Name.PlainText(),
		Status:    status,
		Priority:  priority,
		Category:  category,
		CreatedAt: createdAt,
		DueAt:     dueAt,
		Archived:  p.Archived,
	}
}
