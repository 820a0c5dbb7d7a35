package tasks

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"tasknotes-service/internal/model"
	"tasknotes-service/internal/repository"
	svc "tasknotes-service/internal/service"
	"tasknotes-service/internal/service/events"
)

var _ svc.TaskService = (*service)(nil)

type service struct {
	mu         sync.Mutex
	collection repository.Collection[model.Task]
	publisher  events.Publisher
	tasks      []model.Task

	now   func() time.Time
	newID func() model.ID
}

// NewTaskService создает сервис задач поверх адаптера персистентности.
// publisher может быть nil. Коллекция пуста до вызова Load.
func NewTaskService(collection repository.Collection[model.Task], publisher events.Publisher) svc.TaskService {
	return &service{
		collection: collection,
		publisher:  publisher,
		tasks:      []model.Task{},
		now:        func() time.Time { return time.Now().UTC() },
		newID:      model.NewID,
	}
}

func (s *service) Load(ctx context.Context) {
	tasks := s.collection.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func (s *service) List(ctx context.Context) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

func (s *service) Add(ctx context.Context, title, description, priority string) (model.Task, error) {
	title, err := model.ValidateTaskTitle(title)
	if err != nil {
		return model.Task{}, err
	}
	description, err = model.ValidateTaskDescription(description)
	if err != nil {
		return model.Task{}, err
	}
	p, err := model.ParsePriority(priority)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Priority:    p,
		Status:      model.StatusPending,
		CreatedAt:   s.now(),
	}

	next := append(slices.Clone(s.tasks), task)
	if err := s.commit(ctx, next); err != nil {
		return model.Task{}, err
	}

	s.publish(model.EventCreated, task.ID)
	return task, nil
}

func (s *service) Update(ctx context.Context, id model.ID, title, description, priority string) (model.Task, bool, error) {
	// Лимиты длины проверяются только при создании
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false, model.NewValidationError("title", "title is required")
	}
	p, err := model.ParsePriority(priority)
	if err != nil {
		return model.Task{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}

	next := slices.Clone(s.tasks)
	next[i].Title = title
	next[i].Description = strings.TrimSpace(description)
	next[i].Priority = p

	if err := s.commit(ctx, next); err != nil {
		return model.Task{}, false, err
	}

	s.publish(model.EventUpdated, id)
	return next[i], true, nil
}

func (s *service) ToggleStatus(ctx context.Context, id model.ID) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}

	next := slices.Clone(s.tasks)
	next[i] = next[i].Toggled(s.now())

	if err := s.commit(ctx, next); err != nil {
		return model.Task{}, false, err
	}

	s.publish(model.EventUpdated, id)
	return next[i], true, nil
}

func (s *service) Delete(ctx context.Context, id model.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}

	s.publish(model.EventDeleted, id)
	return true, nil
}

func (s *service) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.tasks), model.Task.IsCompleted)
	removed := len(s.tasks) - len(next)

	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}

	if removed > 0 {
		s.publish(model.EventCleared, "")
	}
	return removed, nil
}

// commit сохраняет новую коллекцию и только после успешной записи заменяет ее в памяти.
// Вызывается под s.mu.
func (s *service) commit(ctx context.Context, next []model.Task) error {
	if err := s.collection.Save(ctx, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

func (s *service) indexOf(id model.ID) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func (s *service) publish(kind model.EventKind, id model.ID) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(model.Event{
		Entity: model.EntityTask,
		Kind:   kind,
		ID:     id,
		At:     s.now(),
	})
}
