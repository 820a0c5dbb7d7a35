package notes

import (
	"context"
	"slices"
	"sync"
	"time"

	"tasknotes-service/internal/model"
	"tasknotes-service/internal/repository"
	svc "tasknotes-service/internal/service"
	"tasknotes-service/internal/service/events"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	mu         sync.Mutex
	collection repository.Collection[model.Note]
	publisher  events.Publisher
	notes      []model.Note
	// editing id заметки в открытой сессии редактирования
	editing model.ID

	now   func() time.Time
	newID func() model.ID
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками.
// publisher может быть nil. Коллекция пуста до вызова Load.
func NewNoteService(collection repository.Collection[model.Note], publisher events.Publisher) svc.NoteService {
	return &service{
		collection: collection,
		publisher:  publisher,
		notes:      []model.Note{},
		now:        func() time.Time { return time.Now().UTC() },
		newID:      model.NewID,
	}
}

// Load читает заметки и дополняет поля, отсутствующие в старых данных
func (s *service) Load(ctx context.Context) {
	notes := s.collection.Load(ctx)
	for i := range notes {
		if notes[i].Category == "" {
			notes[i].Category = model.CategoryPersonal
		}
		notes[i].Title = model.NoteTitle(notes[i].Title)
		if notes[i].UpdatedAt.IsZero() {
			notes[i].UpdatedAt = notes[i].CreatedAt
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.editing = ""
}

func (s *service) List(ctx context.Context) []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

// Add создает новую заметку; пустой текст отклоняется, пустой заголовок заменяется на UntitledNote
func (s *service) Add(ctx context.Context, title, text, category string) (model.Note, error) {
	text, err := model.ValidateNoteText(text)
	if err != nil {
		return model.Note{}, err
	}
	c, err := model.ParseCategory(category)
	if err != nil {
		return model.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	note := model.Note{
		ID:        s.newID(),
		Title:     model.NoteTitle(title),
		Text:      text,
		Category:  c,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(slices.Clone(s.notes), note)
	if err := s.commit(ctx, next); err != nil {
		return model.Note{}, err
	}

	s.publish(model.EventCreated, note.ID)
	return note, nil
}

// StartEdit открывает сессию редактирования; одновременно открыта только одна сессия
func (s *service) StartEdit(ctx context.Context, id model.ID) (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Note{}, false
	}
	s.editing = id
	return s.notes[i], true
}

// SaveEdit обновляет заголовок и текст; CreatedAt не меняется
func (s *service) SaveEdit(ctx context.Context, id model.ID, title, text string) (model.Note, bool, error) {
	text, err := model.ValidateNoteText(text)
	if err != nil {
		return model.Note{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Note{}, false, nil
	}

	next := slices.Clone(s.notes)
	next[i].Title = model.NoteTitle(title)
	next[i].Text = text
	next[i].UpdatedAt = s.now()

	if err := s.commit(ctx, next); err != nil {
		return model.Note{}, false, err
	}

	if s.editing == id {
		s.editing = ""
	}
	s.publish(model.EventUpdated, id)
	return next[i], true, nil
}

func (s *service) Snapshot(ctx context.Context) ([]model.Note, model.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes), s.editing
}

func (s *service) CancelEdit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = ""
}

func (s *service) EditingID(ctx context.Context) model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *service) Delete(ctx context.Context, id model.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.notes), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}

	if s.editing == id {
		s.editing = ""
	}
	s.publish(model.EventDeleted, id)
	return true, nil
}

// commit сохраняет новую коллекцию и заменяет ее в памяти только после успешной записи
func (s *service) commit(ctx context.Context, next []model.Note) error {
	if err := s.collection.Save(ctx, next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

func (s *service) indexOf(id model.ID) int {
	return slices.IndexFunc(s.notes, func(n model.Note) bool { return n.ID == id })
}

func (s *service) publish(kind model.EventKind, id model.ID) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(model.Event{
		Entity: model.EntityNote,
		Kind:   kind,
		ID:     id,
		At:     s.now(),
	})
}
