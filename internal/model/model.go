// Package model is the in-memory state the commands operate on: the contact,
// task and flashcard set collections with their filtered views, the quiz
// session and the user preferences.
package model

import (
	"github.com/vytor/studybananas/internal/config"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/quiz"
	"github.com/vytor/studybananas/internal/store"
)

// Model is the API commands execute against.
type Model interface {
	HasContact(c models.Contact) bool
	AddContact(c models.Contact) error
	DeleteContact(c models.Contact) error
	SetContact(target, edited models.Contact) error
	FilteredContacts() []models.Contact
	UpdateContactFilter(p store.Predicate[models.Contact])
	ResetContacts(cs []models.Contact)
	Contacts() []models.Contact

	HasTask(t models.Task) bool
	AddTask(t models.Task) error
	DeleteTask(t models.Task) error
	SetTask(target, edited models.Task) error
	FilteredTasks() []models.Task
	UpdateTaskFilter(p store.Predicate[models.Task])
	ResetTasks(ts []models.Task)
	Tasks() []models.Task

	HasFlashcardSet(s *models.FlashcardSet) bool
	AddFlashcardSet(s *models.FlashcardSet) error
	DeleteFlashcardSet(s *models.FlashcardSet) error
	FilteredFlashcardSets() []*models.FlashcardSet
	UpdateFlashcardSetFilter(p store.Predicate[*models.FlashcardSet])
	ResetFlashcardSets(sets []*models.FlashcardSet)
	FlashcardSets() []*models.FlashcardSet
	FlashcardSet(i models.Index) (*models.FlashcardSet, error)

	AddFlashcard(set *models.FlashcardSet, card models.Flashcard) error
	SetFlashcard(set *models.FlashcardSet, target, edited models.Flashcard) error
	DeleteFlashcard(set *models.FlashcardSet, cardIndex models.Index) error
	SetFlashcardSetToView(set *models.FlashcardSet)
	FlashcardSetToView() *models.FlashcardSet

	Quiz() *quiz.Session
	IsQuizActive() bool

	UserPrefs() config.UserPrefs
	SetGuiSettings(gui config.GuiSettings)
}

// Manager is the Model implementation.
type Manager struct {
	contacts *store.List[models.Contact]
	tasks    *store.List[models.Task]
	sets     *store.List[*models.FlashcardSet]
	session  *quiz.Session
	prefs    config.UserPrefs
	viewing  *models.FlashcardSet
}

// New creates an empty Manager with prefs.
func New(prefs config.UserPrefs) *Manager {
	return &Manager{
		contacts: store.NewList[models.Contact]("person"),
		tasks:    store.NewList[models.Task]("task"),
		sets:     store.NewList[*models.FlashcardSet]("flashcard set"),
		session:  quiz.NewSession(),
		prefs:    prefs,
	}
}

var _ Model = (*Manager)(nil)

func (m *Manager) HasContact(c models.Contact) bool     { return m.contacts.Contains(c) }
func (m *Manager) AddContact(c models.Contact) error    { return m.contacts.Add(c) }
func (m *Manager) DeleteContact(c models.Contact) error { return m.contacts.Remove(c) }
func (m *Manager) FilteredContacts() []models.Contact   { return m.contacts.Filtered() }
func (m *Manager) Contacts() []models.Contact           { return m.contacts.All() }

func (m *Manager) SetContact(target, edited models.Contact) error {
	return m.contacts.Replace(target, edited)
}

func (m *Manager) UpdateContactFilter(p store.Predicate[models.Contact]) {
	m.contacts.SetFilter(p)
}

func (m *Manager) ResetContacts(cs []models.Contact) { m.contacts.Reset(cs) }

func (m *Manager) HasTask(t models.Task) bool     { return m.tasks.Contains(t) }
func (m *Manager) AddTask(t models.Task) error    { return m.tasks.Add(t) }
func (m *Manager) DeleteTask(t models.Task) error { return m.tasks.Remove(t) }
func (m *Manager) FilteredTasks() []models.Task   { return m.tasks.Filtered() }
func (m *Manager) Tasks() []models.Task           { return m.tasks.All() }

func (m *Manager) SetTask(target, edited models.Task) error {
	return m.tasks.Replace(target, edited)
}

func (m *Manager) UpdateTaskFilter(p store.Predicate[models.Task]) { m.tasks.SetFilter(p) }

func (m *Manager) ResetTasks(ts []models.Task) { m.tasks.Reset(ts) }

func (m *Manager) HasFlashcardSet(s *models.FlashcardSet) bool  { return m.sets.Contains(s) }
func (m *Manager) AddFlashcardSet(s *models.FlashcardSet) error { return m.sets.Add(s) }

// DeleteFlashcardSet removes s and stops viewing it.
func (m *Manager) DeleteFlashcardSet(s *models.FlashcardSet) error {
	if err := m.sets.Remove(s); err != nil {
		return err
	}
	if m.viewing.Equal(s) {
		m.viewing = nil
	}
	return nil
}

// FilteredFlashcardSets returns the live sets of the filtered view.
func (m *Manager) FilteredFlashcardSets() []*models.FlashcardSet { return m.sets.Filtered() }

func (m *Manager) UpdateFlashcardSetFilter(p store.Predicate[*models.FlashcardSet]) {
	m.sets.SetFilter(p)
}

// ResetFlashcardSets replaces every set with a copy of sets.
func (m *Manager) ResetFlashcardSets(sets []*models.FlashcardSet) {
	cloned := make([]*models.FlashcardSet, 0, len(sets))
	for _, s := range sets {
		cloned = append(cloned, s.Clone())
	}
	m.sets.Reset(cloned)
	m.viewing = nil
}

// FlashcardSets returns deep copies of every set, suitable for saving.
func (m *Manager) FlashcardSets() []*models.FlashcardSet {
	all := m.sets.All()
	out := make([]*models.FlashcardSet, 0, len(all))
	for _, s := range all {
		out = append(out, s.Clone())
	}
	return out
}

// FlashcardSet resolves i against the filtered view.
func (m *Manager) FlashcardSet(i models.Index) (*models.FlashcardSet, error) {
	view := m.sets.Filtered()
	if !i.InRange(len(view)) {
		return nil, errors.NewInvalidIndexError("flashcard set", i.OneBased(), len(view))
	}
	return view[i.ZeroBased()], nil
}

func (m *Manager) AddFlashcard(set *models.FlashcardSet, card models.Flashcard) error {
	if !m.sets.Contains(set) {
		return errors.NewNotFoundError("flashcard set", set.Name)
	}
	return set.AddFlashcard(card)
}

func (m *Manager) SetFlashcard(set *models.FlashcardSet, target, edited models.Flashcard) error {
	if !m.sets.Contains(set) {
		return errors.NewNotFoundError("flashcard set", set.Name)
	}
	return set.SetFlashcard(target, edited)
}

func (m *Manager) DeleteFlashcard(set *models.FlashcardSet, cardIndex models.Index) error {
	if !m.sets.Contains(set) {
		return errors.NewNotFoundError("flashcard set", set.Name)
	}
	return set.DeleteFlashcard(cardIndex)
}

func (m *Manager) SetFlashcardSetToView(set *models.FlashcardSet) { m.viewing = set }
func (m *Manager) FlashcardSetToView() *models.FlashcardSet       { return m.viewing }

func (m *Manager) Quiz() *quiz.Session { return m.session }

// IsQuizActive is read by the router before every command.
func (m *Manager) IsQuizActive() bool { return m.session.IsActive() }

func (m *Manager) UserPrefs() config.UserPrefs { return m.prefs }

func (m *Manager) SetGuiSettings(gui config.GuiSettings) { m.prefs.Gui = gui }
