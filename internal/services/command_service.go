package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/logger"
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/parser"
	"github.com/vytor/studybananas/internal/repository"
)

// CommandService turns command lines into model changes and keeps the
// stored snapshots in step with the model.
type CommandService interface {
	Load(ctx context.Context) error
	Execute(ctx context.Context, line string) (commands.Result, error)
	FilteredContacts() []models.Contact
	FilteredTasks() []models.Task
	FilteredFlashcardSets() []*models.FlashcardSet
	FlashcardSetToView() *models.FlashcardSet
	IsQuizActive() bool
}

type commandService struct {
	model    *model.Manager
	router   *parser.Router
	contacts repository.ContactRepository
	tasks    repository.TaskRepository
	sets     repository.FlashcardRepository
}

// NewCommandService creates a new CommandService
func NewCommandService(
	m *model.Manager,
	contacts repository.ContactRepository,
	tasks repository.TaskRepository,
	sets repository.FlashcardRepository,
) CommandService {
	return &commandService{
		model:    m,
		router:   parser.NewRouter(m),
		contacts: contacts,
		tasks:    tasks,
		sets:     sets,
	}
}

// Load replaces each collection with its stored snapshot. A collection that
// fails to load is left empty and its error is returned alongside the others.
func (s *commandService) Load(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("command_service")
	log.Debug("loading snapshots")

	var errs []error

	contacts, err := s.contacts.Load(ctx)
	if err != nil {
		log.Warn("failed to load address book, starting empty: %v", err)
		errs = append(errs, fmt.Errorf("address book: %w", err))
	} else {
		s.model.ResetContacts(contacts)
	}

	tasks, err := s.tasks.Load(ctx)
	if err != nil {
		log.Warn("failed to load schedule, starting empty: %v", err)
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	} else {
		s.model.ResetTasks(tasks)
	}

	sets, err := s.sets.Load(ctx)
	if err != nil {
		log.Warn("failed to load flashcard bank, starting empty: %v", err)
		errs = append(errs, fmt.Errorf("flashcard bank: %w", err))
	} else {
		s.model.ResetFlashcardSets(sets)
	}

	log.Info("snapshots loaded: contacts=%d tasks=%d flashcard_sets=%d",
		len(s.model.Contacts()), len(s.model.Tasks()), len(s.model.FlashcardSets()))
	return stderrors.Join(errs...)
}

func (s *commandService) Execute(ctx context.Context, line string) (commands.Result, error) {
	log := logger.FromContext(ctx).WithPrefix("command_service").WithField("command_id", uuid.NewString())
	log.Debug("executing command: %q", line)

	cmd, err := s.router.Parse(line)
	if err != nil {
		log.Debug("parse failed: %v", err)
		return commands.Result{}, err
	}

	res, err := commands.Execute(s.model, cmd)
	if err != nil {
		log.Debug("command failed: %v", err)
		return commands.Result{}, err
	}

	if res.Mutated {
		if err := s.save(logger.NewContext(ctx, log), res.Domain); err != nil {
			log.Error("failed to save %s: %v", res.Domain, err)
			return commands.Result{}, errors.NewInternalError(err)
		}
	}

	log.Debug("command done: domain=%s mutated=%t", res.Domain, res.Mutated)
	return res, nil
}

func (s *commandService) save(ctx context.Context, d commands.Domain) error {
	switch d {
	case commands.DomainContacts:
		return s.contacts.Save(ctx, s.model.Contacts())
	case commands.DomainSchedule:
		return s.tasks.Save(ctx, s.model.Tasks())
	case commands.DomainFlashcards:
		return s.sets.Save(ctx, s.model.FlashcardSets())
	default:
		return nil
	}
}

func (s *commandService) FilteredContacts() []models.Contact            { return s.model.FilteredContacts() }
func (s *commandService) FilteredTasks() []models.Task                  { return s.model.FilteredTasks() }
func (s *commandService) FilteredFlashcardSets() []*models.FlashcardSet { return s.model.FilteredFlashcardSets() }
func (s *commandService) FlashcardSetToView() *models.FlashcardSet      { return s.model.FlashcardSetToView() }
func (s *commandService) IsQuizActive() bool                            { return s.model.IsQuizActive() }
