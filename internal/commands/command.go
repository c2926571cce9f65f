// Package commands defines every command the application understands and
// executes them against a model.Model.
//
// Command is a closed set: each kind is a struct embedding one of the
// unexported domain markers below, and Execute switches over all of them.
package commands

import (
	"fmt"

	"github.com/vytor/studybananas/internal/models"
)

// Domain groups commands by the collection they read or write.
type Domain int

const (
	DomainGeneral Domain = iota
	DomainContacts
	DomainSchedule
	DomainFlashcards
	DomainQuiz
)

func (d Domain) String() string {
	switch d {
	case DomainGeneral:
		return "general"
	case DomainContacts:
		return "contacts"
	case DomainSchedule:
		return "schedule"
	case DomainFlashcards:
		return "flashcards"
	case DomainQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// Command is a parsed command line ready to execute.
type Command interface {
	Domain() Domain
	sealed()
}

type general struct{}

func (general) Domain() Domain { return DomainGeneral }
func (general) sealed()        {}

type contacts struct{}

func (contacts) Domain() Domain { return DomainContacts }
func (contacts) sealed()        {}

type schedule struct{}

func (schedule) Domain() Domain { return DomainSchedule }
func (schedule) sealed()        {}

type flashcards struct{}

func (flashcards) Domain() Domain { return DomainFlashcards }
func (flashcards) sealed()        {}

type quizDomain struct{}

func (quizDomain) Domain() Domain { return DomainQuiz }
func (quizDomain) sealed()        {}

// Result is what the render layer shows after a command ran.
type Result struct {
	Feedback string
	Domain   Domain
	// Mutated is set when the Domain's collection changed and must be saved.
	Mutated  bool
	ShowHelp bool
	Exit     bool
}

type Help struct{ general }
type Exit struct{ general }

type AddContact struct {
	contacts
	Contact models.Contact
}

type EditContact struct {
	contacts
	Index models.Index
	Edit  models.ContactEdit
}

type DeleteContact struct {
	contacts
	Index models.Index
}

type FindContacts struct {
	contacts
	Keywords []string
}

type ListContacts struct{ contacts }
type ClearContacts struct{ contacts }

type AddTask struct {
	schedule
	Task models.Task
}

type EditTask struct {
	schedule
	Index models.Index
	Edit  models.TaskEdit
}

type DeleteTask struct {
	schedule
	Index models.Index
}

type FindTasks struct {
	schedule
	Keywords []string
}

type ListTasks struct{ schedule }

type AddFlashcardSet struct {
	flashcards
	Name string
}

type DeleteFlashcardSet struct {
	flashcards
	Index models.Index
}

type FindFlashcardSets struct {
	flashcards
	Keywords []string
}

type ListFlashcardSets struct{ flashcards }

type ViewFlashcardSet struct {
	flashcards
	Index models.Index
}

type AddFlashcard struct {
	flashcards
	SetIndex  models.Index
	Flashcard models.Flashcard
}

type EditFlashcard struct {
	flashcards
	SetIndex  models.Index
	CardIndex models.Index
	Edit      models.FlashcardEdit
}

type DeleteFlashcard struct {
	flashcards
	SetIndex  models.Index
	CardIndex models.Index
}

type StartQuiz struct {
	quizDomain
	SetIndex models.Index
}

type AnswerQuiz struct {
	quizDomain
	Correct bool
}

type ContinueQuiz struct{ quizDomain }
type RefreshQuiz struct{ quizDomain }
type CancelQuiz struct{ quizDomain }
type StopQuiz struct{ quizDomain }

type ShowScore struct {
	quizDomain
	SetIndex models.Index
}
