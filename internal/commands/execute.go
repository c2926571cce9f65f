package commands

import (
	"fmt"

	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
)

// Execute runs c against m. Every check happens before the first mutation, so
// a failed command leaves m unchanged.
func Execute(m model.Model, c Command) (Result, error) {
	switch c := c.(type) {
	case Help:
		return Result{Feedback: MessageHelp, Domain: DomainGeneral, ShowHelp: true}, nil
	case Exit:
		return Result{Feedback: MessageExit, Domain: DomainGeneral, Exit: true}, nil

	case AddContact:
		return addContact(m, c)
	case EditContact:
		return editContact(m, c)
	case DeleteContact:
		return deleteContact(m, c)
	case FindContacts:
		return findContacts(m, c)
	case ListContacts:
		return listContacts(m)
	case ClearContacts:
		return clearContacts(m)

	case AddTask:
		return addTask(m, c)
	case EditTask:
		return editTask(m, c)
	case DeleteTask:
		return deleteTask(m, c)
	case FindTasks:
		return findTasks(m, c)
	case ListTasks:
		return listTasks(m)

	case AddFlashcardSet:
		return addFlashcardSet(m, c)
	case DeleteFlashcardSet:
		return deleteFlashcardSet(m, c)
	case FindFlashcardSets:
		return findFlashcardSets(m, c)
	case ListFlashcardSets:
		return listFlashcardSets(m)
	case ViewFlashcardSet:
		return viewFlashcardSet(m, c)
	case AddFlashcard:
		return addFlashcard(m, c)
	case EditFlashcard:
		return editFlashcard(m, c)
	case DeleteFlashcard:
		return deleteFlashcard(m, c)

	case StartQuiz:
		return startQuiz(m, c)
	case AnswerQuiz:
		return answerQuiz(m, c)
	case ContinueQuiz:
		return continueQuiz(m)
	case RefreshQuiz:
		return refreshQuiz(m)
	case CancelQuiz:
		return cancelQuiz(m)
	case StopQuiz:
		return stopQuiz(m)
	case ShowScore:
		return showScore(m, c)

	default:
		return Result{}, errors.NewUnknownCommandError(fmt.Sprintf("%T", c))
	}
}

// resolve returns the element of the displayed list at i.
func resolve[T any](view []T, i models.Index, resource string) (T, error) {
	var zero T
	if !i.InRange(len(view)) {
		return zero, errors.NewInvalidIndexError(resource, i.OneBased(), len(view))
	}
	return view[i.ZeroBased()], nil
}

func mutated(d Domain, format string, args ...any) (Result, error) {
	return Result{Feedback: fmt.Sprintf(format, args...), Domain: d, Mutated: true}, nil
}

func feedback(d Domain, format string, args ...any) (Result, error) {
	return Result{Feedback: fmt.Sprintf(format, args...), Domain: d}, nil
}
