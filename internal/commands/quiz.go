package commands

import (
	"fmt"

	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/quiz"
)

// quizResult caches the feedback for refresh before returning it.
func quizResult(s *quiz.Session, msg string) (Result, error) {
	s.Remember(msg)
	return Result{Feedback: msg, Domain: DomainQuiz}, nil
}

func questionMessage(s *quiz.Session, card models.Flashcard) string {
	n, total := s.Position()
	return fmt.Sprintf(MessageQuestion, n, total, card.Question)
}

func startQuiz(m model.Model, c StartQuiz) (Result, error) {
	set, err := m.FlashcardSet(c.SetIndex)
	if err != nil {
		return Result{}, err
	}
	s := m.Quiz()
	first, err := s.Start(c.SetIndex, set)
	if err != nil {
		return Result{}, err
	}
	return quizResult(s, questionMessage(s, first))
}

func answerQuiz(m model.Model, c AnswerQuiz) (Result, error) {
	s := m.Quiz()
	if err := s.Answer(c.Correct); err != nil {
		return Result{}, err
	}
	if s.Finished() {
		_, total := s.Position()
		return quizResult(s, fmt.Sprintf(MessageQuizDone, total))
	}
	next, err := s.Current()
	if err != nil {
		return Result{}, err
	}
	return quizResult(s, questionMessage(s, next))
}

func continueQuiz(m model.Model) (Result, error) {
	s := m.Quiz()
	card, err := s.Current()
	if err != nil {
		return Result{}, err
	}
	msg := questionMessage(s, card) + "\n" + fmt.Sprintf(MessageAnswer, card.Answer)
	return quizResult(s, msg)
}

func refreshQuiz(m model.Model) (Result, error) {
	last, err := m.Quiz().Refresh()
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: MessageRefresh + last, Domain: DomainQuiz}, nil
}

func cancelQuiz(m model.Model) (Result, error) {
	if err := m.Quiz().Cancel(); err != nil {
		return Result{}, err
	}
	return feedback(DomainQuiz, MessageQuizCancel)
}

func stopQuiz(m model.Model) (Result, error) {
	rec, err := m.Quiz().Stop()
	if err != nil {
		return Result{}, err
	}
	return feedback(DomainQuiz, MessageQuizStop, rec.SetName, rec.Correct, rec.Total, rec.Percentage())
}

// showScore looks the record up by the index it was taken against, which may
// no longer name a displayed set.
func showScore(m model.Model, c ShowScore) (Result, error) {
	rec, ok := m.Quiz().Record(c.SetIndex)
	if !ok {
		return Result{}, errors.NewNotFoundError("quiz score", c.SetIndex.OneBased())
	}
	return feedback(DomainQuiz, MessageScore, rec.SetName, rec.Correct, rec.Total, rec.Percentage())
}
