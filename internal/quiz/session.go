// Package quiz implements the quiz session that runs over a flashcard set.
//
// A Session is either Idle or Active. While Active it owns a cursor into the
// cards of the set being quizzed and a running score. Stopping commits a Record
// keyed by the set index the quiz was started with, overwriting any earlier
// record for that index.
package quiz

import (
	"fmt"

	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
)

// State of a Session.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Active:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Record is the score of a finished quiz.
type Record struct {
	SetIndex models.Index
	SetName  string
	Correct  int
	Total    int
}

// Percentage is Correct / Total * 100. Records are only created with Total > 0.
func (r Record) Percentage() float64 {
	return float64(r.Correct) / float64(r.Total) * 100
}

func (r Record) String() string {
	return fmt.Sprintf("%s: %d/%d (%.2f%%)", r.SetName, r.Correct, r.Total, r.Percentage())
}

type activeQuiz struct {
	setIndex models.Index
	setName  string
	cards    []models.Flashcard
	cursor   int
	correct  int
	answered int
}

// Session holds the active quiz, if any, and the records of finished ones.
type Session struct {
	active     *activeQuiz
	records    map[int]Record
	lastResult string
}

// NewSession returns an Idle session with no records.
func NewSession() *Session {
	return &Session{records: make(map[int]Record)}
}

func (s *Session) State() State {
	if s.active != nil {
		return Active
	}
	return Idle
}

func (s *Session) IsActive() bool { return s.active != nil }

// Start begins a quiz over set, which the caller resolved from setIndex.
// The cards are copied; the set cannot change while the quiz lock holds.
func (s *Session) Start(setIndex models.Index, set *models.FlashcardSet) (models.Flashcard, error) {
	if s.active != nil {
		return models.Flashcard{}, errors.NewQuizAlreadyActiveError()
	}
	if set.Size() == 0 {
		return models.Flashcard{}, errors.NewEmptyFlashcardSetError(set.Name)
	}
	s.active = &activeQuiz{
		setIndex: setIndex,
		setName:  set.Name,
		cards:    set.Cards(),
	}
	s.lastResult = ""
	return s.active.cards[0], nil
}

// Current returns the card under the cursor.
func (s *Session) Current() (models.Flashcard, error) {
	if s.active == nil {
		return models.Flashcard{}, errors.NewNoActiveQuizError()
	}
	if s.Finished() {
		return models.Flashcard{}, errors.NewQuizFinishedError()
	}
	return s.active.cards[s.active.cursor], nil
}

// Position returns the 1-based number of the current question and the total.
func (s *Session) Position() (int, int) {
	if s.active == nil {
		return 0, 0
	}
	return s.active.cursor + 1, len(s.active.cards)
}

// Finished reports whether every question of the active quiz has been answered.
func (s *Session) Finished() bool {
	return s.active != nil && s.active.cursor >= len(s.active.cards)
}

// Answer tallies the current question and advances the cursor. The session
// stays Active after the last question; Stop ends it.
func (s *Session) Answer(correct bool) error {
	if s.active == nil {
		return errors.NewNoActiveQuizError()
	}
	if s.Finished() {
		return errors.NewQuizFinishedError()
	}
	if correct {
		s.active.correct++
	}
	s.active.answered++
	s.active.cursor++
	return nil
}

// Score returns correct and answered counts of the active quiz.
func (s *Session) Score() (correct, answered int) {
	if s.active == nil {
		return 0, 0
	}
	return s.active.correct, s.active.answered
}

// Stop ends the active quiz and commits its record. With nothing answered it
// fails with EMPTY_QUIZ_SCORE and the quiz stays Active.
func (s *Session) Stop() (Record, error) {
	if s.active == nil {
		return Record{}, errors.NewNoActiveQuizError()
	}
	if s.active.answered == 0 {
		return Record{}, errors.NewEmptyQuizScoreError()
	}
	rec := Record{
		SetIndex: s.active.setIndex,
		SetName:  s.active.setName,
		Correct:  s.active.correct,
		Total:    s.active.answered,
	}
	s.records[rec.SetIndex.ZeroBased()] = rec
	s.active = nil
	s.lastResult = ""
	return rec, nil
}

// Cancel abandons the active quiz without a record.
func (s *Session) Cancel() error {
	if s.active == nil {
		return errors.NewNoActiveQuizError()
	}
	s.active = nil
	s.lastResult = ""
	return nil
}

// Record returns the last committed record for setIndex.
func (s *Session) Record(setIndex models.Index) (Record, bool) {
	rec, ok := s.records[setIndex.ZeroBased()]
	return rec, ok
}

// Remember caches the last quiz result shown to the user.
func (s *Session) Remember(result string) {
	s.lastResult = result
}

// Refresh returns the cached result. It has no effect on the quiz.
func (s *Session) Refresh() (string, error) {
	if s.active == nil {
		return "", errors.NewNoActiveQuizError()
	}
	return s.lastResult, nil
}
