package models

import (
	"fmt"

	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/store"
)

// Flashcard is one question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (f Flashcard) Equal(other Flashcard) bool {
	return f.Question == other.Question && f.Answer == other.Answer
}

func (f Flashcard) String() string {
	return fmt.Sprintf("Q: %s A: %s", f.Question, f.Answer)
}

// FlashcardEdit holds the fields an edit command changes. Nil means unchanged.
type FlashcardEdit struct {
	Question *string
	Answer   *string
}

func (e FlashcardEdit) IsAnyFieldEdited() bool {
	return e.Question != nil || e.Answer != nil
}

func (e FlashcardEdit) Apply(f Flashcard) Flashcard {
	if e.Question != nil {
		f.Question = *e.Question
	}
	if e.Answer != nil {
		f.Answer = *e.Answer
	}
	return f
}

// FlashcardSet is a named, ordered set of flashcards. Sets are identified by
// name, and a set exclusively owns its cards.
type FlashcardSet struct {
	Name  string
	cards *store.List[Flashcard]
}

// NewFlashcardSet creates a set holding cards, dropping duplicate cards.
func NewFlashcardSet(name string, cards ...Flashcard) *FlashcardSet {
	l := store.NewList[Flashcard]("flashcard")
	l.Reset(cards)
	return &FlashcardSet{Name: name, cards: l}
}

func (s *FlashcardSet) Equal(other *FlashcardSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name
}

// Cards returns a copy of the cards in order.
func (s *FlashcardSet) Cards() []Flashcard { return s.cards.All() }

// Size is the number of cards; zero is a valid, unquizzable set.
func (s *FlashcardSet) Size() int { return s.cards.Len() }

// Flashcard returns the card at index.
func (s *FlashcardSet) Flashcard(i Index) (Flashcard, error) {
	card, ok := s.cards.Get(i.ZeroBased())
	if !ok {
		return Flashcard{}, errors.NewInvalidIndexError("flashcard", i.OneBased(), s.Size())
	}
	return card, nil
}

func (s *FlashcardSet) HasFlashcard(f Flashcard) bool { return s.cards.Contains(f) }

func (s *FlashcardSet) AddFlashcard(f Flashcard) error { return s.cards.Add(f) }

func (s *FlashcardSet) SetFlashcard(old, next Flashcard) error { return s.cards.Replace(old, next) }

// DeleteFlashcard removes the card at index.
func (s *FlashcardSet) DeleteFlashcard(i Index) error {
	if !i.InRange(s.Size()) {
		return errors.NewInvalidIndexError("flashcard", i.OneBased(), s.Size())
	}
	return s.cards.RemoveAt(i.ZeroBased())
}

// Clone deep-copies the set so snapshots do not alias live cards.
func (s *FlashcardSet) Clone() *FlashcardSet {
	return NewFlashcardSet(s.Name, s.Cards()...)
}

func (s *FlashcardSet) String() string {
	return fmt.Sprintf("%s (%d flashcards)", s.Name, s.Size())
}
