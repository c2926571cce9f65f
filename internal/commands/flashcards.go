package commands

import (
	"fmt"
	"strings"

	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
)

func addFlashcardSet(m model.Model, c AddFlashcardSet) (Result, error) {
	set := models.NewFlashcardSet(c.Name)
	if err := m.AddFlashcardSet(set); err != nil {
		return Result{}, err
	}
	return mutated(DomainFlashcards, MessageAddFlashcardSet, set.Name)
}

func deleteFlashcardSet(m model.Model, c DeleteFlashcardSet) (Result, error) {
	set, err := m.FlashcardSet(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteFlashcardSet(set); err != nil {
		return Result{}, err
	}
	return mutated(DomainFlashcards, MessageDeleteFlashcardSet, set.Name)
}

func findFlashcardSets(m model.Model, c FindFlashcardSets) (Result, error) {
	m.UpdateFlashcardSetFilter(models.SetNameContainsKeywords(c.Keywords))
	return feedback(DomainFlashcards, MessageSetsListed, len(m.FilteredFlashcardSets()))
}

func listFlashcardSets(m model.Model) (Result, error) {
	m.UpdateFlashcardSetFilter(nil)
	return feedback(DomainFlashcards, MessageListFlashcardSets)
}

func viewFlashcardSet(m model.Model, c ViewFlashcardSet) (Result, error) {
	set, err := m.FlashcardSet(c.Index)
	if err != nil {
		return Result{}, err
	}
	m.SetFlashcardSetToView(set)

	var sb strings.Builder
	fmt.Fprintf(&sb, MessageViewFlashcardSet, set.Name)
	for i, card := range set.Cards() {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, card)
	}
	return Result{Feedback: sb.String(), Domain: DomainFlashcards}, nil
}

func addFlashcard(m model.Model, c AddFlashcard) (Result, error) {
	set, err := m.FlashcardSet(c.SetIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.AddFlashcard(set, c.Flashcard); err != nil {
		return Result{}, err
	}
	return mutated(DomainFlashcards, MessageAddFlashcard, set.Name, c.Flashcard)
}

func editFlashcard(m model.Model, c EditFlashcard) (Result, error) {
	set, err := m.FlashcardSet(c.SetIndex)
	if err != nil {
		return Result{}, err
	}
	target, err := set.Flashcard(c.CardIndex)
	if err != nil {
		return Result{}, err
	}
	edited := c.Edit.Apply(target)
	if err := m.SetFlashcard(set, target, edited); err != nil {
		return Result{}, err
	}
	return mutated(DomainFlashcards, MessageEditFlashcard, set.Name, edited)
}

func deleteFlashcard(m model.Model, c DeleteFlashcard) (Result, error) {
	set, err := m.FlashcardSet(c.SetIndex)
	if err != nil {
		return Result{}, err
	}
	target, err := set.Flashcard(c.CardIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteFlashcard(set, c.CardIndex); err != nil {
		return Result{}, err
	}
	return mutated(DomainFlashcards, MessageDeleteFlashcard, set.Name, target)
}
