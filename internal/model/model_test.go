package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/studybananas/internal/config"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
)

func newManager() *model.Manager {
	return model.New(config.DefaultPrefs(""))
}

func TestManager_ContactsFilterAndReset(t *testing.T) {
	m := newManager()
	alice := models.NewContact("Alice", "123", "a@x.com", "A st", nil)
	bob := models.NewContact("Bob", "456", "b@x.com", "B st", nil)
	require.NoError(t, m.AddContact(alice))
	require.NoError(t, m.AddContact(bob))

	m.UpdateContactFilter(models.NameContainsKeywords([]string{"bob"}))
	assert.Equal(t, []models.Contact{bob}, m.FilteredContacts())
	assert.Len(t, m.Contacts(), 2)

	m.UpdateContactFilter(nil)
	assert.Len(t, m.FilteredContacts(), 2)

	m.ResetContacts([]models.Contact{bob})
	assert.False(t, m.HasContact(alice))
}

func TestManager_FlashcardSetResolvesAgainstFilteredView(t *testing.T) {
	m := newManager()
	require.NoError(t, m.AddFlashcardSet(models.NewFlashcardSet("Biology")))
	require.NoError(t, m.AddFlashcardSet(models.NewFlashcardSet("Chemistry")))

	m.UpdateFlashcardSetFilter(models.SetNameContainsKeywords([]string{"chemistry"}))
	set, err := m.FlashcardSet(models.IndexFromOneBased(1))
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", set.Name)

	_, err = m.FlashcardSet(models.IndexFromOneBased(2))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidIndex))
}

func TestManager_NestedFlashcards(t *testing.T) {
	m := newManager()
	set := models.NewFlashcardSet("Biology")
	require.NoError(t, m.AddFlashcardSet(set))

	card := models.Flashcard{Question: "q", Answer: "a"}
	require.NoError(t, m.AddFlashcard(set, card))
	require.NoError(t, m.SetFlashcard(set, card, models.Flashcard{Question: "q", Answer: "b"}))

	snap := m.FlashcardSets()
	require.Len(t, snap, 1)
	assert.Equal(t, "b", snap[0].Cards()[0].Answer)

	require.NoError(t, m.DeleteFlashcard(set, models.IndexFromOneBased(1)))
	assert.Equal(t, 0, set.Size())
	assert.Equal(t, 1, snap[0].Size(), "snapshots are detached")

	orphan := models.NewFlashcardSet("Physics")
	assert.True(t, errors.HasCode(m.AddFlashcard(orphan, card), errors.ErrCodeNotFound))
}

func TestManager_DeleteViewedSetClearsView(t *testing.T) {
	m := newManager()
	set := models.NewFlashcardSet("Biology")
	require.NoError(t, m.AddFlashcardSet(set))
	m.SetFlashcardSetToView(set)

	require.NoError(t, m.DeleteFlashcardSet(set))
	assert.Nil(t, m.FlashcardSetToView())
}

func TestManager_QuizActiveFollowsSession(t *testing.T) {
	m := newManager()
	set := models.NewFlashcardSet("Bio", models.Flashcard{Question: "q", Answer: "a"})
	require.NoError(t, m.AddFlashcardSet(set))
	assert.False(t, m.IsQuizActive())

	_, err := m.Quiz().Start(models.IndexFromOneBased(1), set)
	require.NoError(t, err)
	assert.True(t, m.IsQuizActive())

	require.NoError(t, m.Quiz().Cancel())
	assert.False(t, m.IsQuizActive())
}

func TestManager_GuiSettings(t *testing.T) {
	m := newManager()
	gui := config.GuiSettings{WindowWidth: 1, WindowHeight: 2}
	m.SetGuiSettings(gui)
	assert.Equal(t, gui, m.UserPrefs().Gui)
}
