package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestContact_EqualIgnoresTagOrder(t *testing.T) {
	a := models.NewContact("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West", []string{"friends", "classmates"})
	b := models.NewContact("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West", []string{"classmates", "friends", "friends"})

	assert.True(t, a.Equal(b))
	assert.Equal(t, []string{"classmates", "friends"}, b.Tags)

	c := b
	c.Phone = "999"
	assert.False(t, a.Equal(c))
}

func TestContactEdit_Apply(t *testing.T) {
	orig := models.NewContact("Bob", "123", "bob@example.com", "Street 1", []string{"owes"})

	edit := models.ContactEdit{Phone: ptr("456"), Tags: ptr([]string{})}
	require.True(t, edit.IsAnyFieldEdited())

	got := edit.Apply(orig)
	assert.Equal(t, "456", got.Phone)
	assert.Empty(t, got.Tags)
	assert.Equal(t, "Bob", got.Name)
	assert.Equal(t, []string{"owes"}, orig.Tags, "apply must not mutate the original")

	assert.False(t, models.ContactEdit{}.IsAnyFieldEdited())
}

func TestTask_Equal(t *testing.T) {
	at := time.Date(2024, 5, 1, 14, 0, 0, 0, time.Local)
	a := models.Task{Title: "read", DateTime: &at, Duration: ptr(30 * time.Minute)}
	b := models.Task{Title: "read", DateTime: ptr(at), Duration: ptr(30 * time.Minute)}
	assert.True(t, a.Equal(b))

	b.Description = ptr("chapter 3")
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(models.Task{Title: "read"}))
}

func TestTaskEdit_Apply(t *testing.T) {
	orig := models.Task{Title: "read", Description: ptr("old")}
	got := models.TaskEdit{Description: ptr("new")}.Apply(orig)

	assert.Equal(t, "read", got.Title)
	assert.Equal(t, "new", *got.Description)
	assert.Equal(t, "old", *orig.Description)
}

func TestIndex(t *testing.T) {
	i := models.IndexFromOneBased(2)
	assert.Equal(t, 1, i.ZeroBased())
	assert.Equal(t, 2, i.OneBased())
	assert.True(t, i.InRange(2))
	assert.False(t, i.InRange(1))
	assert.False(t, models.IndexFromZeroBased(-1).InRange(3))
}

func TestFlashcardSet_NestedOperations(t *testing.T) {
	set := models.NewFlashcardSet("Biology")
	assert.Equal(t, 0, set.Size())

	cell := models.Flashcard{Question: "Unit of life?", Answer: "Cell"}
	dna := models.Flashcard{Question: "Genetic material?", Answer: "DNA"}
	require.NoError(t, set.AddFlashcard(cell))
	require.NoError(t, set.AddFlashcard(dna))
	assert.True(t, errors.HasCode(set.AddFlashcard(cell), errors.ErrCodeDuplicate))

	rna := models.Flashcard{Question: "Genetic material?", Answer: "DNA or RNA"}
	require.NoError(t, set.SetFlashcard(dna, rna))
	got, err := set.Flashcard(models.IndexFromOneBased(2))
	require.NoError(t, err)
	assert.Equal(t, rna, got)

	_, err = set.Flashcard(models.IndexFromOneBased(3))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidIndex))

	require.NoError(t, set.DeleteFlashcard(models.IndexFromOneBased(1)))
	assert.Equal(t, []models.Flashcard{rna}, set.Cards())
	assert.True(t, errors.HasCode(set.DeleteFlashcard(models.IndexFromOneBased(5)), errors.ErrCodeInvalidIndex))
}

func TestFlashcardSet_CloneIsDeep(t *testing.T) {
	set := models.NewFlashcardSet("Bio", models.Flashcard{Question: "q", Answer: "a"})
	clone := set.Clone()
	require.NoError(t, clone.AddFlashcard(models.Flashcard{Question: "q2", Answer: "a2"}))

	assert.Equal(t, 1, set.Size())
	assert.Equal(t, 2, clone.Size())
	assert.True(t, set.Equal(clone))
}

func TestPredicates(t *testing.T) {
	alice := models.NewContact("Alice Pauline", "1", "a@b.co", "x", nil)
	assert.True(t, models.NameContainsKeywords([]string{"alice"})(alice))
	assert.True(t, models.NameContainsKeywords([]string{"bob", "PAULINE"})(alice))
	assert.False(t, models.NameContainsKeywords([]string{"Ali"})(alice))
	assert.False(t, models.NameContainsKeywords(nil)(alice))

	task := models.Task{Title: "CS2103 tutorial", Description: ptr("prepare slides")}
	assert.True(t, models.TaskContainsKeywords([]string{"slides"})(task))
	assert.True(t, models.TaskContainsKeywords([]string{"cs2103"})(task))
	assert.False(t, models.TaskContainsKeywords([]string{"lecture"})(task))

	set := models.NewFlashcardSet("Organic Chemistry")
	assert.True(t, models.SetNameContainsKeywords([]string{"chemistry"})(set))
}
