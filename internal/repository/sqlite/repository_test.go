package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/studybananas/internal/db"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/repository"
	"github.com/vytor/studybananas/internal/repository/sqlite"
	"github.com/vytor/studybananas/internal/testutil"
)

type ContactRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ContactRepository
}

func (s *ContactRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T(), db.SchemaContacts)
	s.repo = sqlite.NewContactRepository(s.db)
}

func (s *ContactRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ContactRepositorySuite) TestLoadEmpty() {
	contacts, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(contacts)
	s.NotNil(contacts)
}

func (s *ContactRepositorySuite) TestSaveAndLoadKeepsOrderAndTags() {
	ctx := context.Background()
	want := []models.Contact{
		models.NewContact("Zed", "999", "zed@example.com", "1 Road", []string{"friends", "cs"}),
		models.NewContact("Amy", "123", "amy@example.com", "2 Street", nil),
	}
	s.Require().NoError(s.repo.Save(ctx, want))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Zed", got[0].Name)
	s.Equal([]string{"cs", "friends"}, got[0].Tags)
	s.Equal("Amy", got[1].Name)
	s.Empty(got[1].Tags)
}

func (s *ContactRepositorySuite) TestSaveReplacesSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, []models.Contact{
		models.NewContact("Amy", "123", "amy@example.com", "2 Street", []string{"x"}),
	}))
	s.Require().NoError(s.repo.Save(ctx, []models.Contact{}))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Empty(got)

	var tags int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_tags`).Scan(&tags))
	s.Zero(tags)
}

func TestContactRepositorySuite(t *testing.T) {
	suite.Run(t, new(ContactRepositorySuite))
}

type TaskRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.TaskRepository
}

func (s *TaskRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T(), db.SchemaSchedule)
	s.repo = sqlite.NewTaskRepository(s.db)
}

func (s *TaskRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *TaskRepositorySuite) TestSaveAndLoadOptionalFields() {
	ctx := context.Background()
	desc := "chapter 3"
	at := time.Date(2024, 3, 1, 14, 30, 0, 0, time.Local)
	dur := 90 * time.Minute
	want := []models.Task{
		{Title: "Read", Description: &desc, DateTime: &at, Duration: &dur},
		{Title: "Nap"},
	}
	s.Require().NoError(s.repo.Save(ctx, want))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.True(got[0].Equal(want[0]), "got %v", got[0])
	s.True(got[1].Equal(want[1]), "got %v", got[1])
	s.Nil(got[1].Description)
	s.Nil(got[1].DateTime)
	s.Nil(got[1].Duration)
}

func (s *TaskRepositorySuite) TestLoadRejectsCorruptDateTime() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (position, title, date_time) VALUES (?, ?, ?)`, 0, "Bad", "yesterday")
	s.Require().NoError(err)

	_, err = s.repo.Load(ctx)
	s.Error(err)
}

func TestTaskRepositorySuite(t *testing.T) {
	suite.Run(t, new(TaskRepositorySuite))
}

type FlashcardRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.FlashcardRepository
}

func (s *FlashcardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T(), db.SchemaFlashcards)
	s.repo = sqlite.NewFlashcardRepository(s.db)
}

func (s *FlashcardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *FlashcardRepositorySuite) TestSaveAndLoadSetsWithCards() {
	ctx := context.Background()
	want := []*models.FlashcardSet{
		models.NewFlashcardSet("Biology",
			models.Flashcard{Question: "Powerhouse of the cell?", Answer: "Mitochondria"},
			models.Flashcard{Question: "DNA shape?", Answer: "Double helix"},
		),
		models.NewFlashcardSet("Empty"),
	}
	s.Require().NoError(s.repo.Save(ctx, want))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Biology", got[0].Name)
	s.Equal(want[0].Cards(), got[0].Cards())
	s.Equal("Empty", got[1].Name)
	s.Zero(got[1].Size())
}

func (s *FlashcardRepositorySuite) TestSaveReplacesSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, []*models.FlashcardSet{
		models.NewFlashcardSet("Old", models.Flashcard{Question: "q", Answer: "a"}),
	}))
	s.Require().NoError(s.repo.Save(ctx, []*models.FlashcardSet{models.NewFlashcardSet("New")}))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("New", got[0].Name)

	var cards int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flashcards`).Scan(&cards))
	s.Zero(cards)
}

func TestFlashcardRepositorySuite(t *testing.T) {
	suite.Run(t, new(FlashcardRepositorySuite))
}
