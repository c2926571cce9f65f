package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/studybananas/internal/logger"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/repository"
)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Load(ctx context.Context) ([]*models.FlashcardSet, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("loading flashcard sets")

	cards, err := r.loadCards(ctx)
	if err != nil {
		log.Error("failed to load flashcards: %v", err)
		return nil, err
	}

	rows, err := queryBuilt(ctx, r.db, sqlBuilder.
		Select("id", "name").
		From("flashcard_sets").
		OrderBy("position"))
	if err != nil {
		log.Error("failed to query flashcard sets: %v", err)
		return nil, err
	}
	defer rows.Close()

	sets := []*models.FlashcardSet{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			log.Error("failed to scan flashcard set row: %v", err)
			return nil, err
		}
		sets = append(sets, models.NewFlashcardSet(name, cards[id]...))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("loaded %d flashcard sets", len(sets))
	return sets, nil
}

func (r *flashcardRepository) loadCards(ctx context.Context) (map[int64][]models.Flashcard, error) {
	rows, err := queryBuilt(ctx, r.db, sqlBuilder.
		Select("set_id", "question", "answer").
		From("flashcards").
		OrderBy("set_id", "position"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make(map[int64][]models.Flashcard)
	for rows.Next() {
		var id int64
		var c models.Flashcard
		if err := rows.Scan(&id, &c.Question, &c.Answer); err != nil {
			return nil, err
		}
		cards[id] = append(cards[id], c)
	}
	return cards, rows.Err()
}

func (r *flashcardRepository) Save(ctx context.Context, sets []*models.FlashcardSet) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("saving flashcard sets: count=%d", len(sets))

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := execBuilt(ctx, tx, sqlBuilder.Delete("flashcards")); err != nil {
			return err
		}
		if _, err := execBuilt(ctx, tx, sqlBuilder.Delete("flashcard_sets")); err != nil {
			return err
		}

		for pos, set := range sets {
			res, err := execBuilt(ctx, tx, sqlBuilder.
				Insert("flashcard_sets").
				Columns("position", "name").
				Values(pos, set.Name))
			if err != nil {
				return err
			}
			cards := set.Cards()
			if len(cards) == 0 {
				continue
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			insertCards := sqlBuilder.Insert("flashcards").Columns("set_id", "position", "question", "answer")
			for cardPos, c := range cards {
				insertCards = insertCards.Values(id, cardPos, c.Question, c.Answer)
			}
			if _, err := execBuilt(ctx, tx, insertCards); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to save flashcard sets: %v", err)
		return err
	}
	log.Debug("flashcard sets saved")
	return nil
}
