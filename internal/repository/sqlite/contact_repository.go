package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/studybananas/internal/logger"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new ContactRepository implementation
func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Load(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx).WithPrefix("contact_repo")
	log.Debug("loading contacts")

	tags, err := r.loadTags(ctx)
	if err != nil {
		log.Error("failed to load tags: %v", err)
		return nil, err
	}

	rows, err := queryBuilt(ctx, r.db, sqlBuilder.
		Select("id", "name", "phone", "email", "address").
		From("contacts").
		OrderBy("position"))
	if err != nil {
		log.Error("failed to query contacts: %v", err)
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var (
			id                          int64
			name, phone, email, address string
		)
		if err := rows.Scan(&id, &name, &phone, &email, &address); err != nil {
			log.Error("failed to scan contact row: %v", err)
			return nil, err
		}
		contacts = append(contacts, models.NewContact(name, phone, email, address, tags[id]))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("loaded %d contacts", len(contacts))
	return contacts, nil
}

func (r *contactRepository) loadTags(ctx context.Context) (map[int64][]string, error) {
	rows, err := queryBuilt(ctx, r.db, sqlBuilder.
		Select("contact_id", "tag").
		From("contact_tags").
		OrderBy("contact_id", "tag"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		tags[id] = append(tags[id], tag)
	}
	return tags, rows.Err()
}

func (r *contactRepository) Save(ctx context.Context, contacts []models.Contact) error {
	log := logger.FromContext(ctx).WithPrefix("contact_repo")
	log.Debug("saving contacts: count=%d", len(contacts))

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := execBuilt(ctx, tx, sqlBuilder.Delete("contact_tags")); err != nil {
			return err
		}
		if _, err := execBuilt(ctx, tx, sqlBuilder.Delete("contacts")); err != nil {
			return err
		}

		for pos, c := range contacts {
			res, err := execBuilt(ctx, tx, sqlBuilder.
				Insert("contacts").
				Columns("position", "name", "phone", "email", "address").
				Values(pos, c.Name, c.Phone, c.Email, c.Address))
			if err != nil {
				return err
			}
			if len(c.Tags) == 0 {
				continue
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			insertTags := sqlBuilder.Insert("contact_tags").Columns("contact_id", "tag")
			for _, tag := range models.TagSet(c.Tags) {
				insertTags = insertTags.Values(id, tag)
			}
			if _, err := execBuilt(ctx, tx, insertTags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to save contacts: %v", err)
		return err
	}
	log.Debug("contacts saved")
	return nil
}
