package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vytor/studybananas/internal/logger"
	"github.com/vytor/studybananas/internal/models"
	"github.com/vytor/studybananas/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository implementation
func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Load(ctx context.Context) ([]models.Task, error) {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("loading tasks")

	rows, err := queryBuilt(ctx, r.db, sqlBuilder.
		Select("title", "description", "date_time", "duration_minutes").
		From("tasks").
		OrderBy("position"))
	if err != nil {
		log.Error("failed to query tasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var (
			t           models.Task
			description sql.NullString
			dateTime    sql.NullString
			duration    sql.NullInt64
		)
		if err := rows.Scan(&t.Title, &description, &dateTime, &duration); err != nil {
			log.Error("failed to scan task row: %v", err)
			return nil, err
		}
		if description.Valid {
			t.Description = &description.String
		}
		if dateTime.Valid {
			at, err := time.ParseInLocation(models.DateTimeLayout, dateTime.String, time.Local)
			if err != nil {
				log.Error("stored task has invalid date_time=%q: %v", dateTime.String, err)
				return nil, fmt.Errorf("task %q: %w", t.Title, err)
			}
			t.DateTime = &at
		}
		if duration.Valid {
			d := time.Duration(duration.Int64) * time.Minute
			t.Duration = &d
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("loaded %d tasks", len(tasks))
	return tasks, nil
}

func (r *taskRepository) Save(ctx context.Context, tasks []models.Task) error {
	log := logger.FromContext(ctx).WithPrefix("task_repo")
	log.Debug("saving tasks: count=%d", len(tasks))

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := execBuilt(ctx, tx, sqlBuilder.Delete("tasks")); err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}

		insert := sqlBuilder.Insert("tasks").
			Columns("position", "title", "description", "date_time", "duration_minutes")
		for pos, t := range tasks {
			var dateTime sql.NullString
			if t.DateTime != nil {
				dateTime = sql.NullString{String: t.DateTime.Format(models.DateTimeLayout), Valid: true}
			}
			var duration sql.NullInt64
			if t.Duration != nil {
				duration = sql.NullInt64{Int64: int64(*t.Duration / time.Minute), Valid: true}
			}
			insert = insert.Values(pos, t.Title, nullString(t.Description), dateTime, duration)
		}
		_, err := execBuilt(ctx, tx, insert)
		return err
	})
	if err != nil {
		log.Error("failed to save tasks: %v", err)
		return err
	}
	log.Debug("tasks saved")
	return nil
}
