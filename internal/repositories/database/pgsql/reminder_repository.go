package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

type PgxReminderRepository struct {
	db *pgxpool.Pool
}

func newPgxReminderRepository(db *pgxpool.Pool) portsrepo.ReminderRepository {
	return &PgxReminderRepository{db: db}
}

var _ portsrepo.ReminderRepository = (*PgxReminderRepository)(nil)

const reminderColumns = `reminder_id, owner_id, title, description, due_date, priority, status, created_at, last_updated_at`

func scanReminder(row pgx.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	err := row.Scan(
		&rem.ReminderID,
		&rem.OwnerID,
		&rem.Title,
		&rem.Description,
		&rem.DueDate,
		&rem.Priority,
		&rem.Status,
		&rem.CreatedAt,
		&rem.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	query := `
        INSERT INTO reminders (reminder_id, owner_id, title, description, due_date, priority, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		reminder.ReminderID,
		reminder.OwnerID,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.Priority,
		reminder.Status,
		reminder.CreatedAt,
		reminder.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save reminder %s: %w", reminder.ReminderID, err)
	}
	return nil
}

func (r *PgxReminderRepository) FindReminderByID(ctx context.Context, reminderID string, ownerID string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE reminder_id = $1 AND owner_id = $2;`
	rem, err := scanReminder(r.db.QueryRow(ctx, query, reminderID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reminder by ID %s: %w", reminderID, err)
	}
	return rem, nil
}

// ListReminders returns reminders soonest-due first; ties break toward the
// higher priority.
func (r *PgxReminderRepository) ListReminders(ctx context.Context, ownerID string, status *domain.ReminderStatus) ([]domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE owner_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += `
        ORDER BY due_date ASC,
                 CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC;
    `

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []domain.Reminder{}
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		reminders = append(reminders, *rem)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reminder rows: %w", rows.Err())
	}
	return reminders, nil
}

func (r *PgxReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	query := `
        UPDATE reminders
        SET title = $1, description = $2, due_date = $3, priority = $4, status = $5, last_updated_at = $6
        WHERE reminder_id = $7 AND owner_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		reminder.Priority,
		reminder.Status,
		reminder.LastUpdatedAt,
		reminder.ReminderID,
		reminder.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", reminder.ReminderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, reminderID string, ownerID string) error {
	query := `DELETE FROM reminders WHERE reminder_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, reminderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
