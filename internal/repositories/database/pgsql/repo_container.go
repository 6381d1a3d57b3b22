package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		CategoryRepo:    newPgxCategoryRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		GoalRepo:        newPgxGoalRepository(pool),
		NoteRepo:        newPgxNoteRepository(pool),
		ReminderRepo:    newPgxReminderRepository(pool),
		ActivityRepo:    newPgxActivityRepository(pool),
	}
}
