package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass them around as one unit.
type RepositoryProvider struct {
	UserRepo        UserRepository
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
	GoalRepo        GoalRepository
	NoteRepo        NoteRepository
	ReminderRepo    ReminderRepository
	ActivityRepo    ActivityRepository
}
