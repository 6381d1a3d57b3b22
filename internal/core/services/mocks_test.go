package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, ownerID)
	var cat *domain.Category
	if args.Get(0) != nil {
		cat = args.Get(0).(*domain.Category)
	}
	return cat, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	var cats []domain.Category
	if args.Get(0) != nil {
		cats = args.Get(0).([]domain.Category)
	}
	return cats, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, ownerID string) error {
	args := m.Called(ctx, categoryID, ownerID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, ownerID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Error(0)
}

// --- Mock GoalRepository ---

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string, ownerID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, ownerID)
	var goal *domain.Goal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.Goal)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string, ownerID string) error {
	args := m.Called(ctx, goalID, ownerID)
	return args.Error(0)
}

// --- Mock NoteRepository ---

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindNoteByID(ctx context.Context, noteID string, ownerID string) (*domain.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	var note *domain.Note
	if args.Get(0) != nil {
		note = args.Get(0).(*domain.Note)
	}
	return note, args.Error(1)
}

func (m *MockNoteRepository) ListNotes(ctx context.Context, ownerID string, status *domain.NoteStatus) ([]domain.Note, error) {
	args := m.Called(ctx, ownerID, status)
	var notes []domain.Note
	if args.Get(0) != nil {
		notes = args.Get(0).([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note domain.Note, replaceBlocks bool) error {
	args := m.Called(ctx, note, replaceBlocks)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, noteID string, ownerID string) error {
	args := m.Called(ctx, noteID, ownerID)
	return args.Error(0)
}

// --- Mock ReminderRepository ---

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) FindReminderByID(ctx context.Context, reminderID string, ownerID string) (*domain.Reminder, error) {
	args := m.Called(ctx, reminderID, ownerID)
	var reminder *domain.Reminder
	if args.Get(0) != nil {
		reminder = args.Get(0).(*domain.Reminder)
	}
	return reminder, args.Error(1)
}

func (m *MockReminderRepository) ListReminders(ctx context.Context, ownerID string, status *domain.ReminderStatus) ([]domain.Reminder, error) {
	args := m.Called(ctx, ownerID, status)
	var reminders []domain.Reminder
	if args.Get(0) != nil {
		reminders = args.Get(0).([]domain.Reminder)
	}
	return reminders, args.Error(1)
}

func (m *MockReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) DeleteReminder(ctx context.Context, reminderID string, ownerID string) error {
	args := m.Called(ctx, reminderID, ownerID)
	return args.Error(0)
}

// --- Mock ActivityRepository ---

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRecentActivities(ctx context.Context, ownerID string, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, ownerID, limit)
	var activities []domain.Activity
	if args.Get(0) != nil {
		activities = args.Get(0).([]domain.Activity)
	}
	return activities, args.Error(1)
}

// --- Recorder spy ---

// recorderSpy captures Record calls synchronously so tests can assert the
// audit trail without a background worker.
type recorderSpy struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (r *recorderSpy) Record(ownerID string, activityType domain.ActivityType, action domain.ActivityAction, description string, metadata map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, domain.Activity{
		OwnerID:     ownerID,
		Type:        activityType,
		Action:      action,
		Description: description,
		Metadata:    metadata,
	})
}

func (r *recorderSpy) Close() {}

func (r *recorderSpy) recorded() []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Activity, len(r.entries))
	copy(out, r.entries)
	return out
}
