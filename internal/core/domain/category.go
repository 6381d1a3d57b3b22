package domain

// CategoryType constrains which transactions may reference a category.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category is a user-managed label for transactions and spending goals.
type Category struct {
	CategoryID string       `json:"categoryID"`
	OwnerID    string       `json:"ownerID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Icon       string       `json:"icon"`
	Color      string       `json:"color"`
	AuditFields
}

// DefaultCategories is the fixed set seeded for every new user at
// registration: 4 income and 8 expense categories.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Type: CategoryIncome, Icon: "💼", Color: "#10b981"},
		{Name: "Freelance", Type: CategoryIncome, Icon: "💻", Color: "#3b82f6"},
		{Name: "Investment", Type: CategoryIncome, Icon: "📈", Color: "#8b5cf6"},
		{Name: "Other Income", Type: CategoryIncome, Icon: "💰", Color: "#06b6d4"},
		{Name: "Food", Type: CategoryExpense, Icon: "🍔", Color: "#ef4444"},
		{Name: "Transportation", Type: CategoryExpense, Icon: "🚗", Color: "#f59e0b"},
		{Name: "Shopping", Type: CategoryExpense, Icon: "🛍️", Color: "#ec4899"},
		{Name: "Entertainment", Type: CategoryExpense, Icon: "🎮", Color: "#a855f7"},
		{Name: "Bills", Type: CategoryExpense, Icon: "📄", Color: "#6366f1"},
		{Name: "Health", Type: CategoryExpense, Icon: "🏥", Color: "#14b8a6"},
		{Name: "Education", Type: CategoryExpense, Icon: "📚", Color: "#0ea5e9"},
		{Name: "Other Expense", Type: CategoryExpense, Icon: "💸", Color: "#64748b"},
	}
}
