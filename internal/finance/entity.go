// Package finance reads expense and income records from the Notion finance
// database. It is read-only.
package finance

import "time"

// Property is the name of a column in the finance database.
type Property string

const (
	PropertyName            Property = "Name"
	PropertyAmount          Property = "Amount"
	PropertyCategoryExpense Property = "Category (Expense)"
	PropertyCategoryIncome  Property = "Category (Income)"
	PropertyDate            Property = "Date"
	PropertyComment         Property = "Comment"
)

// ExpenseCategory is the category an expense falls under.
type ExpenseCategory string

const (
	ExpenseCategoryTransport     ExpenseCategory = "Transport"
	ExpenseCategoryEducation     ExpenseCategory = "Education"
	ExpenseCategorySubscription  ExpenseCategory = "Subscription"
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryFood          ExpenseCategory = "Food"
)

// IncomeCategory is the category an income falls under.
type IncomeCategory string

const (
	IncomeCategoryWork   IncomeCategory = "Work"
	IncomeCategoryParent IncomeCategory = "Parent"
	IncomeCategoryClaim  IncomeCategory = "Claim"
)

// DateRange is the optional start and end of a record's date property.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Expense is money spent. Amount is zero or negative.
type Expense struct {
	Name     string
	Amount   float64
	Date     DateRange
	Comment  string
	Category ExpenseCategory
}

// Income is money received. Amount is positive.
type Income struct {
	Name     string
	Amount   float64
	Date     DateRange
	Comment  string
	Category IncomeCategory
}

// Kind selects which side of the ledger to list.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// ParseKind validates a kind given on the command line.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindExpense, KindIncome:
		return k, true
	}
	return "", false
}
