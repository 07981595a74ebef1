package finance

import (
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/edgard/ledgerbot/internal/notion"
)

// record holds the columns shared by expenses and incomes.
type record struct {
	name    string
	amount  float64
	date    DateRange
	comment string
}

func mapRecord(page notionapi.Page) (record, error) {
	var r record

	name, ok := page.Properties[string(PropertyName)].(*notionapi.TitleProperty)
	if !ok {
		return r, propertyError(page, PropertyName, "TitleProperty")
	}
	r.name = notion.PlainText(name.Title)

	amount, ok := page.Properties[string(PropertyAmount)].(*notionapi.NumberProperty)
	if !ok {
		return r, propertyError(page, PropertyAmount, "NumberProperty")
	}
	r.amount = amount.Number

	date, ok := page.Properties[string(PropertyDate)].(*notionapi.DateProperty)
	if !ok {
		return r, propertyError(page, PropertyDate, "DateProperty")
	}
	if date.Date != nil {
		r.date.Start = (*time.Time)(date.Date.Start)
		r.date.End = (*time.Time)(date.Date.End)
	}

	comment, ok := page.Properties[string(PropertyComment)].(*notionapi.RichTextProperty)
	if !ok {
		return r, propertyError(page, PropertyComment, "RichTextProperty")
	}
	r.comment = notion.PlainText(comment.RichText)

	return r, nil
}

func selectName(page notionapi.Page, prop Property) (string, error) {
	category, ok := page.Properties[string(prop)].(*notionapi.SelectProperty)
	if !ok {
		return "", propertyError(page, prop, "SelectProperty")
	}
	return category.Select.Name, nil
}

func propertyError(page notionapi.Page, prop Property, want string) error {
	return fmt.Errorf("page %s: property %q is missing or not a %s", page.ID, prop, want)
}

// MapToExpense maps a finance page to an expense.
func MapToExpense(page notionapi.Page) (Expense, error) {
	r, err := mapRecord(page)
	if err != nil {
		return Expense{}, err
	}
	category, err := selectName(page, PropertyCategoryExpense)
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		Name:     r.name,
		Amount:   r.amount,
		Date:     r.date,
		Comment:  r.comment,
		Category: ExpenseCategory(category),
	}, nil
}

// MapToIncome maps a finance page to an income.
func MapToIncome(page notionapi.Page) (Income, error) {
	r, err := mapRecord(page)
	if err != nil {
		return Income{}, err
	}
	category, err := selectName(page, PropertyCategoryIncome)
	if err != nil {
		return Income{}, err
	}
	return Income{
		Name:     r.name,
		Amount:   r.amount,
		Date:     r.date,
		Comment:  r.comment,
		Category: IncomeCategory(category),
	}, nil
}
