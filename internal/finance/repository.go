package finance

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jomei/notionapi"
	"github.com/samber/lo"
)

const defaultPageSize = 100

// Querier runs a database query. notionapi.DatabaseService satisfies it.
type Querier interface {
	Query(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

// Repository lists finance records from one Notion database.
type Repository struct {
	querier Querier
	dbID    notionapi.DatabaseID
	logger  *slog.Logger
}

// NewRepository creates a repository for the database dbID.
func NewRepository(querier Querier, dbID notionapi.DatabaseID, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		querier: querier,
		dbID:    dbID,
		logger:  logger.With("component", "finance_repository", "database_id", string(dbID)),
	}
}

// ListExpenses returns every record whose amount is zero or negative.
func (r *Repository) ListExpenses(ctx context.Context) ([]Expense, error) {
	pages, err := r.allPages(ctx, amountFilter(notionapi.NumberFilterCondition{LessThanOrEqualTo: lo.ToPtr(0.0)}))
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, 0, len(pages))
	for _, page := range pages {
		e, err := MapToExpense(page)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// ListIncomes returns every record whose amount is positive.
func (r *Repository) ListIncomes(ctx context.Context) ([]Income, error) {
	pages, err := r.allPages(ctx, amountFilter(notionapi.NumberFilterCondition{GreaterThan: lo.ToPtr(0.0)}))
	if err != nil {
		return nil, err
	}

	incomes := make([]Income, 0, len(pages))
	for _, page := range pages {
		i, err := MapToIncome(page)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	return incomes, nil
}

// amountFilter restricts a query to rows whose Amount matches cond. Rows with
// an empty Amount never match.
func amountFilter(cond notionapi.NumberFilterCondition) notionapi.PropertyFilter {
	return notionapi.PropertyFilter{
		Property: string(PropertyAmount),
		Number:   &cond,
	}
}

// allPages runs the filtered query, follows its cursor until the results are
// exhausted and drops pages returned more than once.
func (r *Repository) allPages(ctx context.Context, filter notionapi.Filter) ([]notionapi.Page, error) {
	req := &notionapi.DatabaseQueryRequest{Filter: filter, PageSize: defaultPageSize}

	var results []notionapi.Page
	for batch := 1; ; batch++ {
		resp, err := r.querier.Query(ctx, r.dbID, req)
		if err != nil {
			return nil, fmt.Errorf("failed to query database %s: %w", r.dbID, err)
		}
		results = append(results, resp.Results...)
		r.logger.DebugContext(ctx, "Fetched finance batch", "batch", batch, "results", len(resp.Results))

		if !resp.HasMore {
			break
		}
		if resp.NextCursor == "" {
			return nil, fmt.Errorf("database %s: more results reported without a cursor", r.dbID)
		}
		req.StartCursor = resp.NextCursor
	}

	unique := lo.UniqBy(results, func(p notionapi.Page) notionapi.ObjectID { return p.ID })
	r.logger.InfoContext(ctx, "Fetched finance records", "count", len(unique))
	return unique, nil
}
