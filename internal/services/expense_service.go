package services

import (
	"context"
	"fmt"
	"strings"

	"spendtrack/internal/core"
)

// ExpenseStore is the storage surface the expense service needs.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e core.Expense) (int64, error)
	ListExpenses(ctx context.Context) ([]core.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	CategoryExists(ctx context.Context, name string) (bool, error)
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
}

// ExpenseService orchestrates expense and category operations.
type ExpenseService struct {
	store ExpenseStore
}

func NewExpenseService(store ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense validates the expense, checks that its category is
// registered, and persists it. Returns the new row ID.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	ok, err := s.store.CategoryExists(ctx, e.Category)
	if err != nil {
		return 0, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrUnknownCategory, e.Category)
	}

	id, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("save expense: %w", err)
	}
	return id, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.store.ListExpenses(ctx)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	return s.store.DeleteExpense(ctx, id)
}

func (s *ExpenseService) ListCategories(ctx context.Context) ([]string, error) {
	return s.store.ListCategories(ctx)
}

func (s *ExpenseService) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.ErrEmptyCategory
	}
	return s.store.AddCategory(ctx, name)
}

func (s *ExpenseService) DeleteCategory(ctx context.Context, name string) error {
	return s.store.DeleteCategory(ctx, strings.TrimSpace(name))
}
