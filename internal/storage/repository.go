package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spendtrack/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a keyed record does not exist.
var ErrNotFound = errors.New("not found")

const dateLayout = "2006-01-02"

// SQLiteRepository is the durable store for expenses, categories, budgets
// and settings. It is the only owner of expense records.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense inserts a validated expense and returns its assigned ID.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, amount_cents, category, note) VALUES (?, ?, ?, ?)`,
		e.Date.Format(dateLayout), e.Amount.Cents, e.Category, e.Note)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"date", e.Date.Format(dateLayout),
		"amount_cents", e.Amount.Cents,
		"category", e.Category)

	return id, nil
}

// ListExpenses returns all expenses ordered by date descending, newest first.
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount_cents, category, note FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// QueryExpenses returns expenses whose date falls in [from, to] inclusive,
// ordered by date then creation order.
func (r *SQLiteRepository) QueryExpenses(ctx context.Context, from, to core.Date) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount_cents, category, note FROM expenses
		 WHERE date BETWEEN ? AND ? ORDER BY date, id`,
		from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// DeleteExpense removes an expense by ID. Returns ErrNotFound when no row
// matches.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

func scanExpenses(rows *sql.Rows) ([]core.Expense, error) {
	var expenses []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			dateStr string
		)
		if err := rows.Scan(&e.ID, &dateStr, &e.Amount.Cents, &e.Category, &e.Note); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		t, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", dateStr, err)
		}
		e.Date = core.DateOf(t)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

// ListCategories returns all category names sorted alphabetically.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return names, nil
}

// CategoryExists reports whether name is currently registered.
func (r *SQLiteRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return true, nil
}

// AddCategory registers a new category name. A duplicate name fails with
// core.ErrDuplicateCategory.
func (r *SQLiteRepository) AddCategory(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return core.ErrDuplicateCategory
		}
		return fmt.Errorf("add category: %w", err)
	}

	slog.InfoContext(ctx, "Category added", "category", name)
	return nil
}

// DeleteCategory removes a category name. Expenses referencing it keep the
// stale name; they are never rewritten.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetBudget sets or replaces the budget for a month.
func (r *SQLiteRepository) SetBudget(ctx context.Context, period core.Period, amount core.Money) error {
	_, err := r.db.ExecContext(ctx,
		`REPLACE INTO budgets (month, amount_cents) VALUES (?, ?)`,
		period.String(), amount.Cents)
	if err != nil {
		return fmt.Errorf("set budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget set", "period", period.String(), "amount_cents", amount.Cents)
	return nil
}

// GetBudget returns the budget for a month. The boolean is false when no
// budget is configured; callers must not treat that as a zero budget.
func (r *SQLiteRepository) GetBudget(ctx context.Context, period core.Period) (core.Budget, bool, error) {
	var cents int64
	err := r.db.QueryRowContext(ctx,
		`SELECT amount_cents FROM budgets WHERE month = ?`, period.String()).Scan(&cents)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Budget{}, false, nil
	}
	if err != nil {
		return core.Budget{}, false, fmt.Errorf("get budget: %w", err)
	}
	return core.Budget{Amount: core.Money{Cents: cents}}, true, nil
}

// GetSetting retrieves a settings value; ErrNotFound when the key is absent.
func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores or replaces a settings value.
func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// CurrencySymbol returns the configured display symbol, defaulting to "$".
func (r *SQLiteRepository) CurrencySymbol(ctx context.Context) string {
	symbol, err := r.GetSetting(ctx, "currency_symbol")
	if err != nil {
		return "$"
	}
	return symbol
}
