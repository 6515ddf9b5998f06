package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date with no time component, pinned to UTC midnight.
	Date struct {
		time.Time
	}

	// Money is a currency-agnostic amount in cents.
	Money struct {
		Cents int64
	}

	// Expense is a single recorded spend. ID is assigned by the store on
	// creation; records are immutable afterwards (delete and re-create only).
	Expense struct {
		ID       int64
		Date     Date
		Amount   Money
		Category string
		Note     string
	}

	// Budget is the spending limit configured for one calendar month.
	// Absence of a budget is modeled by the store, never as a zero Budget.
	Budget struct {
		Amount Money
	}

	// Period is a calendar month used as the aggregation window.
	Period struct {
		Year  int
		Month time.Month
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrEmptyCategory     = errors.New("empty category")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrNoteTooLong       = errors.New("note too long (max 200 characters)")
)

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns m minus other. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Note) > 200 {
		return ErrNoteTooLong
	}
	return nil
}

func (b Budget) Validate() error {
	if b.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// PeriodOf returns the calendar month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) Validate() error {
	if p.Year < 1 || p.Month < time.January || p.Month > time.December {
		return ErrInvalidPeriod
	}
	return nil
}

// Start returns the first day of the month.
func (p Period) Start() Date {
	return NewDate(p.Year, p.Month, 1)
}

// End returns the last day of the month.
func (p Period) End() Date {
	return NewDate(p.Year, p.Month, p.Days())
}

// Days returns the number of days in the month.
func (p Period) Days() int {
	// Day zero of the next month is the last day of this one.
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether d falls within the month, boundaries inclusive.
func (p Period) Contains(d Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

// After reports whether p is strictly after other.
func (p Period) After(other Period) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	return p.Month > other.Month
}

// String formats the period as YYYY-MM, the key used by the store.
func (p Period) String() string {
	return p.Start().Format("2006-01")
}

// ParsePeriod parses a YYYY-MM period key.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return PeriodOf(t), nil
}
