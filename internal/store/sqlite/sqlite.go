// Package sqlite persists the batch orchestrator's output: the benefit and
// discount records a payroll run computes, plus the append-only salary
// history. Uses WAL mode; schema is migrated on open.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/folhabr/payroll-calculator/internal/domain"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

// Store persists benefit records and salary history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Benefit/discount records, one row per employee and statutory figure
	-- per reference month. Append-only.
	CREATE TABLE IF NOT EXISTS benefit_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		value TEXT NOT NULL,
		reference_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_benefit_records_employee
		ON benefit_records(employee_id, reference_date);
	CREATE INDEX IF NOT EXISTS idx_benefit_records_reference
		ON benefit_records(reference_date);

	-- Salary history. Append-only; a row is written only when the amount
	-- actually changed.
	CREATE TABLE IF NOT EXISTS salary_history (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		effective_date TEXT NOT NULL,
		amount TEXT NOT NULL,
		reason TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_salary_history_employee
		ON salary_history(employee_id, effective_date DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveBenefitRecords persists a batch of records in one transaction,
// assigning identifiers and creation timestamps.
func (s *Store) SaveBenefitRecords(records []domain.BenefitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO benefit_records (id, employee_id, type, category, value, reference_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range records {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := stmt.Exec(id, r.EmployeeID, string(r.Type), string(r.Category),
			r.Value.String(), r.ReferenceDate.UTC().Format("2006-01-02"), now.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert record for %s: %w", r.EmployeeID, err)
		}
	}

	return tx.Commit()
}

// ListBenefitRecords returns every record of one employee, newest reference
// month first.
func (s *Store) ListBenefitRecords(employeeID string) ([]domain.BenefitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, employee_id, type, category, value, reference_date, created_at
		FROM benefit_records
		WHERE employee_id = ?
		ORDER BY reference_date DESC, type`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	return scanBenefitRecords(rows)
}

// ListBenefitRecordsByReference returns every record of one reference month.
func (s *Store) ListBenefitRecordsByReference(referenceDate time.Time) ([]domain.BenefitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, employee_id, type, category, value, reference_date, created_at
		FROM benefit_records
		WHERE reference_date = ?
		ORDER BY employee_id, type`, referenceDate.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	return scanBenefitRecords(rows)
}

// RecordSalaryChange appends a salary history entry unless the amount equals
// the employee's latest recorded salary. Returns true when a row was
// written. This keeps the history append-only and change-triggered.
func (s *Store) RecordSalaryChange(employeeID string, effectiveDate time.Time, amount money.Money, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest string
	err := s.db.QueryRow(`
		SELECT amount FROM salary_history
		WHERE employee_id = ?
		ORDER BY effective_date DESC, created_at DESC
		LIMIT 1`, employeeID).Scan(&latest)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to query latest salary: %w", err)
	}
	if err == nil {
		previous, perr := money.NewFromString(latest)
		if perr == nil && previous.Equal(amount) {
			return false, nil
		}
	}

	_, err = s.db.Exec(`
		INSERT INTO salary_history (id, employee_id, effective_date, amount, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), employeeID, effectiveDate.UTC().Format("2006-01-02"),
		amount.String(), reason, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("failed to insert salary history: %w", err)
	}
	return true, nil
}

// SalaryHistory returns an employee's salary history, oldest first.
func (s *Store) SalaryHistory(employeeID string) ([]domain.SalaryHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, employee_id, effective_date, amount, reason
		FROM salary_history
		WHERE employee_id = ?
		ORDER BY effective_date, created_at`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary history: %w", err)
	}
	defer rows.Close()

	var entries []domain.SalaryHistoryEntry
	for rows.Next() {
		var entry domain.SalaryHistoryEntry
		var effective, amount string
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &effective, &amount, &entry.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan salary history: %w", err)
		}
		entry.EffectiveDate, err = time.Parse("2006-01-02", effective)
		if err != nil {
			return nil, fmt.Errorf("failed to parse effective date: %w", err)
		}
		entry.Amount, err = money.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanBenefitRecords(rows *sql.Rows) ([]domain.BenefitRecord, error) {
	var records []domain.BenefitRecord
	for rows.Next() {
		var r domain.BenefitRecord
		var typ, category, value, reference, created string
		if err := rows.Scan(&r.ID, &r.EmployeeID, &typ, &category, &value, &reference, &created); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Type = domain.BenefitType(typ)
		r.Category = domain.BenefitCategory(category)

		var err error
		r.Value, err = money.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value: %w", err)
		}
		r.ReferenceDate, err = time.Parse("2006-01-02", reference)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reference date: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created at: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
