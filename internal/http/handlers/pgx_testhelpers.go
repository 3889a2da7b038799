package handlers

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SimpleRow adapts a scan function to pgx.Row for handler tests.
type SimpleRow struct {
	scan func(dest ...any) error
}

func NewSimpleRow(scanner func(dest ...any) error) SimpleRow {
	return SimpleRow{scan: scanner}
}

func (r SimpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// ValueRows is a pgx.Rows fake fed from literal row values.
type ValueRows struct {
	TestRowsBase
	rows [][]any
	idx  int
}

func NewValueRows(rows [][]any) *ValueRows {
	return &ValueRows{rows: rows}
}

func (v *ValueRows) Next() bool {
	if v.idx >= len(v.rows) {
		return false
	}
	v.idx++
	return true
}

func (v *ValueRows) Scan(dest ...any) error {
	if v.idx == 0 || v.idx > len(v.rows) {
		return pgx.ErrNoRows
	}
	row := v.rows[v.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan arity mismatch: %d dest, %d values", len(dest), len(row))
	}
	for i, src := range row {
		if err := assignValue(dest[i], src); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

func (v *ValueRows) Err() error { return nil }

func (v *ValueRows) Close() {}

func assignValue(dest, src any) error {
	switch d := dest.(type) {
	case *string:
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", src)
		}
		*d = s
	case *bool:
		b, ok := src.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", src)
		}
		*d = b
	case *int:
		switch s := src.(type) {
		case int:
			*d = s
		case int64:
			*d = int(s)
		default:
			return fmt.Errorf("expected int, got %T", src)
		}
	case *int64:
		switch s := src.(type) {
		case int:
			*d = int64(s)
		case int64:
			*d = s
		default:
			return fmt.Errorf("expected int64, got %T", src)
		}
	case *time.Time:
		t, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("expected time.Time, got %T", src)
		}
		*d = t
	case **time.Time:
		if src == nil {
			*d = nil
			return nil
		}
		t, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("expected time.Time, got %T", src)
		}
		v := t
		*d = &v
	default:
		return fmt.Errorf("unsupported destination %T", dest)
	}
	return nil
}

// TestRowsBase supplies the pgx.Rows methods the fakes never exercise.
type TestRowsBase struct{}

func (TestRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (TestRowsBase) Conn() *pgx.Conn { return nil }

func (TestRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (TestRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (TestRowsBase) RawValues() [][]byte { return nil }

var _ pgx.Rows = (*ValueRows)(nil)
