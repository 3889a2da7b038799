package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"adminapi/internal/sqlinline"
)

func TestGetRegistrationsSeries(t *testing.T) {
	var gotArgs []any
	sql := &fakeSQL{
		query: func(query string, args []any) (pgx.Rows, error) {
			if !sameQuery(query, sqlinline.QDailyRegistrations) {
				return nil, fmt.Errorf("unexpected query: %s", markerLine(query))
			}
			gotArgs = args
			return NewValueRows([][]any{
				{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), int64(4)},
				{time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), int64(7)},
			}), nil
		},
	}

	req := httptest.NewRequest("GET", "/admin/registrations?dateFrom=2024-03-01&dateTo=2024-03-02", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetRegistrations(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	if len(gotArgs) != 2 {
		t.Fatalf("expected two range args, got %#v", gotArgs)
	}
	// dateTo is inclusive: the bound passed to SQL is the next midnight
	to, ok := gotArgs[1].(time.Time)
	if !ok || !to.Equal(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("exclusive upper bound mismatch: %#v", gotArgs[1])
	}
	var payload struct {
		Registrations []dailyRegistrationsDTO `json:"registrations"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Registrations) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(payload.Registrations))
	}
	total := int64(0)
	for _, b := range payload.Registrations {
		if b.Count < 0 {
			t.Fatalf("negative count in bucket %+v", b)
		}
		total += b.Count
	}
	if total != 11 {
		t.Fatalf("series sum mismatch: got %d, want 11", total)
	}
	if payload.Registrations[0].Date != "2024-03-01" {
		t.Fatalf("date format mismatch: %q", payload.Registrations[0].Date)
	}
}

func TestGetRegistrationsIgnoresInvalidDates(t *testing.T) {
	sql := &fakeSQL{
		query: func(query string, args []any) (pgx.Rows, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("invalid dates should not bind args: %#v", args)
			}
			return NewValueRows(nil), nil
		},
	}

	req := httptest.NewRequest("GET", "/admin/registrations?dateFrom=yesterday&dateTo=03/02/2024", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetRegistrations(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
}

func TestGetLoginsSeries(t *testing.T) {
	sql := &fakeSQL{
		query: func(query string, args []any) (pgx.Rows, error) {
			if !sameQuery(query, sqlinline.QDailyLogins) {
				return nil, fmt.Errorf("unexpected query: %s", markerLine(query))
			}
			return NewValueRows([][]any{
				{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), int64(3), int64(9)},
			}), nil
		},
	}

	req := httptest.NewRequest("GET", "/admin/logins", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetLogins(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload struct {
		Logins []dailyLoginsDTO `json:"logins"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Logins) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(payload.Logins))
	}
	b := payload.Logins[0]
	if b.UniqueUsers != 3 || b.TotalLogins != 9 {
		t.Fatalf("bucket mismatch: %+v", b)
	}
	if b.UniqueUsers > b.TotalLogins {
		t.Fatalf("unique users cannot exceed total logins: %+v", b)
	}
}

func TestGetOnlineDurationFiltersByUser(t *testing.T) {
	var gotArgs []any
	sql := &fakeSQL{
		query: func(query string, args []any) (pgx.Rows, error) {
			if !sameQuery(query, sqlinline.QOnlineDuration) {
				return nil, fmt.Errorf("unexpected query: %s", markerLine(query))
			}
			gotArgs = args
			return NewValueRows([][]any{
				{"alice", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), int64(5400), int64(3)},
			}), nil
		},
	}

	req := httptest.NewRequest("GET", "/admin/online-duration?userId=11111111-2222-3333-4444-555555555555", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetOnlineDuration(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "11111111-2222-3333-4444-555555555555" {
		t.Fatalf("expected bound userId arg, got %#v", gotArgs)
	}
	var payload struct {
		OnlineDuration []onlineDurationDTO `json:"onlineDuration"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	got := payload.OnlineDuration[0]
	if got.Username != "alice" || got.TotalSeconds != 5400 || got.SessionCount != 3 {
		t.Fatalf("row mismatch: %+v", got)
	}
}

func TestGetOverview(t *testing.T) {
	var gotArgs []any
	sql := &fakeSQL{
		queryRow: func(query string, args []any) pgx.Row {
			if !sameQuery(query, sqlinline.QOverview) {
				t.Fatalf("unexpected QueryRow: %s", markerLine(query))
			}
			gotArgs = args
			return NewSimpleRow(func(dest ...any) error {
				counts := []int64{120, 37, 300, 84, 950}
				for i, c := range counts {
					*(dest[i].(*int64)) = c
				}
				return nil
			})
		},
	}

	req := httptest.NewRequest("GET", "/admin/overview?dateFrom=2024-01-01", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetOverview(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	if len(gotArgs) != 2 {
		t.Fatalf("expected from/to args, got %#v", gotArgs)
	}
	if gotArgs[0].(*time.Time) == nil || gotArgs[1].(*time.Time) != nil {
		t.Fatalf("expected open upper bound, got %#v", gotArgs)
	}
	var payload struct {
		Overview overviewDTO `json:"overview"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	o := payload.Overview
	if o.TotalUsers != 120 || o.ActiveUsers != 37 || o.TotalPreviews != 300 || o.TotalDownloads != 84 || o.TotalLogins != 950 {
		t.Fatalf("overview mismatch: %+v", o)
	}
	if o.ActiveUsers > o.TotalUsers {
		t.Fatalf("active users cannot exceed total users: %+v", o)
	}
}

func TestGetOverviewFailureIs500(t *testing.T) {
	sql := &fakeSQL{
		queryRow: func(query string, args []any) pgx.Row {
			return NewSimpleRow(func(dest ...any) error {
				return fmt.Errorf("connection reset")
			})
		},
	}

	req := httptest.NewRequest("GET", "/admin/overview", nil)
	rr := httptest.NewRecorder()
	testApp(sql).GetOverview(rr, req)

	if rr.Code != 500 {
		t.Fatalf("unexpected status code: got %d, want 500", rr.Code)
	}
}
