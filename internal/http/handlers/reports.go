package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"adminapi/internal/domain"
	"adminapi/internal/sqlinline"
)

type dailyRegistrationsDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type dailyLoginsDTO struct {
	Date        string `json:"date"`
	UniqueUsers int64  `json:"unique_users"`
	TotalLogins int64  `json:"total_logins"`
}

type onlineDurationDTO struct {
	Username     string `json:"username"`
	Date         string `json:"date"`
	TotalSeconds int64  `json:"total_seconds"`
	SessionCount int64  `json:"session_count"`
}

type overviewDTO struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveUsers    int64 `json:"active_users"`
	TotalPreviews  int64 `json:"total_previews"`
	TotalDownloads int64 `json:"total_downloads"`
	TotalLogins    int64 `json:"total_logins"`
}

func rangeConditions(r *http.Request, column string) *sqlinline.Conditions {
	cond := sqlinline.NewConditions()
	from, to, hasFrom, hasTo := dateRange(r)
	if hasFrom {
		cond.Add(column+" >= $%d", from)
	}
	if hasTo {
		cond.Add(column+" < $%d", to)
	}
	return cond
}

func (a *App) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	cond := rangeConditions(r, "u.created_at")
	query := fmt.Sprintf(sqlinline.QDailyRegistrations, cond.Where())
	rows, err := a.SQL.Query(r.Context(), query, cond.Args()...)
	if err != nil {
		a.Logger.Error().Err(err).Msg("registration report failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	defer rows.Close()

	series := []dailyRegistrationsDTO{}
	for rows.Next() {
		var b domain.DailyRegistrations
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			a.Logger.Error().Err(err).Msg("scan registration row failed")
			a.error(w, r, http.StatusInternalServerError, "internal")
			return
		}
		series = append(series, dailyRegistrationsDTO{Date: b.Date.Format(dateLayout), Count: b.Count})
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("iterate registration rows failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"registrations": series})
}

func (a *App) GetLogins(w http.ResponseWriter, r *http.Request) {
	cond := rangeConditions(r, "l.created_at")
	query := fmt.Sprintf(sqlinline.QDailyLogins, cond.And())
	rows, err := a.SQL.Query(r.Context(), query, cond.Args()...)
	if err != nil {
		a.Logger.Error().Err(err).Msg("login report failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	defer rows.Close()

	series := []dailyLoginsDTO{}
	for rows.Next() {
		var b domain.DailyLogins
		if err := rows.Scan(&b.Date, &b.UniqueUsers, &b.TotalLogins); err != nil {
			a.Logger.Error().Err(err).Msg("scan login row failed")
			a.error(w, r, http.StatusInternalServerError, "internal")
			return
		}
		series = append(series, dailyLoginsDTO{Date: b.Date.Format(dateLayout), UniqueUsers: b.UniqueUsers, TotalLogins: b.TotalLogins})
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("iterate login rows failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"logins": series})
}

func (a *App) GetOnlineDuration(w http.ResponseWriter, r *http.Request) {
	cond := rangeConditions(r, "l.created_at")
	if userID := strings.TrimSpace(r.URL.Query().Get("userId")); userID != "" {
		cond.Add("l.user_id = $%d::uuid", userID)
	}
	query := fmt.Sprintf(sqlinline.QOnlineDuration, cond.And())
	rows, err := a.SQL.Query(r.Context(), query, cond.Args()...)
	if err != nil {
		a.Logger.Error().Err(err).Msg("online duration report failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	defer rows.Close()

	series := []onlineDurationDTO{}
	for rows.Next() {
		var b domain.OnlineDuration
		if err := rows.Scan(&b.Username, &b.Date, &b.TotalSeconds, &b.SessionCount); err != nil {
			a.Logger.Error().Err(err).Msg("scan online duration row failed")
			a.error(w, r, http.StatusInternalServerError, "internal")
			return
		}
		series = append(series, onlineDurationDTO{
			Username:     b.Username,
			Date:         b.Date.Format(dateLayout),
			TotalSeconds: b.TotalSeconds,
			SessionCount: b.SessionCount,
		})
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("iterate online duration rows failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"onlineDuration": series})
}

func (a *App) GetOverview(w http.ResponseWriter, r *http.Request) {
	from, to, hasFrom, hasTo := dateRange(r)
	var fromArg, toArg *time.Time
	if hasFrom {
		fromArg = &from
	}
	if hasTo {
		toArg = &to
	}

	var o domain.Overview
	row := a.SQL.QueryRow(r.Context(), sqlinline.QOverview, fromArg, toArg)
	if err := row.Scan(&o.TotalUsers, &o.ActiveUsers, &o.TotalPreviews, &o.TotalDownloads, &o.TotalLogins); err != nil {
		a.Logger.Error().Err(err).Msg("overview report failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"overview": overviewDTO{
		TotalUsers:     o.TotalUsers,
		ActiveUsers:    o.ActiveUsers,
		TotalPreviews:  o.TotalPreviews,
		TotalDownloads: o.TotalDownloads,
		TotalLogins:    o.TotalLogins,
	}})
}
