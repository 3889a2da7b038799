package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"adminapi/internal/domain"
	"adminapi/internal/sqlinline"
)

type userDTO struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	IsVIP            bool       `json:"is_vip"`
	Balance          int64      `json:"balance"`
	SubscriptionPlan string     `json:"subscription_plan"`
	SubscriptionEnd  *time.Time `json:"subscription_end"`
	CreatedAt        time.Time  `json:"created_at"`
	LastLoginAt      *time.Time `json:"last_login_at"`
}

func newUserDTO(u domain.User) userDTO {
	return userDTO{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             string(u.Role),
		IsActive:         u.IsActive,
		IsVIP:            u.IsVIP,
		Balance:          u.Balance,
		SubscriptionPlan: u.SubscriptionPlan,
		SubscriptionEnd:  u.SubscriptionEnd,
		CreatedAt:        u.CreatedAt,
		LastLoginAt:      u.LastLoginAt,
	}
}

type userListItemDTO struct {
	userDTO
	PreviewCount  int64 `json:"preview_count"`
	DownloadCount int64 `json:"download_count"`
	LoginCount    int64 `json:"login_count"`
}

type paginationDTO struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type generationRecordDTO struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	TemplateName string     `json:"template_name"`
	Amount       int64      `json:"amount"`
	DurationMS   int        `json:"duration_ms"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type loginRecordDTO struct {
	ID             string     `json:"id"`
	Success        bool       `json:"success"`
	IP             string     `json:"ip"`
	Country        string     `json:"country,omitempty"`
	UserAgent      string     `json:"user_agent"`
	SessionSeconds int        `json:"session_seconds"`
	CreatedAt      time.Time  `json:"created_at"`
	LoggedOutAt    *time.Time `json:"logged_out_at"`
}

// userConditions builds the shared filter clause for the list and count
// queries.
func userConditions(r *http.Request) *sqlinline.Conditions {
	cond := sqlinline.NewConditions()
	from, to, hasFrom, hasTo := dateRange(r)
	if hasFrom {
		cond.Add("u.created_at >= $%d", from)
	}
	if hasTo {
		cond.Add("u.created_at < $%d", to)
	}
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		cond.Add("(u.username ilike $%[1]d or u.email ilike $%[1]d)", "%"+search+"%")
	}
	return cond
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &role, &u.IsActive, &u.IsVIP,
		&u.Balance, &u.SubscriptionPlan, &u.SubscriptionEnd, &u.CreatedAt, &u.LastLoginAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	cond := userConditions(r)

	var total int64
	countQuery := fmt.Sprintf(sqlinline.QCountUsers, cond.Where())
	if err := a.SQL.QueryRow(r.Context(), countQuery, cond.Args()...).Scan(&total); err != nil {
		a.Logger.Error().Err(err).Msg("count users failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	listQuery := fmt.Sprintf(sqlinline.QListUsers, cond.Where(), cond.Next(), cond.Next()+1)
	args := append(cond.Args(), limit, (page-1)*limit)
	rows, err := a.SQL.Query(r.Context(), listQuery, args...)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list users failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	defer rows.Close()

	users := []userListItemDTO{}
	for rows.Next() {
		var u domain.User
		var role string
		var previewCount, downloadCount, loginCount int64
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &role, &u.IsActive, &u.IsVIP,
			&u.Balance, &u.SubscriptionPlan, &u.SubscriptionEnd, &u.CreatedAt,
			&u.LastLoginAt, &previewCount, &downloadCount, &loginCount,
		); err != nil {
			a.Logger.Error().Err(err).Msg("scan user row failed")
			a.error(w, r, http.StatusInternalServerError, "internal")
			return
		}
		u.Role = domain.UserRole(role)
		users = append(users, userListItemDTO{
			userDTO:       newUserDTO(u),
			PreviewCount:  previewCount,
			DownloadCount: downloadCount,
			LoginCount:    loginCount,
		})
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("iterate user rows failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	pages := int64(0)
	if total > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	a.json(w, http.StatusOK, map[string]any{
		"users": users,
		"pagination": paginationDTO{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

func (a *App) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := scanUser(a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserByID, userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, r, http.StatusNotFound, "not_found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load user failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	previews, err := a.recentGenerations(r, userID, domain.GenerationKindPreview)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load preview records failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	downloads, err := a.recentGenerations(r, userID, domain.GenerationKindPaid)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load download records failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	logins, err := a.recentLogins(r, userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load login records failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"userInfo":        newUserDTO(*user),
		"previewRecords":  previews,
		"downloadRecords": downloads,
		"loginRecords":    logins,
	})
}

func (a *App) recentGenerations(r *http.Request, userID string, kind domain.GenerationKind) ([]generationRecordDTO, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QRecentGenerationsByUser, userID, string(kind), recentRecordLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []generationRecordDTO{}
	for rows.Next() {
		var g domain.Generation
		var rowKind string
		if err := rows.Scan(&g.ID, &rowKind, &g.Status, &g.TemplateName, &g.Amount, &g.DurationMS, &g.CreatedAt, &g.CompletedAt); err != nil {
			return nil, err
		}
		g.Kind = domain.GenerationKind(rowKind)
		records = append(records, generationRecordDTO{
			ID:           g.ID,
			Kind:         string(g.Kind),
			Status:       g.Status,
			TemplateName: g.TemplateName,
			Amount:       g.Amount,
			DurationMS:   g.DurationMS,
			CreatedAt:    g.CreatedAt,
			CompletedAt:  g.CompletedAt,
		})
	}
	return records, rows.Err()
}

func (a *App) recentLogins(r *http.Request, userID string) ([]loginRecordDTO, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QRecentLoginsByUser, userID, recentRecordLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []loginRecordDTO{}
	for rows.Next() {
		var l domain.LoginLog
		if err := rows.Scan(&l.ID, &l.Success, &l.IP, &l.UserAgent, &l.SessionSeconds, &l.CreatedAt, &l.LoggedOutAt); err != nil {
			return nil, err
		}
		rec := loginRecordDTO{
			ID:             l.ID,
			Success:        l.Success,
			IP:             l.IP,
			UserAgent:      l.UserAgent,
			SessionSeconds: l.SessionSeconds,
			CreatedAt:      l.CreatedAt,
			LoggedOutAt:    l.LoggedOutAt,
		}
		if a.Geo != nil && l.IP != "" {
			if country, err := a.Geo.CountryCode(l.IP); err == nil {
				rec.Country = country
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
