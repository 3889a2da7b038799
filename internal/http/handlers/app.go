package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"adminapi/internal/infra"
	"adminapi/internal/infra/geoip"
	"adminapi/internal/middleware"
)

// App bundles the dependencies shared by the report handlers. The SQL
// executor is injected so tests can swap in fakes without a database.
type App struct {
	SQL    infra.SQLExecutor
	Logger zerolog.Logger
	Geo    geoip.CountryResolver
}

func NewApp(sql infra.SQLExecutor, logger zerolog.Logger, geo geoip.CountryResolver) *App {
	return &App{SQL: sql, Logger: logger, Geo: geo}
}

// messages holds the per-locale client-facing error strings. Clients only
// ever see these fixed messages; error detail stays in the server log.
var messages = map[string]map[string]string{
	"en": {
		"internal":  "internal server error",
		"not_found": "user not found",
	},
	"id": {
		"internal":  "terjadi kesalahan pada server",
		"not_found": "pengguna tidak ditemukan",
	},
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, r *http.Request, code int, kind string) {
	locale := middleware.LocaleFromContext(r.Context())
	catalog, ok := messages[locale]
	if !ok {
		catalog = messages["en"]
	}
	msg, ok := catalog[kind]
	if !ok {
		msg = messages["en"]["internal"]
	}
	a.json(w, code, map[string]any{"error": kind, "message": msg})
}
