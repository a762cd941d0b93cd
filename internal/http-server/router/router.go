// Package router assembles the HTTP surface shared by main and the
// end-to-end tests.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meetPlanner/internal/http-server/handlers/attendee/toggleCheckin"
	"meetPlanner/internal/http-server/handlers/event/createEvent"
	"meetPlanner/internal/http-server/handlers/event/exportCSV"
	"meetPlanner/internal/http-server/handlers/event/listEvents"
	"meetPlanner/internal/http-server/handlers/event/newEventForm"
	"meetPlanner/internal/http-server/handlers/event/submitRSVP"
	"meetPlanner/internal/http-server/handlers/event/viewEvent"
	"meetPlanner/internal/http-server/handlers/initDB"
	"meetPlanner/internal/http-server/middleware/mwlogger"
	"meetPlanner/internal/storage/sqldb"
	"meetPlanner/internal/web"
)

// New wires every route to the shared storage and renderer. staticDir is
// served under /static/ straight from disk; the background image lives there.
func New(log *slog.Logger, storage *sqldb.Storage, renderer *web.Renderer, staticDir string) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(staticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", listEvents.New(log, renderer, storage))
	router.Get("/init_db", initDB.New(log, storage))
	router.Get("/event/new", newEventForm.New(log, renderer))
	router.Post("/event/new", createEvent.New(log, storage))
	router.Get("/event/{id}", viewEvent.New(log, renderer, storage))
	router.Post("/event/{id}/rsvp", submitRSVP.New(log, storage))
	router.Get("/attendee/{id}/toggle_checkin", toggleCheckin.New(log, storage))
	router.Get("/export/event/{id}/csv", exportCSV.New(log, storage))

	return router
}
