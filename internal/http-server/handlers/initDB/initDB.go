package initDB

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetPlanner/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SchemaInitializer
type SchemaInitializer interface {
	CreateSchema() error
}

// New exposes idempotent schema creation over HTTP. The same initializer
// also runs at startup.
func New(log *slog.Logger, schema SchemaInitializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.initDB.New"

		log = log.With(slog.String("op", op))

		if err := schema.CreateSchema(); err != nil {
			log.Error("failed to initialize database", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to initialize database")

			return
		}

		log.Info("database initialized")

		render.PlainText(w, r, "Database initialized successfully! Visit / to go home.")
	}
}
