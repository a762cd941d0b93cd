package newEventForm

import (
	"log/slog"
	"net/http"

	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/web"
)

// New renders the event creation form.
func New(log *slog.Logger, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.newEventForm.New"

		log = log.With(slog.String("op", op))

		if err := renderer.NewEvent(w); err != nil {
			log.Error("failed to render event form", sl.Err(err))
		}
	}
}
