package listEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/models"
	"meetPlanner/internal/web"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, renderer *web.Renderer, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		all, err := events.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to get events")

			return
		}

		log.Info("events retrieved", slog.Int("count", len(all)))

		if err := renderer.Index(w, all); err != nil {
			log.Error("failed to render event list", sl.Err(err))
		}
	}
}
