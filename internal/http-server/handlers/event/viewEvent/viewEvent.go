package viewEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/models"
	"meetPlanner/internal/storage"
	"meetPlanner/internal/web"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	GetEventWithAttendees(eventID int) (*models.Event, []models.Attendee, error)
}

func New(log *slog.Logger, renderer *web.Renderer, events EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.viewEvent.New"

		log = log.With(slog.String("op", op))

		// Non-numeric ids are unroutable, same as the not-found case.
		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.PlainText(w, r, "Event not found")

			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, attendees, err := events.GetEventWithAttendees(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, "Event not found")

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to get event")

			return
		}

		log.Info("event retrieved", slog.Int("attendees", len(attendees)))

		if err := renderer.Event(w, event, attendees); err != nil {
			log.Error("failed to render event page", sl.Err(err))
		}
	}
}
