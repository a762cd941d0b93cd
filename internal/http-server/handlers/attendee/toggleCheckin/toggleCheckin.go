package toggleCheckin

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckInToggler
type CheckInToggler interface {
	// ToggleCheckIn flips the flag and returns the owning event id and the
	// new flag value.
	ToggleCheckIn(attendeeID int) (int, bool, error)
}

func New(log *slog.Logger, attendees CheckInToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.toggleCheckin.New"

		log = log.With(slog.String("op", op))

		attendeeID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid attendee id", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.PlainText(w, r, "Not found")

			return
		}

		log = log.With(slog.Int("attendee_id", attendeeID))

		eventID, checkedIn, err := attendees.ToggleCheckIn(attendeeID)
		if err != nil {
			if errors.Is(err, storage.ErrAttendeeNotFound) {
				log.Info("attendee not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, "Not found")

				return
			}

			log.Error("failed to toggle check-in", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to toggle check-in")

			return
		}

		log.Info("check-in toggled", slog.Bool("checked_in", checkedIn))

		http.Redirect(w, r, fmt.Sprintf("/event/%d", eventID), http.StatusFound)
	}
}
