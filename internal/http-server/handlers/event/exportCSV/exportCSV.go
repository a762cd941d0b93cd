// Package exportCSV streams one event's attendee list as a CSV attachment.
package exportCSV

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/models"
	"meetPlanner/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeProvider
type AttendeeProvider interface {
	GetEventWithAttendees(eventID int) (*models.Event, []models.Attendee, error)
}

func New(log *slog.Logger, events AttendeeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportCSV.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.PlainText(w, r, "Event not found")

			return
		}

		log = log.With(slog.Int("event_id", eventID))

		_, attendees, err := events.GetEventWithAttendees(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, "Event not found")

				return
			}

			log.Error("failed to get attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to export attendees")

			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=event_%d_attendees.csv", eventID))

		cw := csv.NewWriter(w)

		records := [][]string{{"Name", "Email", "Phone", "RSVP", "Checked In"}}
		for _, a := range attendees {
			records = append(records, []string{
				a.Name, a.Email, a.Phone, a.RSVPStatus, checkedInField(a.CheckedIn),
			})
		}

		if err := cw.WriteAll(records); err != nil {
			log.Error("failed to write csv", sl.Err(err))

			return
		}

		log.Info("attendees exported", slog.Int("count", len(attendees)))
	}
}

// checkedInField renders the flag the way the export format expects: the
// literal integers 0 or 1.
func checkedInField(checkedIn bool) string {
	if checkedIn {
		return "1"
	}

	return "0"
}
