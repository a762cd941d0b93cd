package submitRSVP

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetPlanner/internal/lib/api/response"
	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/lib/sanitize"
	"meetPlanner/internal/models"
	"meetPlanner/internal/storage"
)

// Field length limits, in runes.
const (
	maxNameLen   = 150
	maxEmailLen  = 200
	maxPhoneLen  = 40
	maxStatusLen = 32
)

type FormRequest struct {
	Name   string `validate:"required"`
	Email  string
	Phone  string
	Status string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeSaver
type AttendeeSaver interface {
	CreateAttendee(eventID int, name, email, phone, status string) (int, error)
}

func New(log *slog.Logger, attendees AttendeeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.submitRSVP.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.PlainText(w, r, "Event not found")

			return
		}

		log = log.With(slog.Int("event_id", eventID))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "failed to parse form")

			return
		}

		req := FormRequest{
			Name:   sanitize.Text(r.PostFormValue("name"), maxNameLen),
			Email:  sanitize.Text(r.PostFormValue("email"), maxEmailLen),
			Phone:  sanitize.Text(r.PostFormValue("phone"), maxPhoneLen),
			Status: sanitize.Text(r.PostFormValue("status"), maxStatusLen),
		}

		// The form suggests fixed options, but the column stays free text.
		if req.Status == "" {
			req.Status = models.RSVPStatusAttending
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, response.ValidationError(validateErr))

			return
		}

		attendeeID, err := attendees.CreateAttendee(eventID, req.Name, req.Email, req.Phone, req.Status)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.PlainText(w, r, "Event not found")

				return
			}

			log.Error("failed to add attendee", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to add attendee")

			return
		}

		log.Info("attendee added", slog.Int("id", attendeeID))

		http.Redirect(w, r, fmt.Sprintf("/event/%d", eventID), http.StatusFound)
	}
}
