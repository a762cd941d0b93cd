package createEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetPlanner/internal/lib/api/response"
	"meetPlanner/internal/lib/logger/sl"
	"meetPlanner/internal/lib/sanitize"
)

// Field length limits, in runes.
const (
	maxTitleLen       = 300
	maxDescriptionLen = 2000
	maxDateLen        = 32
	maxLocationLen    = 200
)

type FormRequest struct {
	Title       string `validate:"required"`
	Description string
	Date        string
	Location    string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	CreateEvent(title, description, date, location string) (int, error)
}

func New(log *slog.Logger, events EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "failed to parse form")

			return
		}

		req := FormRequest{
			Title:       sanitize.Text(r.PostFormValue("title"), maxTitleLen),
			Description: sanitize.Text(r.PostFormValue("description"), maxDescriptionLen),
			Date:        sanitize.Text(r.PostFormValue("date"), maxDateLen),
			Location:    sanitize.Text(r.PostFormValue("location"), maxLocationLen),
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, response.ValidationError(validateErr))

			return
		}

		eventID, err := events.CreateEvent(req.Title, req.Description, req.Date, req.Location)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.PlainText(w, r, "failed to add event")

			return
		}

		log.Info("event added", slog.Int("id", eventID))

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
