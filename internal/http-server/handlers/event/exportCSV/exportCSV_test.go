package exportCSV

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetPlanner/internal/http-server/handlers/event/exportCSV/mocks"
	"meetPlanner/internal/lib/logger/handlers/slogdiscard"
	"meetPlanner/internal/models"
	"meetPlanner/internal/storage"
)

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/export/event/"+id+"/csv", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestExportCSVHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Export with attendees", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewAttendeeProvider(t)
		mockProvider.On("GetEventWithAttendees", 3).Return(
			&models.Event{ID: 3, Title: "Reunion 2026"},
			[]models.Attendee{
				{Name: "Asha", RSVPStatus: "Maybe", CheckedIn: true},
				{Name: "Ben", Email: "ben@example.com", Phone: "555-0101", RSVPStatus: "Attending"},
			},
			nil,
		)

		handler := New(logger, mockProvider)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestWithID("3"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=event_3_attendees.csv",
			rr.Header().Get("Content-Disposition"))

		lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
		require.Len(t, lines, 3)

		assert.Equal(t, "Name,Email,Phone,RSVP,Checked In", lines[0])
		assert.Equal(t, "Asha,,,Maybe,1", lines[1])
		assert.Equal(t, "Ben,ben@example.com,555-0101,Attending,0", lines[2])
	})

	t.Run("Export with no attendees", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewAttendeeProvider(t)
		mockProvider.On("GetEventWithAttendees", 4).Return(
			&models.Event{ID: 4, Title: "Winter Meetup"}, []models.Attendee{}, nil)

		handler := New(logger, mockProvider)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestWithID("4"))

		assert.Equal(t, http.StatusOK, rr.Code)

		lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "Name,Email,Phone,RSVP,Checked In", lines[0])
	})

	t.Run("Fields with commas are quoted", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewAttendeeProvider(t)
		mockProvider.On("GetEventWithAttendees", 5).Return(
			&models.Event{ID: 5},
			[]models.Attendee{{Name: "Dar, Asha", RSVPStatus: "Attending"}},
			nil,
		)

		handler := New(logger, mockProvider)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestWithID("5"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Dar, Asha",,,Attending,0`)
	})

	t.Run("Event not found", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewAttendeeProvider(t)
		mockProvider.On("GetEventWithAttendees", 99).
			Return(nil, nil, storage.ErrEventNotFound)

		handler := New(logger, mockProvider)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestWithID("99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Event not found")
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewAttendeeProvider(t)

		handler := New(logger, mockProvider)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestWithID("abc"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
