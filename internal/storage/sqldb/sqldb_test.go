package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetPlanner/internal/config"
	"meetPlanner/internal/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := InitDB(&config.Storage{
		Driver: "sqlite3",
		Path:   ":memory:",
	})
	require.NoError(t, err)

	// Every pooled connection gets its own :memory: database.
	s.DB.SetMaxOpenConns(1)

	require.NoError(t, s.CreateSchema())

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	s := setupTestStorage(t)

	require.NoError(t, s.CreateSchema())
	require.NoError(t, s.CreateSchema())
}

func TestCreateAndGetEvent(t *testing.T) {
	s := setupTestStorage(t)

	id, err := s.CreateEvent("Reunion 2026", "Ten year reunion", "2026-05-01", "Hall A")
	require.NoError(t, err)
	assert.Positive(t, id)

	event, err := s.GetEvent(id)
	require.NoError(t, err)

	assert.Equal(t, "Reunion 2026", event.Title)
	assert.Equal(t, "Ten year reunion", event.Description)
	assert.Equal(t, "2026-05-01", event.Date)
	assert.Equal(t, "Hall A", event.Location)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestGetEventNotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetEvent(42)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestGetAllEventsOrderedByDateDesc(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.CreateEvent("Oldest", "", "2024-01-01", "")
	require.NoError(t, err)
	_, err = s.CreateEvent("Newest", "", "2026-05-01", "")
	require.NoError(t, err)
	_, err = s.CreateEvent("Middle", "", "2025-06-15", "")
	require.NoError(t, err)

	events, err := s.GetAllEvents()
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Newest", events[0].Title)
	assert.Equal(t, "Middle", events[1].Title)
	assert.Equal(t, "Oldest", events[2].Title)
}

func TestGetAllEventsOrderIsLexicographic(t *testing.T) {
	s := setupTestStorage(t)

	// Mixed free-text formats sort as strings, not as calendar dates.
	_, err := s.CreateEvent("ISO", "", "2026-05-01", "")
	require.NoError(t, err)
	_, err = s.CreateEvent("Prose", "", "May 1, 2026", "")
	require.NoError(t, err)

	events, err := s.GetAllEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Prose", events[0].Title)
	assert.Equal(t, "ISO", events[1].Title)
}

func TestCreateAttendee(t *testing.T) {
	s := setupTestStorage(t)

	eventID, err := s.CreateEvent("Reunion 2026", "", "2026-05-01", "Hall A")
	require.NoError(t, err)

	attID, err := s.CreateAttendee(eventID, "Asha", "", "", "Maybe")
	require.NoError(t, err)
	assert.Positive(t, attID)

	_, attendees, err := s.GetEventWithAttendees(eventID)
	require.NoError(t, err)
	require.Len(t, attendees, 1)

	assert.Equal(t, "Asha", attendees[0].Name)
	assert.Equal(t, "Maybe", attendees[0].RSVPStatus)
	assert.Empty(t, attendees[0].Email)
	assert.Empty(t, attendees[0].Phone)
	assert.False(t, attendees[0].CheckedIn)
	assert.Equal(t, eventID, attendees[0].EventID)
}

func TestCreateAttendeeEventMissing(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.CreateAttendee(99, "Asha", "", "", "Attending")
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestCreateAttendeeAllowsDuplicates(t *testing.T) {
	s := setupTestStorage(t)

	eventID, err := s.CreateEvent("Reunion 2026", "", "", "")
	require.NoError(t, err)

	_, err = s.CreateAttendee(eventID, "Asha", "asha@example.com", "", "Attending")
	require.NoError(t, err)
	_, err = s.CreateAttendee(eventID, "Asha", "asha@example.com", "", "Attending")
	require.NoError(t, err)

	_, attendees, err := s.GetEventWithAttendees(eventID)
	require.NoError(t, err)
	assert.Len(t, attendees, 2)
}

func TestAttendeesOrderedNewestFirst(t *testing.T) {
	s := setupTestStorage(t)

	eventID, err := s.CreateEvent("Reunion 2026", "", "", "")
	require.NoError(t, err)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err = s.CreateAttendee(eventID, name, "", "", "Attending")
		require.NoError(t, err)
	}

	_, attendees, err := s.GetEventWithAttendees(eventID)
	require.NoError(t, err)
	require.Len(t, attendees, 3)

	assert.Equal(t, "Third", attendees[0].Name)
	assert.Equal(t, "Second", attendees[1].Name)
	assert.Equal(t, "First", attendees[2].Name)
}

func TestGetEventWithAttendeesEventMissing(t *testing.T) {
	s := setupTestStorage(t)

	_, _, err := s.GetEventWithAttendees(7)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestToggleCheckIn(t *testing.T) {
	s := setupTestStorage(t)

	eventID, err := s.CreateEvent("Reunion 2026", "", "", "")
	require.NoError(t, err)

	attID, err := s.CreateAttendee(eventID, "Asha", "", "", "Maybe")
	require.NoError(t, err)

	gotEventID, checkedIn, err := s.ToggleCheckIn(attID)
	require.NoError(t, err)
	assert.Equal(t, eventID, gotEventID)
	assert.True(t, checkedIn)

	// A second toggle returns to the original state.
	gotEventID, checkedIn, err = s.ToggleCheckIn(attID)
	require.NoError(t, err)
	assert.Equal(t, eventID, gotEventID)
	assert.False(t, checkedIn)

	_, attendees, err := s.GetEventWithAttendees(eventID)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.False(t, attendees[0].CheckedIn)
}

func TestToggleCheckInAttendeeMissing(t *testing.T) {
	s := setupTestStorage(t)

	_, _, err := s.ToggleCheckIn(13)
	assert.ErrorIs(t, err, storage.ErrAttendeeNotFound)
}
