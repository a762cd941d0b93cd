package models

import "time"

// Suggested RSVP statuses. Storage does not constrain the column to these;
// the detail-page form offers them and the handler defaults to Attending.
const (
	RSVPStatusAttending    = "Attending"
	RSVPStatusNotAttending = "Not Attending"
	RSVPStatusMaybe        = "Maybe"
)

type Attendee struct {
	ID         int       `db:"id" json:"id"`
	EventID    int       `db:"event_id" json:"event_id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	RSVPStatus string    `db:"rsvp_status" json:"rsvp_status"`
	CheckedIn  bool      `db:"checked_in" json:"checked_in"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
