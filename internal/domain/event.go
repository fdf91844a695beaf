package domain

import "time"

// Event is a club event members can RSVP to. Dates are ISO yyyy-mm-dd
// strings; the fixed-width format makes lexicographic range queries valid.
type Event struct {
	ID          string `json:"id" firestore:"-"`
	Title       string `json:"title" firestore:"title"`
	Date        string `json:"date" firestore:"date"`
	Time        string `json:"time" firestore:"time"`
	Location    string `json:"location,omitempty" firestore:"location"`
	Description string `json:"description,omitempty" firestore:"description"`
}

// EventRsvp is an append-only attendance record. There is no dedup: the same
// member RSVPing twice produces two records.
type EventRsvp struct {
	ID        string    `json:"id" firestore:"-"`
	EventID   string    `json:"event_id" firestore:"eventId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
