package domain

import "time"

// Project is a community build members can request to join. Creation and
// editing happen outside this service; we read projects and maintain the
// member count.
type Project struct {
	ID          string   `json:"id" firestore:"-"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Tech        []string `json:"tech" firestore:"tech"`
	Members     int      `json:"members" firestore:"members"`
	Status      string   `json:"status" firestore:"status"`
	OwnerID     string   `json:"owner_id,omitempty" firestore:"ownerId"`
}

type ProjectInterestStatus string

const (
	ProjectInterestStatusPending  ProjectInterestStatus = "pending"
	ProjectInterestStatusApproved ProjectInterestStatus = "approved"
	ProjectInterestStatusHeld     ProjectInterestStatus = "held"
)

// ProjectInterest is one member's request to join one project. Transitions
// pending -> approved or pending -> held, never backward. Held is a persisted
// state, not just an admin-screen annotation.
type ProjectInterest struct {
	ID        string                `json:"id" firestore:"-"`
	ProjectID string                `json:"project_id" firestore:"projectId"`
	UserID    string                `json:"user_id" firestore:"userId"`
	Status    ProjectInterestStatus `json:"status" firestore:"status"`
	CreatedAt time.Time             `json:"created_at" firestore:"createdAt"`
	DecidedAt *time.Time            `json:"decided_at,omitempty" firestore:"decidedAt"`

	// Denormalized for the admin review screen; populated on listing, never
	// written back.
	ProjectTitle string `json:"project_title,omitempty" firestore:"-"`
	UserName     string `json:"user_name,omitempty" firestore:"-"`
	UserEmail    string `json:"user_email,omitempty" firestore:"-"`
}

// ProjectMembership is the confirmed linkage between a member and a project,
// created when an interest is approved.
type ProjectMembership struct {
	ID        string    `json:"id" firestore:"-"`
	ProjectID string    `json:"project_id" firestore:"projectId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	JoinedAt  time.Time `json:"joined_at" firestore:"joinedAt"`
}
