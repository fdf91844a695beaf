package domain

import "time"

type MembershipRequestStatus string

const (
	MembershipRequestStatusPending  MembershipRequestStatus = "pending"
	MembershipRequestStatusApproved MembershipRequestStatus = "approved"
	MembershipRequestStatusRejected MembershipRequestStatus = "rejected"
)

type MembershipDecision string

const (
	MembershipDecisionApproved MembershipDecision = "approved"
	MembershipDecisionRejected MembershipDecision = "rejected"
)

// MembershipRequest is an applicant's intake form awaiting an admin decision.
// Approved and rejected are terminal; a decided request never re-enters the
// pending listings.
type MembershipRequest struct {
	ID           string                  `json:"id" firestore:"-"`
	Name         string                  `json:"name" firestore:"name"`
	Email        string                  `json:"email" firestore:"email"`
	Phone        string                  `json:"phone" firestore:"phone"`
	Github       string                  `json:"github,omitempty" firestore:"github"`
	Portfolio    string                  `json:"portfolio,omitempty" firestore:"portfolio"`
	Interests    []string                `json:"interests" firestore:"interests"`
	Experience   string                  `json:"experience" firestore:"experience"`
	Goals        string                  `json:"goals" firestore:"goals"`
	Role         string                  `json:"role" firestore:"role"`
	Availability string                  `json:"availability" firestore:"availability"`
	Status       MembershipRequestStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time               `json:"created_at" firestore:"createdAt"`
	DecidedAt    *time.Time              `json:"decided_at,omitempty" firestore:"decidedAt"`
	DecidedBy    string                  `json:"decided_by,omitempty" firestore:"decidedBy"`
}
