package domain

import "time"

// Credentials is a portal username/password pair. Passwords are stored and
// compared as plain text; the portal hands them to the applicant out-of-band
// and hashing is explicitly out of scope.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Member is an approved applicant with portal credentials. Created from a
// MembershipRequest when an admin approves it.
type Member struct {
	ID                   string     `json:"id" firestore:"-"`
	Name                 string     `json:"name" firestore:"name"`
	Email                string     `json:"email" firestore:"email"`
	Phone                string     `json:"phone,omitempty" firestore:"phone"`
	Github               string     `json:"github,omitempty" firestore:"github"`
	Portfolio            string     `json:"portfolio,omitempty" firestore:"portfolio"`
	Interests            []string   `json:"interests,omitempty" firestore:"interests"`
	Role                 string     `json:"role" firestore:"role"`
	Availability         string     `json:"availability,omitempty" firestore:"availability"`
	Avatar               string     `json:"avatar" firestore:"avatar"`
	Username             string     `json:"username,omitempty" firestore:"username"`
	Password             string     `json:"-" firestore:"password"`
	Badges               int        `json:"badges" firestore:"badges"`
	Points               int        `json:"points" firestore:"points"`
	CreatedAt            time.Time  `json:"created_at" firestore:"createdAt"`
	CredentialsUpdatedAt *time.Time `json:"credentials_updated_at,omitempty" firestore:"credentialsUpdatedAt"`
}

// Profile is the login-facing view of a member, without the password.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	Badges    int    `json:"badges"`
	Points    int    `json:"points"`
	Github    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Profile strips the credential fields for responses.
func (m *Member) Profile() Profile {
	return Profile{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Avatar:    m.Avatar,
		Role:      m.Role,
		Badges:    m.Badges,
		Points:    m.Points,
		Github:    m.Github,
		Portfolio: m.Portfolio,
	}
}
