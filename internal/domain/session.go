package domain

// Session is a scheduled learning session on the club calendar. Read-only
// from this service; the seed tool writes them.
type Session struct {
	ID          string   `json:"id" firestore:"-"`
	Title       string   `json:"title" firestore:"title"`
	Date        string   `json:"date" firestore:"date"`
	Time        string   `json:"time" firestore:"time"`
	Type        string   `json:"type" firestore:"type"`
	Description string   `json:"description,omitempty" firestore:"description"`
	Location    string   `json:"location,omitempty" firestore:"location"`
	Instructor  string   `json:"instructor,omitempty" firestore:"instructor"`
	Status      string   `json:"status,omitempty" firestore:"status"`
	Topics      []string `json:"topics,omitempty" firestore:"topics"`
}

// DashboardStats is the count block of the member dashboard.
type DashboardStats struct {
	ActiveProjects   int `json:"activeProjects"`
	UpcomingEvents   int `json:"upcomingEvents"`
	UpcomingSessions int `json:"upcomingSessions"`
}

// Dashboard is the composed cross-collection summary for one member.
type Dashboard struct {
	Member   Profile        `json:"member"`
	Stats    DashboardStats `json:"stats"`
	Projects []Project      `json:"projects"`
	Sessions []Session      `json:"sessions"`
}
