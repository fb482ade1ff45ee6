package lead

import "time"

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusFollowUp  = "follow_up"
	StatusClosed    = "closed"
	StatusLost      = "lost"
)

var Statuses = []string{StatusNew, StatusContacted, StatusFollowUp, StatusClosed, StatusLost}

// Lead is a prospective borrower tracked by the marketing team.
type Lead struct {
	ID         string
	Name       string
	Phone      string
	Source     *string
	Status     string
	Notes      *string
	AssignedTo *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
