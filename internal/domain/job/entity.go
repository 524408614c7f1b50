package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

const (
	TypeFullTime   = "full_time"
	TypePartTime   = "part_time"
	TypeContract   = "contract"
	TypeInternship = "internship"
	TypeRemote     = "remote"
)

var Types = []string{TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeRemote}

func IsValidType(t string) bool {
	for _, it := range Types {
		if it == t {
			return true
		}
	}
	return false
}

// Posting is a read-only snapshot of a job posting. ApplicationCount is an
// aggregate over persisted applications at read time. Salary is nil when the
// employer did not publish one.
type Posting struct {
	ID               uuid.UUID
	EmployerID       uuid.UUID
	Title            string
	CompanyName      string
	Location         string
	JobType          string
	Status           string
	Deadline         time.Time
	PostedAt         time.Time
	SkillsRequired   string
	Salary           *int
	ApplicationCount int
}

type SavedJob struct {
	ID       uuid.UUID
	JobID    uuid.UUID
	SeekerID uuid.UUID
	SavedAt  time.Time
	Posting  Posting
}
