package education

import "time"

type Education struct {
	ID              int64
	AccountID       int64
	InstitutionName string
	DegreeField     string
	YearStarted     *int
	YearCompleted   *int
	DegreeLevel     *string
	IsCurrent       bool
	CreatedAt       time.Time
}
