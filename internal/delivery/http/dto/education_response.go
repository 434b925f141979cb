package dto

import "time"

type EducationResponse struct {
	EducationID     int64     `json:"education_id"`
	AccountID       int64     `json:"account_id"`
	InstitutionName string    `json:"institution_name"`
	DegreeField     string    `json:"degree_field"`
	YearStarted     *int      `json:"year_started"`
	YearCompleted   *int      `json:"year_completed"`
	DegreeLevel     *string   `json:"degree_level"`
	IsCurrent       bool      `json:"is_current"`
	CreatedAt       time.Time `json:"created_at"`
}
