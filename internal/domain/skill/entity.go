package skill

import "time"

type Category struct {
	ID           int64
	Name         string
	Description  *string
	IconURL      *string
	DisplayOrder int
	IsActive     bool
}

type Level struct {
	ID          int64
	Name        string
	Rank        int
	Description *string
}

type CatalogSkill struct {
	ID          int64
	Name        string
	CategoryID  int64
	Description *string
	IsActive    bool
}

// UserSkill is the catalog-joined view of a skill a user has declared.
type UserSkill struct {
	AccountID       int64
	SkillID         int64
	SkillName       string
	CategoryName    string
	LevelName       string
	LevelRank       int
	IsVerified      bool
	ExperienceYears *float64
	AddedAt         time.Time
}
