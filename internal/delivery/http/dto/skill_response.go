package dto

import "time"

type SkillCategoryResponse struct {
	CategoryID   int64   `json:"category_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	IconURL      *string `json:"icon_url"`
	DisplayOrder int     `json:"display_order"`
}

type SkillLevelResponse struct {
	LevelID     int64   `json:"level_id"`
	Name        string  `json:"name"`
	Rank        int     `json:"rank"`
	Description *string `json:"description"`
}

type CatalogSkillResponse struct {
	SkillID     int64   `json:"skill_id"`
	SkillName   string  `json:"skill_name"`
	CategoryID  int64   `json:"category_id"`
	Description *string `json:"description"`
}

type UserSkillResponse struct {
	AccountID       int64     `json:"account_id"`
	SkillID         int64     `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	CategoryName    string    `json:"category_name"`
	LevelName       string    `json:"level_name"`
	LevelRank       int       `json:"level_rank"`
	IsVerified      bool      `json:"is_verified"`
	ExperienceYears *float64  `json:"experience_years"`
	AddedAt         time.Time `json:"added_at"`
}
