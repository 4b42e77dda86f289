package models

import (
	"time"
)

// PlanModel represents the database persistence model for catalog plans.
// This is the anti-corruption layer between domain and database. The slug is
// the plan's public identifier ("pro", "free"); the numeric key stays
// internal.
type PlanModel struct {
	ID                 uint   `gorm:"primarykey"`
	Slug               string `gorm:"uniqueIndex;not null;size:64"`
	Name               string `gorm:"not null;size:255"`
	MaxSeats           uint32 `gorm:"not null;default:1"`
	RequiresCardOnFile bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
