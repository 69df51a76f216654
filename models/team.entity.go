package models

import "gorm.io/gorm"

type TeamMember struct {
	gorm.Model
	Image       string `gorm:"type:varchar(512)" json:"image"`
	Name        string `gorm:"type:varchar(150)" json:"name"`
	Position    string `gorm:"type:varchar(150)" json:"position"`
	Description string `gorm:"type:text" json:"description"`
	Linkedin    string `gorm:"type:varchar(512)" json:"linkedin"`
	Email       string `gorm:"type:varchar(191)" json:"email"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
