package models

import "gorm.io/gorm"

// Admin is the single privileged identity type. Accounts are provisioned
// out-of-band; the register endpoint is permanently closed.
type Admin struct {
	gorm.Model
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (Admin) TableName() string {
	return "admins"
}
