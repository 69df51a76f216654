package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrResetCodeExpired = errors.New("reset code expired")
	ErrResetCodeUsed    = errors.New("reset code already used")
)

// ResetCodeTTL is the absolute validity window of an emailed code.
const ResetCodeTTL = 10 * time.Minute

// PasswordReset is one emailed 6-digit code tied to an admin account.
// At most one unused row should exist per account; that is enforced by
// deleting prior unused rows before inserting, not by a constraint. Rows
// are never purged after expiry.
type PasswordReset struct {
	gorm.Model
	ResetID   string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	AdminID   uint      `gorm:"not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// BeforeCreate assigns the opaque identifier returned by verify-reset-code.
func (r *PasswordReset) BeforeCreate(tx *gorm.DB) error {
	if r.ResetID == "" {
		r.ResetID = uuid.NewString()
	}
	return nil
}

func (r PasswordReset) IsExpired(reference time.Time) bool {
	if reference.IsZero() {
		reference = time.Now()
	}
	return !reference.Before(r.ExpiresAt)
}

func (r PasswordReset) Validate(reference time.Time) error {
	if reference.IsZero() {
		reference = time.Now()
	}
	if r.Used {
		return ErrResetCodeUsed
	}
	if r.IsExpired(reference) {
		return ErrResetCodeExpired
	}
	return nil
}

// Consume marks the code used exactly once. The guarded UPDATE keeps two
// concurrent reset-password calls from both succeeding with the same code.
func (r *PasswordReset) Consume(tx *gorm.DB, reference time.Time) error {
	if reference.IsZero() {
		reference = time.Now()
	}

	if err := r.Validate(reference); err != nil {
		return err
	}

	usedAt := reference
	updates := map[string]any{
		"used":    true,
		"used_at": &usedAt,
	}

	res := tx.Model(&PasswordReset{}).
		Where("id = ? AND used = ? AND expires_at > ?", r.ID, false, reference).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var latest PasswordReset
		if err := tx.First(&latest, r.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetCodeUsed
			}
			return err
		}

		if latest.Used {
			return ErrResetCodeUsed
		}
		if latest.IsExpired(reference) {
			return ErrResetCodeExpired
		}
		return ErrResetCodeUsed
	}

	r.Used = true
	r.UsedAt = &usedAt
	return nil
}
