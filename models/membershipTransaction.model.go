package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction status values
const (
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// MembershipTransaction is the audit trail of membership purchases. The
// payment proof itself is accepted upstream; PaymentRef just records it.
type MembershipTransaction struct {
	gorm.Model
	UserID          uint      `json:"userId" gorm:"not null;index"`
	Plan            string    `json:"plan" gorm:"not null"`
	PaymentRef      string    `json:"paymentRef" gorm:"index"`
	Status          string    `json:"status" gorm:"type:varchar(20);default:'COMPLETED'"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	IsDeleted       bool      `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
