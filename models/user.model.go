package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription plan keys
const (
	PlanFree   = "free"
	PlanBronze = "bronze"
	PlanCopper = "copper"
	PlanSilver = "silver"
)

// Subscription status values
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"
)

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''"`
	Name                string     `gorm:"default:''"`
	Email               string     `gorm:"unique;not null"`
	Mobile              string     `gorm:"default:''"`
	Role                string     `gorm:"default:'USER'"` // USER, ADMIN
	Password            string     `gorm:"not null"`
	IsEmailVerified     bool       `gorm:"default:false"`
	SubscriptionPlan    string     `gorm:"default:'free'" json:"subscriptionPlan"`
	SubscriptionStatus  string     `gorm:"default:'inactive'" json:"subscriptionStatus"`
	MembershipExpiresAt *time.Time `json:"membershipExpiresAt"`
	ReminderSent        bool       `gorm:"default:false"` // expiry reminder already mailed
	LastLogin           time.Time  `gorm:"default:NULL"`
	IsDeleted           bool       `gorm:"default:false"`
}
