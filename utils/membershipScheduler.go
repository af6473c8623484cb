package utils

import (
	"log"
	"time"

	"wellnest/database"
	"wellnest/models"
	"wellnest/services/membership"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeMembershipScheduler sets up the daily membership maintenance job
func InitializeMembershipScheduler() {
	log.Println("[MEMBERSHIP-SCHEDULER] Initializing membership scheduler...")

	c := cron.New()

	// Run daily at 9 AM to expire lapsed memberships and send reminders
	c.AddFunc("0 9 * * *", func() {
		log.Println("[MEMBERSHIP-SCHEDULER] Running daily membership check...")
		ProcessExpiringMemberships()
		ExpireMemberships()
		ReconcileCounters()
	})

	c.Start()
	log.Println("[MEMBERSHIP-SCHEDULER] Membership scheduler started - runs daily at 9 AM")
}

// ProcessExpiringMemberships sends reminder emails for memberships expiring
// within the next 2 days
func ProcessExpiringMemberships() {
	db := database.Database.Db
	windowStart := now.BeginningOfDay()
	windowEnd := windowStart.AddDate(0, 0, 2)

	var expiringUsers []models.User
	if err := db.
		Where("subscription_status = ? AND reminder_sent = false AND membership_expires_at IS NOT NULL", models.SubscriptionStatusActive).
		Where("membership_expires_at BETWEEN ? AND ?", windowStart, windowEnd).
		Find(&expiringUsers).Error; err != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error fetching expiring memberships: %v", err)
		return
	}

	log.Printf("[MEMBERSHIP-SCHEDULER] Found %d memberships expiring soon", len(expiringUsers))

	for _, user := range expiringUsers {
		SendMembershipExpiryReminder(user.Email, user.Name, user.SubscriptionPlan, user.MembershipExpiresAt)

		db.Model(&user).Update("reminder_sent", true)
		log.Printf("[MEMBERSHIP-SCHEDULER] Sent expiry reminder to %s", user.Email)
	}
}

// ExpireMemberships flips lapsed memberships to inactive. Enrollments and
// community memberships are kept; there is no revocation on expiry.
func ExpireMemberships() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("subscription_status = ? AND membership_expires_at IS NOT NULL AND membership_expires_at < ?",
			models.SubscriptionStatusActive, time.Now()).
		Update("subscription_status", models.SubscriptionStatusInactive)

	if result.Error != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error expiring memberships: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[MEMBERSHIP-SCHEDULER] Expired %d memberships", result.RowsAffected)
	}
}

// ReconcileCounters recomputes the denormalized enrollment and member
// counters from their source rows. Failed counter increments during
// provisioning are repaired here.
func ReconcileCounters() {
	db := database.Database.Db
	svc := membership.NewService(db, membership.DefaultCatalog)

	var courseIDs []uint
	if err := db.Model(&models.Course{}).Where("is_deleted = false").Pluck("id", &courseIDs).Error; err != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error listing courses for recount: %v", err)
		return
	}
	for _, id := range courseIDs {
		if err := svc.RecountCourseEnrollment(id); err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Enrollment recount failed for course %d: %v", id, err)
		}
	}

	var groupIDs []uint
	if err := db.Model(&models.Group{}).Where("is_deleted = false").Pluck("id", &groupIDs).Error; err != nil {
		log.Printf("[MEMBERSHIP-SCHEDULER] Error listing groups for recount: %v", err)
		return
	}
	for _, id := range groupIDs {
		if err := svc.RecountGroupMembers(id); err != nil {
			log.Printf("[MEMBERSHIP-SCHEDULER] Member recount failed for group %d: %v", id, err)
		}
	}
}
