package utils

import (
	"log"
	"time"

	"wellnest/config"
	"wellnest/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordMembershipPayment writes the purchase audit row and, when a payment
// API is configured, acknowledges the proof upstream. The proof is opaque:
// it was verified before it reached us, so acknowledgement failures are
// logged and never fail the purchase.
func RecordMembershipPayment(db *gorm.DB, user *models.User, plan, paymentProof string) {
	ref := paymentProof
	if ref == "" {
		ref = uuid.NewString()
	}

	txn := models.MembershipTransaction{
		UserID:          user.ID,
		Plan:            plan,
		PaymentRef:      ref,
		Status:          models.TransactionStatusCompleted,
		Description:     "Membership purchase: " + plan,
		TransactionDate: time.Now(),
	}
	if err := db.Create(&txn).Error; err != nil {
		log.Printf("[PAYMENT] Failed to record membership transaction for user %d: %v", user.ID, err)
	}

	if config.AppConfig.PaymentApiURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey).
		SetBody(map[string]interface{}{
			"paymentRef": ref,
			"plan":       plan,
			"userId":     user.ID,
		}).
		Post(config.AppConfig.PaymentApiURL + "/acknowledge")
	if err != nil {
		log.Printf("[PAYMENT] Failed to acknowledge payment %s: %v", ref, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("[PAYMENT] Payment acknowledgement for %s returned %d", ref, resp.StatusCode())
	}
}
