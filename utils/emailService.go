package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"wellnest/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email. Prefers SendGrid when an API key is configured, falls
// back to SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridApiKey != "" {
		return sendWithSendGrid(to, subject, htmlBody)
	}
	return sendWithSMTP(to, subject, htmlBody)
}

func sendWithSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("WellNest", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			fmt.Println("Error sending email via SendGrid:", err)
			return err
		}
		if resp.StatusCode >= 400 {
			fmt.Printf("SendGrid rejected email to %s: %d\n", recipient, resp.StatusCode)
			return fmt.Errorf("sendgrid error, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendWithSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: WellNest <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all membership mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #74C69D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>WellNest</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because you have a WellNest account.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendMembershipWelcomeEmail mails the member after a plan purchase with the
// courses their plan unlocked.
func SendMembershipWelcomeEmail(email, name, plan string, courses []string) {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Your <strong>%s</strong> membership is now active.</p>`, name, plan)

	if len(courses) > 0 {
		body += `<div class="info-box"><p>You now have access to:</p><ul>`
		for _, title := range courses {
			body += "<li>" + title + "</li>"
		}
		body += `</ul></div>`
	}

	body += `<p>Head to your dashboard to start learning and say hello in your course communities.</p>`

	if err := SendEmail([]string{email}, "Welcome to your WellNest membership!", getEmailTemplate("Membership Activated", body)); err != nil {
		fmt.Printf("Failed to send welcome email to %s: %v\n", email, err)
	}
}

// SendMembershipExpiryReminder warns a member that their plan lapses soon.
func SendMembershipExpiryReminder(email, name, plan string, expiresAt *time.Time) {
	expiry := "soon"
	if expiresAt != nil {
		expiry = expiresAt.Format("02 Jan 2006")
	}

	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Your <strong>%s</strong> membership expires on <strong>%s</strong>.</p>
		<p>Renew now to keep access to your courses and communities.</p>`, name, plan, expiry)

	if err := SendEmail([]string{email}, "Your WellNest membership is expiring", getEmailTemplate("Membership Expiring", body)); err != nil {
		fmt.Printf("Failed to send expiry reminder to %s: %v\n", email, err)
	}
}
