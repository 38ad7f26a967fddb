package email

import (
	"fmt"
	"strings"
	"time"
)

// VerificationEmailData contains the data for the signup verification email.
type VerificationEmailData struct {
	Email      string
	FullName   string
	Code       string
	TTLMinutes int
	AppName    string
}

// BuildVerificationEmail creates the email carrying the signup
// verification code.
func BuildVerificationEmail(data VerificationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Health Ecosystem Hub"
	}

	name := data.FullName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your %s verification code", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your verification code is: %s

It expires in %d minutes. If you did not sign up, ignore this email.

Thanks,
The %s Team`,
		name, data.Code, data.TTLMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your verification code is:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 24px; letter-spacing: 4px; text-align: center;">%s</p>
    <p>It expires in <strong>%d minutes</strong>. If you did not sign up, ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.Code, data.TTLMinutes, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// LowStockEmailData contains the data for pharmacy low-stock alerts.
type LowStockEmailData struct {
	Recipients     []string
	MedicationName string
	Quantity       int
	ReorderLevel   int
	BatchNumber    string
	Location       string
}

// BuildLowStockEmail creates the alert sent to the pharmacy when an
// inventory item drops to or below its reorder level.
func BuildLowStockEmail(data LowStockEmailData) Message {
	subject := fmt.Sprintf("Low stock: %s (%d remaining)", data.MedicationName, data.Quantity)

	details := []string{
		fmt.Sprintf("Medication: %s", data.MedicationName),
		fmt.Sprintf("Current quantity: %d", data.Quantity),
		fmt.Sprintf("Reorder level: %d", data.ReorderLevel),
	}
	if data.BatchNumber != "" {
		details = append(details, fmt.Sprintf("Batch: %s", data.BatchNumber))
	}
	if data.Location != "" {
		details = append(details, fmt.Sprintf("Location: %s", data.Location))
	}

	textBody := fmt.Sprintf(`Pharmacy stock alert

%s

Please restock or raise a hospital order.`,
		strings.Join(details, "\n"))

	return Message{
		To:       data.Recipients,
		Subject:  subject,
		TextBody: textBody,
	}
}

// OrderFulfilledEmailData contains the data for the order-fulfilled notice.
type OrderFulfilledEmailData struct {
	Recipients     []string
	OrderID        string
	MedicationName string
	Quantity       int
	FulfilledAt    time.Time
}

// BuildOrderFulfilledEmail creates the notice sent when a hospital
// order has been fulfilled from pharmacy stock.
func BuildOrderFulfilledEmail(data OrderFulfilledEmailData) Message {
	subject := fmt.Sprintf("Order fulfilled: %s x%d", data.MedicationName, data.Quantity)

	textBody := fmt.Sprintf(`Hospital order %s has been fulfilled.

Medication: %s
Quantity: %d
Fulfilled at: %s`,
		data.OrderID, data.MedicationName, data.Quantity,
		data.FulfilledAt.Format(time.RFC3339))

	return Message{
		To:       data.Recipients,
		Subject:  subject,
		TextBody: textBody,
	}
}
