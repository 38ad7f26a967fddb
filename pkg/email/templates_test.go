package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVerificationEmail(t *testing.T) {
	msg := BuildVerificationEmail(VerificationEmailData{
		Email:      "pat@example.com",
		FullName:   "Pat Smith",
		Code:       "482913",
		TTLMinutes: 10,
	})

	require.Equal(t, []string{"pat@example.com"}, msg.To)
	assert.Contains(t, msg.TextBody, "482913")
	assert.Contains(t, msg.HTMLBody, "482913")
	assert.Contains(t, msg.TextBody, "10 minutes")
	assert.Contains(t, msg.TextBody, "Pat Smith")
}

func TestBuildVerificationEmailDefaults(t *testing.T) {
	msg := BuildVerificationEmail(VerificationEmailData{
		Email:      "pat@example.com",
		Code:       "000111",
		TTLMinutes: 5,
	})

	assert.Contains(t, msg.TextBody, "Hi there", "fallback greeting when name is empty")
	assert.Contains(t, msg.Subject, "Health Ecosystem Hub", "default app name in subject")
}

func TestBuildLowStockEmail(t *testing.T) {
	msg := BuildLowStockEmail(LowStockEmailData{
		Recipients:     []string{"pharmacy-ops@example.com"},
		MedicationName: "Amoxicillin 500mg",
		Quantity:       8,
		ReorderLevel:   20,
		BatchNumber:    "B-1042",
		Location:       "Shelf 3A",
	})

	require.Equal(t, []string{"pharmacy-ops@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "Amoxicillin 500mg")
	assert.Contains(t, msg.Subject, "8 remaining")
	assert.Contains(t, msg.TextBody, "B-1042")
	assert.Contains(t, msg.TextBody, "Shelf 3A")
	assert.Contains(t, msg.TextBody, "20")
}

func TestBuildOrderFulfilledEmail(t *testing.T) {
	fulfilledAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	msg := BuildOrderFulfilledEmail(OrderFulfilledEmailData{
		Recipients:     []string{"hospital-supply@example.com"},
		OrderID:        "0195f0a2-7c3e-7000-8000-000000000001",
		MedicationName: "Insulin Glargine",
		Quantity:       50,
		FulfilledAt:    fulfilledAt,
	})

	assert.Contains(t, msg.Subject, "Insulin Glargine")
	assert.Contains(t, msg.TextBody, "0195f0a2-7c3e-7000-8000-000000000001")
	assert.Contains(t, msg.TextBody, fulfilledAt.Format(time.RFC3339))
}
