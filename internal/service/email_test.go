package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailService(t *testing.T) {
	svc := NewEmailService("smtp.example.com", 587, "mailer", "secret", "noreply@example.com")

	es, ok := svc.(*emailService)
	assert.True(t, ok)
	assert.Equal(t, 587, es.port)
	assert.Equal(t, "smtp.example.com", es.host)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$200.00", formatCents(200_00))
	assert.Equal(t, "$0.05", formatCents(5))
	assert.Equal(t, "-$160.00", formatCents(-160_00))
}
