package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ConsultationStatus
		to      ConsultationStatus
		allowed bool
	}{
		{"pending to confirmed", ConsultationStatusPending, ConsultationStatusConfirmed, true},
		{"pending to cancelled", ConsultationStatusPending, ConsultationStatusCancelled, true},
		{"pending to pending", ConsultationStatusPending, ConsultationStatusPending, false},
		{"confirmed to cancelled", ConsultationStatusConfirmed, ConsultationStatusCancelled, true},
		{"confirmed to pending", ConsultationStatusConfirmed, ConsultationStatusPending, false},
		{"confirmed to confirmed", ConsultationStatusConfirmed, ConsultationStatusConfirmed, false},
		{"cancelled is terminal, no confirm", ConsultationStatusCancelled, ConsultationStatusConfirmed, false},
		{"cancelled is terminal, no pending", ConsultationStatusCancelled, ConsultationStatusPending, false},
		{"cancelled is terminal, no cancel", ConsultationStatusCancelled, ConsultationStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &MedicalConsultation{Status: tt.from}
			assert.Equal(t, tt.allowed, c.CanTransitionTo(tt.to))
		})
	}
}

func TestConsultationStatusValid(t *testing.T) {
	assert.True(t, ConsultationStatusPending.Valid())
	assert.True(t, ConsultationStatusConfirmed.Valid())
	assert.True(t, ConsultationStatusCancelled.Valid())
	assert.False(t, ConsultationStatus("DONE").Valid())
	assert.False(t, ConsultationStatus("confirmed").Valid())
}
