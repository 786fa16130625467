package lifecycle

import (
	"testing"

	"deudasBack/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pendiente to pagada", models.EstadoPendiente, models.EstadoPagada, true},
		{"pagada is terminal", models.EstadoPagada, models.EstadoPendiente, false},
		{"pagada to pagada", models.EstadoPagada, models.EstadoPagada, false},
		{"pendiente to pendiente", models.EstadoPendiente, models.EstadoPendiente, false},
		{"unknown from", "CANCELADA", models.EstadoPagada, false},
		{"unknown to", models.EstadoPendiente, "CANCELADA", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
