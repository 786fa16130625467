package amortization

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"deudasBack/internal/models"
)

const eps = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestGenerateSchedule(t *testing.T) {
	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	entries, err := GenerateSchedule(1200, 12, 12, ref)
	if err != nil {
		t.Fatalf("GenerateSchedule returned error: %v", err)
	}

	if len(entries) != 13 {
		t.Fatalf("expected 13 rows (disbursement + 12 payments), got %d", len(entries))
	}

	first := entries[0]
	if first.NumeroPago != 0 {
		t.Errorf("row 0 numero_pago = %d, want 0", first.NumeroPago)
	}
	if first.Saldo != 1200 {
		t.Errorf("row 0 saldo = %f, want principal 1200", first.Saldo)
	}
	if first.Capital != 0 || first.Interes != 0 || first.Cuota != 0 {
		t.Errorf("row 0 amounts = (%f, %f, %f), want all zero", first.Capital, first.Interes, first.Cuota)
	}
	if !first.FechaVencimiento.Equal(ref) {
		t.Errorf("row 0 fecha = %v, want reference date %v", first.FechaVencimiento, ref)
	}
	if first.Estado != models.EstadoPendiente {
		t.Errorf("row 0 estado = %q, want %q", first.Estado, models.EstadoPendiente)
	}

	// 12% annual over 12 months at monthly rate 0.01.
	wantCuota := 1200 * 0.01 / (1 - math.Pow(1.01, -12))
	if !almostEqual(entries[1].Cuota, wantCuota) {
		t.Errorf("cuota = %f, want %f", entries[1].Cuota, wantCuota)
	}
	if !almostEqual(entries[1].Interes, 12.00) {
		t.Errorf("first interes = %f, want 12.00", entries[1].Interes)
	}
	if !almostEqual(entries[1].Capital, wantCuota-12.00) {
		t.Errorf("first capital = %f, want %f", entries[1].Capital, wantCuota-12.00)
	}

	saldo := 1200.0
	for i := 1; i < len(entries); i++ {
		row := entries[i]
		if row.NumeroPago != i {
			t.Errorf("row %d numero_pago = %d", i, row.NumeroPago)
		}
		if !almostEqual(row.Cuota, wantCuota) {
			t.Errorf("row %d cuota = %f, want constant %f", i, row.Cuota, wantCuota)
		}
		if !almostEqual(row.Interes, saldo*0.01) {
			t.Errorf("row %d interes = %f, want %f", i, row.Interes, saldo*0.01)
		}
		if !almostEqual(row.Capital+row.Interes, row.Cuota) {
			t.Errorf("row %d capital+interes = %f, want cuota %f", i, row.Capital+row.Interes, row.Cuota)
		}
		saldo -= row.Capital
		if !almostEqual(row.Saldo, saldo) {
			t.Errorf("row %d saldo = %f, want %f", i, row.Saldo, saldo)
		}
		if want := ref.AddDate(0, i, 0); !row.FechaVencimiento.Equal(want) {
			t.Errorf("row %d fecha = %v, want %v", i, row.FechaVencimiento, want)
		}
		if row.Estado != models.EstadoPendiente {
			t.Errorf("row %d estado = %q, want %q", i, row.Estado, models.EstadoPendiente)
		}
	}

	if last := entries[len(entries)-1]; math.Abs(last.Saldo) > eps {
		t.Errorf("terminal saldo = %g, want ~0", last.Saldo)
	}
}

func TestGenerateScheduleDeterministic(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	a, err := GenerateSchedule(50000, 18.5, 36, ref)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := GenerateSchedule(50000, 18.5, 36, ref)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different schedules")
	}
}

func TestGenerateScheduleDateNormalization(t *testing.T) {
	// Jan 31 plus one month overflows February and lands in March.
	ref := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	entries, err := GenerateSchedule(1000, 10, 2, ref)
	if err != nil {
		t.Fatalf("GenerateSchedule returned error: %v", err)
	}

	want := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !entries[1].FechaVencimiento.Equal(want) {
		t.Errorf("row 1 fecha = %v, want %v", entries[1].FechaVencimiento, want)
	}
}

func TestGenerateScheduleInvalidParams(t *testing.T) {
	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		principal float64
		rate      float64
		term      int
	}{
		{"zero principal", 0, 12, 12},
		{"negative principal", -100, 12, 12},
		{"zero rate", 1200, 0, 12},
		{"negative rate", 1200, -5, 12},
		{"zero term", 1200, 12, 0},
		{"negative term", 1200, 12, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := GenerateSchedule(tt.principal, tt.rate, tt.term, ref)
			if !errors.Is(err, models.ErrInvalidScheduleParams) {
				t.Errorf("error = %v, want ErrInvalidScheduleParams", err)
			}
			if entries != nil {
				t.Errorf("expected nil schedule, got %d rows", len(entries))
			}
		})
	}
}
