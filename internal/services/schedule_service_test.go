package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"deudasBack/internal/models"
)

func TestRegistrarCronograma(t *testing.T) {
	store := newFakeStore()
	svc := &ScheduleService{DebtRepo: store}

	debt := models.Debt{
		NumeroDocumento:  "CR-100",
		Empresa:          "Banco Azteca",
		Monto:            1200,
		FechaVencimiento: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Cronograma:       &models.CronogramaDetalle{TasaInteres: 12, PlazoMeses: 12},
	}

	created, err := svc.RegistrarCronograma(context.Background(), 7, debt)
	if err != nil {
		t.Fatalf("RegistrarCronograma returned error: %v", err)
	}
	if created.Kind != models.KindCronograma {
		t.Errorf("kind = %q, want %q", created.Kind, models.KindCronograma)
	}
	if created.UserID != 7 {
		t.Errorf("user_id = %d, want 7", created.UserID)
	}
	if created.Cronograma == nil {
		t.Fatal("cronograma payload missing")
	}
	if got := len(created.Cronograma.Pagos); got != 13 {
		t.Errorf("schedule rows = %d, want 13", got)
	}
	if created.Cronograma.Pagos[0].NumeroPago != 0 {
		t.Errorf("first row numero_pago = %d, want disbursement row 0", created.Cronograma.Pagos[0].NumeroPago)
	}
}

func TestRegistrarCronogramaInvalidParams(t *testing.T) {
	svc := &ScheduleService{DebtRepo: newFakeStore()}
	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		debt models.Debt
	}{
		{"missing payload", models.Debt{NumeroDocumento: "CR-1", Monto: 1000, FechaVencimiento: ref}},
		{"zero term", models.Debt{NumeroDocumento: "CR-2", Monto: 1000, FechaVencimiento: ref,
			Cronograma: &models.CronogramaDetalle{TasaInteres: 10, PlazoMeses: 0}}},
		{"zero rate", models.Debt{NumeroDocumento: "CR-3", Monto: 1000, FechaVencimiento: ref,
			Cronograma: &models.CronogramaDetalle{TasaInteres: 0, PlazoMeses: 12}}},
		{"zero principal", models.Debt{NumeroDocumento: "CR-4", Monto: 0, FechaVencimiento: ref,
			Cronograma: &models.CronogramaDetalle{TasaInteres: 10, PlazoMeses: 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegistrarCronograma(context.Background(), 7, tt.debt)
			if !errors.Is(err, models.ErrInvalidScheduleParams) {
				t.Errorf("error = %v, want ErrInvalidScheduleParams", err)
			}
		})
	}
}

func TestRegistrarCronogramaDuplicateDocumento(t *testing.T) {
	store := newFakeStore()
	store.add(models.Debt{NumeroDocumento: "CR-100", UserID: 7, Kind: models.KindCronograma})
	svc := &ScheduleService{DebtRepo: store}

	_, err := svc.RegistrarCronograma(context.Background(), 7, models.Debt{
		NumeroDocumento:  "CR-100",
		Monto:            1200,
		FechaVencimiento: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Cronograma:       &models.CronogramaDetalle{TasaInteres: 12, PlazoMeses: 12},
	})
	if !errors.Is(err, models.ErrDuplicateDocumento) {
		t.Errorf("error = %v, want ErrDuplicateDocumento", err)
	}
}

func TestMarcarPagoCronograma(t *testing.T) {
	store := newFakeStore()
	parent := store.add(models.Debt{
		NumeroDocumento: "CR-100", UserID: 7, Kind: models.KindCronograma,
	})
	store.schedule = []models.ScheduleEntryView{
		{
			ScheduleEntry: models.ScheduleEntry{ID: 31, DebtID: parent.ID, NumeroPago: 1, Estado: models.EstadoPendiente},
			Empresa:       "Banco Azteca", NumeroDocumento: "CR-100",
		},
		{
			ScheduleEntry: models.ScheduleEntry{ID: 32, DebtID: parent.ID, NumeroPago: 2, Estado: models.EstadoPendiente},
			Empresa:       "Banco Azteca", NumeroDocumento: "CR-100",
		},
	}
	svc := &ScheduleService{DebtRepo: store}

	paid, err := svc.MarcarPagoCronograma(context.Background(), 7, 31)
	if err != nil {
		t.Fatalf("MarcarPagoCronograma returned error: %v", err)
	}
	if paid.Estado != models.EstadoPagada {
		t.Errorf("estado = %q, want %q", paid.Estado, models.EstadoPagada)
	}

	// Sibling rows are untouched.
	if store.schedule[1].Estado != models.EstadoPendiente {
		t.Errorf("sibling row estado = %q, want %q", store.schedule[1].Estado, models.EstadoPendiente)
	}
}

func TestMarcarPagoCronogramaForbidden(t *testing.T) {
	store := newFakeStore()
	other := store.add(models.Debt{
		NumeroDocumento: "CR-200", UserID: 9, Kind: models.KindCronograma,
	})
	store.schedule = []models.ScheduleEntryView{
		{
			ScheduleEntry:   models.ScheduleEntry{ID: 41, DebtID: other.ID, NumeroPago: 1, Estado: models.EstadoPendiente},
			NumeroDocumento: "CR-200",
		},
	}
	svc := &ScheduleService{DebtRepo: store}

	_, err := svc.MarcarPagoCronograma(context.Background(), 7, 41)
	if !errors.Is(err, models.ErrDebtForbidden) {
		t.Errorf("error = %v, want ErrDebtForbidden", err)
	}
	if store.schedule[0].Estado != models.EstadoPendiente {
		t.Errorf("entry estado = %q, want unchanged %q", store.schedule[0].Estado, models.EstadoPendiente)
	}
}

func TestMarcarPagoCronogramaErrors(t *testing.T) {
	store := newFakeStore()
	parent := store.add(models.Debt{
		NumeroDocumento: "CR-100", UserID: 7, Kind: models.KindCronograma,
	})
	store.schedule = []models.ScheduleEntryView{
		{
			ScheduleEntry:   models.ScheduleEntry{ID: 31, DebtID: parent.ID, NumeroPago: 1, Estado: models.EstadoPagada},
			NumeroDocumento: "CR-100",
		},
	}
	svc := &ScheduleService{DebtRepo: store}

	if _, err := svc.MarcarPagoCronograma(context.Background(), 7, 999); !errors.Is(err, models.ErrScheduleEntryNotFound) {
		t.Errorf("missing entry: error = %v, want ErrScheduleEntryNotFound", err)
	}
	if _, err := svc.MarcarPagoCronograma(context.Background(), 7, 31); !errors.Is(err, models.ErrEntryAlreadyPaid) {
		t.Errorf("paid entry: error = %v, want ErrEntryAlreadyPaid", err)
	}
}
