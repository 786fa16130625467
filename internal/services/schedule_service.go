package services

import (
	"context"

	"deudasBack/internal/amortization"
	"deudasBack/internal/models"
)

// ScheduleStore is the persistence surface the schedule service needs.
type ScheduleStore interface {
	CreateDebtAggregate(ctx context.Context, debt models.Debt) (models.Debt, error)
	GetDebtByNumeroDocumento(ctx context.Context, numeroDocumento string) (models.Debt, error)
	GetScheduleForUser(ctx context.Context, userID int) ([]models.ScheduleEntryView, error)
	MarkScheduleEntryPaid(ctx context.Context, entryID, userID int) (models.ScheduleEntryView, error)
}

type ScheduleService struct {
	DebtRepo ScheduleStore
}

// RegistrarCronograma registers an installment debt and generates its
// full payment schedule in the same aggregate. The schedule is fixed at
// creation; only row estados change afterwards.
func (s *ScheduleService) RegistrarCronograma(ctx context.Context, userID int, debt models.Debt) (models.Debt, error) {
	if debt.Cronograma == nil {
		return models.Debt{}, models.ErrInvalidScheduleParams
	}

	pagos, err := amortization.GenerateSchedule(
		debt.Monto, debt.Cronograma.TasaInteres, debt.Cronograma.PlazoMeses, debt.FechaVencimiento,
	)
	if err != nil {
		return models.Debt{}, err
	}

	existing, err := s.DebtRepo.GetDebtByNumeroDocumento(ctx, debt.NumeroDocumento)
	if err != nil {
		return models.Debt{}, err
	}
	if existing.ID != 0 {
		return models.Debt{}, models.ErrDuplicateDocumento
	}

	estado, err := normalizeEstado(debt.Estado)
	if err != nil {
		return models.Debt{}, err
	}
	debt.UserID = userID
	debt.Kind = models.KindCronograma
	debt.Estado = estado
	debt.Cronograma.Pagos = pagos
	return s.DebtRepo.CreateDebtAggregate(ctx, debt)
}

// ObtenerCronograma returns every schedule row of every installment
// debt owned by the user, flattened with the parent debt's fields.
func (s *ScheduleService) ObtenerCronograma(ctx context.Context, userID int) ([]models.ScheduleEntryView, error) {
	return s.DebtRepo.GetScheduleForUser(ctx, userID)
}

func (s *ScheduleService) MarcarPagoCronograma(ctx context.Context, userID, entryID int) (models.ScheduleEntryView, error) {
	return s.DebtRepo.MarkScheduleEntryPaid(ctx, entryID, userID)
}
