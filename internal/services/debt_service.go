package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"deudasBack/internal/models"
	"deudasBack/internal/timeutil"
)

const dueCacheTTL = 5 * time.Minute

// DebtStore is the persistence surface the debt service needs.
type DebtStore interface {
	CreateDebtAggregate(ctx context.Context, debt models.Debt) (models.Debt, error)
	GetDebtByNumeroDocumento(ctx context.Context, numeroDocumento string) (models.Debt, error)
	GetDebtsForUserInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Debt, error)
	GetOverduePendingForUser(ctx context.Context, userID int, before time.Time) ([]models.Debt, error)
	GetDueOnDateForUser(ctx context.Context, userID int, date time.Time) ([]models.Debt, error)
	MarkDebtPaid(ctx context.Context, debtID, userID int) (models.Debt, error)
}

// Cache is an optional read-through cache; a nil Cache disables it.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type DebtService struct {
	DebtRepo DebtStore
	Cache    Cache
}

// RegistrarDeuda registers a compra, servicio or impuesto debt. The
// installment kind goes through ScheduleService instead. Estado
// defaults to PENDIENTE when the client omits it.
func (s *DebtService) RegistrarDeuda(ctx context.Context, userID int, debt models.Debt) (models.Debt, error) {
	switch debt.Kind {
	case models.KindCompra, models.KindServicio, models.KindImpuesto:
	default:
		return models.Debt{}, fmt.Errorf("unsupported debt kind: %q", debt.Kind)
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
	debt.Estado = estado
	return s.DebtRepo.CreateDebtAggregate(ctx, debt)
}

// ConsultarDeudas returns the debts relevant for a month: those due
// within it plus still-pending debts that fell due before it. The two
// result sets are concatenated, so duplicates are filtered by id even
// though the date predicates cannot overlap.
func (s *DebtService) ConsultarDeudas(ctx context.Context, userID, month, year int) ([]models.Debt, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, models.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timeutil.Location())
	end := start.AddDate(0, 1, -1)

	debts, err := s.DebtRepo.GetDebtsForUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	overdue, err := s.DebtRepo.GetOverduePendingForUser(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	debts = append(debts, overdue...)

	seen := make(map[int]struct{}, len(debts))
	result := debts[:0]
	for _, debt := range debts {
		if _, ok := seen[debt.ID]; ok {
			continue
		}
		seen[debt.ID] = struct{}{}
		result = append(result, debt)
	}
	return result, nil
}

// DeudasVencenHoy returns the user's pending debts due today, served
// from the cache when a fresh copy exists.
func (s *DebtService) DeudasVencenHoy(ctx context.Context, userID int) ([]models.Debt, error) {
	today := timeutil.Today()
	key := fmt.Sprintf("vencen_hoy:%d:%s", userID, today.Format("2006-01-02"))

	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached []models.Debt
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	debts, err := s.DebtRepo.GetDueOnDateForUser(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(debts); err == nil {
			if err := s.Cache.Set(ctx, key, string(raw), dueCacheTTL); err != nil {
				log.Printf("Warning: failed to cache due debts: %v", err)
			}
		}
	}
	return debts, nil
}

func (s *DebtService) MarcarPagada(ctx context.Context, userID, debtID int) (models.Debt, error) {
	return s.DebtRepo.MarkDebtPaid(ctx, debtID, userID)
}

// normalizeEstado defaults a blank estado to PENDIENTE and rejects
// anything outside the two legal values.
func normalizeEstado(estado string) (string, error) {
	estado = strings.ToUpper(strings.TrimSpace(estado))
	switch estado {
	case "":
		return models.EstadoPendiente, nil
	case models.EstadoPendiente, models.EstadoPagada:
		return estado, nil
	}
	return "", models.ErrInvalidEstado
}
