package amortization

import (
	"math"
	"time"

	"deudasBack/internal/models"
)

// GenerateSchedule builds the fixed-rate payment plan for an installment
// debt: one disbursement row (numero_pago 0) followed by termMonths
// amortizing rows with a constant monthly installment.
//
// Amounts are plain float64 with no per-row rounding; the small residual
// that compounds across the term is a property of the original system.
// Due dates use time.AddDate, which normalizes month overflow (Jan 31 +
// 1 month lands in early March) rather than clamping to the shorter
// month. Row i is referenceDate plus i calendar months.
func GenerateSchedule(principal, annualRatePercent float64, termMonths int, referenceDate time.Time) ([]models.ScheduleEntry, error) {
	if principal <= 0 || annualRatePercent <= 0 || termMonths < 1 {
		return nil, models.ErrInvalidScheduleParams
	}

	monthlyRate := annualRatePercent / 12 / 100
	cuota := principal * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-termMonths)))

	entries := make([]models.ScheduleEntry, 0, termMonths+1)
	entries = append(entries, models.ScheduleEntry{
		NumeroPago:       0,
		FechaVencimiento: referenceDate,
		Saldo:            principal,
		Estado:           models.EstadoPendiente,
	})

	saldo := principal
	for i := 1; i <= termMonths; i++ {
		interes := saldo * monthlyRate
		capital := cuota - interes
		saldo -= capital

		entries = append(entries, models.ScheduleEntry{
			NumeroPago:       i,
			FechaVencimiento: referenceDate.AddDate(0, i, 0),
			Saldo:            saldo,
			Capital:          capital,
			Interes:          interes,
			Cuota:            cuota,
			Estado:           models.EstadoPendiente,
		})
	}
	return entries, nil
}
