package loan

import (
	"math"
	"time"

	dbmodels "hrms-backend/models/db"
)

// BuildSchedule produces the monthly amortization plan for a loan starting
// the month after disbursement. Each row carries the remaining balance after
// its payment; rounding drift is absorbed by the final row so the balance
// always closes at exactly zero.
func BuildSchedule(principal, annualRatePercent float64, termMonths int, disbursedAt time.Time) []dbmodels.LoanScheduleEntry {
	if termMonths <= 0 || principal <= 0 {
		return nil
	}
	monthlyRate := annualRatePercent / 100 / 12
	payment := monthlyPayment(principal, monthlyRate, termMonths)

	entries := make([]dbmodels.LoanScheduleEntry, 0, termMonths)
	balance := principal
	for seq := 1; seq <= termMonths; seq++ {
		interest := round2(balance * monthlyRate)
		principalPart := round2(payment - interest)
		rowPayment := payment
		if seq == termMonths {
			principalPart = round2(balance)
			rowPayment = round2(principalPart + interest)
		}
		balance = round2(balance - principalPart)
		entries = append(entries, dbmodels.LoanScheduleEntry{
			Sequence:  seq,
			DueDate:   disbursedAt.AddDate(0, seq, 0),
			Payment:   rowPayment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return entries
}

// monthlyPayment is the standard annuity formula; a zero rate degrades to an
// even split of the principal.
func monthlyPayment(principal, monthlyRate float64, termMonths int) float64 {
	if monthlyRate == 0 {
		return round2(principal / float64(termMonths))
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return round2(principal * monthlyRate * factor / (factor - 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
