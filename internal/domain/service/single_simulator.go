package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/money"
)

// SimulateSingle runs one loan to payoff under a fixed scheduled payment and
// a constant monthly extra. It is the baseline building block: no pooling,
// no redirection, interest tracked separately from the declining balance.
//
// Each month: accrue interest on the open balance, take the principal
// portion of the scheduled payment, add the extra, and either clear the
// remaining balance (when the month's total covers it) or subtract and
// continue. The returned trace includes the starting balance at index 0.
func SimulateSingle(terms model.LoanTerms, scheduledPayment, extra decimal.Decimal) (model.SimulationTrace, error) {
	monthlyRate := terms.MonthlyRate()

	balance := terms.Balance
	totalInterest := decimal.Zero
	balances := make([]decimal.Decimal, 0, terms.TermMonths+1)
	balances = append(balances, balance)

	for month := 1; ; month++ {
		if month > MaxSimulationMonths {
			return model.SimulationTrace{}, fmt.Errorf(
				"single-loan run exceeded %d months (payment %s against balance %s): %w",
				MaxSimulationMonths, scheduledPayment, terms.Balance, ErrInvariantViolation,
			)
		}

		interest := money.RoundCents(balance.Mul(monthlyRate))
		totalInterest = totalInterest.Add(interest)

		principal := money.RoundCents(scheduledPayment.Sub(interest))
		if principal.IsNegative() {
			principal = decimal.Zero
		}

		total := money.RoundCents(principal.Add(extra))
		if total.GreaterThanOrEqual(balance) {
			// Payoff month: clear exactly the remaining balance.
			balances = append(balances, decimal.Zero)
			return model.SimulationTrace{
				MonthsToPayoff: month,
				TotalInterest:  money.RoundCents(totalInterest),
				Balances:       balances,
			}, nil
		}

		balance = money.RoundCents(balance.Sub(total))
		balances = append(balances, balance)
	}
}
