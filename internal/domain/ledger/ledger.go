// Package ledger computes the agency's weekly finances: commission and
// dividend income, overhead and interest expenses, and loan amortization.
// Every function here is a total, side-effect-free computation over the
// snapshot; calling one twice on the same input yields the same figures.
package ledger

import "github.com/owenfield/frontoffice/internal/domain/model"

// WeeksPerSalaryYear converts annual athlete salaries to weekly commissions.
const WeeksPerSalaryYear = 52

// SettleEpsilon is the balance below which a repaid loan is removed.
const SettleEpsilon = 0.01

// Params holds the fixed weekly cost constants.
type Params struct {
	BaseOverhead  float64
	RentPerLevel  float64
	UpkeepPerItem float64
	DividendYield float64
}

// Report is the weekly financial breakdown.
type Report struct {
	CommissionIncome float64 `json:"commission_income"`
	DividendIncome   float64 `json:"dividend_income"`
	Income           float64 `json:"income"`

	Overhead        float64 `json:"overhead"`
	RentExpense     float64 `json:"rent_expense"`
	UpkeepExpense   float64 `json:"upkeep_expense"`
	InterestExpense float64 `json:"interest_expense"`
	Expenses        float64 `json:"expenses"`

	Net float64 `json:"net"`
}

// Interest sums one week of interest across the given balances. Callers
// capture it before AccrueLoans so the charge lands on the pre-accrual
// figures; AccrueLoans then capitalizes the same amounts.
func Interest(loans []model.Loan) float64 {
	var total float64
	for _, l := range loans {
		total += l.Balance * l.WeeklyRate
	}
	return total
}

// Compute derives the weekly report from the current snapshot, so dividends
// track this week's franchise revenue and commissions this week's salaries.
// interest is the captured pre-accrual charge (see Interest).
func Compute(state model.GameState, athletes []model.Athlete, franchises []model.Franchise, interest float64, p Params) Report {
	var r Report

	for _, a := range athletes {
		if !a.IsClient || a.Retired {
			continue
		}
		r.CommissionIncome += (a.Salary / WeeksPerSalaryYear) * a.CommissionRate
	}

	for _, f := range franchises {
		if f.Amateur || f.UserShares <= 0 {
			continue
		}
		r.DividendIncome += f.WeeklyRevenue * (f.UserShares / 100) * p.DividendYield
	}

	r.Income = r.CommissionIncome + r.DividendIncome

	r.Overhead = p.BaseOverhead
	r.RentExpense = float64(state.OfficeLevel) * p.RentPerLevel
	r.UpkeepExpense = float64(state.DecorItems) * p.UpkeepPerItem
	r.InterestExpense = interest
	r.Expenses = r.Overhead + r.RentExpense + r.UpkeepExpense + r.InterestExpense

	r.Net = r.Income - r.Expenses
	return r
}

// AccrueLoans capitalizes one week of interest into every balance,
// compounding weekly. Balances stay non-negative by construction.
func AccrueLoans(loans []model.Loan) []model.Loan {
	out := make([]model.Loan, len(loans))
	for i, l := range loans {
		l.Balance += l.Balance * l.WeeklyRate
		out[i] = l
	}
	return out
}

// Repay applies a payment to a loan. The second return is true when the
// remaining balance is within SettleEpsilon and the loan should be removed
// from the active set. Overpayment settles the loan; balances never go
// negative.
func Repay(l model.Loan, amount float64) (model.Loan, bool) {
	if amount < 0 {
		amount = 0
	}
	l.Balance -= amount
	if l.Balance <= SettleEpsilon {
		l.Balance = 0
		return l, true
	}
	return l, false
}

// OutstandingTotal sums current loan balances.
func OutstandingTotal(loans []model.Loan) float64 {
	var total float64
	for _, l := range loans {
		total += l.Balance
	}
	return total
}
