package finance

import (
	"math"
	"sort"

	financeapimodels "hrms-backend/models/api/finance"
	dbmodels "hrms-backend/models/db"
)

// buildTrialBalance nets the posted lines per account: the side with the
// larger total keeps the difference, the other side shows zero. Rows come
// out ordered by account code.
func buildTrialBalance(lines []dbmodels.JournalLine) *financeapimodels.TrialBalanceView {
	type accountTotals struct {
		row    financeapimodels.TrialBalanceRow
		debit  float64
		credit float64
	}
	perAccount := map[string]*accountTotals{}
	for _, line := range lines {
		totals, exist := perAccount[line.AccountID]
		if !exist {
			totals = &accountTotals{}
			if line.Account != nil {
				totals.row.AccountCode = line.Account.Code
				totals.row.AccountName = line.Account.Name
				totals.row.AccountType = line.Account.AccountType
			}
			perAccount[line.AccountID] = totals
		}
		totals.debit += line.Debit
		totals.credit += line.Credit
	}

	view := &financeapimodels.TrialBalanceView{
		Rows: make([]financeapimodels.TrialBalanceRow, 0, len(perAccount)),
	}
	for _, totals := range perAccount {
		net := round2(totals.debit - totals.credit)
		if net >= 0 {
			totals.row.Debit = net
		} else {
			totals.row.Credit = -net
		}
		view.DebitTotal = round2(view.DebitTotal + totals.row.Debit)
		view.CreditTotal = round2(view.CreditTotal + totals.row.Credit)
		view.Rows = append(view.Rows, totals.row)
	}
	sort.Slice(view.Rows, func(a, b int) bool {
		return view.Rows[a].AccountCode < view.Rows[b].AccountCode
	})
	view.Balanced = math.Abs(view.DebitTotal-view.CreditTotal) < 0.005
	return view
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
