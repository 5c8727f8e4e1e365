package finance

import (
	"testing"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/stretchr/testify/require"
)

func glLine(account *dbmodels.GLAccount, debit, credit float64) dbmodels.JournalLine {
	return dbmodels.JournalLine{
		AccountID: account.ID,
		Account:   account,
		Debit:     debit,
		Credit:    credit,
	}
}

func TestBuildTrialBalance(t *testing.T) {
	cash := &dbmodels.GLAccount{
		BaseModel:   dbmodels.BaseModel{ID: "acc-cash"},
		Code:        "1000",
		Name:        "Cash",
		AccountType: models.AccountAsset,
	}
	salaries := &dbmodels.GLAccount{
		BaseModel:   dbmodels.BaseModel{ID: "acc-sal"},
		Code:        "5000",
		Name:        "Salaries Expense",
		AccountType: models.AccountExpense,
	}
	payable := &dbmodels.GLAccount{
		BaseModel:   dbmodels.BaseModel{ID: "acc-pay"},
		Code:        "2000",
		Name:        "Salaries Payable",
		AccountType: models.AccountLiability,
	}

	t.Run("nets each account to one side", func(t *testing.T) {
		view := buildTrialBalance([]dbmodels.JournalLine{
			glLine(salaries, 5000, 0),
			glLine(payable, 0, 5000),
			glLine(payable, 4000, 0),
			glLine(cash, 0, 4000),
		})

		require.Len(t, view.Rows, 3)
		// Ordered by account code: 1000, 2000, 5000.
		require.Equal(t, "1000", view.Rows[0].AccountCode)
		require.Equal(t, 0.0, view.Rows[0].Debit)
		require.Equal(t, 4000.0, view.Rows[0].Credit)

		require.Equal(t, "2000", view.Rows[1].AccountCode)
		require.Equal(t, 0.0, view.Rows[1].Debit)
		require.Equal(t, 1000.0, view.Rows[1].Credit)

		require.Equal(t, "5000", view.Rows[2].AccountCode)
		require.Equal(t, 5000.0, view.Rows[2].Debit)
		require.Equal(t, 0.0, view.Rows[2].Credit)

		require.Equal(t, 5000.0, view.DebitTotal)
		require.Equal(t, 5000.0, view.CreditTotal)
		require.True(t, view.Balanced)
	})

	t.Run("unbalanced lines are reported as such", func(t *testing.T) {
		view := buildTrialBalance([]dbmodels.JournalLine{
			glLine(cash, 100, 0),
			glLine(payable, 0, 99),
		})
		require.False(t, view.Balanced)
	})

	t.Run("empty ledger", func(t *testing.T) {
		view := buildTrialBalance(nil)
		require.Empty(t, view.Rows)
		require.True(t, view.Balanced)
	})
}
