package financeapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type GLAccountData struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType models.AccountType `json:"account_type"`
}

func (r GLAccountData) Validate() error {
	if r.Code == "" {
		return errors.New("account code is required")
	}
	if r.Name == "" {
		return errors.New("account name is required")
	}
	switch r.AccountType {
	case models.AccountAsset, models.AccountLiability, models.AccountEquity,
		models.AccountIncome, models.AccountExpense:
		return nil
	}
	return errors.Errorf("unknown account type: %v", r.AccountType)
}

type GLAccountView struct {
	GLAccountData
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

func GLAccountConvert(rec dbmodels.GLAccount) GLAccountView {
	return GLAccountView{
		GLAccountData: GLAccountData{
			Code:        rec.Code,
			Name:        rec.Name,
			AccountType: rec.AccountType,
		},
		ID:       rec.ID,
		IsActive: rec.IsActive,
	}
}

type JournalLineData struct {
	AccountID string  `json:"account_id"`
	Debit     float64 `json:"debit"`
	Credit    float64 `json:"credit"`
	Memo      string  `json:"memo"`
}

type JournalEntryData struct {
	Reference   string            `json:"reference"`
	Description string            `json:"description"`
	EntryDate   time.Time         `json:"entry_date"`
	Lines       []JournalLineData `json:"lines"`
}

func (r JournalEntryData) Validate() error {
	if r.Reference == "" {
		return errors.New("journal reference is required")
	}
	if len(r.Lines) < 2 {
		return errors.New("a journal entry needs at least two lines")
	}
	var debit, credit float64
	for _, line := range r.Lines {
		if line.AccountID == "" {
			return errors.New("every journal line needs an account")
		}
		if line.Debit < 0 || line.Credit < 0 {
			return errors.New("journal amounts must not be negative")
		}
		if line.Debit > 0 && line.Credit > 0 {
			return errors.New("a journal line is either debit or credit, not both")
		}
		debit += line.Debit
		credit += line.Credit
	}
	if !amountsEqual(debit, credit) {
		return errors.Errorf("journal is not balanced: debit %.2f, credit %.2f", debit, credit)
	}
	return nil
}

func amountsEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.005
}

type JournalLineView struct {
	JournalLineData
	ID          string `json:"id"`
	AccountCode string `json:"account_code,omitempty"`
	AccountName string `json:"account_name,omitempty"`
}

type JournalEntryView struct {
	JournalEntryData
	ID     string               `json:"id"`
	Status models.JournalStatus `json:"status"`
	Lines  []JournalLineView    `json:"lines"`
}

func JournalEntryConvert(rec dbmodels.JournalEntry) JournalEntryView {
	view := JournalEntryView{
		JournalEntryData: JournalEntryData{
			Reference:   rec.Reference,
			Description: rec.Description,
			EntryDate:   rec.EntryDate,
		},
		ID:     rec.ID,
		Status: rec.Status,
		Lines:  make([]JournalLineView, 0, len(rec.Lines)),
	}
	for _, line := range rec.Lines {
		lineView := JournalLineView{
			JournalLineData: JournalLineData{
				AccountID: line.AccountID,
				Debit:     line.Debit,
				Credit:    line.Credit,
				Memo:      line.Memo,
			},
			ID: line.ID,
		}
		if line.Account != nil {
			lineView.AccountCode = line.Account.Code
			lineView.AccountName = line.Account.Name
		}
		view.Lines = append(view.Lines, lineView)
	}
	return view
}

type TrialBalanceRow struct {
	AccountCode string             `json:"account_code"`
	AccountName string             `json:"account_name"`
	AccountType models.AccountType `json:"account_type"`
	Debit       float64            `json:"debit"`
	Credit      float64            `json:"credit"`
}

type TrialBalanceView struct {
	Rows        []TrialBalanceRow `json:"rows"`
	DebitTotal  float64           `json:"debit_total"`
	CreditTotal float64           `json:"credit_total"`
	Balanced    bool              `json:"balanced"`
}
