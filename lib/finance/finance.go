// Package finance keeps the chart of accounts and the double-entry journal
// behind payroll and loan postings.
package finance

import (
	"time"

	"hrms-backend/db"
	financestore "hrms-backend/lib/finance/store"
	"hrms-backend/models"
	financeapimodels "hrms-backend/models/api/finance"
	dbmodels "hrms-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	CreateAccount(data financeapimodels.GLAccountData) (id string, hMsg string, err error)
	ListAccounts() (list []financeapimodels.GLAccountView, err error)

	CreateEntry(data financeapimodels.JournalEntryData) (id string, hMsg string, err error)
	GetEntry(id string) (view *financeapimodels.JournalEntryView, err error)
	ListEntries() (list []financeapimodels.JournalEntryView, err error)
	// PostEntry makes a draft journal entry immutable and visible to reports.
	PostEntry(id string) (hMsg string, err error)
	TrialBalance(asOf time.Time) (view *financeapimodels.TrialBalanceView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store: financestore.NewInstance(tx),
	}
}

type handler struct {
	store financestore.Provider
}

func (h handler) CreateAccount(data financeapimodels.GLAccountData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetAccountByCode(data.Code)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "An account with this code already exists", nil
	}
	id, err := h.store.CreateAccount(dbmodels.GLAccount{
		Code:        data.Code,
		Name:        data.Name,
		AccountType: data.AccountType,
		IsActive:    true,
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) ListAccounts() ([]financeapimodels.GLAccountView, error) {
	recs, err := h.store.ListAccounts()
	if err != nil {
		return nil, err
	}
	list := make([]financeapimodels.GLAccountView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, financeapimodels.GLAccountConvert(rec))
	}
	return list, nil
}

func (h handler) CreateEntry(data financeapimodels.JournalEntryData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetEntryByReference(data.Reference)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "A journal entry with this reference already exists", nil
	}
	for _, line := range data.Lines {
		account, err := h.store.GetAccountByID(line.AccountID)
		if err != nil {
			return "", "", err
		}
		if account == nil {
			return "", "A journal line references an unknown account", nil
		}
		if !account.IsActive {
			return "", "A journal line references an inactive account", nil
		}
	}
	entryDate := data.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	rec := dbmodels.JournalEntry{
		Reference:   data.Reference,
		Description: data.Description,
		EntryDate:   entryDate,
		Status:      models.JournalDraft,
	}
	for _, line := range data.Lines {
		rec.Lines = append(rec.Lines, dbmodels.JournalLine{
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			Memo:      line.Memo,
		})
	}
	id, err := h.store.CreateEntry(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetEntry(id string) (*financeapimodels.JournalEntryView, error) {
	rec, err := h.store.GetEntryByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := financeapimodels.JournalEntryConvert(*rec)
	return &view, nil
}

func (h handler) ListEntries() ([]financeapimodels.JournalEntryView, error) {
	recs, err := h.store.ListEntries()
	if err != nil {
		return nil, err
	}
	list := make([]financeapimodels.JournalEntryView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, financeapimodels.JournalEntryConvert(rec))
	}
	return list, nil
}

func (h handler) PostEntry(id string) (string, error) {
	rec, err := h.store.GetEntryByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Journal entry not found", nil
	}
	if rec.Status == models.JournalPosted {
		return "The journal entry is already posted", nil
	}
	return "", h.store.UpdateEntry(id, map[string]interface{}{
		"status": models.JournalPosted,
	})
}

func (h handler) TrialBalance(asOf time.Time) (*financeapimodels.TrialBalanceView, error) {
	lines, err := h.store.ListPostedLines(asOf)
	if err != nil {
		return nil, err
	}
	return buildTrialBalance(lines), nil
}
