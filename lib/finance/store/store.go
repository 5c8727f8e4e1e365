package financestore

import (
	"time"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateAccount(rec dbmodels.GLAccount) (id string, err error)
	GetAccountByID(id string) (rec *dbmodels.GLAccount, err error)
	GetAccountByCode(code string) (rec *dbmodels.GLAccount, err error)
	ListAccounts() (list []dbmodels.GLAccount, err error)

	CreateEntry(rec dbmodels.JournalEntry) (id string, err error)
	GetEntryByID(id string) (rec *dbmodels.JournalEntry, err error)
	GetEntryByReference(reference string) (rec *dbmodels.JournalEntry, err error)
	UpdateEntry(id string, updMap map[string]interface{}) error
	ListEntries() (list []dbmodels.JournalEntry, err error)
	// ListPostedLines returns posted journal lines with accounts, limited to
	// entries dated up to and including asOf.
	ListPostedLines(asOf time.Time) (list []dbmodels.JournalLine, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateAccount(rec dbmodels.GLAccount) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetAccountByID(id string) (*dbmodels.GLAccount, error) {
	rec := dbmodels.GLAccount{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetAccountByCode(code string) (*dbmodels.GLAccount, error) {
	rec := dbmodels.GLAccount{}
	err := i.db.
		Where("code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListAccounts() (list []dbmodels.GLAccount, err error) {
	list = []dbmodels.GLAccount{}
	err = i.db.
		Order("code ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateEntry(rec dbmodels.JournalEntry) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetEntryByID(id string) (*dbmodels.JournalEntry, error) {
	rec := dbmodels.JournalEntry{}
	err := i.db.
		Where("id = ?", id).
		Preload("Lines").
		Preload("Lines.Account").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetEntryByReference(reference string) (*dbmodels.JournalEntry, error) {
	rec := dbmodels.JournalEntry{}
	err := i.db.
		Where("reference = ?", reference).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateEntry(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.JournalEntry{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListEntries() (list []dbmodels.JournalEntry, err error) {
	list = []dbmodels.JournalEntry{}
	err = i.db.
		Order("entry_date DESC, created_at DESC").
		Preload("Lines").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPostedLines(asOf time.Time) (list []dbmodels.JournalLine, err error) {
	list = []dbmodels.JournalLine{}
	err = i.db.
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.journal_entry_id").
		Where("journal_entries.status = ?", models.JournalPosted).
		Where("journal_entries.entry_date <= ?", asOf).
		Preload("Account").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
