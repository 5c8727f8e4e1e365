package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type GLAccount struct {
	BaseModel
	Code        string             `gorm:"type:varchar(30);uniqueIndex"`
	Name        string             `gorm:"type:varchar(255)"`
	AccountType models.AccountType `gorm:"type:varchar(20)"`
	IsActive    bool
}

type JournalEntry struct {
	BaseModel
	Reference   string `gorm:"type:varchar(50);uniqueIndex"`
	Description string
	EntryDate   time.Time
	Status      models.JournalStatus `gorm:"type:varchar(20);index"`
	Lines       []JournalLine        `gorm:"foreignKey:JournalEntryID"`
}

type JournalLine struct {
	BaseModel
	JournalEntryID string `gorm:"type:varchar(36);index"`
	AccountID      string `gorm:"type:varchar(36);index"`
	Account        *GLAccount `gorm:"foreignKey:AccountID"`
	Debit          float64    `gorm:"type:numeric(16,2)"`
	Credit         float64    `gorm:"type:numeric(16,2)"`
	Memo           string
}
