package models

type AccountType string

const (
	AccountAsset     AccountType = "ASSET"
	AccountLiability AccountType = "LIABILITY"
	AccountEquity    AccountType = "EQUITY"
	AccountIncome    AccountType = "INCOME"
	AccountExpense   AccountType = "EXPENSE"
)

type JournalStatus string

const (
	JournalDraft  JournalStatus = "DRAFT"
	JournalPosted JournalStatus = "POSTED"
)

type InvoiceStatus string

const (
	InvoiceDraft       InvoiceStatus = "DRAFT"
	InvoiceMatched     InvoiceStatus = "MATCHED"
	InvoiceMatchFailed InvoiceStatus = "MATCH_FAILED"
	InvoiceApproved    InvoiceStatus = "APPROVED"
	InvoicePaid        InvoiceStatus = "PAID"
)

type OrderStatus string

const (
	OrderOpen   OrderStatus = "OPEN"
	OrderClosed OrderStatus = "CLOSED"
)
