package dbmodels

import (
	"hrms-backend/models"
	"time"
)

type PurchaseOrder struct {
	BaseModel
	Number       string `gorm:"type:varchar(50);uniqueIndex"`
	SupplierName string `gorm:"type:varchar(255)"`
	OrderDate    time.Time
	Status       models.OrderStatus  `gorm:"type:varchar(20)"`
	Lines        []PurchaseOrderLine `gorm:"foreignKey:PurchaseOrderID"`
}

type PurchaseOrderLine struct {
	BaseModel
	PurchaseOrderID string `gorm:"type:varchar(36);index"`
	ItemCode        string `gorm:"type:varchar(50)"`
	Description     string
	Quantity        float64 `gorm:"type:numeric(14,3)"`
	UnitPrice       float64 `gorm:"type:numeric(14,2)"`
}

type GoodsReceipt struct {
	BaseModel
	PurchaseOrderID string `gorm:"type:varchar(36);index"`
	Number          string `gorm:"type:varchar(50);uniqueIndex"`
	ReceivedAt      time.Time
	Lines           []GoodsReceiptLine `gorm:"foreignKey:GoodsReceiptID"`
}

type GoodsReceiptLine struct {
	BaseModel
	GoodsReceiptID string  `gorm:"type:varchar(36);index"`
	ItemCode       string  `gorm:"type:varchar(50)"`
	Quantity       float64 `gorm:"type:numeric(14,3)"`
}

type SupplierInvoice struct {
	BaseModel
	PurchaseOrderID string `gorm:"type:varchar(36);index"`
	Number          string `gorm:"type:varchar(50);uniqueIndex"`
	SupplierName    string `gorm:"type:varchar(255)"`
	InvoiceDate     time.Time
	Status          models.InvoiceStatus  `gorm:"type:varchar(20);index"`
	MatchNotes      string
	Lines           []SupplierInvoiceLine `gorm:"foreignKey:InvoiceID"`
}

type SupplierInvoiceLine struct {
	BaseModel
	InvoiceID string  `gorm:"type:varchar(36);index"`
	ItemCode  string  `gorm:"type:varchar(50)"`
	Quantity  float64 `gorm:"type:numeric(14,3)"`
	UnitPrice float64 `gorm:"type:numeric(14,2)"`
}
