package procurementapimodels

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type OrderLineData struct {
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type PurchaseOrderData struct {
	Number       string          `json:"number"`
	SupplierName string          `json:"supplier_name"`
	OrderDate    time.Time       `json:"order_date"`
	Lines        []OrderLineData `json:"lines"`
}

func (r PurchaseOrderData) Validate() error {
	if r.Number == "" {
		return errors.New("order number is required")
	}
	if len(r.Lines) == 0 {
		return errors.New("an order needs at least one line")
	}
	for _, line := range r.Lines {
		if line.ItemCode == "" {
			return errors.New("every order line needs an item code")
		}
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			return errors.New("order line quantity/price is invalid")
		}
	}
	return nil
}

type PurchaseOrderView struct {
	PurchaseOrderData
	ID     string             `json:"id"`
	Status models.OrderStatus `json:"status"`
}

func PurchaseOrderConvert(rec dbmodels.PurchaseOrder) PurchaseOrderView {
	view := PurchaseOrderView{
		PurchaseOrderData: PurchaseOrderData{
			Number:       rec.Number,
			SupplierName: rec.SupplierName,
			OrderDate:    rec.OrderDate,
			Lines:        make([]OrderLineData, 0, len(rec.Lines)),
		},
		ID:     rec.ID,
		Status: rec.Status,
	}
	for _, line := range rec.Lines {
		view.Lines = append(view.Lines, OrderLineData{
			ItemCode:    line.ItemCode,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}
	return view
}

type ReceiptLineData struct {
	ItemCode string  `json:"item_code"`
	Quantity float64 `json:"quantity"`
}

type GoodsReceiptData struct {
	PurchaseOrderID string            `json:"purchase_order_id"`
	Number          string            `json:"number"`
	ReceivedAt      time.Time         `json:"received_at"`
	Lines           []ReceiptLineData `json:"lines"`
}

func (r GoodsReceiptData) Validate() error {
	if r.PurchaseOrderID == "" {
		return errors.New("purchase order id is required")
	}
	if r.Number == "" {
		return errors.New("receipt number is required")
	}
	if len(r.Lines) == 0 {
		return errors.New("a receipt needs at least one line")
	}
	return nil
}

type GoodsReceiptView struct {
	GoodsReceiptData
	ID string `json:"id"`
}

func GoodsReceiptConvert(rec dbmodels.GoodsReceipt) GoodsReceiptView {
	view := GoodsReceiptView{
		GoodsReceiptData: GoodsReceiptData{
			PurchaseOrderID: rec.PurchaseOrderID,
			Number:          rec.Number,
			ReceivedAt:      rec.ReceivedAt,
			Lines:           make([]ReceiptLineData, 0, len(rec.Lines)),
		},
		ID: rec.ID,
	}
	for _, line := range rec.Lines {
		view.Lines = append(view.Lines, ReceiptLineData{
			ItemCode: line.ItemCode,
			Quantity: line.Quantity,
		})
	}
	return view
}

type InvoiceLineData struct {
	ItemCode  string  `json:"item_code"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type InvoiceData struct {
	PurchaseOrderID string            `json:"purchase_order_id"`
	Number          string            `json:"number"`
	SupplierName    string            `json:"supplier_name"`
	InvoiceDate     time.Time         `json:"invoice_date"`
	Lines           []InvoiceLineData `json:"lines"`
}

func (r InvoiceData) Validate() error {
	if r.PurchaseOrderID == "" {
		return errors.New("purchase order id is required")
	}
	if r.Number == "" {
		return errors.New("invoice number is required")
	}
	if len(r.Lines) == 0 {
		return errors.New("an invoice needs at least one line")
	}
	return nil
}

type InvoiceView struct {
	InvoiceData
	ID         string               `json:"id"`
	Status     models.InvoiceStatus `json:"status"`
	MatchNotes string               `json:"match_notes,omitempty"`
}

func InvoiceConvert(rec dbmodels.SupplierInvoice) InvoiceView {
	view := InvoiceView{
		InvoiceData: InvoiceData{
			PurchaseOrderID: rec.PurchaseOrderID,
			Number:          rec.Number,
			SupplierName:    rec.SupplierName,
			InvoiceDate:     rec.InvoiceDate,
			Lines:           make([]InvoiceLineData, 0, len(rec.Lines)),
		},
		ID:         rec.ID,
		Status:     rec.Status,
		MatchNotes: rec.MatchNotes,
	}
	for _, line := range rec.Lines {
		view.Lines = append(view.Lines, InvoiceLineData{
			ItemCode:  line.ItemCode,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return view
}
