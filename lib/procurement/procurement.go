// Package procurement covers purchase orders, goods receipts and supplier
// invoices, with a three-way match gating invoice approval.
package procurement

import (
	"time"

	"hrms-backend/config"
	"hrms-backend/db"
	procurementstore "hrms-backend/lib/procurement/store"
	"hrms-backend/models"
	procurementapimodels "hrms-backend/models/api/procurement"
	dbmodels "hrms-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	CreateOrder(data procurementapimodels.PurchaseOrderData) (id string, hMsg string, err error)
	GetOrder(id string) (view *procurementapimodels.PurchaseOrderView, err error)
	ListOrders() (list []procurementapimodels.PurchaseOrderView, err error)
	CloseOrder(id string) (hMsg string, err error)

	CreateReceipt(data procurementapimodels.GoodsReceiptData) (id string, hMsg string, err error)

	CreateInvoice(data procurementapimodels.InvoiceData) (id string, hMsg string, err error)
	GetInvoice(id string) (view *procurementapimodels.InvoiceView, err error)
	ListInvoices() (list []procurementapimodels.InvoiceView, err error)
	// MatchInvoice runs the three-way match and moves the invoice to
	// MATCHED or MATCH_FAILED with the findings recorded.
	MatchInvoice(id string) (view *procurementapimodels.InvoiceView, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		store: procurementstore.NewInstance(tx),
		tolerancePct: func() float64 {
			return config.Conf.Workflow.MatchTolerancePct
		},
	}
}

type handler struct {
	store        procurementstore.Provider
	tolerancePct func() float64
}

func (h handler) CreateOrder(data procurementapimodels.PurchaseOrderData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	existing, err := h.store.GetOrderByNumber(data.Number)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "A purchase order with this number already exists", nil
	}
	orderDate := data.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	rec := dbmodels.PurchaseOrder{
		Number:       data.Number,
		SupplierName: data.SupplierName,
		OrderDate:    orderDate,
		Status:       models.OrderOpen,
	}
	for _, line := range data.Lines {
		rec.Lines = append(rec.Lines, dbmodels.PurchaseOrderLine{
			ItemCode:    line.ItemCode,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
	}
	id, err := h.store.CreateOrder(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetOrder(id string) (*procurementapimodels.PurchaseOrderView, error) {
	rec, err := h.store.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := procurementapimodels.PurchaseOrderConvert(*rec)
	return &view, nil
}

func (h handler) ListOrders() ([]procurementapimodels.PurchaseOrderView, error) {
	recs, err := h.store.ListOrders()
	if err != nil {
		return nil, err
	}
	list := make([]procurementapimodels.PurchaseOrderView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, procurementapimodels.PurchaseOrderConvert(rec))
	}
	return list, nil
}

func (h handler) CloseOrder(id string) (string, error) {
	rec, err := h.store.GetOrderByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "Purchase order not found", nil
	}
	if rec.Status == models.OrderClosed {
		return "The purchase order is already closed", nil
	}
	return "", h.store.UpdateOrder(id, map[string]interface{}{
		"status": models.OrderClosed,
	})
}

func (h handler) CreateReceipt(data procurementapimodels.GoodsReceiptData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	order, err := h.store.GetOrderByID(data.PurchaseOrderID)
	if err != nil {
		return "", "", err
	}
	if order == nil {
		return "", "Purchase order not found", nil
	}
	if order.Status == models.OrderClosed {
		return "", "Goods can not be received against a closed order", nil
	}
	receivedAt := data.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	rec := dbmodels.GoodsReceipt{
		PurchaseOrderID: data.PurchaseOrderID,
		Number:          data.Number,
		ReceivedAt:      receivedAt,
	}
	for _, line := range data.Lines {
		rec.Lines = append(rec.Lines, dbmodels.GoodsReceiptLine{
			ItemCode: line.ItemCode,
			Quantity: line.Quantity,
		})
	}
	id, err := h.store.CreateReceipt(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) CreateInvoice(data procurementapimodels.InvoiceData) (string, string, error) {
	if err := data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	order, err := h.store.GetOrderByID(data.PurchaseOrderID)
	if err != nil {
		return "", "", err
	}
	if order == nil {
		return "", "Purchase order not found", nil
	}
	invoiceDate := data.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	rec := dbmodels.SupplierInvoice{
		PurchaseOrderID: data.PurchaseOrderID,
		Number:          data.Number,
		SupplierName:    data.SupplierName,
		InvoiceDate:     invoiceDate,
		Status:          models.InvoiceDraft,
	}
	for _, line := range data.Lines {
		rec.Lines = append(rec.Lines, dbmodels.SupplierInvoiceLine{
			ItemCode:  line.ItemCode,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	id, err := h.store.CreateInvoice(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) GetInvoice(id string) (*procurementapimodels.InvoiceView, error) {
	rec, err := h.store.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := procurementapimodels.InvoiceConvert(*rec)
	return &view, nil
}

func (h handler) ListInvoices() ([]procurementapimodels.InvoiceView, error) {
	recs, err := h.store.ListInvoices()
	if err != nil {
		return nil, err
	}
	list := make([]procurementapimodels.InvoiceView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, procurementapimodels.InvoiceConvert(rec))
	}
	return list, nil
}

func (h handler) MatchInvoice(id string) (*procurementapimodels.InvoiceView, string, error) {
	invoice, err := h.store.GetInvoiceByID(id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "Invoice not found", nil
	}
	if invoice.Status != models.InvoiceDraft && invoice.Status != models.InvoiceMatchFailed {
		return nil, "Only a draft or previously failed invoice can be matched", nil
	}
	order, err := h.store.GetOrderByID(invoice.PurchaseOrderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "The purchase order of this invoice no longer exists", nil
	}
	receipts, err := h.store.ListReceiptsByOrder(order.ID)
	if err != nil {
		return nil, "", err
	}

	result := threeWayMatch(invoice, order, receipts, h.tolerancePct())
	status := models.InvoiceMatched
	if !result.OK {
		status = models.InvoiceMatchFailed
	}
	err = h.store.UpdateInvoice(id, map[string]interface{}{
		"status":      status,
		"match_notes": result.NotesText(),
	})
	if err != nil {
		return nil, "", err
	}
	invoice.Status = status
	invoice.MatchNotes = result.NotesText()
	view := procurementapimodels.InvoiceConvert(*invoice)
	return &view, "", nil
}
