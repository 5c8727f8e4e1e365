package procurementstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateOrder(rec dbmodels.PurchaseOrder) (id string, err error)
	GetOrderByID(id string) (rec *dbmodels.PurchaseOrder, err error)
	GetOrderByNumber(number string) (rec *dbmodels.PurchaseOrder, err error)
	UpdateOrder(id string, updMap map[string]interface{}) error
	ListOrders() (list []dbmodels.PurchaseOrder, err error)

	CreateReceipt(rec dbmodels.GoodsReceipt) (id string, err error)
	ListReceiptsByOrder(orderID string) (list []dbmodels.GoodsReceipt, err error)

	CreateInvoice(rec dbmodels.SupplierInvoice) (id string, err error)
	GetInvoiceByID(id string) (rec *dbmodels.SupplierInvoice, err error)
	UpdateInvoice(id string, updMap map[string]interface{}) error
	ListInvoices() (list []dbmodels.SupplierInvoice, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateOrder(rec dbmodels.PurchaseOrder) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetOrderByID(id string) (*dbmodels.PurchaseOrder, error) {
	rec := dbmodels.PurchaseOrder{}
	err := i.db.
		Where("id = ?", id).
		Preload("Lines").
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

func (i impl) GetOrderByNumber(number string) (*dbmodels.PurchaseOrder, error) {
	rec := dbmodels.PurchaseOrder{}
	err := i.db.
		Where("number = ?", number).
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

func (i impl) UpdateOrder(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.PurchaseOrder{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListOrders() (list []dbmodels.PurchaseOrder, err error) {
	list = []dbmodels.PurchaseOrder{}
	err = i.db.
		Order("order_date DESC").
		Preload("Lines").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateReceipt(rec dbmodels.GoodsReceipt) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListReceiptsByOrder(orderID string) (list []dbmodels.GoodsReceipt, err error) {
	list = []dbmodels.GoodsReceipt{}
	err = i.db.
		Where("purchase_order_id = ?", orderID).
		Order("received_at ASC").
		Preload("Lines").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateInvoice(rec dbmodels.SupplierInvoice) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetInvoiceByID(id string) (*dbmodels.SupplierInvoice, error) {
	rec := dbmodels.SupplierInvoice{}
	err := i.db.
		Where("id = ?", id).
		Preload("Lines").
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

func (i impl) UpdateInvoice(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.SupplierInvoice{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListInvoices() (list []dbmodels.SupplierInvoice, err error) {
	list = []dbmodels.SupplierInvoice{}
	err = i.db.
		Order("invoice_date DESC").
		Preload("Lines").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
