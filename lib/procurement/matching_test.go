package procurement

import (
	"testing"

	dbmodels "hrms-backend/models/db"

	"github.com/stretchr/testify/require"
)

func matchFixtures() (*dbmodels.PurchaseOrder, []dbmodels.GoodsReceipt) {
	order := &dbmodels.PurchaseOrder{
		Lines: []dbmodels.PurchaseOrderLine{
			{ItemCode: "PAPER-A4", Quantity: 100, UnitPrice: 10.00},
			{ItemCode: "TONER-BK", Quantity: 10, UnitPrice: 250.00},
		},
	}
	receipts := []dbmodels.GoodsReceipt{
		{Lines: []dbmodels.GoodsReceiptLine{
			{ItemCode: "PAPER-A4", Quantity: 60},
			{ItemCode: "TONER-BK", Quantity: 10},
		}},
		{Lines: []dbmodels.GoodsReceiptLine{
			{ItemCode: "PAPER-A4", Quantity: 40},
		}},
	}
	return order, receipts
}

func TestThreeWayMatch(t *testing.T) {
	t.Run("clean match", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				{ItemCode: "PAPER-A4", Quantity: 100, UnitPrice: 10.00},
				{ItemCode: "TONER-BK", Quantity: 10, UnitPrice: 250.00},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.True(t, result.OK)
		require.Empty(t, result.Notes)
	})

	t.Run("price within tolerance passes", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				// 1.5% above the ordered price, tolerance is 2%.
				{ItemCode: "PAPER-A4", Quantity: 100, UnitPrice: 10.15},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.True(t, result.OK)
	})

	t.Run("price outside tolerance fails", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				{ItemCode: "PAPER-A4", Quantity: 100, UnitPrice: 11.00},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.False(t, result.OK)
		require.Len(t, result.Notes, 1)
		require.Contains(t, result.Notes[0], "PAPER-A4")
		require.Contains(t, result.Notes[0], "deviates")
	})

	t.Run("invoiced more than received fails", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				{ItemCode: "TONER-BK", Quantity: 12, UnitPrice: 250.00},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.False(t, result.OK)
		require.Contains(t, result.Notes[0], "exceeds received")
	})

	t.Run("unordered item fails", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				{ItemCode: "STAPLER", Quantity: 1, UnitPrice: 30.00},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.False(t, result.OK)
		require.Contains(t, result.Notes[0], "not ordered")
	})

	t.Run("multiple findings are collected", func(t *testing.T) {
		order, receipts := matchFixtures()
		invoice := &dbmodels.SupplierInvoice{
			Lines: []dbmodels.SupplierInvoiceLine{
				{ItemCode: "PAPER-A4", Quantity: 150, UnitPrice: 20.00},
				{ItemCode: "STAPLER", Quantity: 1, UnitPrice: 30.00},
			},
		}

		result := threeWayMatch(invoice, order, receipts, 2.0)
		require.False(t, result.OK)
		require.Len(t, result.Notes, 3)
	})
}
