// Package xlsexport builds spreadsheet reports.
package xlsexport

import (
	"bytes"
	"fmt"

	workflowengine "hrms-backend/lib/workflow/engine"

	"github.com/xuri/excelize/v2"
)

// WorkflowStats renders the approval statistics as an xlsx workbook with a
// summary sheet and a per-workflow breakdown.
func WorkflowStats(stats *workflowengine.Stats) ([]byte, error) {
	book := excelize.NewFile()
	defer book.Close()

	const summary = "Summary"
	if err := book.SetSheetName(book.GetSheetName(0), summary); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Active instances", stats.ActiveInstances},
		{"Completed instances", stats.CompletedInstances},
		{"Rejected instances", stats.RejectedInstances},
		{"Cancelled instances", stats.CancelledInstances},
		{"Pending requests", stats.PendingRequests},
	}
	for idx, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return nil, err
		}
		if err := book.SetSheetRow(summary, cell, &row); err != nil {
			return nil, err
		}
	}

	const breakdown = "By Workflow"
	if _, err := book.NewSheet(breakdown); err != nil {
		return nil, err
	}
	header := []interface{}{"Workflow", "Status", "Count"}
	if err := book.SetSheetRow(breakdown, "A1", &header); err != nil {
		return nil, err
	}
	for idx, row := range stats.ByWorkflow {
		values := []interface{}{row.WorkflowCode, string(row.Status), row.Count}
		if err := book.SetSheetRow(breakdown, fmt.Sprintf("A%d", idx+2), &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
