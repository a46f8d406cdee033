// Package spreadsheet renders order listings as XLSX workbooks.
package spreadsheet

import (
	"fmt"
	"io"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheet = "Orders"

	timeLayout = "2006-01-02 15:04:05"
)

var ordersHeader = []any{"ID", "Created", "Restaurant", "Client", "Status", "Completed", "Total"}

// WriteOrders writes one row per order below a header row to w.
// Times are UTC, totals keep two decimals.
func WriteOrders(w io.Writer, orders []queries.OrderView) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), OrdersSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err = f.SetSheetRow(OrdersSheet, "A1", &ordersHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, view := range orders {
		completed := ""
		if view.CompletedAt != nil {
			completed = view.CompletedAt.UTC().Format(timeLayout)
		}

		row := []any{
			view.ID.String(),
			view.CreatedAt.UTC().Format(timeLayout),
			view.Restaurant.Name,
			view.Client.Name + " " + view.Client.Surname,
			view.Status.String(),
			completed,
			view.Total.StringFixed(2),
		}

		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return cellErr
		}
		if err = f.SetSheetRow(OrdersSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write order %s: %w", view.ID, err)
		}
	}

	if err = f.SetColWidth(OrdersSheet, "A", "A", 38); err != nil {
		return err
	}
	if err = f.SetColWidth(OrdersSheet, "B", "F", 20); err != nil {
		return err
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
