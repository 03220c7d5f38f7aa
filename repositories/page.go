package repositories

import (
	"fmt"
	"strings"

	"billxe-app/models"
	"billxe-app/store"
)

// getPage đọc đúng một vùng dòng cho trang yêu cầu trong một lần gọi.
// Tổng số dòng đếm theo cột 1 (dòng trống cột 1 không tính vào tổng
// nhưng vẫn trả về nếu nằm trong vùng và có ô khác rỗng).
func getPage(ws store.Worksheet, headers []string, page, pageSize int) ([]models.Record, int, []string, error) {
	if len(headers) == 0 {
		return nil, 0, nil, nil
	}

	col1, err := ws.ColValues(1)
	if err != nil {
		return nil, 0, nil, err
	}
	total := len(col1) - 1
	if total < 0 {
		total = 0
	}

	startRow := 2 + (page-1)*pageSize
	if startRow < 2 {
		startRow = 2
	}
	endRow := startRow + pageSize - 1
	if endRow < startRow {
		endRow = startRow
	}

	rng := fmt.Sprintf("A%d:%s%d", startRow, store.ColumnLetter(len(headers)), endRow)
	values, err := ws.Get(rng)
	if err != nil {
		return nil, 0, nil, err
	}

	var rows []models.Record
	for _, row := range values {
		rec := models.NewRecord(headers, row)
		blank := true
		for _, h := range headers {
			if strings.TrimSpace(rec.Get(h)) != "" {
				blank = false
				break
			}
		}
		if !blank {
			rows = append(rows, rec)
		}
	}
	return rows, total, headers, nil
}

// GetBillsPage phân trang sheet Bill; không có sheet thì trang rỗng
func (r *Repo) GetBillsPage(page, pageSize int) ([]models.Record, int, []string, error) {
	if r.wsBill == nil {
		return nil, 0, nil, nil
	}
	headers, err := r.getBillHeaders()
	if err != nil {
		return nil, 0, nil, err
	}
	return getPage(r.wsBill, headers, page, pageSize)
}

// GetXePage phân trang sheet Xe; header đọc lại mỗi lần, không cache
func (r *Repo) GetXePage(page, pageSize int) ([]models.Record, int, []string, error) {
	headers, err := r.wsXe.RowValues(1)
	if err != nil {
		return nil, 0, nil, err
	}
	return getPage(r.wsXe, headers, page, pageSize)
}
