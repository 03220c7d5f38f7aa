// Package store trừu tượng hóa kho dữ liệu dạng bảng tính: Google Sheets,
// file Excel, SQL mirror hoặc bộ nhớ (cho test). Mọi backend đều là lưới
// dòng/cột 1-based với dòng 1 là header.
package store

import (
	"errors"

	"billxe-app/models"
)

var ErrWorksheetNotFound = errors.New("worksheet not found")

// Worksheet là một bảng dữ liệu. Mọi thao tác là một round trip, không
// cache, không retry; lỗi transport trả thẳng cho caller.
type Worksheet interface {
	Title() string

	// RowValues returns row values (1-based) up to the last non-empty cell.
	RowValues(row int) ([]string, error)

	// ColValues returns column values (1-based) up to the last non-empty cell.
	ColValues(col int) ([]string, error)

	// Get reads one A1 range, e.g. "A2:F21".
	Get(rng string) ([][]string, error)

	// BatchGet reads many A1 ranges in a single call.
	BatchGet(ranges []string) ([][][]string, error)

	// AppendRow adds a row after the last non-empty row.
	AppendRow(values []string) error

	// Update writes a grid anchored at the range's first cell, e.g. "A5".
	Update(rng string, values [][]string) error

	GetAllValues() ([][]string, error)
}

type Spreadsheet interface {
	WorksheetTitles() ([]string, error)
	Worksheet(title string) (Worksheet, error)
	AddWorksheet(title string, rows, cols int) (Worksheet, error)
}

// FindWorksheetByAlias trả về worksheet đầu tiên có tên trong danh sách
// alias; (nil, nil) nếu không có.
func FindWorksheetByAlias(ss Spreadsheet, aliases []string) (Worksheet, error) {
	titles, err := ss.WorksheetTitles()
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}
	for _, name := range aliases {
		if existing[name] {
			return ss.Worksheet(name)
		}
	}
	return nil, nil
}

// GetOrCreateWorksheet mở worksheet theo tên, tạo mới kèm header nếu chưa
// có. Nếu dòng header lệch so với chuẩn thì ghi đè dòng 1 (dữ liệu giữ
// nguyên).
func GetOrCreateWorksheet(ss Spreadsheet, title string, headers []string) (Worksheet, error) {
	ws, err := ss.Worksheet(title)
	if errors.Is(err, ErrWorksheetNotFound) {
		cols := len(headers)
		if cols < 26 {
			cols = 26
		}
		ws, err = ss.AddWorksheet(title, 1000, cols)
		if err != nil {
			return nil, err
		}
		if err := ws.AppendRow(headers); err != nil {
			return nil, err
		}
		return ws, nil
	}
	if err != nil {
		return nil, err
	}

	existing, err := ws.RowValues(1)
	if err != nil {
		return nil, err
	}
	if !equalRows(existing, headers) {
		if len(existing) == 0 {
			err = ws.AppendRow(headers)
		} else {
			err = ws.Update("A1", [][]string{headers})
		}
		if err != nil {
			return nil, err
		}
	}
	return ws, nil
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ReadRecords đọc toàn bộ worksheet thành danh sách record key theo header.
func ReadRecords(ws Worksheet) ([]models.Record, error) {
	values, err := ws.GetAllValues()
	if err != nil {
		return nil, err
	}
	if len(values) < 1 {
		return nil, nil
	}
	headers := values[0]
	records := make([]models.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		records = append(records, models.NewRecord(headers, row))
	}
	return records, nil
}

// AppendRecord ghi thêm một record theo thứ tự header hiện tại của sheet.
func AppendRecord(ws Worksheet, record models.Record) error {
	headers, err := ws.RowValues(1)
	if err != nil {
		return err
	}
	return ws.AppendRow(record.ToRow(headers))
}

// UpsertRecord tìm dòng có cột khóa trùng giá trị record[keyField]: có thì
// ghi đè đúng dòng đó, không thì ghi thêm. Đọc rồi ghi, không khóa — hai
// writer cùng lúc có thể mất update (chấp nhận).
func UpsertRecord(ws Worksheet, keyField string, record models.Record) error {
	headers, err := ws.RowValues(1)
	if err != nil {
		return err
	}
	values, err := ws.GetAllValues()
	if err != nil {
		return err
	}
	if len(values) == 0 {
		if err := ws.AppendRow(headers); err != nil {
			return err
		}
	}

	keyIndex := -1
	for i, h := range headers {
		if h == keyField {
			keyIndex = i
			break
		}
	}
	if keyIndex >= 0 {
		for i, row := range values {
			if i == 0 {
				continue
			}
			if len(row) > keyIndex && row[keyIndex] == record[keyField] {
				rowNum := i + 1
				return ws.Update(CellRef(rowNum, 1), [][]string{record.ToRow(headers)})
			}
		}
	}
	return AppendRecord(ws, record)
}
