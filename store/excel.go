package store

import (
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelSpreadsheet chạy trên một file .xlsx cục bộ, dùng khi không có
// mạng hoặc để import/export sổ sách.
type ExcelSpreadsheet struct {
	mu   sync.Mutex
	file *excelize.File
}

func OpenExcelFile(path string) (*ExcelSpreadsheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, err
		}
		return &ExcelSpreadsheet{file: f}, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelSpreadsheet{file: f}, nil
}

func (s *ExcelSpreadsheet) WorksheetTitles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.GetSheetList(), nil
}

func (s *ExcelSpreadsheet) Worksheet(title string) (Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.file.GetSheetList() {
		if t == title {
			return &excelWorksheet{parent: s, title: title}, nil
		}
	}
	return nil, ErrWorksheetNotFound
}

// AddWorksheet tạo sheet mới; xlsx tự giãn lưới nên rows/cols bỏ qua
func (s *ExcelSpreadsheet) AddWorksheet(title string, rows, cols int) (Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.NewSheet(title); err != nil {
		return nil, err
	}
	if err := s.file.Save(); err != nil {
		return nil, err
	}
	return &excelWorksheet{parent: s, title: title}, nil
}

type excelWorksheet struct {
	parent *ExcelSpreadsheet
	title  string
}

func (w *excelWorksheet) Title() string { return w.title }

func (w *excelWorksheet) RowValues(row int) ([]string, error) {
	rows, err := w.GetAllValues()
	if err != nil {
		return nil, err
	}
	if row < 1 || row > len(rows) {
		return nil, nil
	}
	return rows[row-1], nil
}

func (w *excelWorksheet) ColValues(col int) ([]string, error) {
	rows, err := w.GetAllValues()
	if err != nil {
		return nil, err
	}
	return columnFromGrid(rows, col), nil
}

func (w *excelWorksheet) Get(rng string) ([][]string, error) {
	g, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}
	rows, err := w.GetAllValues()
	if err != nil {
		return nil, err
	}
	return sliceGrid(rows, g), nil
}

func (w *excelWorksheet) BatchGet(ranges []string) ([][][]string, error) {
	out := make([][][]string, 0, len(ranges))
	for _, rng := range ranges {
		grid, err := w.Get(rng)
		if err != nil {
			return nil, err
		}
		out = append(out, grid)
	}
	return out, nil
}

func (w *excelWorksheet) AppendRow(values []string) error {
	w.parent.mu.Lock()
	defer w.parent.mu.Unlock()
	rows, err := w.parent.file.GetRows(w.title)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := w.parent.file.SetSheetRow(w.title, CellRef(len(rows)+1, 1), &cells); err != nil {
		return err
	}
	return w.parent.file.Save()
}

func (w *excelWorksheet) Update(rng string, values [][]string) error {
	g, err := ParseRange(rng)
	if err != nil {
		return err
	}
	w.parent.mu.Lock()
	defer w.parent.mu.Unlock()
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		ref := CellRef(g.StartRow+i, g.StartCol)
		if err := w.parent.file.SetSheetRow(w.title, ref, &cells); err != nil {
			return err
		}
	}
	return w.parent.file.Save()
}

func (w *excelWorksheet) GetAllValues() ([][]string, error) {
	w.parent.mu.Lock()
	defer w.parent.mu.Unlock()
	return w.parent.file.GetRows(w.title)
}
