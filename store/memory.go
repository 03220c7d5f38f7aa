package store

import "sync"

// MemorySpreadsheet là backend trong bộ nhớ, dùng cho test và chạy thử
// không cần Google Sheets.
type MemorySpreadsheet struct {
	mu     sync.Mutex
	order  []string
	sheets map[string]*MemoryWorksheet
}

func NewMemorySpreadsheet() *MemorySpreadsheet {
	return &MemorySpreadsheet{sheets: make(map[string]*MemoryWorksheet)}
}

func (s *MemorySpreadsheet) WorksheetTitles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, len(s.order))
	copy(titles, s.order)
	return titles, nil
}

func (s *MemorySpreadsheet) Worksheet(title string) (Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.sheets[title]
	if !ok {
		return nil, ErrWorksheetNotFound
	}
	return ws, nil
}

func (s *MemorySpreadsheet) AddWorksheet(title string, rows, cols int) (Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[title]; ok {
		return s.sheets[title], nil
	}
	ws := &MemoryWorksheet{title: title}
	s.sheets[title] = ws
	s.order = append(s.order, title)
	return ws, nil
}

// MemoryWorksheet giữ lưới dữ liệu thô. BatchGetCalls đếm số lần gọi
// BatchGet để test kiểm tra tra cứu theo cột chỉ tốn một round trip.
type MemoryWorksheet struct {
	title string
	grid  [][]string

	BatchGetCalls int
}

func (w *MemoryWorksheet) Title() string { return w.title }

func (w *MemoryWorksheet) RowValues(row int) ([]string, error) {
	if row < 1 || row > len(w.grid) {
		return nil, nil
	}
	return trimTrailing(w.grid[row-1]), nil
}

func (w *MemoryWorksheet) ColValues(col int) ([]string, error) {
	if col < 1 {
		return nil, nil
	}
	return columnFromGrid(w.grid, col), nil
}

func (w *MemoryWorksheet) Get(rng string) ([][]string, error) {
	g, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}
	return sliceGrid(w.grid, g), nil
}

func (w *MemoryWorksheet) BatchGet(ranges []string) ([][][]string, error) {
	w.BatchGetCalls++
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

func (w *MemoryWorksheet) AppendRow(values []string) error {
	row := make([]string, len(values))
	copy(row, values)
	w.grid = append(w.grid, row)
	return nil
}

func (w *MemoryWorksheet) Update(rng string, values [][]string) error {
	g, err := ParseRange(rng)
	if err != nil {
		return err
	}
	for i, srcRow := range values {
		row := g.StartRow + i
		for len(w.grid) < row {
			w.grid = append(w.grid, nil)
		}
		dst := w.grid[row-1]
		for j, v := range srcRow {
			col := g.StartCol + j
			for len(dst) < col {
				dst = append(dst, "")
			}
			dst[col-1] = v
		}
		w.grid[row-1] = dst
	}
	return nil
}

func (w *MemoryWorksheet) GetAllValues() ([][]string, error) {
	out := make([][]string, 0, len(w.grid))
	for _, row := range w.grid {
		cells := make([]string, len(row))
		copy(cells, row)
		out = append(out, cells)
	}
	for len(out) > 0 && len(trimTrailing(out[len(out)-1])) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func trimTrailing(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}
