package store

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnLetter đổi chỉ số cột 1-based sang nhãn chữ kiểu bảng tính
// (1→A, 26→Z, 27→AA). Base-26 không có số 0 nên phải trừ 1 trước khi chia.
func ColumnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

// LetterToColumn là hàm ngược của ColumnLetter (A→1, AA→27).
func LetterToColumn(letters string) int {
	col := 0
	for _, r := range letters {
		col = col*26 + int(r-'A') + 1
	}
	return col
}

// CellRef builds an A1 cell reference, e.g. CellRef(5, 1) == "A5".
func CellRef(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnLetter(col), row)
}

// RowRange builds a single-row range "A<row>:<lastCol><row>".
func RowRange(row, lastCol int) string {
	return fmt.Sprintf("A%d:%s%d", row, ColumnLetter(lastCol), row)
}

// GridRange là một vùng A1 đã phân giải về tọa độ 1-based.
type GridRange struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// ParseRange phân giải "A2:F21" hoặc tham chiếu ô đơn "A5" (khi đó
// End = Start). Dùng bởi các backend tự quản lý lưới (memory, db, excel).
func ParseRange(rng string) (GridRange, error) {
	parts := strings.SplitN(rng, ":", 2)
	startRow, startCol, err := parseCell(parts[0])
	if err != nil {
		return GridRange{}, err
	}
	g := GridRange{StartRow: startRow, StartCol: startCol, EndRow: startRow, EndCol: startCol}
	if len(parts) == 2 {
		endRow, endCol, err := parseCell(parts[1])
		if err != nil {
			return GridRange{}, err
		}
		g.EndRow, g.EndCol = endRow, endCol
	}
	return g, nil
}

func parseCell(ref string) (row, col int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return row, LetterToColumn(ref[:i]), nil
}

// sliceGrid cắt một vùng từ lưới, pad ô thiếu bằng "" rồi bỏ dòng rỗng
// cuối vùng, giống Sheets API trả về.
func sliceGrid(rows [][]string, g GridRange) [][]string {
	var out [][]string
	for row := g.StartRow; row <= g.EndRow && row <= len(rows); row++ {
		src := rows[row-1]
		var cells []string
		for col := g.StartCol; col <= g.EndCol; col++ {
			if col-1 < len(src) {
				cells = append(cells, src[col-1])
			} else {
				cells = append(cells, "")
			}
		}
		out = append(out, trimTrailing(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// columnFromGrid lấy một cột, trả về tới ô khác rỗng cuối cùng.
func columnFromGrid(rows [][]string, col int) []string {
	var values []string
	last := 0
	for i, row := range rows {
		v := ""
		if col-1 < len(row) {
			v = row[col-1]
		}
		values = append(values, v)
		if v != "" {
			last = i + 1
		}
	}
	return values[:last]
}
