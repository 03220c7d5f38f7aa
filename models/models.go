package models

// Record là một dòng dữ liệu của worksheet, key theo header.
// Header nào thiếu trong dòng thì giá trị là chuỗi rỗng.
type Record map[string]string

// Get returns the value for key, or "" when the key is absent.
func (r Record) Get(key string) string {
	return r[key]
}

// NewRecord merges a raw row with its header list. Cells beyond the
// row length become "".
func NewRecord(headers []string, row []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}

// ToRow flattens a record back to worksheet column order.
func (r Record) ToRow(headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		row[i] = r[h]
	}
	return row
}
