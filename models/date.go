package models

import "time"

const DateFormat = "2006-01-02"

// Các định dạng ngày chấp nhận được, thử theo thứ tự
var dateFormats = []string{
	DateFormat,
	"02/01/2006",
	"02/01/2006 15:04:05",
}

// ParseDate thử lần lượt từng định dạng; trả về nil nếu rỗng hoặc không
// parse được (không bao giờ lỗi).
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// FormatDate renders a date as YYYY-MM-DD, or "" for nil.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateFormat)
}
