package models

import (
	"strconv"
	"time"
)

// Header của sheet XepHang
var XepHeaders = []string{"ID", "Xe", "Bill", "SoLuong", "STT", "NgayDuKien"}

// XepHang là một dòng sổ xếp hàng: một phần số lượng của bill được xếp
// lên một xe. Sổ chỉ ghi thêm, không sửa, không xóa.
type XepHang struct {
	ID         string     `json:"id"`
	XeID       string     `json:"xe_id"`
	BillID     string     `json:"bill_id"`
	SoLuong    float64    `json:"so_luong"`
	STT        int        `json:"stt"`
	NgayDuKien *time.Time `json:"ngay_du_kien"`
}

func (x *XepHang) ToRecord() Record {
	return Record{
		"ID":         x.ID,
		"Xe":         x.XeID,
		"Bill":       x.BillID,
		"SoLuong":    strconv.FormatFloat(x.SoLuong, 'f', -1, 64),
		"STT":        strconv.Itoa(x.STT),
		"NgayDuKien": FormatDate(x.NgayDuKien),
	}
}

// PendingBill là một bill chưa xếp đủ số lượng
type PendingBill struct {
	BillID    string  `json:"BillID"`
	Total     float64 `json:"Total"`
	Assigned  float64 `json:"Assigned"`
	Remaining float64 `json:"Remaining"`
}
