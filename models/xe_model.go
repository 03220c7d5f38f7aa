package models

import "time"

// Header của sheet Xe. Thứ tự cột là hợp đồng với sheet, không đổi.
var XeHeaders = []string{
	"ID",
	"NgayXuat",
	"TrangThai",
	"GhiChu",
	"NgayDuKien",
	"Tên nhà cung cấp",
	"Trạng thái thanh toán",
	"Biển kiểm soát",
	"Lái xe",
	"SBT lái xe",
	"Ghi chú",
}

// Xe là một chuyến xe vận tải
type Xe struct {
	ID                 string     `json:"id"`
	NgayXuat           *time.Time `json:"ngay_xuat"`
	TrangThai          string     `json:"trang_thai"`
	GhiChu             string     `json:"ghi_chu"`
	NgayDuKien         *time.Time `json:"ngay_du_kien"`
	TenNhaCungCap      string     `json:"ten_ncc"`
	TrangThaiThanhToan string     `json:"tt_thanh_toan"`
	BienKiemSoat       string     `json:"bien_ks"`
	LaiXe              string     `json:"lai_xe"`
	SbtLaiXe           string     `json:"sbt_lai_xe"`
	GhiChuKhac         string     `json:"ghi_chu_khac"`
}

func (x *Xe) ToRecord() Record {
	return Record{
		"ID":         x.ID,
		"NgayXuat":   FormatDate(x.NgayXuat),
		"TrangThai":  x.TrangThai,
		"GhiChu":     x.GhiChu,
		"NgayDuKien": FormatDate(x.NgayDuKien),
		// Các key dưới khớp header tiếng Việt trên sheet
		"Tên nhà cung cấp":      x.TenNhaCungCap,
		"Trạng thái thanh toán": x.TrangThaiThanhToan,
		"Biển kiểm soát":        x.BienKiemSoat,
		"Lái xe":                x.LaiXe,
		"SBT lái xe":            x.SbtLaiXe,
		"Ghi chú":               x.GhiChuKhac,
	}
}

func XeFromRecord(r Record) *Xe {
	return &Xe{
		ID:                 r.Get("ID"),
		NgayXuat:           ParseDate(r.Get("NgayXuat")),
		TrangThai:          r.Get("TrangThai"),
		GhiChu:             r.Get("GhiChu"),
		NgayDuKien:         ParseDate(r.Get("NgayDuKien")),
		TenNhaCungCap:      r.Get("Tên nhà cung cấp"),
		TrangThaiThanhToan: r.Get("Trạng thái thanh toán"),
		BienKiemSoat:       r.Get("Biển kiểm soát"),
		LaiXe:              r.Get("Lái xe"),
		SbtLaiXe:           r.Get("SBT lái xe"),
		GhiChuKhac:         r.Get("Ghi chú"),
	}
}
