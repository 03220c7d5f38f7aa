package models

import "gorm.io/gorm"

// SheetRow lưu một dòng worksheet trong database khi chạy backend SQL.
// Cells là mảng JSON các giá trị cột.
type SheetRow struct {
	gorm.Model
	Sheet  string `gorm:"index:idx_sheet_row,unique"`
	RowNum int    `gorm:"index:idx_sheet_row,unique"`
	Cells  string
}

// SheetMeta đánh dấu worksheet đã tạo (kể cả khi chưa có dòng nào)
type SheetMeta struct {
	gorm.Model
	Title string `gorm:"unique"`
}
