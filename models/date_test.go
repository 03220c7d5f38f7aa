package models_test

import (
	"testing"
	"time"

	"billxe-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedFormats(t *testing.T) {
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2026-01-15",
		"15/01/2026",
		"15/01/2026 13:45:00",
	} {
		got := models.ParseDate(input)
		require.NotNil(t, got, "input %q", input)
		assert.Equal(t, want, *got, "input %q", input)
		// chuẩn hóa về ISO khi ghi lại
		assert.Equal(t, "2026-01-15", models.FormatDate(got), "input %q", input)
	}
}

func TestParseDate_BadInput(t *testing.T) {
	for _, input := range []string{"", "garbage", "2026-13-45", "31/02/x"} {
		assert.Nil(t, models.ParseDate(input), "input %q", input)
	}
}

func TestFormatDate_Nil(t *testing.T) {
	assert.Equal(t, "", models.FormatDate(nil))
}

func TestXe_RecordRoundTrip(t *testing.T) {
	ngayXuat := models.ParseDate("2026-02-01")
	ngayDuKien := models.ParseDate("2026-02-04")
	xe := &models.Xe{
		ID:                 "XE1",
		NgayXuat:           ngayXuat,
		TrangThai:          "Moi",
		GhiChu:             "hàng dễ vỡ",
		NgayDuKien:         ngayDuKien,
		TenNhaCungCap:      "NCC A",
		TrangThaiThanhToan: "Chưa thanh toán",
		BienKiemSoat:       "29C-123.45",
		LaiXe:              "Nguyễn Văn A",
		SbtLaiXe:           "0123456789",
		GhiChuKhac:         "ghi chú khác",
	}

	rec := xe.ToRecord()
	for _, h := range models.XeHeaders {
		_, ok := rec[h]
		assert.True(t, ok, "record missing header %q", h)
	}

	got := models.XeFromRecord(rec)
	assert.Equal(t, xe, got)
}

func TestXepHang_ToRecord(t *testing.T) {
	xh := &models.XepHang{
		ID:         "abc12345",
		XeID:       "XE1",
		BillID:     "B1",
		SoLuong:    12.5,
		STT:        2,
		NgayDuKien: models.ParseDate("2026-02-04"),
	}

	rec := xh.ToRecord()
	assert.Equal(t, "abc12345", rec.Get("ID"))
	assert.Equal(t, "XE1", rec.Get("Xe"))
	assert.Equal(t, "B1", rec.Get("Bill"))
	assert.Equal(t, "12.5", rec.Get("SoLuong"))
	assert.Equal(t, "2", rec.Get("STT"))
	assert.Equal(t, "2026-02-04", rec.Get("NgayDuKien"))
}

func TestNewRecord_PadsShortRows(t *testing.T) {
	rec := models.NewRecord([]string{"A", "B", "C"}, []string{"1"})
	assert.Equal(t, "1", rec.Get("A"))
	assert.Equal(t, "", rec.Get("B"))
	assert.Equal(t, "", rec.Get("C"))
}
