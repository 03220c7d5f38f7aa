package repositories_test

import (
	"testing"

	"billxe-app/models"
	"billxe-app/repositories"
	"billxe-app/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*repositories.Repo, *store.MemorySpreadsheet) {
	t.Helper()
	ss := store.NewMemorySpreadsheet()
	repo, err := repositories.NewRepo(ss)
	require.NoError(t, err)
	return repo, ss
}

func xepSheet(t *testing.T, ss *store.MemorySpreadsheet) *store.MemoryWorksheet {
	t.Helper()
	ws, err := ss.Worksheet("XepHang")
	require.NoError(t, err)
	return ws.(*store.MemoryWorksheet)
}

func TestNewRepo_CreatesManagedSheets(t *testing.T) {
	_, ss := newTestRepo(t)

	titles, err := ss.WorksheetTitles()
	require.NoError(t, err)
	assert.Contains(t, titles, "Xe")
	assert.Contains(t, titles, "XepHang")
	assert.NotContains(t, titles, "Bill") // sheet Bill không bao giờ tự tạo
}

func TestNewRepo_BindsByAlias(t *testing.T) {
	ss := store.NewMemorySpreadsheet()
	ws, err := ss.AddWorksheet("Xếp hàng", 100, 26)
	require.NoError(t, err)
	require.NoError(t, ws.AppendRow(models.XepHeaders))

	_, err = repositories.NewRepo(ss)
	require.NoError(t, err)

	titles, err := ss.WorksheetTitles()
	require.NoError(t, err)
	assert.NotContains(t, titles, "XepHang", "alias matched, no canonical sheet should be created")
}

func TestCreateXe_DerivesNgayDuKien(t *testing.T) {
	repo, _ := newTestRepo(t)

	xe, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1", NgayXuat: "2026-01-10"})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-10", models.FormatDate(xe.NgayXuat))
	assert.Equal(t, "2026-01-13", models.FormatDate(xe.NgayDuKien))
	assert.Equal(t, "Moi", xe.TrangThai)

	// lưu luôn giá trị đã tính, đọc lại vẫn thấy
	got, err := repo.GetXe("XE1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-01-13", models.FormatDate(got.NgayDuKien))
}

func TestCreateXe_NoNgayXuat(t *testing.T) {
	repo, _ := newTestRepo(t)

	xe, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1"})
	require.NoError(t, err)
	assert.Nil(t, xe.NgayXuat)
	assert.Nil(t, xe.NgayDuKien)
}

func TestCreateXe_UpsertIdempotent(t *testing.T) {
	repo, ss := newTestRepo(t)

	_, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1", GhiChu: "first"})
	require.NoError(t, err)
	_, err = repo.CreateXe(repositories.CreateXeInput{ID: "XE1", GhiChu: "second"})
	require.NoError(t, err)

	ws, err := ss.Worksheet("Xe")
	require.NoError(t, err)
	values, err := ws.GetAllValues()
	require.NoError(t, err)
	assert.Len(t, values, 2, "header + exactly one row for XE1")

	got, err := repo.GetXe("XE1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.GhiChu)
}

func TestGetXe_Miss(t *testing.T) {
	repo, _ := newTestRepo(t)

	xe, err := repo.GetXe("nope")
	require.NoError(t, err)
	assert.Nil(t, xe)
}

func TestAddXep_AppendOnly(t *testing.T) {
	repo, ss := newTestRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.AddXep("XE1", "B1", 10, 1, "")
		require.NoError(t, err)
	}

	values, err := xepSheet(t, ss).GetAllValues()
	require.NoError(t, err)
	assert.Len(t, values, 4, "header + one row per AddXep, nothing overwritten")
}

func TestAddXep_GeneratesShortID(t *testing.T) {
	repo, _ := newTestRepo(t)

	xh, err := repo.AddXep("XE1", "B1", 10, 1, "")
	require.NoError(t, err)
	assert.Len(t, xh.ID, 8)
}

func TestAddXep_InheritsNgayDuKienCopy(t *testing.T) {
	repo, ss := newTestRepo(t)

	_, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1", NgayXuat: "2026-01-10"})
	require.NoError(t, err)

	xh, err := repo.AddXep("XE1", "B1", 10, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-13", models.FormatDate(xh.NgayDuKien))

	// đổi ngày của xe sau đó: dòng xếp hàng cũ giữ bản chép, không đổi theo
	_, err = repo.CreateXe(repositories.CreateXeInput{ID: "XE1", NgayXuat: "2026-03-01"})
	require.NoError(t, err)

	records, err := store.ReadRecords(xepSheet(t, ss))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-01-13", records[0].Get("NgayDuKien"))
}

func TestAddXep_ExplicitNgayDuKienWins(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1", NgayXuat: "2026-01-10"})
	require.NoError(t, err)

	xh, err := repo.AddXep("XE1", "B1", 10, 1, "20/02/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20", models.FormatDate(xh.NgayDuKien))
}

func TestViewXe_SortsBySTTStable(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1"})
	require.NoError(t, err)

	_, err = repo.AddXep("XE1", "B3", 10, 3, "")
	require.NoError(t, err)
	_, err = repo.AddXep("XE1", "B1", 10, 1, "")
	require.NoError(t, err)
	_, err = repo.AddXep("XE1", "B2a", 10, 2, "")
	require.NoError(t, err)
	_, err = repo.AddXep("XE1", "B2b", 10, 2, "")
	require.NoError(t, err)

	xe, items, err := repo.ViewXe("XE1")
	require.NoError(t, err)
	require.NotNil(t, xe)
	require.Len(t, items, 4)

	var bills []string
	for _, item := range items {
		bills = append(bills, item.Get("Bill"))
	}
	// STT 2 trùng nhau: giữ thứ tự ghi vào sổ
	assert.Equal(t, []string{"B1", "B2a", "B2b", "B3"}, bills)
}

func TestViewXe_NotFoundStillReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t)

	xe, items, err := repo.ViewXe("nope")
	require.NoError(t, err)
	assert.Nil(t, xe)
	assert.Empty(t, items)
}

func TestGetXepForXe_SingleBatchGet(t *testing.T) {
	repo, ss := newTestRepo(t)

	_, err := repo.CreateXe(repositories.CreateXeInput{ID: "XE1"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = repo.AddXep("XE1", "B1", 10, i+1, "")
		require.NoError(t, err)
	}
	_, err = repo.AddXep("XE2", "B9", 10, 1, "")
	require.NoError(t, err)

	ws := xepSheet(t, ss)
	ws.BatchGetCalls = 0

	_, items, err := repo.ViewXe("XE1")
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 1, ws.BatchGetCalls, "all matched rows must come back in one batched read")

	for _, item := range items {
		assert.Equal(t, "XE1", item.Get("Xe"))
	}
}
