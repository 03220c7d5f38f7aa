package repositories_test

import (
	"fmt"
	"testing"

	"billxe-app/models"
	"billxe-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBillRows(t *testing.T, n int) *repositories.Repo {
	t.Helper()
	var rows [][]string
	for i := 1; i <= n; i++ {
		rows = append(rows, []string{fmt.Sprintf("B%03d", i), "10"})
	}
	return newRepoWithBills(t, []string{"ID", "SoLuong"}, rows)
}

func TestGetBillsPage_FirstAndLastPage(t *testing.T) {
	repo := seedBillRows(t, 25)

	rows, total, headers, err := repo.GetBillsPage(1, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Equal(t, []string{"ID", "SoLuong"}, headers)
	require.Len(t, rows, 20)
	assert.Equal(t, "B001", rows[0].Get("ID"))
	assert.Equal(t, "B020", rows[19].Get("ID"))

	rows, total, _, err = repo.GetBillsPage(2, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, rows, 5)
	assert.Equal(t, "B021", rows[0].Get("ID"))
	assert.Equal(t, "B025", rows[4].Get("ID"))
}

func TestGetBillsPage_PastTheEnd(t *testing.T) {
	repo := seedBillRows(t, 25)

	rows, total, headers, err := repo.GetBillsPage(3, 20)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 25, total, "total vẫn giữ nguyên dù trang rỗng")
	assert.Equal(t, []string{"ID", "SoLuong"}, headers)
}

func TestGetBillsPage_PageBelowOneClamped(t *testing.T) {
	repo := seedBillRows(t, 5)

	rows, _, _, err := repo.GetBillsPage(0, 20)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "B001", rows[0].Get("ID"))
}

func TestGetBillsPage_BlankFirstColumnRow(t *testing.T) {
	// dòng cuối để trống cột 1: không tính vào tổng nhưng vẫn trả về
	repo := newRepoWithBills(t, []string{"ID", "SoLuong"}, [][]string{
		{"B1", "10"},
		{"", "99"},
	})

	rows, total, _, err := repo.GetBillsPage(1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "99", rows[1].Get("SoLuong"))
}

func TestGetBillsPage_NoBillSheet(t *testing.T) {
	repo, _ := newTestRepo(t)

	rows, total, headers, err := repo.GetBillsPage(1, 20)
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Zero(t, total)
	assert.Nil(t, headers)
}

func TestGetXePage(t *testing.T) {
	repo, _ := newTestRepo(t)

	for i := 1; i <= 3; i++ {
		_, err := repo.CreateXe(repositories.CreateXeInput{ID: fmt.Sprintf("XE%d", i)})
		require.NoError(t, err)
	}

	rows, total, headers, err := repo.GetXePage(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, models.XeHeaders, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "XE1", rows[0].Get("ID"))
	assert.Equal(t, "XE2", rows[1].Get("ID"))

	rows, _, _, err = repo.GetXePage(2, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "XE3", rows[0].Get("ID"))
}
