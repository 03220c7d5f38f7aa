package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"billxe-app/config"
	"billxe-app/controllers/idgen"
	"billxe-app/repositories"
	"billxe-app/routes"
	"billxe-app/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	idgen.Init()

	ss := store.NewMemorySpreadsheet()
	repo, err := repositories.NewRepo(ss)
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupXeRoutes(app, repo)
	routes.SetupXepRoutes(app, repo)
	routes.SetupBillRoutes(app, repo)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/v1/auth/login", "", fiber.Map{
		"username": config.AdminUser,
		"password": config.AdminPassword,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/v1/auth/login", "", fiber.Map{
		"username": config.AdminUser,
		"password": "sai mật khẩu",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/v1/auth/login", "", fiber.Map{"username": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestXeRoutes_RequireAuth(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/v1/xe", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/v1/xe", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestXe_CreateAndView(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "POST", "/api/v1/xe", token, fiber.Map{
		"id":        "XE1",
		"ngay_xuat": "2026-01-10",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "XE1", data["id"])
	assert.Equal(t, "Moi", data["trang_thai"])

	resp, _ = doJSON(t, app, "POST", "/api/v1/xep", token, fiber.Map{
		"xe_id":    "XE1",
		"bill_id":  "B1",
		"so_luong": 12.5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/api/v1/xe/XE1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "B1", item["Bill"])
	assert.Equal(t, "1", item["STT"], "STT bỏ trống thì mặc định 1")
}

func TestXe_ViewNotFound(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, _ := doJSON(t, app, "GET", "/api/v1/xe/khong-co", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestXe_CreateMissingID(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, _ := doJSON(t, app, "POST", "/api/v1/xe", token, fiber.Map{"ghi_chu": "thiếu mã"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBills_EmptyWithoutSheet(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "GET", "/api/v1/bills", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["total"])

	resp, body = doJSON(t, app, "GET", "/api/v1/bills/unassigned", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestXePage(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	for _, id := range []string{"XE1", "XE2", "XE3"} {
		resp, _ := doJSON(t, app, "POST", "/api/v1/xe", token, fiber.Map{"id": id})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, body := doJSON(t, app, "GET", "/api/v1/xe?page=1&page_size=2", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), body["total"])
	rows := body["data"].([]any)
	assert.Len(t, rows, 2)
}
