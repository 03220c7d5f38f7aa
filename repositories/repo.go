package repositories

import (
	"errors"
	"strconv"

	"billxe-app/config"
	"billxe-app/models"
	"billxe-app/store"
	"billxe-app/utils"

	"golang.org/x/exp/slices"
)

// Tên sheet thực tế do người vận hành đặt, dò theo danh sách alias
var (
	xeAliases   = []string{"Xe", "xe", "Xê", "Xe vận tải"}
	xepAliases  = []string{"XepHang", "Xếp hàng", "Xếp hàng ", "Xếp hàng xe"}
	billAliases = []string{"Bill", "Hóa đơn", "Đơn hàng", "Bill ", "BILL"}
)

// Repo quản lý sheet Xe, XepHang và Bill. Chỉ cache vị trí header trong
// vòng đời một Repo; dữ liệu dòng luôn đọc lại từ store.
type Repo struct {
	ss     store.Spreadsheet
	wsXe   store.Worksheet
	wsXep  store.Worksheet
	wsBill store.Worksheet // nil khi không có sheet Bill

	xepHeaders  []string
	billHeaders []string
}

// NewRepo dò sheet theo alias, tạo mới kèm header chuẩn nếu chưa có.
// Sheet Bill là của bên ngoài: thiếu thì chịu, không tạo.
func NewRepo(ss store.Spreadsheet) (*Repo, error) {
	r := &Repo{ss: ss}

	wsXe, err := store.FindWorksheetByAlias(ss, xeAliases)
	if err != nil {
		return nil, err
	}
	if wsXe == nil {
		wsXe, err = store.GetOrCreateWorksheet(ss, "Xe", models.XeHeaders)
		if err != nil {
			return nil, err
		}
	}
	r.wsXe = wsXe

	wsXep, err := store.FindWorksheetByAlias(ss, xepAliases)
	if err != nil {
		return nil, err
	}
	if wsXep == nil {
		wsXep, err = store.GetOrCreateWorksheet(ss, "XepHang", models.XepHeaders)
		if err != nil {
			return nil, err
		}
	}
	r.wsXep = wsXep

	wsBill, err := store.FindWorksheetByAlias(ss, billAliases)
	if err != nil {
		return nil, err
	}
	if wsBill == nil {
		wsBill, err = ss.Worksheet("Bill")
		if errors.Is(err, store.ErrWorksheetNotFound) {
			wsBill = nil
		} else if err != nil {
			return nil, err
		}
	}
	r.wsBill = wsBill

	return r, nil
}

// EnsureSchema đảm bảo hai sheet quản lý tồn tại với header chuẩn
func (r *Repo) EnsureSchema() error {
	if _, err := store.GetOrCreateWorksheet(r.ss, "Xe", models.XeHeaders); err != nil {
		return err
	}
	if _, err := store.GetOrCreateWorksheet(r.ss, "XepHang", models.XepHeaders); err != nil {
		return err
	}
	return nil
}

type CreateXeInput struct {
	ID                 string `json:"id" validate:"required"`
	NgayXuat           string `json:"ngay_xuat"`
	GhiChu             string `json:"ghi_chu"`
	TrangThai          string `json:"trang_thai"`
	TenNhaCungCap      string `json:"ten_ncc"`
	TrangThaiThanhToan string `json:"tt_thanh_toan"`
	BienKiemSoat       string `json:"bien_ks"`
	LaiXe              string `json:"lai_xe"`
	SbtLaiXe           string `json:"sbt_lai_xe"`
	GhiChuKhac         string `json:"ghi_chu_khac"`
}

// CreateXe upsert một chuyến xe theo ID. NgayDuKien = NgayXuat + 3 ngày,
// tính một lần lúc tạo và lưu luôn, không tính lại khi đọc.
func (r *Repo) CreateXe(in CreateXeInput) (*models.Xe, error) {
	ngayXuat := models.ParseDate(in.NgayXuat)
	xe := &models.Xe{
		ID:                 in.ID,
		NgayXuat:           ngayXuat,
		TrangThai:          in.TrangThai,
		GhiChu:             in.GhiChu,
		TenNhaCungCap:      in.TenNhaCungCap,
		TrangThaiThanhToan: in.TrangThaiThanhToan,
		BienKiemSoat:       in.BienKiemSoat,
		LaiXe:              in.LaiXe,
		SbtLaiXe:           in.SbtLaiXe,
		GhiChuKhac:         in.GhiChuKhac,
	}
	if xe.TrangThai == "" {
		xe.TrangThai = "Moi"
	}
	if ngayXuat != nil {
		d := ngayXuat.AddDate(0, 0, 3)
		xe.NgayDuKien = &d
	}

	if err := store.UpsertRecord(r.wsXe, "ID", xe.ToRecord()); err != nil {
		return nil, err
	}
	config.Log.Infow("xe upserted", "id", xe.ID)
	return xe, nil
}

// AddXep ghi thêm một dòng xếp hàng (không bao giờ sửa dòng cũ). Nếu
// không truyền ngày dự kiến thì chép NgayDuKien của xe tại thời điểm này.
func (r *Repo) AddXep(xeID, billID string, soLuong float64, stt int, ngayDuKienStr string) (*models.XepHang, error) {
	ngayDuKien := models.ParseDate(ngayDuKienStr)
	if ngayDuKien == nil {
		xe, err := r.GetXe(xeID)
		if err != nil {
			return nil, err
		}
		if xe != nil && xe.NgayDuKien != nil {
			d := *xe.NgayDuKien
			ngayDuKien = &d
		}
	}

	xh := &models.XepHang{
		ID:         utils.ShortID(),
		XeID:       xeID,
		BillID:     billID,
		SoLuong:    soLuong,
		STT:        stt,
		NgayDuKien: ngayDuKien,
	}
	if err := store.AppendRecord(r.wsXep, xh.ToRecord()); err != nil {
		return nil, err
	}
	config.Log.Infow("xep appended", "id", xh.ID, "xe", xeID, "bill", billID)
	return xh, nil
}

// GetXe quét toàn bộ sheet Xe (sheet nhỏ); trả về (nil, nil) khi không thấy
func (r *Repo) GetXe(xeID string) (*models.Xe, error) {
	records, err := store.ReadRecords(r.wsXe)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Get("ID") == xeID {
			return models.XeFromRecord(rec), nil
		}
	}
	return nil, nil
}

// ViewXe trả về xe và các dòng xếp hàng của nó, sort ổn định theo STT
// (STT hỏng coi như 0).
func (r *Repo) ViewXe(xeID string) (*models.Xe, []models.Record, error) {
	xe, err := r.GetXe(xeID)
	if err != nil {
		return nil, nil, err
	}
	items, err := r.GetXepForXe(xeID)
	if err != nil {
		return nil, nil, err
	}
	slices.SortStableFunc(items, func(a, b models.Record) int {
		return sttOf(a) - sttOf(b)
	})
	return xe, items, nil
}

func sttOf(rec models.Record) int {
	n, err := strconv.Atoi(rec.Get("STT"))
	if err != nil {
		return 0
	}
	return n
}

func (r *Repo) getXepHeaders() ([]string, error) {
	if r.xepHeaders != nil {
		return r.xepHeaders, nil
	}
	headers, err := r.wsXep.RowValues(1)
	if err != nil {
		return nil, err
	}
	r.xepHeaders = headers
	return headers, nil
}

// GetXepForXe tra cứu theo cột "Xe": đọc nguyên cột một lần, gom số dòng
// khớp rồi BatchGet đúng các dòng đó trong MỘT lần gọi — không quét cả
// sheet, không gọi mỗi dòng một lần.
func (r *Repo) GetXepForXe(xeID string) ([]models.Record, error) {
	headers, err := r.getXepHeaders()
	if err != nil {
		return nil, err
	}

	xeCol := -1
	for i, h := range headers {
		if h == "Xe" {
			xeCol = i + 1 // 1-based
			break
		}
	}
	if xeCol < 0 {
		// Fallback: quét toàn bộ (hiếm, chỉ khi header lạ)
		records, err := store.ReadRecords(r.wsXep)
		if err != nil {
			return nil, err
		}
		var out []models.Record
		for _, rec := range records {
			if rec.Get("Xe") == xeID {
				out = append(out, rec)
			}
		}
		return out, nil
	}

	col, err := r.wsXep.ColValues(xeCol)
	if err != nil {
		return nil, err
	}
	var matchRows []int
	for i, val := range col {
		if i == 0 {
			continue // header
		}
		if val == xeID {
			matchRows = append(matchRows, i+1)
		}
	}
	if len(matchRows) == 0 {
		return nil, nil
	}

	ranges := make([]string, 0, len(matchRows))
	for _, row := range matchRows {
		ranges = append(ranges, store.RowRange(row, len(headers)))
	}
	grids, err := r.wsXep.BatchGet(ranges)
	if err != nil {
		return nil, err
	}

	results := make([]models.Record, 0, len(grids))
	for _, grid := range grids {
		var row []string
		if len(grid) > 0 {
			row = grid[0]
		}
		results = append(results, models.NewRecord(headers, row))
	}
	return results, nil
}
