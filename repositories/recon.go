package repositories

import (
	"strconv"

	"billxe-app/models"
	"billxe-app/store"
)

// Các tên cột số lượng hay gặp trên sheet Bill, thử theo thứ tự ưu tiên.
// Không đoán theo kiểu dữ liệu để giữ kết quả ổn định.
var qtyCandidates = []string{
	"SoLuong", "Số lượng", "Số kiện", "So Kien", "SoKien", "Soluong",
}

// ViewUnassigned đối soát sheet Bill với sổ xếp hàng: mỗi bill còn thiếu
// (assigned < total) trả về một dòng, theo thứ tự gặp trong sheet Bill.
// Không có sheet Bill thì trả về rỗng, không phải lỗi.
func (r *Repo) ViewUnassigned() ([]models.PendingBill, error) {
	if r.wsBill == nil {
		return nil, nil
	}

	bills, err := store.ReadRecords(r.wsBill)
	if err != nil {
		return nil, err
	}
	xeps, err := store.ReadRecords(r.wsXep)
	if err != nil {
		return nil, err
	}

	billHeaders, err := r.getBillHeaders()
	if err != nil {
		return nil, err
	}
	qtyCol := ""
	for _, candidate := range qtyCandidates {
		for _, h := range billHeaders {
			if h == candidate {
				qtyCol = candidate
				break
			}
		}
		if qtyCol != "" {
			break
		}
	}

	totals := make(map[string]float64)
	assigned := make(map[string]float64)
	var order []string
	for _, b := range bills {
		billID := b.Get("ID")
		total := 0.0
		if qtyCol != "" {
			total = parseQuantity(b.Get(qtyCol))
		}
		if _, seen := totals[billID]; !seen {
			order = append(order, billID)
		}
		totals[billID] = total
		assigned[billID] = 0
	}
	for _, x := range xeps {
		billID := x.Get("Bill")
		assigned[billID] += parseQuantity(x.Get("SoLuong"))
	}

	var pending []models.PendingBill
	for _, billID := range order {
		total := totals[billID]
		if assigned[billID] < total {
			pending = append(pending, models.PendingBill{
				BillID:    billID,
				Total:     total,
				Assigned:  assigned[billID],
				Remaining: total - assigned[billID],
			})
		}
	}
	return pending, nil
}

// parseQuantity đổi chuỗi sang số; rỗng hoặc hỏng tính là 0
func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (r *Repo) getBillHeaders() ([]string, error) {
	if r.wsBill == nil {
		return nil, nil
	}
	if r.billHeaders != nil {
		return r.billHeaders, nil
	}
	headers, err := r.wsBill.RowValues(1)
	if err != nil {
		return nil, err
	}
	r.billHeaders = headers
	return headers, nil
}
