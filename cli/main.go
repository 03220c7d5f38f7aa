package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"billxe-app/config"
	"billxe-app/repositories"
	"billxe-app/store"
	"billxe-app/utils"
)

func usage() {
	fmt.Println("Usage: billxe <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  init               Ensure Xe and XepHang sheets exist")
	fmt.Println("  xe-create          Create or update a Xe")
	fmt.Println("  xep-add            Append a XepHang row")
	fmt.Println("  view-xe            Show a Xe with its assignments")
	fmt.Println("  view-unassigned    Show bills not fully assigned")
	fmt.Println("  send-report        Email the unassigned report")
	os.Exit(1)
}

func openRepo() *repositories.Repo {
	ss, err := store.Open()
	if err != nil {
		log.Fatalf("❌ Failed to open store (%s): %v", config.StoreDriver, err)
	}
	repo, err := repositories.NewRepo(ss)
	if err != nil {
		log.Fatalf("❌ Failed to bind worksheets: %v", err)
	}
	return repo
}

func main() {
	config.LoadConfig()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "init":
		repo := openRepo()
		if err := repo.EnsureSchema(); err != nil {
			log.Fatalf("❌ Failed to init schema: %v", err)
		}
		fmt.Println("✅ Initialized schema for Xe and XepHang")

	case "xe-create":
		fs := flag.NewFlagSet("xe-create", flag.ExitOnError)
		var in repositories.CreateXeInput
		fs.StringVar(&in.ID, "code", "", "Xe ID/Code (required)")
		fs.StringVar(&in.NgayXuat, "ngay_xuat", "", "YYYY-MM-DD")
		fs.StringVar(&in.GhiChu, "ghi_chu", "", "")
		fs.StringVar(&in.TrangThai, "trang_thai", "Moi", "")
		fs.StringVar(&in.TenNhaCungCap, "ten_ncc", "", "")
		fs.StringVar(&in.TrangThaiThanhToan, "tt_thanh_toan", "", "")
		fs.StringVar(&in.BienKiemSoat, "bien_ks", "", "")
		fs.StringVar(&in.LaiXe, "lai_xe", "", "")
		fs.StringVar(&in.SbtLaiXe, "sbt_lai_xe", "", "")
		fs.StringVar(&in.GhiChuKhac, "ghi_chu_khac", "", "")
		fs.Parse(os.Args[2:])
		if in.ID == "" {
			log.Fatal("❌ -code is required")
		}
		repo := openRepo()
		xe, err := repo.CreateXe(in)
		if err != nil {
			log.Fatalf("❌ Failed to create Xe: %v", err)
		}
		fmt.Println("✅ Created:", xe.ID)

	case "xep-add":
		fs := flag.NewFlagSet("xep-add", flag.ExitOnError)
		xeID := fs.String("xe_id", "", "Xe ID (required)")
		billID := fs.String("bill_id", "", "Bill ID (required)")
		soLuong := fs.Float64("so_luong", 0, "Quantity (required)")
		stt := fs.Int("stt", 1, "Sequence")
		ngayDuKien := fs.String("ngay_du_kien", "", "YYYY-MM-DD")
		fs.Parse(os.Args[2:])
		if *xeID == "" || *billID == "" || *soLuong == 0 {
			log.Fatal("❌ -xe_id, -bill_id and -so_luong are required")
		}
		repo := openRepo()
		xh, err := repo.AddXep(*xeID, *billID, *soLuong, *stt, *ngayDuKien)
		if err != nil {
			log.Fatalf("❌ Failed to add XepHang: %v", err)
		}
		fmt.Println("✅ XepHang:", xh.ID)

	case "view-xe":
		fs := flag.NewFlagSet("view-xe", flag.ExitOnError)
		xeID := fs.String("xe_id", "", "Xe ID (required)")
		fs.Parse(os.Args[2:])
		if *xeID == "" {
			log.Fatal("❌ -xe_id is required")
		}
		repo := openRepo()
		xe, items, err := repo.ViewXe(*xeID)
		if err != nil {
			log.Fatalf("❌ Failed to view Xe: %v", err)
		}
		if xe == nil {
			log.Fatal("❌ Xe not found")
		}
		fmt.Printf("Xe %s - TrangThai: %s\n", xe.ID, xe.TrangThai)
		fmt.Println("STT\tBill\tSoLuong\tNgayDuKien")
		for _, r := range items {
			fmt.Printf("%s\t%s\t%s\t%s\n", r.Get("STT"), r.Get("Bill"), r.Get("SoLuong"), r.Get("NgayDuKien"))
		}

	case "view-unassigned":
		repo := openRepo()
		rows, err := repo.ViewUnassigned()
		if err != nil {
			log.Fatalf("❌ Failed to reconcile: %v", err)
		}
		if len(rows) == 0 {
			fmt.Println("⚠️  No Bill sheet or no pending bills")
			return
		}
		fmt.Println("BillID\tTotal\tAssigned\tRemaining")
		for _, r := range rows {
			fmt.Printf("%s\t%g\t%g\t%g\n", r.BillID, r.Total, r.Assigned, r.Remaining)
		}

	case "send-report":
		repo := openRepo()
		rows, err := repo.ViewUnassigned()
		if err != nil {
			log.Fatalf("❌ Failed to reconcile: %v", err)
		}
		if err := utils.SendUnassignedReport(rows); err != nil {
			log.Fatalf("❌ Failed to send report: %v", err)
		}
		fmt.Println("✅ Report sent to:", config.SMTPRecipients)

	default:
		usage()
	}
}
