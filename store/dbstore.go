package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"billxe-app/config"
	"billxe-app/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// DBSpreadsheet giữ bản sao lưới worksheet trong SQL, mỗi dòng sheet là
// một bản ghi với mảng JSON các ô. Dùng cho đơn vị không truy cập được
// Google Sheets; cấu trúc dữ liệu và repo giữ nguyên.
type DBSpreadsheet struct {
	db *gorm.DB
}

// OpenDatabase mở kết nối theo driver cấu hình (mysql, postgres, mssql)
func OpenDatabase(driver string) (*DBSpreadsheet, error) {
	var dialector gorm.Dialector

	switch driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mssql":
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" +
			config.DBHost + ":" + config.DBPort + "?database=" + config.DBName
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.SheetMeta{}, &models.SheetRow{}); err != nil {
		return nil, err
	}
	return &DBSpreadsheet{db: db}, nil
}

func (s *DBSpreadsheet) WorksheetTitles() ([]string, error) {
	var titles []string
	if err := s.db.Model(&models.SheetMeta{}).Order("id").Pluck("title", &titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

func (s *DBSpreadsheet) Worksheet(title string) (Worksheet, error) {
	var meta models.SheetMeta
	if err := s.db.Where("title = ?", title).First(&meta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorksheetNotFound
		}
		return nil, err
	}
	return &dbWorksheet{db: s.db, title: title}, nil
}

func (s *DBSpreadsheet) AddWorksheet(title string, rows, cols int) (Worksheet, error) {
	if err := s.db.Create(&models.SheetMeta{Title: title}).Error; err != nil {
		return nil, err
	}
	return &dbWorksheet{db: s.db, title: title}, nil
}

type dbWorksheet struct {
	db    *gorm.DB
	title string
}

func (w *dbWorksheet) Title() string { return w.title }

// loadGrid dựng lại lưới từ các bản ghi dòng, chèn dòng rỗng vào chỗ trống
func (w *dbWorksheet) loadGrid() ([][]string, error) {
	var rows []models.SheetRow
	if err := w.db.Where("sheet = ?", w.title).Order("row_num").Find(&rows).Error; err != nil {
		return nil, err
	}
	var grid [][]string
	for _, row := range rows {
		for len(grid) < row.RowNum-1 {
			grid = append(grid, nil)
		}
		var cells []string
		if err := json.Unmarshal([]byte(row.Cells), &cells); err != nil {
			return nil, fmt.Errorf("corrupt row %d of %s: %w", row.RowNum, w.title, err)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func (w *dbWorksheet) saveRow(rowNum int, cells []string) error {
	encoded, err := json.Marshal(cells)
	if err != nil {
		return err
	}
	var existing models.SheetRow
	err = w.db.Where("sheet = ? AND row_num = ?", w.title, rowNum).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return w.db.Create(&models.SheetRow{Sheet: w.title, RowNum: rowNum, Cells: string(encoded)}).Error
	}
	if err != nil {
		return err
	}
	existing.Cells = string(encoded)
	return w.db.Save(&existing).Error
}

func (w *dbWorksheet) RowValues(row int) ([]string, error) {
	grid, err := w.loadGrid()
	if err != nil {
		return nil, err
	}
	if row < 1 || row > len(grid) {
		return nil, nil
	}
	return trimTrailing(grid[row-1]), nil
}

func (w *dbWorksheet) ColValues(col int) ([]string, error) {
	grid, err := w.loadGrid()
	if err != nil {
		return nil, err
	}
	return columnFromGrid(grid, col), nil
}

func (w *dbWorksheet) Get(rng string) ([][]string, error) {
	g, err := ParseRange(rng)
	if err != nil {
		return nil, err
	}
	grid, err := w.loadGrid()
	if err != nil {
		return nil, err
	}
	return sliceGrid(grid, g), nil
}

func (w *dbWorksheet) BatchGet(ranges []string) ([][][]string, error) {
	grid, err := w.loadGrid()
	if err != nil {
		return nil, err
	}
	out := make([][][]string, 0, len(ranges))
	for _, rng := range ranges {
		g, err := ParseRange(rng)
		if err != nil {
			return nil, err
		}
		out = append(out, sliceGrid(grid, g))
	}
	return out, nil
}

func (w *dbWorksheet) AppendRow(values []string) error {
	var maxRow int
	err := w.db.Model(&models.SheetRow{}).Where("sheet = ?", w.title).
		Select("COALESCE(MAX(row_num), 0)").Scan(&maxRow).Error
	if err != nil {
		return err
	}
	return w.saveRow(maxRow+1, values)
}

func (w *dbWorksheet) Update(rng string, values [][]string) error {
	g, err := ParseRange(rng)
	if err != nil {
		return err
	}
	grid, err := w.loadGrid()
	if err != nil {
		return err
	}
	for i, srcRow := range values {
		rowNum := g.StartRow + i
		var cells []string
		if rowNum-1 < len(grid) {
			cells = append(cells, grid[rowNum-1]...)
		}
		for j, v := range srcRow {
			col := g.StartCol + j
			for len(cells) < col {
				cells = append(cells, "")
			}
			cells[col-1] = v
		}
		if err := w.saveRow(rowNum, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *dbWorksheet) GetAllValues() ([][]string, error) {
	grid, err := w.loadGrid()
	if err != nil {
		return nil, err
	}
	for len(grid) > 0 && len(trimTrailing(grid[len(grid)-1])) == 0 {
		grid = grid[:len(grid)-1]
	}
	return grid, nil
}
