package store

import (
	"fmt"

	"billxe-app/config"
)

// Open chọn backend theo STORE_DRIVER
func Open() (Spreadsheet, error) {
	switch config.StoreDriver {
	case "gsheets":
		return OpenGoogleSheet(config.CredentialsFile, config.SheetID)
	case "excel":
		return OpenExcelFile(config.ExcelFile)
	case "mysql", "postgres", "mssql":
		return OpenDatabase(config.StoreDriver)
	case "memory":
		return NewMemorySpreadsheet(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", config.StoreDriver)
	}
}
