package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSpreadsheet nói chuyện với Google Sheets API v4 bằng service
// account (biến GOOGLE_APPLICATION_CREDENTIALS như bản gspread cũ).
type GoogleSpreadsheet struct {
	svc *sheets.Service
	id  string
}

func OpenGoogleSheet(credsFile, sheetID string) (*GoogleSpreadsheet, error) {
	if credsFile == "" {
		return nil, errors.New("GOOGLE_APPLICATION_CREDENTIALS env var not set")
	}
	if _, err := os.Stat(credsFile); err != nil {
		return nil, fmt.Errorf("credentials file not found: %w", err)
	}
	svc, err := sheets.NewService(context.Background(),
		option.WithCredentialsFile(credsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, err
	}
	return &GoogleSpreadsheet{svc: svc, id: sheetID}, nil
}

func (s *GoogleSpreadsheet) WorksheetTitles() ([]string, error) {
	resp, err := s.svc.Spreadsheets.Get(s.id).Fields("sheets.properties.title").Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		titles = append(titles, sheet.Properties.Title)
	}
	return titles, nil
}

func (s *GoogleSpreadsheet) Worksheet(title string) (Worksheet, error) {
	titles, err := s.WorksheetTitles()
	if err != nil {
		return nil, err
	}
	for _, t := range titles {
		if t == title {
			return &googleWorksheet{svc: s.svc, id: s.id, title: title}, nil
		}
	}
	return nil, ErrWorksheetNotFound
}

func (s *GoogleSpreadsheet) AddWorksheet(title string, rows, cols int) (Worksheet, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    int64(rows),
						ColumnCount: int64(cols),
					},
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.id, req).Do(); err != nil {
		return nil, err
	}
	return &googleWorksheet{svc: s.svc, id: s.id, title: title}, nil
}

type googleWorksheet struct {
	svc   *sheets.Service
	id    string
	title string
}

func (w *googleWorksheet) Title() string { return w.title }

// rangeName scope vùng A1 vào sheet, quote tên vì có dấu cách
func (w *googleWorksheet) rangeName(rng string) string {
	if rng == "" {
		return "'" + w.title + "'"
	}
	return "'" + w.title + "'!" + rng
}

func (w *googleWorksheet) RowValues(row int) ([]string, error) {
	rng := fmt.Sprintf("%d:%d", row, row)
	resp, err := w.svc.Spreadsheets.Values.Get(w.id, w.rangeName(rng)).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellsToStrings(resp.Values[0]), nil
}

func (w *googleWorksheet) ColValues(col int) ([]string, error) {
	letter := ColumnLetter(col)
	resp, err := w.svc.Spreadsheets.Values.Get(w.id, w.rangeName(letter+":"+letter)).
		MajorDimension("COLUMNS").Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellsToStrings(resp.Values[0]), nil
}

func (w *googleWorksheet) Get(rng string) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.id, w.rangeName(rng)).Do()
	if err != nil {
		return nil, err
	}
	return gridToStrings(resp.Values), nil
}

func (w *googleWorksheet) BatchGet(ranges []string) ([][][]string, error) {
	scoped := make([]string, len(ranges))
	for i, rng := range ranges {
		scoped[i] = w.rangeName(rng)
	}
	resp, err := w.svc.Spreadsheets.Values.BatchGet(w.id).Ranges(scoped...).Do()
	if err != nil {
		return nil, err
	}
	out := make([][][]string, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		out = append(out, gridToStrings(vr.Values))
	}
	return out, nil
}

func (w *googleWorksheet) AppendRow(values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{stringsToCells(values)}}
	_, err := w.svc.Spreadsheets.Values.Append(w.id, w.rangeName("A1"), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").Do()
	return err
}

func (w *googleWorksheet) Update(rng string, values [][]string) error {
	vr := &sheets.ValueRange{Values: make([][]interface{}, len(values))}
	for i, row := range values {
		vr.Values[i] = stringsToCells(row)
	}
	_, err := w.svc.Spreadsheets.Values.Update(w.id, w.rangeName(rng), vr).
		ValueInputOption("USER_ENTERED").Do()
	return err
}

func (w *googleWorksheet) GetAllValues() ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.id, w.rangeName("")).Do()
	if err != nil {
		return nil, err
	}
	return gridToStrings(resp.Values), nil
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprint(c)
	}
	return out
}

func stringsToCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func gridToStrings(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = cellsToStrings(row)
	}
	return out
}
