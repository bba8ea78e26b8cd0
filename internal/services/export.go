package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"spars/internal/metrics"
	"spars/internal/store"
	apperrors "spars/pkg/errors"
)

const (
	exportFilename  = "SPARS_Excel_DB.xlsx"
	timestampLayout = "2006-01-02 15:04:05"
	maxColumnWidth  = 50
)

// ExportService rebuilds the submissions workbook from the database. Each
// run is a full rewrite; the file on disk is always a complete snapshot.
type ExportService struct {
	store *store.FormStore
	dir   string
}

// NewExportService creates a new export service
func NewExportService(st *store.FormStore, dir string) *ExportService {
	return &ExportService{store: st, dir: dir}
}

// ExportAll writes all submissions to the workbook and returns its path
func (s *ExportService) ExportAll() (string, error) {
	path, err := s.exportAll()
	metrics.RecordExport(err)
	if err != nil {
		log.Printf("[EXPORT] Failed: %v", err)
		return "", err
	}
	log.Printf("[EXPORT] Wrote %s", path)
	return path, nil
}

func (s *ExportService) exportAll() (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeNewsletterSheet(f); err != nil {
		return "", err
	}
	if err := s.writeContactSheet(f); err != nil {
		return "", err
	}
	if err := s.writeDemoSheet(f); err != nil {
		return "", err
	}
	if err := s.writeBrochureSheet(f); err != nil {
		return "", err
	}
	if err := s.writeProductProfileSheet(f); err != nil {
		return "", err
	}
	if err := s.writeTalkToSalesSheet(f); err != nil {
		return "", err
	}

	// Drop the default sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeExport, "failed to remove default sheet", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeExport, "failed to create export directory", err)
	}
	path := filepath.Join(s.dir, exportFilename)
	if err := f.SaveAs(path); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeExport, "failed to save workbook", err)
	}
	return path, nil
}

func (s *ExportService) writeNewsletterSheet(f *excelize.File) error {
	subs, err := s.store.ListNewsletter()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(sub.ID), 10),
			sub.Email,
			formatTime(sub.SubscribedAt),
		})
	}
	return writeSheet(f, "Newsletter Subscriptions",
		[]string{"ID", "Email", "Subscribed At"}, rows)
}

func (s *ExportService) writeContactSheet(f *excelize.File) error {
	forms, err := s.store.ListContactForms()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(forms))
	for _, c := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Company,
			strVal(c.CompanySize),
			c.Message,
			formatTime(c.SubmittedAt),
		})
	}
	return writeSheet(f, "Contact Forms",
		[]string{"ID", "First Name", "Last Name", "Email", "Phone", "Company", "Company Size", "Message", "Submitted At"},
		rows)
}

func (s *ExportService) writeDemoSheet(f *excelize.File) error {
	forms, err := s.store.ListDemoRequests()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(forms))
	for _, c := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Company,
			strVal(c.CompanySize),
			strVal(c.DemoDate),
			c.Message,
			formatTime(c.SubmittedAt),
		})
	}
	return writeSheet(f, "Demo Requests",
		[]string{"ID", "First Name", "Last Name", "Email", "Phone", "Company", "Company Size", "Demo Date", "Message", "Submitted At"},
		rows)
}

func (s *ExportService) writeBrochureSheet(f *excelize.File) error {
	forms, err := s.store.ListBrochureForms()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(forms))
	for _, b := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.FullName,
			b.Email,
			b.Company,
			strVal(b.Phone),
			strVal(b.JobRole),
			boolVal(b.AgreedToMarketing),
			formatTime(b.SubmittedAt),
		})
	}
	return writeSheet(f, "Brochure Requests",
		[]string{"ID", "Full Name", "Email", "Company", "Phone", "Job Role", "Agreed To Marketing", "Submitted At"},
		rows)
}

func (s *ExportService) writeProductProfileSheet(f *excelize.File) error {
	forms, err := s.store.ListProductProfileForms()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(forms))
	for _, p := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.FirstName,
			p.LastName,
			p.Email,
			p.Phone,
			strVal(p.JobTitle),
			p.CompanyName,
			strVal(p.Industry),
			strVal(p.CompanySize),
			strVal(p.Website),
			strVal(p.Address),
			strVal(p.CurrentSystem),
			intVal(p.Warehouses),
			intVal(p.Users),
			strVal(p.Requirements),
			strVal(p.Timeline),
			formatTime(p.SubmittedAt),
		})
	}
	return writeSheet(f, "Product Profile Requests",
		[]string{"ID", "First Name", "Last Name", "Email", "Phone", "Job Title", "Company Name", "Industry", "Company Size", "Website", "Address", "Current System", "Warehouses", "Users", "Requirements", "Timeline", "Submitted At"},
		rows)
}

func (s *ExportService) writeTalkToSalesSheet(f *excelize.File) error {
	forms, err := s.store.ListTalkToSalesForms()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(forms))
	for _, t := range forms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Name,
			t.Email,
			t.Phone,
			strVal(t.Company),
			t.Message,
			strVal(t.CurrentSystem),
			intVal(t.Warehouses),
			intVal(t.Users),
			strVal(t.Requirements),
			strVal(t.Timeline),
			formatTime(t.SubmittedAt),
		})
	}
	return writeSheet(f, "Talk to Sales",
		[]string{"ID", "Name", "Email", "Phone", "Company", "Message", "Current System", "Warehouses", "Users", "Requirements", "Timeline", "Submitted At"},
		rows)
}

// writeSheet creates one styled sheet: bold white header on the brand blue
// fill, then data rows, then column widths sized to content.
func writeSheet(f *excelize.File, name string, headers []string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExport, fmt.Sprintf("failed to create sheet %s", name), err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExport, fmt.Sprintf("failed to write header for %s", name), err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExport, "failed to create header style", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExport, "failed to resolve last column", err)
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", styleID); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExport, fmt.Sprintf("failed to style header for %s", name), err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeExport, fmt.Sprintf("failed to write row %d on %s", i+2, name), err)
		}
	}

	// Width tracks the longest cell in each column, capped so message
	// columns stay readable
	for col := range headers {
		maxLen := len(headers[col])
		for _, row := range rows {
			if col < len(row) && len(row[col]) > maxLen {
				maxLen = len(row[col])
			}
		}
		width := float64(maxLen + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeExport, "failed to resolve column name", err)
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeExport, fmt.Sprintf("failed to size column %s on %s", colName, name), err)
		}
	}

	return nil
}

func formatTime(t time.Time) string {
	return t.Format(timestampLayout)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func boolVal(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
