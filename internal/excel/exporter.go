package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/pkg/models"
)

// exportHeader is the column layout shared by both export formats.
var exportHeader = []string{"Base", "Past", "Participle", "Type", "Level", "Category", "Meaning", "Example"}

// ExportConfig defines the export configuration.
type ExportConfig struct {
	FilePath  string // Destination file, .xlsx or .csv by extension
	SheetName string // Sheet name for Excel output
}

// DefaultExportConfig returns the default export configuration.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		FilePath:  "verbs.xlsx",
		SheetName: "Sheet1",
	}
}

// Exporter writes the verb collection to spreadsheet files.
type Exporter struct {
	verbs *database.VerbRepository
}

// NewExporter creates an exporter backed by the given repository.
func NewExporter(verbs *database.VerbRepository) *Exporter {
	return &Exporter{verbs: verbs}
}

// Export writes all verbs to the configured file and returns how many
// rows were written.
func (ex *Exporter) Export(config ExportConfig) (int, error) {
	verbs, err := ex.verbs.GetAll()
	if err != nil {
		return 0, err
	}

	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return len(verbs), exportToCSV(config.FilePath, verbs)
	}
	return len(verbs), exportToExcel(config, verbs)
}

// exportToExcel writes verbs to an Excel file.
func exportToExcel(config ExportConfig, verbs []models.VerbEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := config.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, verb := range verbs {
		values := verbRow(verb)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(config.FilePath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// exportToCSV writes verbs to a CSV file.
func exportToCSV(path string, verbs []models.VerbEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, verb := range verbs {
		if err := writer.Write(verbRow(verb)); err != nil {
			return fmt.Errorf("failed to write verb %q: %w", verb.Base, err)
		}
	}

	// csv.Writer buffers, so write errors may only surface at flush.
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}

func verbRow(verb models.VerbEntry) []string {
	return []string{
		verb.Base,
		verb.Past,
		verb.Participle,
		string(verb.Type),
		string(verb.Level),
		verb.Category,
		verb.Meaning,
		verb.Example,
	}
}
