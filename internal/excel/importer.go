package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Adefebrian/vocab/internal/conjugation"
	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/internal/level"
	"github.com/Adefebrian/vocab/pkg/models"
)

// ImportConfig defines the import configuration.
type ImportConfig struct {
	FilePath       string // Path to the Excel or CSV file
	BaseColumn     string // Column with the base verb
	MeaningColumn  string // Column with the Indonesian meaning
	ExampleColumn  string // Column with the example sentence
	CategoryColumn string // Column with the category
	LevelColumn    string // Column with the level, classified when empty
	SheetName      string // Name of the sheet to import
	StartRow       int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration. The
// column layout matches what Export writes, so an exported workbook
// imports back without any flags. The Past and Participle columns of
// such files are ignored on purpose: conjugation always comes from the
// engine. CSV files use the fixed base,meaning,example layout instead.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		BaseColumn:     "A",
		LevelColumn:    "E",
		CategoryColumn: "F",
		MeaningColumn:  "G",
		ExampleColumn:  "H",
		SheetName:      "Sheet1",
		StartRow:       2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Errors         []string
}

// Importer loads verb cards from spreadsheet files. Each row is
// conjugated and classified on the way in, so a file only needs the base
// form; the other columns refine the stored card when present.
type Importer struct {
	verbs      *database.VerbRepository
	engine     *conjugation.Engine
	classifier *level.Classifier
}

// NewImporter creates an importer backed by the given repository and cores.
func NewImporter(verbs *database.VerbRepository, engine *conjugation.Engine, classifier *level.Classifier) *Importer {
	return &Importer{verbs: verbs, engine: engine, classifier: classifier}
}

// Import loads verbs from an Excel or CSV file.
func (im *Importer) Import(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return im.importFromCSV(config)
	}
	return im.importFromExcel(config)
}

// importFromExcel imports verbs from an Excel file.
func (im *Importer) importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		if err := im.processRow(row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports verbs from a CSV file. The expected layout is
// base,meaning,example per row; a row with only its first cell filled is
// treated as a category header for the rows below it.
func (im *Importer) importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	currentCategory := "general"

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++

		if rowNum < config.StartRow {
			continue
		}

		// Category header row, e.g. "movement,,".
		if len(row) >= 2 && strings.TrimSpace(row[0]) != "" && strings.TrimSpace(row[1]) == "" {
			header := strings.Trim(strings.TrimSpace(row[0]), "\"")
			if header != "" {
				currentCategory = strings.ToLower(header)
				continue
			}
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		result.TotalProcessed++

		var meaning, example string
		if len(row) > 1 {
			meaning = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			example = strings.TrimSpace(row[2])
		}

		if err := im.processVerbData(row[0], meaning, example, currentCategory, "", result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow processes a single row from Excel.
func (im *Importer) processRow(row []string, config ImportConfig, result *ImportResult) error {
	var base, meaning, example, category, levelName string

	if colIdx := columnToIndex(config.BaseColumn); colIdx >= 0 && colIdx < len(row) {
		base = row[colIdx]
	}
	if colIdx := columnToIndex(config.MeaningColumn); colIdx >= 0 && colIdx < len(row) {
		meaning = row[colIdx]
	}
	if colIdx := columnToIndex(config.ExampleColumn); colIdx >= 0 && colIdx < len(row) {
		example = row[colIdx]
	}
	if colIdx := columnToIndex(config.CategoryColumn); colIdx >= 0 && colIdx < len(row) {
		category = row[colIdx]
	}
	if colIdx := columnToIndex(config.LevelColumn); colIdx >= 0 && colIdx < len(row) {
		levelName = row[colIdx]
	}

	return im.processVerbData(base, meaning, example, category, levelName, result)
}

// processVerbData conjugates and stores one verb, updating the existing
// card when the base form is already in the collection.
func (im *Importer) processVerbData(base, meaning, example, category, levelName string, result *ImportResult) error {
	base = cleanWord(base)
	if base == "" {
		return fmt.Errorf("verb cannot be empty")
	}

	forms, err := im.engine.Conjugate(base)
	if err != nil {
		return fmt.Errorf("failed to conjugate %q: %w", base, err)
	}

	lvl := im.resolveLevel(forms.Base, levelName)
	category = strings.ToLower(strings.TrimSpace(category))
	meaning = strings.TrimSpace(meaning)
	example = strings.TrimSpace(example)

	existing, err := im.verbs.GetByBase(forms.Base)
	if err == nil {
		existing.Past = forms.Past
		existing.Participle = forms.Participle
		existing.Type = forms.Type
		existing.Level = lvl
		if meaning != "" {
			existing.Meaning = meaning
		}
		if example != "" {
			existing.Example = example
		}
		if category != "" {
			existing.Category = category
		}
		if err := im.verbs.Update(existing); err != nil {
			return fmt.Errorf("failed to update verb: %w", err)
		}
		result.Updated++
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("failed to look up verb: %w", err)
	}

	verb := &models.VerbEntry{
		Base:       forms.Base,
		Past:       forms.Past,
		Participle: forms.Participle,
		Type:       forms.Type,
		Level:      lvl,
		Category:   category,
		Meaning:    meaning,
		Example:    example,
	}
	if err := im.verbs.Create(verb); err != nil {
		return fmt.Errorf("failed to create verb: %w", err)
	}
	result.Created++
	return nil
}

// resolveLevel takes the file's level column when it holds a valid level
// name and falls back to the classifier otherwise.
func (im *Importer) resolveLevel(base, levelName string) models.Level {
	levelName = strings.ToLower(strings.TrimSpace(levelName))
	if levelName != "" {
		if lvl, err := models.ParseLevel(levelName); err == nil {
			return lvl
		}
	}
	return im.classifier.Classify(base)
}

// cleanWord strips explanatory parentheses from a verb, so a list entry
// like "go (went, gone)" imports as just "go".
func cleanWord(word string) string {
	if idx := strings.Index(word, "("); idx > 0 {
		return strings.TrimSpace(word[:idx])
	}
	return strings.TrimSpace(word)
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
