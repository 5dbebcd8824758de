package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adefebrian/vocab/internal/conjugation"
	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/internal/level"
	"github.com/Adefebrian/vocab/pkg/models"
)

func testImporter(t *testing.T) (*Importer, *database.VerbRepository) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	verbs := database.NewVerbRepository(db)
	importer := NewImporter(verbs, conjugation.NewEngine(nil), level.NewClassifier(level.Config{}))
	return importer, verbs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportCSV(t *testing.T) {
	importer, verbs := testImporter(t)

	csv := "Base,Meaning,Example\n" +
		"movement,,\n" +
		"\"go (went, gone)\",pergi,I go to school.\n" +
		"walk,berjalan,\n" +
		"daily,,\n" +
		"cook,memasak,She cooked dinner.\n"
	path := writeFile(t, "verbs.csv", csv)

	config := DefaultImportConfig()
	config.FilePath = path

	result, err := importer.Import(config)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, result.Errors)

	// The parenthetical forms are stripped and the table wins.
	goVerb, err := verbs.GetByBase("go")
	require.NoError(t, err)
	assert.Equal(t, "went", goVerb.Past)
	assert.Equal(t, "gone", goVerb.Participle)
	assert.Equal(t, models.Irregular, goVerb.Type)
	assert.Equal(t, "movement", goVerb.Category)
	assert.Equal(t, "pergi", goVerb.Meaning)

	walk, err := verbs.GetByBase("walk")
	require.NoError(t, err)
	assert.Equal(t, "walked", walk.Past)
	assert.Equal(t, models.Regular, walk.Type)
	assert.Equal(t, "movement", walk.Category)

	cook, err := verbs.GetByBase("cook")
	require.NoError(t, err)
	assert.Equal(t, "daily", cook.Category)
}

func TestImportCSVUpdatesExisting(t *testing.T) {
	importer, verbs := testImporter(t)

	first := writeFile(t, "first.csv", "Base,Meaning\nwalk,jalan\n")
	config := DefaultImportConfig()
	config.FilePath = first
	_, err := importer.Import(config)
	require.NoError(t, err)

	second := writeFile(t, "second.csv", "Base,Meaning\nwalk,berjalan\n")
	config.FilePath = second
	result, err := importer.Import(config)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	walk, err := verbs.GetByBase("walk")
	require.NoError(t, err)
	assert.Equal(t, "berjalan", walk.Meaning)

	count, err := verbs.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportCSVReportsBadRows(t *testing.T) {
	importer, _ := testImporter(t)

	// Level falls back to the classifier when the column is invalid, and
	// blank lines are skipped, so only well-formed rows are counted.
	path := writeFile(t, "verbs.csv", "Base,Meaning\n\nwalk,berjalan\n")
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := importer.Import(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalProcessed)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)
}

func TestImportMissingFile(t *testing.T) {
	importer, _ := testImporter(t)

	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := importer.Import(config)
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	_, verbs := testImporter(t)

	seed := []models.VerbEntry{
		{Base: "go", Past: "went", Participle: "gone", Type: models.Irregular, Level: models.Beginner, Category: "movement", Meaning: "pergi", Example: "I went home."},
		{Base: "walk", Past: "walked", Participle: "walked", Type: models.Regular, Level: models.Beginner, Category: "movement", Meaning: "berjalan"},
	}
	for i := range seed {
		require.NoError(t, verbs.Create(&seed[i]))
	}

	path := filepath.Join(t.TempDir(), "verbs.xlsx")
	exporter := NewExporter(verbs)
	count, err := exporter.Export(ExportConfig{FilePath: path, SheetName: "Sheet1"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Import the export into a fresh collection.
	fresh, freshVerbs := testImporter(t)
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := fresh.Import(config)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)

	goVerb, err := freshVerbs.GetByBase("go")
	require.NoError(t, err)
	assert.Equal(t, "went", goVerb.Past)
	assert.Equal(t, "pergi", goVerb.Meaning)
	assert.Equal(t, "movement", goVerb.Category)
}

func TestExportCSV(t *testing.T) {
	_, verbs := testImporter(t)

	verb := models.VerbEntry{Base: "walk", Past: "walked", Participle: "walked", Type: models.Regular, Level: models.Beginner}
	require.NoError(t, verbs.Create(&verb))

	path := filepath.Join(t.TempDir(), "verbs.csv")
	exporter := NewExporter(verbs)
	count, err := exporter.Export(ExportConfig{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Base,Past,Participle")
	assert.Contains(t, string(data), "walk,walked,walked,regular,beginner")
}

func TestExportCSVReportsFlushError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("requires /dev/full")
	}

	// A single row fits in the csv.Writer buffer, so the write only
	// fails once the buffer is flushed to the device.
	verbs := []models.VerbEntry{
		{Base: "walk", Past: "walked", Participle: "walked", Type: models.Regular, Level: models.Beginner},
	}
	require.ErrorContains(t, exportToCSV("/dev/full", verbs), "failed to flush")
}

func TestCleanWord(t *testing.T) {
	assert.Equal(t, "go", cleanWord("go (went, gone)"))
	assert.Equal(t, "walk", cleanWord("  walk  "))
	assert.Equal(t, "try", cleanWord("try"))
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 1, columnToIndex("b"))
	assert.Equal(t, 25, columnToIndex("Z"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, -1, columnToIndex(""))
}
