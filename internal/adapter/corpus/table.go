package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// headerAliases maps accepted column titles to item fields.
var headerAliases = map[string]string{
	"id":              "id",
	"source":          "source",
	"word":            "source",
	"term":            "source",
	"target":          "target",
	"translation":     "target",
	"meaning":         "target",
	"category":        "category",
	"topic":           "category",
	"pronunciation":   "pronunciation",
	"example":         "example",
	"examples":        "example",
	"source_language": "source_language",
	"target_language": "target_language",
}

func readCSVFile(path string) ([]entity.VocabularyItem, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCSV(f)
}

func decodeCSV(r io.Reader) ([]entity.VocabularyItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rowsToItems(rows)
}

func readXLSXFile(path, sheet string) ([]entity.VocabularyItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rowsToItems(rows)
}

// rowsToItems converts a header row plus data rows into items. A row with a
// source but no target is a section title and becomes the category of the
// following rows that have none of their own. Blank rows are skipped.
func rowsToItems(rows [][]string) ([]entity.VocabularyItem, error) {
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}
	columns := make(map[string]int)
	for i, title := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(title, " ", "_")))
		if field, ok := headerAliases[key]; ok {
			if _, dup := columns[field]; !dup {
				columns[field] = i
			}
		}
	}
	for _, required := range []string{"source", "target"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("header is missing a %s column", required)
		}
	}

	cell := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var (
		items   []entity.VocabularyItem
		section string
	)
	for _, row := range rows[1:] {
		if lo.EveryBy(row, func(v string) bool { return strings.TrimSpace(v) == "" }) {
			continue
		}
		source, target := cell(row, "source"), cell(row, "target")
		if source != "" && target == "" {
			section = source
			continue
		}
		item := entity.VocabularyItem{
			ID:             cell(row, "id"),
			Source:         source,
			Target:         target,
			Category:       cell(row, "category"),
			Pronunciation:  cell(row, "pronunciation"),
			Example:        cell(row, "example"),
			SourceLanguage: entity.Language(cell(row, "source_language")),
			TargetLanguage: entity.Language(cell(row, "target_language")),
		}
		if item.Category == "" {
			item.Category = section
		}
		items = append(items, item)
	}
	return items, nil
}
