package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "words.json", `[
		{"id": "hola", "source": "hola", "target": "hello", "category": "Greetings"},
		{"source": "buenos días", "target": "good morning", "category": "greetings", "source_language": "es"},
		{"source": "pan", "target": "bread"}
	]`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"greetings", entity.DefaultCategory}, c.Categories())

	item, err := c.Get(context.Background(), "buenos-días")
	require.NoError(t, err)
	assert.Equal(t, "good morning", item.Target)
	assert.Equal(t, entity.LanguageSpanish, item.SourceLanguage)

	_, err = c.Get(context.Background(), "adios")
	assert.True(t, errors.Is(err, entity.ErrItemNotFound))
}

func TestLoadWrappedJSON(t *testing.T) {
	path := writeFile(t, "words.json", `{"items": [{"source": "gato", "target": "cat"}]}`)
	c, err := Load(path)
	require.NoError(t, err)
	all, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "gato", all[0].ID)
}

func TestLoadCSVWithSectionRows(t *testing.T) {
	path := writeFile(t, "words.csv", "Word,Translation,Topic,Example\n"+
		"Food,,,\n"+
		"pan,bread,,\"el pan, por favor\"\n"+
		"agua,water,drinks,\n"+
		",,,\n"+
		"Travel,,,\n"+
		"tren,train,,\n")

	c, err := Load(path)
	require.NoError(t, err)
	all, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "food", all[0].Category)
	assert.Equal(t, "el pan, por favor", all[0].Example)
	assert.Equal(t, "drinks", all[1].Category)
	assert.Equal(t, "travel", all[2].Category)
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"id", "source", "target", "category"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"w1", "perro", "dog", "animals"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"w2", "gato", "cat", "animals"}))
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	item, err := c.Get(context.Background(), "w2")
	require.NoError(t, err)
	assert.Equal(t, "cat", item.Target)

	_, err = Load(path, WithSheet("Missing"))
	assert.Error(t, err)
}

func TestNewRejectsBadItems(t *testing.T) {
	_, err := New([]entity.VocabularyItem{{ID: "a", Source: "a", Target: "x"}, {ID: "a", Source: "b", Target: "y"}})
	assert.True(t, errors.Is(err, entity.ErrDuplicateItem))

	_, err = New([]entity.VocabularyItem{{Source: "solo"}})
	assert.True(t, errors.Is(err, entity.ErrInvalidItem))
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load(writeFile(t, "words.txt", "hola"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "words.csv", "foo,bar\n1,2\n"))
	assert.Error(t, err)
}
