package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
)

// Corpus is the immutable in-memory vocabulary list.
type Corpus struct {
	items []entity.VocabularyItem
	index map[string]int
}

var _ repository.CorpusRepository = (*Corpus)(nil)

// Option customises Load.
type Option func(*loadConfig)

type loadConfig struct {
	sheet string
}

// WithSheet selects the worksheet of an .xlsx corpus. The first sheet is used by default.
func WithSheet(name string) Option {
	return func(c *loadConfig) { c.sheet = strings.TrimSpace(name) }
}

// New normalizes and validates items. Ids must be unique.
func New(items []entity.VocabularyItem) (*Corpus, error) {
	c := &Corpus{
		items: make([]entity.VocabularyItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		item.Normalize()
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i+1, item.Source, err)
		}
		if _, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("item %d: %w: %s", i+1, entity.ErrDuplicateItem, item.ID)
		}
		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Load reads a corpus file. The format follows the extension: .json, .csv or .xlsx.
func Load(path string, opts ...Option) (*Corpus, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		items []entity.VocabularyItem
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		items, err = readJSONFile(path)
	case ".csv":
		items, err = readCSVFile(path)
	case ".xlsx":
		items, err = readXLSXFile(path, cfg.sheet)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", path, err)
	}
	return New(items)
}

func (c *Corpus) All(_ context.Context) ([]entity.VocabularyItem, error) {
	return append([]entity.VocabularyItem(nil), c.items...), nil
}

func (c *Corpus) Get(_ context.Context, id string) (*entity.VocabularyItem, error) {
	idx, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrItemNotFound, id)
	}
	item := c.items[idx]
	return &item, nil
}

// Len returns the number of items.
func (c *Corpus) Len() int { return len(c.items) }

// Categories returns the distinct categories in order of first appearance.
func (c *Corpus) Categories() []string {
	return lo.Uniq(lo.Map(c.items, func(it entity.VocabularyItem, _ int) string { return it.Category }))
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return f, nil
}
