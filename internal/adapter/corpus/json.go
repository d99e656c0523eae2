package corpus

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// jsonCorpus accepts either a bare array of items or {"items": [...]}.
type jsonCorpus struct {
	Items []entity.VocabularyItem `json:"items"`
}

func readJSONFile(path string) ([]entity.VocabularyItem, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeJSON(f)
}

func decodeJSON(r io.Reader) ([]entity.VocabularyItem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var items []entity.VocabularyItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var wrapped jsonCorpus
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return wrapped.Items, nil
}
