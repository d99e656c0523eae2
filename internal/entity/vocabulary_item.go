package entity

import "strings"

// DefaultCategory is assigned to items that arrive without a category.
const DefaultCategory = "general"

// VocabularyItem is one word or phrase of the corpus. The corpus is read-only
// at runtime; learner progress lives in ItemStatistics keyed by ID.
type VocabularyItem struct {
	ID             string   `json:"id"`
	Source         string   `json:"source"`
	Target         string   `json:"target"`
	Category       string   `json:"category"`
	Pronunciation  string   `json:"pronunciation,omitempty"`
	Example        string   `json:"example,omitempty"`
	SourceLanguage Language `json:"source_language,omitempty"`
	TargetLanguage Language `json:"target_language,omitempty"`
}

// Normalize trims textual fields and fills in derived defaults.
func (it *VocabularyItem) Normalize() {
	if it == nil {
		return
	}
	it.Source = strings.TrimSpace(it.Source)
	it.Target = strings.TrimSpace(it.Target)
	it.Pronunciation = strings.TrimSpace(it.Pronunciation)
	it.Example = strings.TrimSpace(it.Example)
	it.Category = strings.ToLower(strings.TrimSpace(it.Category))
	if it.Category == "" {
		it.Category = DefaultCategory
	}
	it.ID = strings.TrimSpace(it.ID)
	if it.ID == "" {
		it.ID = NormalizeItemID(it.Source)
	}
	it.SourceLanguage = ParseLanguage(string(it.SourceLanguage))
	it.TargetLanguage = ParseLanguage(string(it.TargetLanguage))
}

// Validate reports whether the item can take part in scheduling.
func (it *VocabularyItem) Validate() error {
	if it == nil || it.ID == "" || it.Source == "" || it.Target == "" {
		return ErrInvalidItem
	}
	return nil
}
