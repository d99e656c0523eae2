package srs

import "github.com/eslsoft/vocdrill/internal/entity"

// Interleave reorders items round-robin across categories: one item from each
// category in order of first appearance, then the next round. Order within a
// category is preserved.
func Interleave(items []entity.VocabularyItem) []entity.VocabularyItem {
	if len(items) < 2 {
		return append([]entity.VocabularyItem(nil), items...)
	}

	var order []string
	groups := make(map[string][]entity.VocabularyItem)
	for _, item := range items {
		if _, ok := groups[item.Category]; !ok {
			order = append(order, item.Category)
		}
		groups[item.Category] = append(groups[item.Category], item)
	}

	out := make([]entity.VocabularyItem, 0, len(items))
	for round := 0; len(out) < len(items); round++ {
		for _, category := range order {
			if g := groups[category]; round < len(g) {
				out = append(out, g[round])
			}
		}
	}
	return out
}
