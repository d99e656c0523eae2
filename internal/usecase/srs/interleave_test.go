package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eslsoft/vocdrill/internal/entity"
)

func item(id, category string) entity.VocabularyItem {
	return entity.VocabularyItem{ID: id, Category: category}
}

func TestInterleaveRoundRobin(t *testing.T) {
	in := []entity.VocabularyItem{
		item("a1", "a"), item("a2", "a"), item("a3", "a"),
		item("b1", "b"),
		item("c1", "c"), item("c2", "c"),
	}
	assert.Equal(t, []string{"a1", "b1", "c1", "a2", "c2", "a3"}, ids(Interleave(in)))
}

func TestInterleaveDominantCategoryStillRuns(t *testing.T) {
	in := []entity.VocabularyItem{item("a1", "a"), item("b1", "b"), item("a2", "a"), item("a3", "a"), item("a4", "a")}
	assert.Equal(t, []string{"a1", "b1", "a2", "a3", "a4"}, ids(Interleave(in)))
}

func TestInterleaveSmallInputs(t *testing.T) {
	assert.Empty(t, Interleave(nil))
	single := []entity.VocabularyItem{item("x", "a")}
	out := Interleave(single)
	assert.Equal(t, []string{"x"}, ids(out))
	out[0].ID = "changed"
	assert.Equal(t, "x", single[0].ID)
}
