package entity

import (
	"errors"
	"testing"
)

func TestParseOutcome(t *testing.T) {
	cases := map[string]Outcome{
		"correct": OutcomeCorrect,
		" C ":     OutcomeCorrect,
		"wrong":   OutcomeWrong,
		"no":      OutcomeWrong,
		"skip":    OutcomeSkipped,
		"Skipped": OutcomeSkipped,
	}
	for in, want := range cases {
		got, err := ParseOutcome(in)
		if err != nil {
			t.Fatalf("ParseOutcome(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOutcome(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseOutcome("maybe"); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}

func TestOutcomeText(t *testing.T) {
	raw, err := OutcomeWrong.MarshalText()
	if err != nil || string(raw) != "wrong" {
		t.Fatalf("unexpected marshal result %q %v", raw, err)
	}
	if _, err := OutcomeUnspecified.MarshalText(); err == nil {
		t.Fatalf("expected error for unspecified outcome")
	}
	var o Outcome
	if err := o.UnmarshalText([]byte("skipped")); err != nil || o != OutcomeSkipped {
		t.Fatalf("unexpected unmarshal %v %v", o, err)
	}
}

func TestVocabularyItemNormalize(t *testing.T) {
	it := VocabularyItem{Source: "  Buenos   días ", Target: " good morning ", SourceLanguage: "ES"}
	it.Normalize()
	if it.ID != "buenos-días" {
		t.Fatalf("unexpected derived id %q", it.ID)
	}
	if it.Category != DefaultCategory {
		t.Fatalf("expected default category, got %q", it.Category)
	}
	if it.SourceLanguage != LanguageSpanish || it.TargetLanguage != LanguageUnspecified {
		t.Fatalf("unexpected languages %q %q", it.SourceLanguage, it.TargetLanguage)
	}
	if err := it.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	empty := VocabularyItem{Source: "hola"}
	empty.Normalize()
	if err := empty.Validate(); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestDailyQueueFlattenOrder(t *testing.T) {
	q := DailyQueue{
		Due:         []VocabularyItem{{ID: "d"}},
		HardFlagged: []VocabularyItem{{ID: "h"}},
		New:         []VocabularyItem{{ID: "n"}},
		MixedReview: []VocabularyItem{{ID: "m"}},
		Total:       4,
	}
	got := q.Flatten()
	want := []string{"d", "h", "n", "m"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, want[i])
		}
	}
}
