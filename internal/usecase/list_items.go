package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase/srs"
	"github.com/eslsoft/vocdrill/pkg/filterexpr"
)

var listItemsSchema = filterexpr.Schema{
	Filter: map[string]filterexpr.Field{
		"category": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Category",
				filterexpr.OpIN: "Categories",
			},
		},
		"source": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpSW: "SourcePrefix"},
		},
		"level": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:  "Level",
				filterexpr.OpGTE: "LevelMin",
				filterexpr.OpLTE: "LevelMax",
			},
		},
		"hard": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Hard"},
		},
		"seen": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Seen"},
		},
		"due": {
			Kind: filterexpr.KindBool,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Due"},
		},
		"next_due": {
			Kind: filterexpr.KindDate,
			Ops:  map[filterexpr.Op]string{filterexpr.OpLTE: "DueBy"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "category",
		FallbackKey:    "id",
		Keys:           []string{"category", "id", "source", "level", "next_due", "times_wrong", "accuracy"},
	},
}

type listItemsParams struct {
	Category     *string
	Categories   []string
	SourcePrefix *string
	Level        *int
	LevelMin     *int
	LevelMax     *int
	Hard         *bool
	Seen         *bool
	Due          *bool
	DueBy        *time.Time

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// ListItems filters and orders the corpus joined with statistics, then pages it.
func (u *studyUsecase) ListItems(ctx context.Context, query *repository.ListItemsQuery) ([]entity.ItemProgress, int64, error) {
	if query == nil {
		query = &repository.ListItemsQuery{}
	}
	var params listItemsParams
	if err := filterexpr.Bind(query, &params, listItemsSchema); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	items, stats, err := u.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	today := u.today()

	rows := make([]entity.ItemProgress, 0, len(items))
	for _, item := range items {
		st, ok := stats[item.ID]
		if !ok {
			st = entity.NewItemStatistics(item.ID)
		}
		row := entity.ItemProgress{Item: item, Stats: st}
		if params.matches(row, today) {
			rows = append(rows, row)
		}
	}

	slices.SortStableFunc(rows, func(a, b entity.ItemProgress) int {
		if c := compareBy(params.PrimaryKey, a, b); c != 0 {
			if params.PrimaryDesc {
				return -c
			}
			return c
		}
		c := compareBy(params.SecondaryKey, a, b)
		if params.SecondaryDesc {
			return -c
		}
		return c
	})

	start, end := query.Window(len(rows))
	return rows[start:end], int64(len(rows)), nil
}

func (p *listItemsParams) matches(row entity.ItemProgress, today entity.Date) bool {
	st := &row.Stats
	level := srs.ClampLevel(st.Level)
	switch {
	case p.Category != nil && row.Item.Category != strings.ToLower(*p.Category):
		return false
	case len(p.Categories) > 0 && !slices.ContainsFunc(p.Categories, func(c string) bool { return strings.EqualFold(c, row.Item.Category) }):
		return false
	case p.SourcePrefix != nil && !strings.HasPrefix(strings.ToLower(row.Item.Source), strings.ToLower(*p.SourcePrefix)):
		return false
	case p.Level != nil && level != *p.Level:
		return false
	case p.LevelMin != nil && level < *p.LevelMin:
		return false
	case p.LevelMax != nil && level > *p.LevelMax:
		return false
	case p.Hard != nil && st.Hard != *p.Hard:
		return false
	case p.Seen != nil && st.Seen() != *p.Seen:
		return false
	case p.Due != nil && (st.Seen() && srs.IsDue(st.NextDue, today)) != *p.Due:
		return false
	case p.DueBy != nil && (st.NextDue == nil || st.NextDue.After(entity.DateOf(*p.DueBy))):
		return false
	}
	return true
}

func compareBy(key string, a, b entity.ItemProgress) int {
	switch key {
	case "category":
		return cmp.Compare(a.Item.Category, b.Item.Category)
	case "source":
		return cmp.Compare(strings.ToLower(a.Item.Source), strings.ToLower(b.Item.Source))
	case "level":
		return cmp.Compare(a.Stats.Level, b.Stats.Level)
	case "times_wrong":
		return cmp.Compare(a.Stats.TimesWrong, b.Stats.TimesWrong)
	case "accuracy":
		return cmp.Compare(srs.Accuracy(a.Stats.TimesCorrect, a.Stats.TimesSeen), srs.Accuracy(b.Stats.TimesCorrect, b.Stats.TimesSeen))
	case "next_due":
		return compareDates(a.Stats.NextDue, b.Stats.NextDue)
	default:
		return cmp.Compare(a.Item.ID, b.Item.ID)
	}
}

// compareDates sorts unscheduled items last.
func compareDates(a, b *entity.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
