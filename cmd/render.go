package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/usecase/srs"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func printQueue(w io.Writer, q *entity.DailyQueue) {
	for _, bucket := range entity.Buckets {
		items := q.Items(bucket)
		fmt.Fprintf(w, "%s (%d)\n", bucket, len(items))
		for _, item := range items {
			fmt.Fprintf(w, "  %-24s %s -> %s\n", item.ID, item.Source, item.Target)
		}
	}
	fmt.Fprintf(w, "total %d items, about %d min\n", q.Total, q.EstimatedMinutes)
}

func printSession(w io.Writer, items []entity.VocabularyItem) {
	table := newTable(w, "#", "ID", "SOURCE", "TARGET", "CATEGORY")
	for i, item := range items {
		table.Append([]string{strconv.Itoa(i + 1), item.ID, item.Source, item.Target, item.Category})
	}
	table.Render()
}

func printStatistics(w io.Writer, item *entity.VocabularyItem, st *entity.ItemStatistics) {
	fmt.Fprintf(w, "%s: %s -> %s [%s]\n", item.ID, item.Source, item.Target, item.Category)
	if item.Pronunciation != "" {
		fmt.Fprintf(w, "  pronunciation: %s\n", item.Pronunciation)
	}
	if item.Example != "" {
		fmt.Fprintf(w, "  example:       %s\n", item.Example)
	}
	fmt.Fprintf(w, "  level:    %d (%s)\n", st.Level, entity.LevelName(st.Level))
	fmt.Fprintf(w, "  seen:     %d (correct %d, wrong %d, accuracy %d%%)\n",
		st.TimesSeen, st.TimesCorrect, st.TimesWrong, srs.Accuracy(st.TimesCorrect, st.TimesSeen))
	fmt.Fprintf(w, "  streak:   %d\n", st.Streak)
	fmt.Fprintf(w, "  hard:     %t\n", st.Hard)
	fmt.Fprintf(w, "  last:     %s\n", dateOrDash(st.LastSeen))
	fmt.Fprintf(w, "  next due: %s\n", dateOrDash(st.NextDue))
	fmt.Fprintf(w, "  wrong on: %s\n", dateOrDash(st.LastWrong))
}

func printSummary(w io.Writer, s *entity.ProgressSummary) {
	fmt.Fprintf(w, "items %d: new %d, in progress %d, learned %d, mastered %d\n",
		s.TotalItems, s.New, s.InProgress, s.Learned, s.Mastered)
	fmt.Fprintf(w, "due today %d, accuracy %d%% over %d reviews, streak %d days\n",
		s.DueToday, s.Accuracy, s.TotalSeen, s.Streak)

	levels := newTable(w, "LEVEL", "NAME", "ITEMS")
	for level, n := range s.Levels {
		levels.Append([]string{strconv.Itoa(level), entity.LevelName(level), strconv.Itoa(n)})
	}
	levels.Render()

	if len(s.Categories) == 0 {
		return
	}
	categories := newTable(w, "CATEGORY", "LEARNED", "TOTAL")
	for _, c := range s.Categories {
		categories.Append([]string{c.Category, strconv.Itoa(c.Learned), strconv.Itoa(c.Total)})
	}
	categories.Render()
}

func printItems(w io.Writer, rows []entity.ItemProgress, total int64) {
	table := newTable(w, "ID", "SOURCE", "TARGET", "CATEGORY", "LEVEL", "SEEN", "ACC", "NEXT DUE", "HARD")
	for _, row := range rows {
		st := row.Stats
		hard := ""
		if st.Hard {
			hard = "*"
		}
		table.Append([]string{
			row.Item.ID,
			row.Item.Source,
			row.Item.Target,
			row.Item.Category,
			strconv.Itoa(st.Level),
			strconv.Itoa(st.TimesSeen),
			strconv.Itoa(srs.Accuracy(st.TimesCorrect, st.TimesSeen)) + "%",
			dateOrDash(st.NextDue),
			hard,
		})
	}
	table.Render()
	fmt.Fprintf(w, "%d of %d items\n", len(rows), total)
}

func printHistory(w io.Writer, days []entity.DailyActivity) {
	if len(days) == 0 {
		fmt.Fprintln(w, "no reviews recorded")
		return
	}
	table := newTable(w, "DAY", "REVIEWS", "CORRECT", "WRONG", "SKIPPED")
	for _, d := range days {
		table.Append([]string{
			d.Day.String(),
			strconv.Itoa(d.Reviews),
			strconv.Itoa(d.Correct),
			strconv.Itoa(d.Wrong),
			strconv.Itoa(d.Skipped),
		})
	}
	table.Render()
}

func dateOrDash(d *entity.Date) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return d.String()
}
