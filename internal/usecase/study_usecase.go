package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase/srs"
)

// DefaultHistoryDays is the window returned by History when none is given.
const DefaultHistoryDays = 30

// streakLookbackDays bounds how much history is read to compute the streak.
const streakLookbackDays = 366

// StudyUsecase is the scheduling facade used by the command line.
type StudyUsecase interface {
	ApplyResult(ctx context.Context, itemID string, outcome entity.Outcome) (*entity.ItemStatistics, error)
	ToggleHardFlag(ctx context.Context, itemID string) (bool, error)
	BuildDailyQueue(ctx context.Context, dailyGoal int) (*entity.DailyQueue, error)
	DailySessionQueue(ctx context.Context, dailyGoal int) ([]entity.VocabularyItem, error)
	Summarize(ctx context.Context) (*entity.ProgressSummary, error)
	Statistics(ctx context.Context, itemID string) (*entity.VocabularyItem, *entity.ItemStatistics, error)
	ListItems(ctx context.Context, query *repository.ListItemsQuery) ([]entity.ItemProgress, int64, error)
	History(ctx context.Context, days int) ([]entity.DailyActivity, error)
	ResetAll(ctx context.Context) error
	ResetOne(ctx context.Context, itemID string) error
}

// NewStudyUsecase wires the corpus and stores. A nil rng gets a time-seeded source.
func NewStudyUsecase(
	corpus repository.CorpusRepository,
	stats repository.StatisticsRepository,
	activity repository.ActivityRepository,
	rng *rand.Rand,
	logger logrus.FieldLogger,
) StudyUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &studyUsecase{
		corpus:   corpus,
		stats:    stats,
		activity: activity,
		rng:      rng,
		log:      logger,
		clock:    time.Now,
	}
}

type studyUsecase struct {
	corpus   repository.CorpusRepository
	stats    repository.StatisticsRepository
	activity repository.ActivityRepository
	log      logrus.FieldLogger
	clock    func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
	locks itemLocks
}

func (u *studyUsecase) today() entity.Date {
	return entity.DateOf(u.clock())
}

func (u *studyUsecase) ApplyResult(ctx context.Context, itemID string, outcome entity.Outcome) (*entity.ItemStatistics, error) {
	if !outcome.Valid() {
		return nil, entity.ErrInvalidOutcome
	}
	itemID = strings.TrimSpace(itemID)
	if _, err := u.corpus.Get(ctx, itemID); err != nil {
		return nil, err
	}

	unlock := u.locks.lock(itemID)
	defer unlock()

	today := u.today()
	current, err := u.stats.Find(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	next := srs.ApplyResult(current, itemID, outcome, today)
	saved, err := u.stats.Save(ctx, &next)
	if err != nil {
		u.log.WithError(err).WithField("item_id", itemID).Warn("persist result failed")
		return nil, fmt.Errorf("save statistics: %w", err)
	}

	// History only feeds streaks; the statistics write above is what matters.
	if err := u.activity.Record(ctx, today, outcome); err != nil {
		u.log.WithError(err).WithField("day", today.String()).Warn("record activity failed")
	}

	u.log.WithFields(logrus.Fields{
		"item_id":  itemID,
		"outcome":  outcome.String(),
		"level":    saved.Level,
		"next_due": saved.NextDue,
	}).Debug("result applied")
	return saved, nil
}

func (u *studyUsecase) ToggleHardFlag(ctx context.Context, itemID string) (bool, error) {
	itemID = strings.TrimSpace(itemID)
	if _, err := u.corpus.Get(ctx, itemID); err != nil {
		return false, err
	}

	unlock := u.locks.lock(itemID)
	defer unlock()

	current, err := u.stats.Find(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("load statistics: %w", err)
	}
	next := entity.NewItemStatistics(itemID)
	if current != nil {
		next = current.Clone()
	}
	next.Hard = !next.Hard
	saved, err := u.stats.Save(ctx, &next)
	if err != nil {
		u.log.WithError(err).WithField("item_id", itemID).Warn("persist hard flag failed")
		return false, fmt.Errorf("save statistics: %w", err)
	}
	u.log.WithFields(logrus.Fields{"item_id": itemID, "hard": saved.Hard}).Info("hard flag toggled")
	return saved.Hard, nil
}

func (u *studyUsecase) BuildDailyQueue(ctx context.Context, dailyGoal int) (*entity.DailyQueue, error) {
	if dailyGoal < 1 {
		return nil, entity.ErrInvalidDailyGoal
	}
	items, stats, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	u.rngMu.Lock()
	queue := srs.BuildDailyQueue(items, stats, dailyGoal, u.today(), u.rng)
	u.rngMu.Unlock()

	u.log.WithFields(logrus.Fields{
		"due":            len(queue.Due),
		"recently_wrong": len(queue.RecentlyWrong),
		"hard_flagged":   len(queue.HardFlagged),
		"new":            len(queue.New),
		"mixed_review":   len(queue.MixedReview),
		"total":          queue.Total,
	}).Debug("daily queue built")
	return &queue, nil
}

func (u *studyUsecase) DailySessionQueue(ctx context.Context, dailyGoal int) ([]entity.VocabularyItem, error) {
	queue, err := u.BuildDailyQueue(ctx, dailyGoal)
	if err != nil {
		return nil, err
	}
	return srs.SessionQueue(*queue), nil
}

func (u *studyUsecase) Summarize(ctx context.Context) (*entity.ProgressSummary, error) {
	items, stats, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	today := u.today()
	days, err := u.activity.List(ctx, today.AddDays(-streakLookbackDays), today)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	summary := srs.Summarize(items, stats, srs.Streak(days, today), today)
	return &summary, nil
}

// Statistics returns the item and its record; a never-seen item gets a fresh zero record.
func (u *studyUsecase) Statistics(ctx context.Context, itemID string) (*entity.VocabularyItem, *entity.ItemStatistics, error) {
	item, err := u.corpus.Get(ctx, strings.TrimSpace(itemID))
	if err != nil {
		return nil, nil, err
	}
	st, err := u.stats.Find(ctx, item.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load statistics: %w", err)
	}
	if st == nil {
		fresh := entity.NewItemStatistics(item.ID)
		st = &fresh
	}
	return item, st, nil
}

func (u *studyUsecase) History(ctx context.Context, days int) ([]entity.DailyActivity, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	today := u.today()
	out, err := u.activity.List(ctx, today.AddDays(-(days - 1)), today)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	return out, nil
}

func (u *studyUsecase) ResetAll(ctx context.Context) error {
	unlock := u.locks.lockAll()
	defer unlock()

	// Activity goes first so a failure leaves mastery data untouched.
	if err := u.activity.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset activity: %w", err)
	}
	if err := u.stats.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset statistics (activity already cleared): %w", err)
	}
	u.log.Info("all progress reset")
	return nil
}

// ResetOne clears one item's record. Orphan ids are accepted so stale
// records left behind by corpus edits can be removed.
func (u *studyUsecase) ResetOne(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entity.ErrItemNotFound
	}
	unlock := u.locks.lock(itemID)
	defer unlock()

	if err := u.stats.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("reset statistics: %w", err)
	}
	u.log.WithField("item_id", itemID).Info("item progress reset")
	return nil
}

// snapshot loads the corpus and all statistics keyed by item id.
func (u *studyUsecase) snapshot(ctx context.Context) ([]entity.VocabularyItem, map[string]entity.ItemStatistics, error) {
	items, err := u.corpus.All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	list, err := u.stats.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load statistics: %w", err)
	}
	stats := lo.KeyBy(list, func(s entity.ItemStatistics) string { return s.ItemID })
	return items, stats, nil
}
