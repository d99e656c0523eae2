package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/adapter/corpus"
	adapterrepo "github.com/eslsoft/vocdrill/internal/adapter/repository"
	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/infrastructure/database"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase"
	"github.com/eslsoft/vocdrill/internal/usecase/reminder"
)

// Stores groups the progress repositories behind one connection.
type Stores struct {
	Statistics repository.StatisticsRepository
	Activity   repository.ActivityRepository
}

func provideStores(cfg *config.Config, logger *logrus.Logger) (*Stores, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, err
	}
	if driver == config.DriverMemory {
		logger.Warn("using in-memory storage, progress is lost on exit")
		return &Stores{
			Statistics: adapterrepo.NewMemoryStatisticsRepository(),
			Activity:   adapterrepo.NewMemoryActivityRepository(),
		}, func() {}, nil
	}

	db, cleanup, err := database.NewConnection(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	var opts []adapterrepo.Option
	if cfg.Database.LogSQL {
		opts = append(opts, adapterrepo.WithQueryLogger(logger.WithField("component", "store")))
	}
	return &Stores{
		Statistics: adapterrepo.NewStatisticsRepository(db, opts...),
		Activity:   adapterrepo.NewActivityRepository(db, opts...),
	}, cleanup, nil
}

func provideStatistics(s *Stores) repository.StatisticsRepository { return s.Statistics }

func provideActivity(s *Stores) repository.ActivityRepository { return s.Activity }

func provideCorpus(cfg *config.Config, logger *logrus.Logger) (repository.CorpusRepository, error) {
	var opts []corpus.Option
	if cfg.Study.Sheet != "" {
		opts = append(opts, corpus.WithSheet(cfg.Study.Sheet))
	}
	c, err := corpus.Load(cfg.Study.Corpus, opts...)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", cfg.Study.Corpus, err)
	}
	logger.WithFields(logrus.Fields{
		"path":       cfg.Study.Corpus,
		"items":      c.Len(),
		"categories": len(c.Categories()),
	}).Debug("corpus loaded")
	return c, nil
}

func provideRand(cfg *config.Config) *rand.Rand {
	seed := cfg.Study.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func provideReminder(cfg *config.Config, study usecase.StudyUsecase, logger *logrus.Logger) (*reminder.Job, error) {
	return reminder.NewJob(study, cfg.Study.DailyGoal, cfg.Remind.At, logger.WithField("component", "reminder"))
}
