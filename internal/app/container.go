package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/repository"
	"github.com/eslsoft/vocdrill/internal/usecase"
	"github.com/eslsoft/vocdrill/internal/usecase/backup"
	"github.com/eslsoft/vocdrill/internal/usecase/reminder"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Corpus   repository.CorpusRepository
	Stores   *Stores
	Study    usecase.StudyUsecase
	Backup   *backup.Service
	Reminder *reminder.Job
}
