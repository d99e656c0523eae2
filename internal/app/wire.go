//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/eslsoft/vocdrill/internal/infrastructure/logger"
	"github.com/eslsoft/vocdrill/internal/usecase"
	"github.com/eslsoft/vocdrill/internal/usecase/backup"
)

var configSet = wire.NewSet(
	config.Load,
	logger.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var storageSet = wire.NewSet(
	provideStores,
	provideStatistics,
	provideActivity,
	provideCorpus,
)

var usecaseSet = wire.NewSet(
	provideRand,
	usecase.NewStudyUsecase,
	backup.NewService,
	provideReminder,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		storageSet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
