package middlewares

import (
	"lablink-service/internal/app/config"
	"lablink-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                 *zap.Logger
	DirectoryRepository contracts.DirectoryRepository
	InternalConfig      *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, directoryRepository contracts.DirectoryRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:                 logger,
		DirectoryRepository: directoryRepository,
		InternalConfig:      internalConfig,
	}
}
