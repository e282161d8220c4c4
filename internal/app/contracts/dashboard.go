package contracts

import (
	"context"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	ForActor(ctx context.Context, actor *models.Actor) (*responses.Dashboard, error)
}
