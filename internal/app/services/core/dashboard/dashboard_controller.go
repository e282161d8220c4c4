package dashboard

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.DashboardUsecase.ForActor(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, result)
}
