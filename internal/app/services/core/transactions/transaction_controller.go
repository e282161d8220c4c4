package transactions

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TransactionController struct {
	Log                *zap.Logger
	TransactionUsecase contracts.TransactionUsecase
}

func NewTransactionController(logger *zap.Logger, transactionUsecase contracts.TransactionUsecase) *TransactionController {
	return &TransactionController{
		Log:                logger,
		TransactionUsecase: transactionUsecase,
	}
}

func (ctrl *TransactionController) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	transactionID := chi.URLParam(r, "transactionID")

	request := new(requests.UpdateTransactionStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.TransactionUsecase.UpdateStatus(ctx, actor, transactionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTransactionSuccessMessage, result)
}

func (ctrl *TransactionController) GetMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	total, err := ctrl.TransactionUsecase.MonthlyCompletedTotal(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MonthlyRevenueSuccessMessage, map[string]float64{"total": total})
}
