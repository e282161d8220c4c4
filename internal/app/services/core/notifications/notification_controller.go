package notifications

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.NotificationUsecase.ListForActor(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListNotificationsSuccessMessage, result)
}

func (ctrl *NotificationController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	notificationID := chi.URLParam(r, "notificationID")

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.NotificationUsecase.MarkRead(ctx, actor, notificationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReadNotificationSuccessMessage, result)
}

func (ctrl *NotificationController) DeleteNotifications(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	deleted, err := ctrl.NotificationUsecase.DeleteForActor(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNotificationsSuccessMessage, map[string]int64{"deleted": deleted})
}

func (ctrl *NotificationController) ToggleNotifications(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	updated, err := ctrl.NotificationUsecase.ToggleNotifications(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleNotificationsSuccessMessage, map[string]bool{"isNotification": updated.IsNotification})
}
