package appointments

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Document uploads can take longer than a plain write.
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Create(ctx, actor, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) GetAppointment(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, actor, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func parseListRequest(r *http.Request, archived bool) *requests.ListAppointments {
	queryValues := r.URL.Query()
	request := &requests.ListAppointments{
		SortField:     queryValues.Get("sortField"),
		SortOrder:     queryValues.Get("sortOrder"),
		Status:        queryValues.Get("status"),
		PriorityLevel: queryValues.Get("priorityLevel"),
		EmployeeID:    queryValues.Get("employeeId"),
		DateAndTime:   queryValues.Get("dateAndTime"),
		Archived:      archived,
	}
	if page, err := strconv.Atoi(queryValues.Get("page")); err == nil {
		request.Page = page
	}
	if raw := queryValues.Get("hasTrackingId"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			request.HasTrackingID = &value
		}
	}
	if raw := queryValues.Get("isAssigned"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			request.IsAssigned = &value
		}
	}
	return request
}

func (ctrl *AppointmentController) list(w http.ResponseWriter, r *http.Request, archived bool) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	request := parseListRequest(r, archived)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, pagination, err := ctrl.AppointmentUsecase.List(ctx, actor, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, pagination, result)
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, false)
}

func (ctrl *AppointmentController) ListArchivedAppointments(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, true)
}

func (ctrl *AppointmentController) TodayAppointments(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.TodayForEmployee(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TodayAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.AssignEmployee)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.AssignEmployee(ctx, actor, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignEmployeeSuccessMessage, result)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointmentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constvars.AppDefaultRequestTimeout*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, actor, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) UploadTrackingID(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UploadTrackingID)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UploadTrackingID(ctx, actor, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadTrackingIDSuccessMessage, result)
}

// ReassignEmployeeAppointments is called by the directory collaborator
// right before it removes an employee record.
func (ctrl *AppointmentController) ReassignEmployeeAppointments(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	if actor.Role != models.RoleAdmin {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthorized(nil))
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.ReassignOnEmployeeRemoval(ctx, employeeID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReassignAppointmentSuccessMessage, nil)
}
