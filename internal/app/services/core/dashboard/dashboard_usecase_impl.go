package dashboard

import (
	"context"
	"errors"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/responses"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const weeklySeriesLength = 5

type dashboardUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	TransactionRepository contracts.TransactionRepository
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
}

func NewDashboardUsecase(
	appointmentRepository contracts.AppointmentRepository,
	transactionRepository contracts.TransactionRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		AppointmentRepository: appointmentRepository,
		TransactionRepository: transactionRepository,
		RedisRepository:       redisRepository,
		Log:                   logger,
	}
}

// ForActor builds the monthly metrics and five-week series for the
// caller: a laboratory sees its own appointments, the admin sees all.
// Results are cached briefly; cache failures fall through to the source.
func (uc *dashboardUsecase) ForActor(ctx context.Context, actor *models.Actor) (*responses.Dashboard, error) {
	if actor.Role == models.RoleEmployee {
		return nil, exceptions.ErrNotAuthorized(errors.New("dashboard is admin and laboratory only"))
	}

	cacheKey := "dashboard:" + string(actor.Role) + ":" + actor.ID.Hex()
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var dashboard responses.Dashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			return &dashboard, nil
		}
	}

	var laboratoryName string
	var laboratoryID *primitive.ObjectID
	if actor.Role == models.RoleLaboratory {
		laboratoryName = actor.FullName
		id := actor.ID
		laboratoryID = &id
	}

	now := time.Now().UTC()
	monthStart, monthEnd := utils.MonthBounds(now)

	metrics := responses.DashboardMetrics{}
	var err error
	metrics.TotalAppointments, err = uc.countAppointments(ctx, laboratoryName, monthStart, monthEnd, nil)
	if err != nil {
		return nil, err
	}
	for _, entry := range []struct {
		status models.AppointmentStatus
		target *int64
	}{
		{models.AppointmentStatusPending, &metrics.PendingAppointments},
		{models.AppointmentStatusCompleted, &metrics.CompletedAppointments},
		{models.AppointmentStatusRejected, &metrics.RejectedAppointments},
	} {
		*entry.target, err = uc.countAppointments(ctx, laboratoryName, monthStart, monthEnd, []models.AppointmentStatus{entry.status})
		if err != nil {
			return nil, err
		}
	}

	metrics.TotalEarnings, err = uc.TransactionRepository.CompletedTotal(ctx, laboratoryID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	weekly := make([]responses.WeeklyAppointmentCount, 0, weeklySeriesLength)
	for _, week := range utils.LastWeeks(now, weeklySeriesLength) {
		count, err := uc.countAppointments(ctx, laboratoryName, week.Start, week.End.AddDate(0, 0, 1), nil)
		if err != nil {
			return nil, err
		}
		weekly = append(weekly, responses.WeeklyAppointmentCount{
			Week:             week.Label,
			AppointmentCount: count,
		})
	}

	dashboard := &responses.Dashboard{
		Metrics:            metrics,
		WeeklyAppointments: weekly,
	}

	if encoded, err := json.Marshal(dashboard); err == nil {
		if err := uc.RedisRepository.Set(ctx, cacheKey, string(encoded), constvars.DashboardCacheTTLSeconds*time.Second); err != nil {
			uc.Log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return dashboard, nil
}

func (uc *dashboardUsecase) countAppointments(ctx context.Context, laboratoryName string, from, to time.Time, statuses []models.AppointmentStatus) (int64, error) {
	return uc.AppointmentRepository.Count(ctx, &contracts.AppointmentQuery{
		LaboratoryName: laboratoryName,
		Statuses:       statuses,
		CreatedFrom:    &from,
		CreatedTo:      &to,
	})
}
