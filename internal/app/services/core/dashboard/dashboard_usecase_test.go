package dashboard

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	sharedredis "lablink-service/internal/app/services/shared/redis"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type countingAppointmentRepo struct {
	contracts.AppointmentRepository
	calls atomic.Int64
	count int64
}

func (f *countingAppointmentRepo) Count(ctx context.Context, query *contracts.AppointmentQuery) (int64, error) {
	f.calls.Add(1)
	return f.count, nil
}

type stubTransactionRepo struct {
	contracts.TransactionRepository
	total float64
}

func (f *stubTransactionRepo) CompletedTotal(ctx context.Context, laboratoryID *primitive.ObjectID, from, to time.Time) (float64, error) {
	return f.total, nil
}

func newTestRedis(t *testing.T) contracts.RedisRepository {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return sharedredis.NewRedisRepository(client)
}

func TestDashboardAggregatesAndCaches(t *testing.T) {
	appointments := &countingAppointmentRepo{count: 7}
	transactions := &stubTransactionRepo{total: 1234.5}
	usecase := NewDashboardUsecase(appointments, transactions, newTestRedis(t), zap.NewNop())

	admin := &models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	dashboard, err := usecase.ForActor(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(7), dashboard.Metrics.TotalAppointments)
	assert.Equal(t, 1234.5, dashboard.Metrics.TotalEarnings)
	require.Len(t, dashboard.WeeklyAppointments, weeklySeriesLength)
	assert.Equal(t, int64(7), dashboard.WeeklyAppointments[0].AppointmentCount)

	// 4 metric counts + 5 weekly counts on a cold cache.
	firstPass := appointments.calls.Load()
	assert.Equal(t, int64(9), firstPass)

	again, err := usecase.ForActor(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Metrics, again.Metrics)
	assert.Equal(t, firstPass, appointments.calls.Load(), "second read comes from cache")
}

func TestDashboardRejectsEmployee(t *testing.T) {
	usecase := NewDashboardUsecase(&countingAppointmentRepo{}, &stubTransactionRepo{}, newTestRedis(t), zap.NewNop())

	employee := &models.Actor{ID: primitive.NewObjectID(), Role: models.RoleEmployee}
	_, err := usecase.ForActor(context.Background(), employee)
	require.Error(t, err)
}

func TestDashboardScopesByLaboratoryIdentity(t *testing.T) {
	appointments := &countingAppointmentRepo{count: 2}
	transactions := &stubTransactionRepo{total: 50}
	usecase := NewDashboardUsecase(appointments, transactions, newTestRedis(t), zap.NewNop())

	laboratory := &models.Actor{ID: primitive.NewObjectID(), Role: models.RoleLaboratory, FullName: "Central Diagnostics"}
	dashboard, err := usecase.ForActor(context.Background(), laboratory)
	require.NoError(t, err)
	assert.Equal(t, 50.0, dashboard.Metrics.TotalEarnings)
}
