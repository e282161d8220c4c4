package fanout

import (
	"context"
	"errors"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	mu       sync.Mutex
	inserted []models.Notification
	failNext bool
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return nil, errors.New("insert failed")
	}
	n.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, *n)
	return n, nil
}

func (f *fakeNotificationRepo) FindByReceiver(ctx context.Context, receiverID primitive.ObjectID) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID, receiverID primitive.ObjectID) (*models.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) DeleteByReceiver(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	return 0, nil
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []requests.EmailPayload
	err  error
}

func (f *fakeEmailService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, *payload)
	return nil
}

type fakePushService struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakePushService) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, deviceToken)
	return nil
}

func actorWithPush(role models.Role) *models.Actor {
	return &models.Actor{
		ID:             primitive.NewObjectID(),
		Role:           role,
		FullName:       "Test Actor",
		Email:          "actor@example.com",
		DeviceToken:    "arn:aws:sns:endpoint/" + string(role),
		IsNotification: true,
	}
}

func newService(repo *fakeNotificationRepo, email *fakeEmailService, push *fakePushService) contracts.FanoutService {
	return NewFanoutService(repo, email, push, zap.NewNop())
}

func TestNotifyPersistsAndDispatchesAllChannels(t *testing.T) {
	repo := &fakeNotificationRepo{}
	email := &fakeEmailService{}
	push := &fakePushService{}
	svc := newService(repo, email, push)

	admin := actorWithPush(models.RoleAdmin)
	employee := actorWithPush(models.RoleEmployee)

	err := svc.Notify(context.Background(), &contracts.NotificationEvent{
		Type: models.NotificationTypeAppointment,
		Entries: []contracts.NotificationEntry{
			{Recipient: admin, Title: "t1", Body: "b1"},
			{Recipient: employee, Title: "t2", Body: "b2"},
			{EmailAddress: "patient@example.com", Title: "t3", Body: "b3"},
		},
	})
	require.NoError(t, err)
	svc.Wait()

	assert.Len(t, repo.inserted, 2, "patient entries are email-only, no persisted record")
	assert.Len(t, push.sent, 2)
	assert.Len(t, email.sent, 3)
}

func TestNotifySkipsPushWhenDisabledOrNoToken(t *testing.T) {
	repo := &fakeNotificationRepo{}
	email := &fakeEmailService{}
	push := &fakePushService{}
	svc := newService(repo, email, push)

	optedOut := actorWithPush(models.RoleEmployee)
	optedOut.IsNotification = false
	noToken := actorWithPush(models.RoleLaboratory)
	noToken.DeviceToken = ""

	err := svc.Notify(context.Background(), &contracts.NotificationEvent{
		Type: models.NotificationTypeAppointment,
		Entries: []contracts.NotificationEntry{
			{Recipient: optedOut, Title: "t", Body: "b"},
			{Recipient: noToken, Title: "t", Body: "b"},
		},
	})
	require.NoError(t, err)
	svc.Wait()

	assert.Empty(t, push.sent)
	assert.Len(t, email.sent, 2, "email is always attempted")
	assert.Len(t, repo.inserted, 2)
}

func TestNotifyChannelFailuresAreNotFatal(t *testing.T) {
	repo := &fakeNotificationRepo{}
	email := &fakeEmailService{err: errors.New("smtp down")}
	push := &fakePushService{err: errors.New("sns down")}
	svc := newService(repo, email, push)

	err := svc.Notify(context.Background(), &contracts.NotificationEvent{
		Type: models.NotificationTypeAppointment,
		Entries: []contracts.NotificationEntry{
			{Recipient: actorWithPush(models.RoleAdmin), Title: "t", Body: "b"},
		},
	})
	require.NoError(t, err, "channel failures never propagate")
	svc.Wait()

	assert.Len(t, repo.inserted, 1, "durable record still written")
}

func TestNotifyPersistFailureIsSurfaced(t *testing.T) {
	repo := &fakeNotificationRepo{failNext: true}
	email := &fakeEmailService{}
	push := &fakePushService{}
	svc := newService(repo, email, push)

	admin := actorWithPush(models.RoleAdmin)
	employee := actorWithPush(models.RoleEmployee)

	err := svc.Notify(context.Background(), &contracts.NotificationEvent{
		Type: models.NotificationTypeAppointment,
		Entries: []contracts.NotificationEntry{
			{Recipient: admin, Title: "t", Body: "b"},
			{Recipient: employee, Title: "t", Body: "b"},
		},
	})
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	svc.Wait()

	assert.Len(t, repo.inserted, 1, "remaining recipients still notified")
	assert.Len(t, email.sent, 1, "channels skipped for the failed entry only")
}
