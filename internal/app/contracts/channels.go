package contracts

import (
	"context"
	"io"
	"lablink-service/internal/pkg/dto/requests"
	"time"
)

type EmailService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}

type PushService interface {
	SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

// Storage stores raw bytes and returns the stored-object reference.
type Storage interface {
	UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error)
}

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
