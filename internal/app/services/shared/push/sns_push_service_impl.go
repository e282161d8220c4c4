package push

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/goccy/go-json"
)

// SNSAPI is the slice of the SNS client the push service uses; tests
// substitute a fake.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPushService struct {
	Client SNSAPI
}

func NewSNSPushService(client SNSAPI) contracts.PushService {
	return &snsPushService{
		Client: client,
	}
}

type pushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendPush publishes to the device's platform endpoint. The device token
// stored in the directory is the endpoint ARN.
func (s *snsPushService) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	message, err := json.Marshal(pushMessage{Title: title, Body: body, Data: data})
	if err != nil {
		return exceptions.ErrSNSPublish(err)
	}

	_, err = s.Client.Publish(ctx, &sns.PublishInput{
		TargetArn: aws.String(deviceToken),
		Message:   aws.String(string(message)),
	})
	if err != nil {
		return exceptions.ErrSNSPublish(err)
	}
	return nil
}
