package mailer

import (
	"fmt"
	"lablink-service/internal/app/drivers/mailer"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes the email queue and delivers through SMTP. Delivery is
// best effort: a failed send is logged and the message dropped, never
// requeued into a retry loop.
type Worker struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return &Worker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (w *Worker) Start() error {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for delivery := range deliveries {
			var payload requests.EmailPayload
			if err := json.Unmarshal(delivery.Body, &payload); err != nil {
				w.Log.Error("mailer worker dropped unparseable payload", zap.Error(err))
				delivery.Nack(false, false)
				continue
			}

			if err := w.send(&payload); err != nil {
				w.Log.Error("mailer worker failed to send email",
					zap.String(constvars.LoggingRecipientKey, payload.To),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}
			delivery.Ack(false)
		}
	}()
	return nil
}

func (w *Worker) send(payload *requests.EmailPayload) error {
	body := payload.HTMLBody
	if body == "" {
		body = payload.TextBody
	}
	msg := []byte(fmt.Sprintf(constvars.EmailHeaderFormat, payload.To, payload.Subject, body))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	err := smtp.SendMail(addr, w.Client.Auth, w.Client.EmailSender, []string{payload.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, w.Client.Host)
	}
	return nil
}
