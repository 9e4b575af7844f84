package aws

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/agroflow/agroflow-api/internal/interfaces"
	"github.com/agroflow/agroflow-api/internal/logger"
)

// SQSEventPublisher sends document lifecycle events to an SQS queue for
// downstream consumers (reporting, bookkeeping export, notifications).
type SQSEventPublisher struct {
	svc      *sqs.Client
	queueURL string
}

// NewSQSEventPublisher creates a publisher from the default AWS configuration
// chain. AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY are honored as static
// credentials for local development against ElasticMQ or LocalStack.
func NewSQSEventPublisher(ctx context.Context, queueURL string) (*SQSEventPublisher, error) {
	if queueURL == "" {
		return nil, errors.New("event queue URL is required")
	}

	var opts []func(*config.LoadOptions) error
	if key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	svcOpts := func(o *sqs.Options) {
		if endpoint := os.Getenv("SQS_ENDPOINT_URL"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}

	return &SQSEventPublisher{
		svc:      sqs.NewFromConfig(cfg, svcOpts),
		queueURL: queueURL,
	}, nil
}

// PublishDocumentEvent serializes the event as JSON and enqueues it.
func (p *SQSEventPublisher) PublishDocumentEvent(ctx context.Context, event interfaces.DocumentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal document event")
	}

	_, err = p.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return errors.Wrap(err, "failed to send document event")
	}

	logger.Log.Debug("Published document event",
		zap.String("documentId", event.DocumentID.String()),
		zap.String("eventType", event.EventType))
	return nil
}

var _ interfaces.EventPublisher = (*SQSEventPublisher)(nil)
