package sns

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/portfolio-api/internal/config"
)

// AlertPublisher pushes operator notifications (new contact message, PIN
// delivery failure) to an SNS topic. Best-effort: callers log and continue
// when publishing fails.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, subject, message string) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (AlertPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSAlertTopicARN}, nil
}

func (p *publisher) PublishAlert(ctx context.Context, subject, message string) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicARN,
		Subject:  &subject,
		Message:  &message,
	})
	return err
}
