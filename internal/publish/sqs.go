package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// SQSAPI is the subset of the SQS client used by SQSPublisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, input *sqs.SendMessageInput, opts ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher enqueues finished reports for a downstream consumer.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

// SQSPublisherOption configures an SQSPublisher.
type SQSPublisherOption func(*SQSPublisher)

// WithSQSClient sets a custom SQS client (useful for testing).
func WithSQSClient(c SQSAPI) SQSPublisherOption {
	return func(p *SQSPublisher) { p.client = c }
}

// NewSQSPublisher creates an SQS report publisher.
func NewSQSPublisher(queueURL, region string, opts ...SQSPublisherOption) (*SQSPublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("SQS queue URL required")
	}
	p := &SQSPublisher{queueURL: queueURL}
	for _, o := range opts {
		o(p)
	}
	if p.client == nil {
		var cfgOpts []func(*awsconfig.LoadOptions) error
		if region != "" {
			cfgOpts = append(cfgOpts, awsconfig.WithRegion(region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(context.Background(), cfgOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		p.client = sqs.NewFromConfig(cfg)
	}
	return p, nil
}

// Name returns the publisher identifier.
func (p *SQSPublisher) Name() string { return "sqs" }

// Publish enqueues the report as JSON with the overall status attached as a
// message attribute so consumers can filter without parsing the body.
func (p *SQSPublisher) Publish(ctx context.Context, report *types.ConsolidatedReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(data)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"status": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(report.Status)),
			},
			"date": {
				DataType:    aws.String("String"),
				StringValue: aws.String(report.Date),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sending to SQS: %w", err)
	}
	return nil
}
