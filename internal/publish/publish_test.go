package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

type mockSQS struct {
	sent []*sqs.SendMessageInput
	err  error
}

func (m *mockSQS) SendMessage(_ context.Context, input *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, input)
	return &sqs.SendMessageOutput{}, nil
}

func sampleReport() *types.ConsolidatedReport {
	return &types.ConsolidatedReport{
		ReportID: "01J0TEST",
		Date:     "2025-09-08",
		Status:   types.SeverityNeedsAttention,
		Sources: []types.SourceReport{
			{SourceID: "100001", Status: types.SeverityNeedsAttention,
				Incidents: []types.Incident{{Type: types.IncidentLateUpload}}},
		},
	}
}

func TestSQSPublisherSendsReportJSON(t *testing.T) {
	mock := &mockSQS{}
	p, err := NewSQSPublisher("https://sqs.local/queue", "us-east-1", WithSQSClient(mock))
	require.NoError(t, err)
	assert.Equal(t, "sqs", p.Name())

	require.NoError(t, p.Publish(context.Background(), sampleReport()))
	require.Len(t, mock.sent, 1)

	msg := mock.sent[0]
	assert.Equal(t, "https://sqs.local/queue", *msg.QueueUrl)
	assert.Equal(t, "NEEDS_ATTENTION", *msg.MessageAttributes["status"].StringValue)
	assert.Equal(t, "2025-09-08", *msg.MessageAttributes["date"].StringValue)

	var decoded types.ConsolidatedReport
	require.NoError(t, json.Unmarshal([]byte(*msg.MessageBody), &decoded))
	assert.Equal(t, "01J0TEST", decoded.ReportID)
	require.Len(t, decoded.Sources, 1)
	assert.Equal(t, "100001", decoded.Sources[0].SourceID)
}

func TestSQSPublisherSendError(t *testing.T) {
	mock := &mockSQS{err: fmt.Errorf("queue unavailable")}
	p, err := NewSQSPublisher("https://sqs.local/queue", "", WithSQSClient(mock))
	require.NoError(t, err)

	assert.Error(t, p.Publish(context.Background(), sampleReport()))
}

func TestSQSPublisherRequiresQueueURL(t *testing.T) {
	_, err := NewSQSPublisher("", "")
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(nil)
	assert.Equal(t, "log", p.Name())
	assert.NoError(t, p.Publish(context.Background(), sampleReport()))
}

func TestNewSelectsPublisher(t *testing.T) {
	p, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "log", p.Name())

	p, err = New(&types.PublisherConfig{Type: types.PublisherLog}, nil)
	require.NoError(t, err)
	assert.Equal(t, "log", p.Name())

	_, err = New(&types.PublisherConfig{Type: types.PublisherSQS}, nil)
	assert.Error(t, err) // queueUrl required

	_, err = New(&types.PublisherConfig{Type: "pigeon"}, nil)
	assert.Error(t, err)
}
