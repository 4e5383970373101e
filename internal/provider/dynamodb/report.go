package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// PutReport stores a consolidated report keyed by its date. A rerun of the
// same date overwrites the previous report.
func (p *Provider) PutReport(ctx context.Context, report *types.ConsolidatedReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	_, err = p.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &p.tableName,
		Item: map[string]ddbtypes.AttributeValue{
			"PK":   &ddbtypes.AttributeValueMemberS{Value: datePK(report.Date)},
			"SK":   &ddbtypes.AttributeValueMemberS{Value: reportSK()},
			"data": &ddbtypes.AttributeValueMemberS{Value: string(data)},
		},
	})
	if err != nil {
		return fmt.Errorf("storing report for %s: %w", report.Date, err)
	}
	return nil
}

// GetReport retrieves the stored report for a date.
func (p *Provider) GetReport(ctx context.Context, date string) (*types.ConsolidatedReport, error) {
	out, err := p.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &p.tableName,
		Key: map[string]ddbtypes.AttributeValue{
			"PK": &ddbtypes.AttributeValueMemberS{Value: datePK(date)},
			"SK": &ddbtypes.AttributeValueMemberS{Value: reportSK()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching report for %s: %w", date, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("report for %s: %w", date, provider.ErrNotFound)
	}

	data, err := attributeStr(out.Item, "data")
	if err != nil {
		return nil, err
	}
	var report types.ConsolidatedReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("decoding report for %s: %w", date, err)
	}
	return &report, nil
}
