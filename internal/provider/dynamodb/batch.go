package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// DynamoDB caps BatchWriteItem at 25 requests per call.
const batchWriteChunk = 25

// PutBatch stores a day's file records for one source, one item per file.
// Used by the ingestion side feeding the audit table.
func (p *Provider) PutBatch(ctx context.Context, sourceID, date string, files []types.FileRecord) error {
	var requests []ddbtypes.WriteRequest
	for i, f := range files {
		item, err := attributevalue.MarshalMap(f)
		if err != nil {
			return fmt.Errorf("marshaling file record: %w", err)
		}
		item["PK"] = &ddbtypes.AttributeValueMemberS{Value: datePK(date)}
		item["SK"] = &ddbtypes.AttributeValueMemberS{Value: fileSK(sourceID, i)}
		requests = append(requests, ddbtypes.WriteRequest{
			PutRequest: &ddbtypes.PutRequest{Item: item},
		})
	}

	for start := 0; start < len(requests); start += batchWriteChunk {
		end := start + batchWriteChunk
		if end > len(requests) {
			end = len(requests)
		}
		_, err := p.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]ddbtypes.WriteRequest{
				p.tableName: requests[start:end],
			},
		})
		if err != nil {
			return fmt.Errorf("writing batch items: %w", err)
		}
	}
	return nil
}

// ListSources returns the distinct source IDs with items on a date, sorted.
func (p *Provider) ListSources(ctx context.Context, date string) ([]string, error) {
	out, err := p.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &p.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":pk": &ddbtypes.AttributeValueMemberS{Value: datePK(date)},
			":sk": &ddbtypes.AttributeValueMemberS{Value: prefixSource},
		},
		ProjectionExpression: aws.String("SK"),
	})
	if err != nil {
		return nil, fmt.Errorf("querying sources for %s: %w", date, err)
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("batch for %s: %w", date, provider.ErrNotFound)
	}

	seen := make(map[string]struct{})
	for _, item := range out.Items {
		sk, err := attributeStr(item, "SK")
		if err != nil {
			continue
		}
		rest := strings.TrimPrefix(sk, prefixSource)
		id, _, ok := strings.Cut(rest, prefixFile)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
	}
	sources := make([]string, 0, len(seen))
	for id := range seen {
		sources = append(sources, id)
	}
	sort.Strings(sources)
	return sources, nil
}

// GetBatch returns the file records for one source on a date, in upload
// order. An absent source is an empty batch, not an error.
func (p *Provider) GetBatch(ctx context.Context, sourceID, date string) ([]types.FileRecord, error) {
	out, err := p.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &p.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":pk": &ddbtypes.AttributeValueMemberS{Value: datePK(date)},
			":sk": &ddbtypes.AttributeValueMemberS{Value: fileSKPrefix(sourceID)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("querying batch for %s/%s: %w", sourceID, date, err)
	}

	files := make([]types.FileRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var f types.FileRecord
		if err := attributevalue.UnmarshalMap(item, &f); err != nil {
			p.logger.Warn("skipping corrupt file item", "source", sourceID, "error", err)
			continue
		}
		if strings.HasPrefix(f.UploadedAt, date) {
			files = append(files, f)
		}
	}
	return files, nil
}

// attributeStr extracts a string attribute from a DynamoDB item.
func attributeStr(item map[string]ddbtypes.AttributeValue, key string) (string, error) {
	av, ok := item[key]
	if !ok {
		return "", fmt.Errorf("missing attribute %q", key)
	}
	var s string
	if err := attributevalue.Unmarshal(av, &s); err != nil {
		return "", fmt.Errorf("unmarshaling %q: %w", key, err)
	}
	return s, nil
}
