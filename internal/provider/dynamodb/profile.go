package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/batchwatch/batchwatch/internal/provider"
)

// PutProfile stores the raw profile document for a source.
func (p *Provider) PutProfile(ctx context.Context, sourceID, doc string) error {
	_, err := p.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &p.tableName,
		Item: map[string]ddbtypes.AttributeValue{
			"PK":  &ddbtypes.AttributeValueMemberS{Value: sourcePK(sourceID)},
			"SK":  &ddbtypes.AttributeValueMemberS{Value: profileSK()},
			"doc": &ddbtypes.AttributeValueMemberS{Value: doc},
		},
	})
	if err != nil {
		return fmt.Errorf("storing profile for %s: %w", sourceID, err)
	}
	return nil
}

// GetProfile retrieves the raw profile document for a source.
func (p *Provider) GetProfile(ctx context.Context, sourceID string) (string, error) {
	out, err := p.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &p.tableName,
		Key: map[string]ddbtypes.AttributeValue{
			"PK": &ddbtypes.AttributeValueMemberS{Value: sourcePK(sourceID)},
			"SK": &ddbtypes.AttributeValueMemberS{Value: profileSK()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("fetching profile for %s: %w", sourceID, err)
	}
	if out.Item == nil {
		return "", fmt.Errorf("profile for %s: %w", sourceID, provider.ErrNotFound)
	}
	return attributeStr(out.Item, "doc")
}
