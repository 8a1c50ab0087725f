package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/collab-notes-api/internal/domain"
)

// AttachmentRepo provides typed DynamoDB operations for the attachments table.
type AttachmentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAttachmentRepo(client *dynamodb.Client, tableName string) *AttachmentRepo {
	return &AttachmentRepo{client: client, tableName: tableName}
}

func (r *AttachmentRepo) Put(ctx context.Context, a *domain.Attachment) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal attachment: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AttachmentRepo) Get(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("attachment_id", attachmentID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("attachment not found: %w", domain.ErrNotFound)
	}
	var a domain.Attachment
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByCandidate returns a candidate's attachments via the candidate_id-index GSI.
func (r *AttachmentRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Attachment, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("candidate_id-index"),
		KeyConditionExpression: aws.String("candidate_id = :cid"),
		FilterExpression:         aws.String("#e = :t"),
		ExpressionAttributeNames: map[string]string{"#e": fieldEnable},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: candidateID},
			":t":   &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	var attachments []domain.Attachment
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *AttachmentRepo) SoftDelete(ctx context.Context, attachmentID string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldEnable: false})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("attachment_id", attachmentID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
