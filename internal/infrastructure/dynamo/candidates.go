package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/collab-notes-api/internal/domain"
)

// CandidateRepo provides typed DynamoDB operations for the candidates table.
type CandidateRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCandidateRepo(client *dynamodb.Client, tableName string) *CandidateRepo {
	return &CandidateRepo{client: client, tableName: tableName}
}

func (r *CandidateRepo) Put(ctx context.Context, c *domain.Candidate) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal candidate: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CandidateRepo) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("candidate_id", candidateID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("candidate not found: %w", domain.ErrNotFound)
	}
	var c domain.Candidate
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Scan returns all enabled candidates. The candidate list is small and
// dashboard-wide, so a filtered scan is acceptable here.
func (r *CandidateRepo) Scan(ctx context.Context) ([]domain.Candidate, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression:         aws.String("#e = :one"),
		ExpressionAttributeNames: map[string]string{"#e": fieldEnable},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		return nil, err
	}
	var candidates []domain.Candidate
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *CandidateRepo) Update(ctx context.Context, candidateID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("candidate_id", candidateID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *CandidateRepo) SoftDelete(ctx context.Context, candidateID string) error {
	return r.Update(ctx, candidateID, map[string]interface{}{fieldEnable: 0})
}
