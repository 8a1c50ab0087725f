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
	"github.com/collab-notes-api/internal/pkg/id"
)

// NoteRepo provides typed DynamoDB operations for the notes table.
// Notes are append-only: there is no update or delete path.
type NoteRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNoteRepo(client *dynamodb.Client, tableName string) *NoteRepo {
	return &NoteRepo{client: client, tableName: tableName}
}

// Put persists a note. The note id and creation timestamp are assigned here,
// at write time, so the per-candidate stream orders by when the write landed
// rather than by any client clock.
func (r *NoteRepo) Put(ctx context.Context, n *domain.Note) error {
	if n.NoteID == "" {
		n.NoteID = id.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *NoteRepo) Get(ctx context.Context, noteID string) (*domain.Note, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("note_id", noteID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("note not found: %w", domain.ErrNotFound)
	}
	var n domain.Note
	if err := attributevalue.UnmarshalMap(out.Item, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByCandidate returns a candidate's notes oldest-first via the
// candidate_id-created_at-index GSI.
func (r *NoteRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Note, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("candidate_id-created_at-index"),
		KeyConditionExpression: aws.String("candidate_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: candidateID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var notes []domain.Note
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
