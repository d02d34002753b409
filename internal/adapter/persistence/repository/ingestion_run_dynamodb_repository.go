package repository

import (
	"context"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ingestionRunItem struct {
	ID         string   `dynamodbav:"id"`
	Kind       string   `dynamodbav:"kind"`
	ReceivedAt string   `dynamodbav:"received_at"`
	Status     string   `dynamodbav:"status"`
	Pages      int      `dynamodbav:"pages"`
	Received   int      `dynamodbav:"received"`
	Parsed     int      `dynamodbav:"parsed"`
	Failed     int      `dynamodbav:"failed"`
	Lines      int      `dynamodbav:"lines"`
	Errors     []string `dynamodbav:"errors,omitempty"`
	Log        []string `dynamodbav:"log,omitempty"`
}

// IngestionRunDynamoRepository persists ingestion audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type IngestionRunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIngestionRunRepository = (*IngestionRunDynamoRepository)(nil)

func NewIngestionRunDynamoRepository(ddb *dynamodb.Client, tableName string) *IngestionRunDynamoRepository {
	return &IngestionRunDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *IngestionRunDynamoRepository) Create(ctx context.Context, run entities.IngestionRun) (entities.IngestionRun, error) {
	av, err := attributevalue.MarshalMap(toIngestionRunItem(run))
	if err != nil {
		return entities.IngestionRun{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.IngestionRun{}, err
	}
	return run, nil
}

func (r *IngestionRunDynamoRepository) GetByID(ctx context.Context, id string) (entities.IngestionRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IngestionRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.IngestionRun{}, nil
	}

	var it ingestionRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IngestionRun{}, err
	}
	return fromIngestionRunItem(it), nil
}

func toIngestionRunItem(run entities.IngestionRun) ingestionRunItem {
	return ingestionRunItem{
		ID:         run.ID,
		Kind:       string(run.Kind),
		ReceivedAt: formatTime(run.ReceivedAt),
		Status:     string(run.Status),
		Pages:      run.Pages,
		Received:   run.Received,
		Parsed:     run.Parsed,
		Failed:     run.Failed,
		Lines:      run.Lines,
		Errors:     run.Errors,
		Log:        run.Log,
	}
}

func fromIngestionRunItem(it ingestionRunItem) entities.IngestionRun {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	return entities.IngestionRun{
		ID:         it.ID,
		Kind:       entities.IngestionKind(it.Kind),
		ReceivedAt: receivedAt,
		Status:     entities.IngestionRunStatus(it.Status),
		Pages:      it.Pages,
		Received:   it.Received,
		Parsed:     it.Parsed,
		Failed:     it.Failed,
		Lines:      it.Lines,
		Errors:     it.Errors,
		Log:        it.Log,
	}
}
