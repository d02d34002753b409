package repository

import (
	"context"
	"fmt"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	quoteLinesQuoteNumberIndex = "quote_number-index"

	// BatchWriteItem accepts at most 25 put requests.
	batchWriteLimit   = 25
	batchWriteRetries = 5
)

type quoteLineItem struct {
	ID      string `dynamodbav:"id"`
	RunID   string `dynamodbav:"run_id"`
	LoadKey string `dynamodbav:"load_key"`

	QuoteNumber  string  `dynamodbav:"quote_number"`
	QuoteRef     *string `dynamodbav:"quote_ref,omitempty"`
	CustomerName string  `dynamodbav:"customer_name"`
	QuoteID      string  `dynamodbav:"quote_id"`
	ContactID    string  `dynamodbav:"contact_id"`
	QuoteStatus  string  `dynamodbav:"quote_status"`
	CreatedDate  string  `dynamodbav:"created_date"`
	UpdatedDate  *string `dynamodbav:"updated_date,omitempty"`

	ItemCode        *string `dynamodbav:"item_code,omitempty"`
	ItemDescription *string `dynamodbav:"item_description,omitempty"`
	LineID          *string `dynamodbav:"line_id,omitempty"`
	Quantity        *string `dynamodbav:"quantity,omitempty"`
	UnitPrice       *string `dynamodbav:"unit_price,omitempty"`
	LineTotal       *string `dynamodbav:"line_total,omitempty"`
	LineFraction    string  `dynamodbav:"line_fraction"`
}

// QuoteLineDynamoRepository loads flattened quote lines into DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI quote_number-index: PK quote_number (string), SK load_key (string)
//
// Every line gets a fresh id, so re-ingesting a quote appends new rows.
// load_key orders rows of one quote by load time and position in the run.

type QuoteLineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteLineRepository = (*QuoteLineDynamoRepository)(nil)

func NewQuoteLineDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteLineDynamoRepository {
	return &QuoteLineDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *QuoteLineDynamoRepository) SaveLines(ctx context.Context, runID string, lines []entities.LineItem) error {
	loadedAt := r.now()

	requests := make([]types.WriteRequest, 0, len(lines))
	for i, li := range lines {
		it := toQuoteLineItem(li, runID, loadKey(loadedAt, i))
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for _, batch := range chunk(requests, batchWriteLimit) {
		if err := r.writeBatch(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteLineDynamoRepository) writeBatch(ctx context.Context, batch []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: batch}
	for attempt := 0; attempt < batchWriteRetries; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(50*(attempt+1)) * time.Millisecond):
		}
	}
	return fmt.Errorf("batch write: %d quote lines left unprocessed", len(pending[r.tableName]))
}

func (r *QuoteLineDynamoRepository) ListByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quoteLinesQuoteNumberIndex),
			KeyConditionExpression: aws.String("quote_number = :qn"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qn": &types.AttributeValueMemberS{Value: quoteNumber},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteLineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteLineItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// loadKeyLayout is fixed width so keys compare like the times they encode.
const loadKeyLayout = "2006-01-02T15:04:05.000000000Z"

func loadKey(loadedAt time.Time, position int) string {
	return fmt.Sprintf("%s#%06d", loadedAt.UTC().Format(loadKeyLayout), position)
}

func toQuoteLineItem(li entities.LineItem, runID, key string) quoteLineItem {
	return quoteLineItem{
		ID:              uuid.NewString(),
		RunID:           runID,
		LoadKey:         key,
		QuoteNumber:     li.QuoteNumber,
		QuoteRef:        li.QuoteRef,
		CustomerName:    li.CustomerName,
		QuoteID:         li.QuoteID,
		ContactID:       li.ContactID,
		QuoteStatus:     string(li.QuoteStatus),
		CreatedDate:     formatTime(li.CreatedDate),
		UpdatedDate:     formatTimePtr(li.UpdatedDate),
		ItemCode:        li.ItemCode,
		ItemDescription: li.ItemDescription,
		LineID:          li.LineID,
		Quantity:        decimalString(li.Quantity),
		UnitPrice:       decimalString(li.UnitPrice),
		LineTotal:       decimalString(li.LineTotal),
		LineFraction:    li.LineFraction.String(),
	}
}

func fromQuoteLineItem(it quoteLineItem) entities.LineItem {
	createdDate, _ := time.Parse(time.RFC3339Nano, it.CreatedDate)
	fraction, err := decimal.NewFromString(it.LineFraction)
	if err != nil {
		fraction = decimal.NewFromInt(1)
	}
	return entities.LineItem{
		QuoteNumber:     it.QuoteNumber,
		QuoteRef:        it.QuoteRef,
		CustomerName:    it.CustomerName,
		QuoteID:         it.QuoteID,
		ContactID:       it.ContactID,
		QuoteStatus:     entities.QuoteStatus(it.QuoteStatus),
		CreatedDate:     createdDate,
		UpdatedDate:     parseTimePtr(it.UpdatedDate),
		ItemCode:        it.ItemCode,
		ItemDescription: it.ItemDescription,
		LineID:          it.LineID,
		Quantity:        parseDecimalPtr(it.Quantity),
		UnitPrice:       parseDecimalPtr(it.UnitPrice),
		LineTotal:       parseDecimalPtr(it.LineTotal),
		LineFraction:    fraction,
	}
}
