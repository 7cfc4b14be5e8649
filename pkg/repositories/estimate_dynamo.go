package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/keyword-go/pkg/db"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	model "github.com/sh5080/keyword-go/pkg/types/models"
)

// dynamoAPI는 저장소가 사용하는 DynamoDB 클라이언트 메서드입니다
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// estimateItem은 DynamoDB에 저장될 추정 이력 아이템입니다
type estimateItem struct {
	Keyword         string `dynamodbav:"Keyword"`   // 파티션 키 (소문자 키워드)
	CreatedAt       int64  `dynamodbav:"CreatedAt"` // 정렬 키 (UnixNano)
	OriginalKeyword string `dynamodbav:"OriginalKeyword"`
	Score           int    `dynamodbav:"Score"`
	Probes          int    `dynamodbav:"Probes"`
	MatchedAt       int    `dynamodbav:"MatchedAt"`
	Status          string `dynamodbav:"Status"`
	ExpiresAt       int64  `dynamodbav:"ExpiresAt"` // DynamoDB TTL 속성 (Unix 초)
}

// DynamoEstimateRepository는 추정 이력을 DynamoDB에 저장하고 조회하는 레포지토리입니다.
type DynamoEstimateRepository struct {
	client    dynamoAPI
	tableName string
	now       func() time.Time
}

var _ _interface.EstimateRepository = (*DynamoEstimateRepository)(nil)

// NewDynamoEstimateRepository는 새로운 DynamoDB 이력 레포지토리를 생성합니다.
func NewDynamoEstimateRepository(client dynamoAPI, tableName string) *DynamoEstimateRepository {
	return &DynamoEstimateRepository{
		client:    client,
		tableName: tableName,
		now:       time.Now,
	}
}

// Schema는 이력 테이블의 키 구성을 반환합니다
func (r *DynamoEstimateRepository) Schema() db.TableSchema {
	return db.TableSchema{
		Name:         r.tableName,
		HashKey:      "Keyword",
		HashKeyType:  types.ScalarAttributeTypeS,
		RangeKey:     "CreatedAt",
		RangeKeyType: types.ScalarAttributeTypeN,
		TTLAttribute: "ExpiresAt",
	}
}

// SaveEstimate는 추정 결과를 이력 테이블에 저장합니다.
func (r *DynamoEstimateRepository) SaveEstimate(ctx context.Context, record *model.EstimateRecord) error {
	if record == nil || record.Keyword == "" {
		return fmt.Errorf("키워드가 비어 있습니다")
	}

	item, err := attributevalue.MarshalMap(estimateItem{
		Keyword:         historyKey(record.Keyword),
		CreatedAt:       record.CreatedAt.UnixNano(),
		OriginalKeyword: record.Keyword,
		Score:           record.Score,
		Probes:          record.Probes,
		MatchedAt:       record.MatchedAt,
		Status:          record.Status,
		ExpiresAt:       record.ExpiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("추정 이력 마샬 실패: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("추정 이력 저장 실패: %w", err)
	}
	return nil
}

// ListEstimates는 키워드의 최근 이력을 최신순으로 조회합니다.
// TTL 삭제는 지연될 수 있으므로 만료된 아이템은 직접 걸러내고,
// 걸러진 만큼 다음 페이지를 이어서 조회합니다.
func (r *DynamoEstimateRepository) ListEstimates(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error) {
	records := make([]model.EstimateRecord, 0, limit)
	if limit <= 0 {
		return records, nil
	}

	now := r.now()
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#k = :k"),
			ExpressionAttributeNames: map[string]string{
				"#k": "Keyword",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":k": &types.AttributeValueMemberS{Value: historyKey(keyword)},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(int32(limit - len(records))),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("추정 이력 조회 실패: %w", err)
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("추정 이력 언마샬 실패: %w", err)
		}

		for _, item := range items {
			expiresAt := time.Unix(item.ExpiresAt, 0)
			if !expiresAt.After(now) {
				continue
			}
			records = append(records, model.EstimateRecord{
				Keyword:   item.OriginalKeyword,
				Score:     item.Score,
				Probes:    item.Probes,
				MatchedAt: item.MatchedAt,
				Status:    item.Status,
				CreatedAt: time.Unix(0, item.CreatedAt),
				ExpiresAt: expiresAt,
			})
			if len(records) == limit {
				return records, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
