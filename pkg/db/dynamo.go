package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/keyword-go/pkg/configs"
)

// NewDynamoDBClient는 설정의 AWS 자격증명과 엔드포인트로 DynamoDB 클라이언트를 생성합니다.
func NewDynamoDBClient(ctx context.Context, config *configs.EnvConfig) (*dynamodb.Client, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.AWS.Region),
	}

	// AWS 자격증명이 설정되어 있으면 고정 자격증명, 아니면 기본 프로바이더 체인 사용
	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AWS.AccessKeyID, config.AWS.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.DynamoDBEndpoint)
		}
	})
	return client, nil
}

// TableSchema는 생성할 테이블의 키 구성입니다
type TableSchema struct {
	Name         string
	HashKey      string
	HashKeyType  types.ScalarAttributeType
	RangeKey     string // 비어 있으면 정렬 키 없음
	RangeKeyType types.ScalarAttributeType
	TTLAttribute string // 비어 있으면 TTL 미사용
}

// CreateTableIfNotExists는 테이블이 없을 경우 생성하고 활성화될 때까지 기다립니다.
func CreateTableIfNotExists(ctx context.Context, client *dynamodb.Client, schema TableSchema) error {
	exists, err := tableExists(ctx, client, schema.Name)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %w", err)
	}
	if exists {
		return nil
	}

	input := &dynamodb.CreateTableInput{
		TableName: aws.String(schema.Name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(schema.HashKey), AttributeType: schema.HashKeyType},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(schema.HashKey), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
	if schema.RangeKey != "" {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(schema.RangeKey), AttributeType: schema.RangeKeyType,
		})
		input.KeySchema = append(input.KeySchema, types.KeySchemaElement{
			AttributeName: aws.String(schema.RangeKey), KeyType: types.KeyTypeRange,
		})
	}

	if _, err := client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(schema.Name)}, 2*time.Minute); err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %w", err)
	}

	if schema.TTLAttribute != "" {
		_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
			TableName: aws.String(schema.Name),
			TimeToLiveSpecification: &types.TimeToLiveSpecification{
				AttributeName: aws.String(schema.TTLAttribute),
				Enabled:       aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("TTL 설정 실패: %w", err)
		}
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func tableExists(ctx context.Context, client *dynamodb.Client, tableName string) (bool, error) {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
