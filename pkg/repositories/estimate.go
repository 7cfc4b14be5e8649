package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sh5080/keyword-go/pkg/configs"
	"github.com/sh5080/keyword-go/pkg/db"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	model "github.com/sh5080/keyword-go/pkg/types/models"
)

// NewEstimateRepository는 HISTORY_BACKEND 설정에 맞는 이력 저장소를 생성합니다
func NewEstimateRepository(config *configs.EnvConfig) (_interface.EstimateRepository, error) {
	switch config.History.Backend {
	case configs.HistoryBackendMemory:
		return NewInMemoryEstimateRepository(), nil
	case configs.HistoryBackendDynamoDB:
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		client, err := db.NewDynamoDBClient(ctx, config)
		if err != nil {
			return nil, err
		}
		repo := NewDynamoEstimateRepository(client, config.AWS.Tables.Estimates)
		if err := db.CreateTableIfNotExists(ctx, client, repo.Schema()); err != nil {
			return nil, fmt.Errorf("추정 이력 테이블 준비 실패: %w", err)
		}
		return repo, nil
	default:
		return NoopEstimateRepository{}, nil
	}
}

// historyKey는 대소문자를 구분하지 않는 이력 키입니다
func historyKey(keyword string) string {
	return strings.ToLower(keyword)
}

// NoopEstimateRepository는 아무것도 저장하지 않는 저장소입니다 (HISTORY_BACKEND=none)
type NoopEstimateRepository struct{}

func (NoopEstimateRepository) SaveEstimate(ctx context.Context, record *model.EstimateRecord) error {
	return nil
}

func (NoopEstimateRepository) ListEstimates(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error) {
	return []model.EstimateRecord{}, nil
}
