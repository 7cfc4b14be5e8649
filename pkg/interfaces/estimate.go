package _interface

import (
	"context"

	model "github.com/sh5080/keyword-go/pkg/types/models"
)

// CompletionClient는 외부 자동완성 API를 호출하는 클라이언트 인터페이스입니다
type CompletionClient interface {
	// Suggest는 접두어에 대한 추천 검색어 목록을 순서대로 반환합니다
	Suggest(ctx context.Context, prefix string) ([]string, error)
}

// EstimateService는 키워드 인기도 추정 서비스 인터페이스입니다
type EstimateService interface {
	// EstimateKeyword는 키워드의 인기도 점수(0-100)를 계산합니다
	EstimateKeyword(ctx context.Context, keyword string) (*model.Estimation, error)

	// EstimateHistory는 키워드의 최근 추정 이력을 최신순으로 반환합니다
	EstimateHistory(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error)
}

// EstimateRepository는 추정 이력 저장소 인터페이스입니다
type EstimateRepository interface {
	// SaveEstimate는 추정 결과를 저장합니다
	SaveEstimate(ctx context.Context, record *model.EstimateRecord) error

	// ListEstimates는 키워드(대소문자 무시)의 만료되지 않은 이력을 최신순으로 최대 limit개 반환합니다
	ListEstimates(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error)
}
