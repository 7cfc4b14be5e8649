package api

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sh5080/keyword-go/pkg/configs"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	constants "github.com/sh5080/keyword-go/pkg/types"
	model "github.com/sh5080/keyword-go/pkg/types/models"
	"github.com/sh5080/keyword-go/pkg/utils"
)

// EstimateImpl은 키워드 인기도 추정 서비스 구현체입니다.
// 불변 참조만 보관하므로 여러 요청에서 동시에 사용할 수 있습니다.
type EstimateImpl struct {
	completion _interface.CompletionClient
	history    _interface.EstimateRepository
	historyTTL time.Duration
	now        func() time.Time
}

var _ _interface.EstimateService = (*EstimateImpl)(nil)

// NewEstimateService는 새 추정 서비스를 생성합니다. history가 nil이면 이력을 남기지 않습니다.
func NewEstimateService(config *configs.EnvConfig, completion _interface.CompletionClient, history _interface.EstimateRepository) *EstimateImpl {
	return &EstimateImpl{
		completion: completion,
		history:    history,
		historyTTL: config.History.TTL,
		now:        time.Now,
	}
}

// EstimateKeyword는 키워드의 접두어로 자동완성 API를 차례로 호출하여 인기도 점수를 계산합니다.
// 어느 프로브에서든 요청 생성이나 호출이 실패하면 부분 결과 없이 전체가 실패합니다.
func (s *EstimateImpl) EstimateKeyword(ctx context.Context, keyword string) (*model.Estimation, error) {
	estimation, err := s.estimate(ctx, keyword)
	if err != nil {
		return nil, err
	}

	utils.RecordEstimate(estimation.Score, estimation.Probes)
	utils.Info("estimate", "키워드 추정 완료: %q score=%d probes=%d status=%s",
		keyword, estimation.Score, estimation.Probes, estimation.Status)

	s.saveHistory(ctx, estimation)
	return estimation, nil
}

func (s *EstimateImpl) estimate(ctx context.Context, keyword string) (*model.Estimation, error) {
	n := utf8.RuneCountInString(keyword)
	if n == 0 {
		return nil, constants.ErrInvalidKeyword
	}

	result := &model.Estimation{Keyword: keyword, Status: model.MatchNotPresent}

	// 접두어를 하나씩 늘려가며 순차 호출, 처음 발견된 프로브에서 종료
	for i, prefix := range prefixes(keyword) {
		suggestions, err := s.completion.Suggest(ctx, prefix)
		result.Probes++
		if err != nil {
			return nil, fmt.Errorf("%d번째 프로브(%q) 실패: %w", i+1, prefix, err)
		}

		status := classify(suggestions, keyword)
		if status.Found() {
			result.Status = status
			result.MatchedAt = i + 1
			result.Score = score(n, i, status)
			return result, nil
		}
	}

	return result, nil
}

// saveHistory는 이력 저장소에 결과를 남깁니다. 저장 실패는 응답에 영향을 주지 않습니다.
func (s *EstimateImpl) saveHistory(ctx context.Context, estimation *model.Estimation) {
	if s.history == nil {
		return
	}

	record := model.NewEstimateRecord(estimation, s.now(), s.historyTTL)
	if err := s.history.SaveEstimate(ctx, &record); err != nil {
		utils.Warn("estimate", "추정 이력 저장 실패 (%s): %v", estimation.Keyword, err)
	}
}

// EstimateHistory는 키워드의 최근 추정 이력을 반환합니다
func (s *EstimateImpl) EstimateHistory(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error) {
	if keyword == "" {
		return nil, constants.ErrInvalidKeyword
	}
	if limit <= 0 {
		limit = constants.HISTORY_DEFAULT_LIMIT
	}
	if limit > constants.HISTORY_MAX_LIMIT {
		limit = constants.HISTORY_MAX_LIMIT
	}

	if s.history == nil {
		return []model.EstimateRecord{}, nil
	}

	records, err := s.history.ListEstimates(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("추정 이력 조회 실패: %w", err)
	}
	if records == nil {
		records = []model.EstimateRecord{}
	}
	return records, nil
}
