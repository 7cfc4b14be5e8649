package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	model "github.com/sh5080/keyword-go/pkg/types/models"
)

// 키워드별 최대 보관 개수
const maxRecordsPerKeyword = 100

// InMemoryEstimateRepository는 인메모리 추정 이력 저장소입니다
type InMemoryEstimateRepository struct {
	// 키워드(소문자) -> 이력 (오래된 순)
	records map[string][]model.EstimateRecord
	lock    sync.RWMutex
	now     func() time.Time
}

var _ _interface.EstimateRepository = (*InMemoryEstimateRepository)(nil)

// NewInMemoryEstimateRepository는 새 인메모리 이력 저장소를 생성합니다
func NewInMemoryEstimateRepository() *InMemoryEstimateRepository {
	return &InMemoryEstimateRepository{
		records: make(map[string][]model.EstimateRecord),
		now:     time.Now,
	}
}

// SaveEstimate는 이력을 추가하고 만료되었거나 한도를 넘은 오래된 이력을 정리합니다
func (r *InMemoryEstimateRepository) SaveEstimate(ctx context.Context, record *model.EstimateRecord) error {
	if record == nil || record.Keyword == "" {
		return fmt.Errorf("키워드가 비어 있습니다")
	}

	key := historyKey(record.Keyword)
	now := r.now()

	r.lock.Lock()
	defer r.lock.Unlock()

	kept := r.records[key][:0:0]
	for _, existing := range r.records[key] {
		if existing.ExpiresAt.After(now) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, *record)
	if len(kept) > maxRecordsPerKeyword {
		kept = kept[len(kept)-maxRecordsPerKeyword:]
	}
	r.records[key] = kept

	return nil
}

// ListEstimates는 만료되지 않은 이력을 최신순으로 반환합니다
func (r *InMemoryEstimateRepository) ListEstimates(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error) {
	if limit <= 0 {
		return []model.EstimateRecord{}, nil
	}
	now := r.now()

	r.lock.RLock()
	defer r.lock.RUnlock()

	stored := r.records[historyKey(keyword)]
	result := make([]model.EstimateRecord, 0, min(limit, len(stored)))
	for i := len(stored) - 1; i >= 0 && len(result) < limit; i-- {
		if stored[i].ExpiresAt.After(now) {
			result = append(result, stored[i])
		}
	}
	return result, nil
}
