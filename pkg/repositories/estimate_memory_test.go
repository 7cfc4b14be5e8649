package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	model "github.com/sh5080/keyword-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(keyword string, score int, createdAt time.Time, ttl time.Duration) *model.EstimateRecord {
	return &model.EstimateRecord{
		Keyword:   keyword,
		Score:     score,
		Status:    "FIRST",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}
}

func TestInMemoryEstimateRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := NewInMemoryEstimateRepository()
	repo.now = func() time.Time { return base.Add(3 * time.Minute) }

	require.NoError(t, repo.SaveEstimate(ctx, record("Cat", 100, base, time.Hour)))
	require.NoError(t, repo.SaveEstimate(ctx, record("cat", 83, base.Add(time.Minute), time.Hour)))
	require.NoError(t, repo.SaveEstimate(ctx, record("CAT", 66, base.Add(2*time.Minute), time.Hour)))
	require.NoError(t, repo.SaveEstimate(ctx, record("dog", 50, base, time.Hour)))

	records, err := repo.ListEstimates(ctx, "cAt", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{66, 83, 100}, []int{records[0].Score, records[1].Score, records[2].Score})
	assert.Equal(t, "CAT", records[0].Keyword)

	records, err = repo.ListEstimates(ctx, "cat", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.ListEstimates(ctx, "bird", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInMemoryEstimateRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := NewInMemoryEstimateRepository()
	now := base
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.SaveEstimate(ctx, record("cat", 100, base, time.Minute)))
	require.NoError(t, repo.SaveEstimate(ctx, record("cat", 83, base, time.Hour)))

	now = base.Add(2 * time.Minute)
	records, err := repo.ListEstimates(ctx, "cat", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 83, records[0].Score)

	// 저장 시 만료된 이력은 정리됨
	require.NoError(t, repo.SaveEstimate(ctx, record("cat", 66, now, time.Hour)))
	assert.Len(t, repo.records["cat"], 2)
}

func TestInMemoryEstimateRepositoryCap(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := NewInMemoryEstimateRepository()
	repo.now = func() time.Time { return base }

	for i := 0; i < maxRecordsPerKeyword+10; i++ {
		require.NoError(t, repo.SaveEstimate(ctx, record("cat", i%101, base, time.Hour)))
	}
	assert.Len(t, repo.records["cat"], maxRecordsPerKeyword)
}

func TestInMemoryEstimateRepositoryRejectsEmptyKeyword(t *testing.T) {
	repo := NewInMemoryEstimateRepository()
	assert.Error(t, repo.SaveEstimate(context.Background(), &model.EstimateRecord{}))
	assert.Error(t, repo.SaveEstimate(context.Background(), nil))
}

func TestInMemoryEstimateRepositoryConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryEstimateRepository()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_ = repo.SaveEstimate(ctx, record("cat", score, now, time.Hour))
			_, _ = repo.ListEstimates(ctx, "cat", 5)
		}(i)
	}
	wg.Wait()

	records, err := repo.ListEstimates(ctx, "cat", 100)
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestNoopEstimateRepository(t *testing.T) {
	repo := NoopEstimateRepository{}
	require.NoError(t, repo.SaveEstimate(context.Background(), record("cat", 1, time.Now(), time.Hour)))

	records, err := repo.ListEstimates(context.Background(), "cat", 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
