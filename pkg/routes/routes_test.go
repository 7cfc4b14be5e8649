package route

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	model "github.com/sh5080/keyword-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEstimateService struct{}

func (stubEstimateService) EstimateKeyword(ctx context.Context, keyword string) (*model.Estimation, error) {
	return &model.Estimation{Keyword: keyword, Score: 50}, nil
}

func (stubEstimateService) EstimateHistory(ctx context.Context, keyword string, limit int) ([]model.EstimateRecord, error) {
	return []model.EstimateRecord{}, nil
}

func TestSetupRoutes(t *testing.T) {
	services := &_interface.ServiceContainer{EstimateService: stubEstimateService{}}

	tests := []struct {
		name       string
		serverless bool
		path       string
		wantStatus int
	}{
		{"legacy estimate", false, "/estimate?keyword=cat", fiber.StatusOK},
		{"versioned estimate", false, "/api/v1/estimate?keyword=cat", fiber.StatusOK},
		{"history", false, "/api/v1/estimate/history?keyword=cat", fiber.StatusOK},
		{"health", false, "/health", fiber.StatusOK},
		{"metrics", false, "/metrics", fiber.StatusOK},
		{"serverless estimate", true, "/estimate?keyword=cat", fiber.StatusOK},
		{"serverless metrics hidden", true, "/metrics", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			SetupRoutes(app, services, tt.serverless)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
