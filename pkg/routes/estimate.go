package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/keyword-go/pkg/controllers"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
)

// SetupEstimateRoutes는 키워드 추정 관련 라우트를 설정합니다
func SetupEstimateRoutes(endpoint string, api fiber.Router, services *_interface.ServiceContainer) {
	api.Get(endpoint, estimateHandler(services))
	api.Get(endpoint+"/history", controller.EstimateHistory(services.EstimateService))
}

func estimateHandler(services *_interface.ServiceContainer) fiber.Handler {
	return controller.Estimate(services.EstimateService)
}
