package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/keyword-go/pkg/controllers"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다
func SetupAppRoutes(app *fiber.App, serverless bool) {
	// 상태 확인 API
	app.Get("/health", controller.Health())

	// 서버리스 환경에서는 인스턴스별 메트릭 수집이 의미 없으므로 노출하지 않음
	if !serverless {
		app.Get("/metrics", controller.Metrics())
	}
}
