package route

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer, serverless bool) {
	// 기존 경로 유지
	app.Get("/estimate", estimateHandler(services))

	// API 라우트 그룹
	api := app.Group("/api/v1")

	// 도메인별 라우트 설정
	SetupEstimateRoutes("/estimate", api, services)
	SetupAppRoutes(app, serverless)
}
