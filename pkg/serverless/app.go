package serverless

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/keyword-go/pkg/configs"
	middleware "github.com/sh5080/keyword-go/pkg/middlewares"
	route "github.com/sh5080/keyword-go/pkg/routes"
	service "github.com/sh5080/keyword-go/pkg/services"
	"github.com/sh5080/keyword-go/pkg/utils"
)

var (
	app     *fiber.App
	appOnce sync.Once
)

// 서버리스 환경에서는 앱 인스턴스를 전역으로 유지하여 콜드 스타트를 최소화합니다
func initApp() {
	config := configs.GetConfig()
	utils.InitLogger(config.Log.Level, config.Log.JSON)

	services, err := service.NewServiceContainer(config)
	if err != nil {
		utils.Fatal("serverless", "서비스 초기화 실패: %v", err)
	}

	app = fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		DisableStartupMessage: true, // 서버리스 환경에서는 시작 메시지 비활성화
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestContext(config.Server.RequestTimeout))
	app.Use(logger.New())
	app.Use(cors.New())

	route.SetupRoutes(app, services, true) // true: 서버리스 환경임을 표시
}

// GetApp 함수는 초기화된 애플리케이션 인스턴스를 반환합니다
// 이 함수는 AWS Lambda 핸들러 또는 GCP Cloud Run 핸들러에서 호출될 수 있습니다
func GetApp() *fiber.App {
	appOnce.Do(initApp)
	return app
}
