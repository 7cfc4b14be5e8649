package main

import (
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

func main() {
	config := configs.GetConfig()
	utils.InitLogger(config.Log.Level, config.Log.JSON)

	// 메트릭 초기화
	utils.InitMetrics()

	services, err := service.NewServiceContainer(config)
	if err != nil {
		utils.Fatal("main", "서비스 초기화 실패: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     config.Server.AppName,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// 미들웨어 설정
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestContext(config.Server.RequestTimeout))
	app.Use(logger.New(logger.Config{
		Format: "${time} [${locals:requestId}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())
	app.Use(middleware.Prometheus(config.Server.AppName)) // 온프레미스 환경에서만 Prometheus 메트릭 수집

	// 라우트 설정
	route.SetupRoutes(app, services, false) // false: 서버리스 환경 아님을 표시

	utils.Info("main", "%s %s 시작 (port=%s, history=%s)",
		config.Server.AppName, configs.AppVersion, config.Server.Port, config.History.Backend)

	if err := app.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("main", "서버 실행 실패: %v", err)
	}
}
