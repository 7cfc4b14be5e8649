package middleware

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/keyword-go/pkg/utils"
)

// 서버 상태 메트릭 갱신 주기
const serverMetricInterval = 10 * time.Second

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	// 마지막 서버 메트릭 갱신 시각 (UnixNano)
	var lastUpdate atomic.Int64

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()

		// 핸들러가 에러를 반환한 경우 ErrorHandler가 아직 상태 코드를 쓰지 않았음
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		utils.RecordRequest(c.Method(), c.Route().Path, status, duration)

		// 요청마다가 아니라 일정 주기로만 갱신
		now := start.UnixNano()
		last := lastUpdate.Load()
		if now-last >= int64(serverMetricInterval) && lastUpdate.CompareAndSwap(last, now) {
			updateServerMetrics(serverName)
		}

		return err
	}
}

// updateServerMetrics는 서버 상태 메트릭을 Prometheus에 업데이트합니다
func updateServerMetrics(serverName string) {
	cpuUsage, memoryUsage := utils.GetSystemMetrics()
	load, healthy, capacity := utils.ServerLoad(cpuUsage, memoryUsage)

	healthValue := 0.0
	if healthy {
		healthValue = 1.0
	}

	utils.UpdateServerMetric(serverName, "load", load)
	utils.UpdateServerMetric(serverName, "healthy", healthValue)
	utils.UpdateServerMetric(serverName, "capacity", capacity)
}
