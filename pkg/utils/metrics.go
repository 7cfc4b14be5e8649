package utils

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "keyword_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "keyword_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "keyword_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "keyword_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"api"})

	// EstimateScore는 산출된 인기도 점수 분포입니다
	EstimateScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "keyword_estimate_score",
		Help:    "키워드 인기도 점수",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	// EstimateProbes는 추정 한 번에 사용된 프로브 수 분포입니다
	EstimateProbes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "keyword_estimate_probes",
		Help:    "추정 한 번에 호출한 자동완성 프로브 수",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
	})

	// ServerStatus는 서버 부하/건강/처리 용량 지표입니다
	ServerStatus = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "keyword_server_status",
		Help: "서버 상태 지표 (load, healthy, capacity)",
	}, []string{"server", "metric"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "keyword_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})
)

var metricsOnce sync.Once

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다. 여러 번 호출해도 한 번만 등록됩니다.
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			ResponseTime,
			ApiCallCounter,
			ApiResponseTime,
			EstimateScore,
			EstimateProbes,
			ServerStatus,
			ErrorCounter,
		)
	})
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method, path string, statusCode int, duration float64) {
	status := strconv.Itoa(statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다. 전송 실패는 statusCode 0으로 기록합니다.
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordEstimate는 추정 결과 메트릭을 기록합니다
func RecordEstimate(score int, probes int) {
	EstimateScore.Observe(float64(score))
	EstimateProbes.Observe(float64(probes))
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(serverName, metric string, value float64) {
	ServerStatus.WithLabelValues(serverName, metric).Set(value)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}
