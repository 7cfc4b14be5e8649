package constants

// 자동완성 API 메트릭 라벨
const COMPLETION_API_NAME = "completion"

// 이력 조회 기본값
const (
	HISTORY_DEFAULT_LIMIT = 20
	HISTORY_MAX_LIMIT     = 100
)
