package constants

import "errors"

// 키워드 추정 오류
var (
	// ErrInvalidKeyword는 빈 키워드가 전달되었음을 나타냅니다
	ErrInvalidKeyword = errors.New("키워드가 비어 있습니다")

	// ErrRequestConstruction은 자동완성 요청 URL 또는 요청 자체를 만들 수 없음을 나타냅니다
	ErrRequestConstruction = errors.New("자동완성 요청 생성 실패")

	// ErrUpstreamTransport는 자동완성 API 호출이 실패했음을 나타냅니다 (네트워크 또는 HTTP 오류)
	ErrUpstreamTransport = errors.New("자동완성 API 호출 실패")

	// ErrUpstreamResponse는 자동완성 API 응답이 JSON 배열이 아님을 나타냅니다
	ErrUpstreamResponse = errors.New("자동완성 API 응답 형식 오류")
)
