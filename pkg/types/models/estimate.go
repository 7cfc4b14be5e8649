package model

import "time"

// MatchStatus는 한 번의 프로브 응답에서 전체 키워드가 어디에 나타났는지를 나타냅니다
type MatchStatus int

const (
	MatchNotPresent MatchStatus = iota // 추천 목록에 없음
	MatchFirst                         // 추천 목록 첫 번째
	MatchPresent                       // 추천 목록에 있지만 첫 번째는 아님
)

// Found는 키워드가 추천 목록에서 발견되었는지 반환합니다
func (m MatchStatus) Found() bool {
	return m == MatchFirst || m == MatchPresent
}

func (m MatchStatus) String() string {
	switch m {
	case MatchFirst:
		return "FIRST"
	case MatchPresent:
		return "PRESENT"
	default:
		return "NOT_PRESENT"
	}
}

// Estimation은 한 번의 키워드 인기도 추정 결과입니다.
// 요청마다 새로 만들어지며 응답 후 버려집니다.
type Estimation struct {
	Keyword   string      `json:"keyword"`
	Score     int         `json:"score"`     // 0-100
	Probes    int         `json:"probes"`    // 실제로 호출한 프로브 수
	MatchedAt int         `json:"matchedAt"` // 발견 시점의 접두어 길이, 발견되지 않으면 0
	Status    MatchStatus `json:"-"`
}

// EstimateRecord는 이력 저장소에 저장되는 추정 결과입니다
type EstimateRecord struct {
	Keyword   string    `json:"keyword"`
	Score     int       `json:"score"`
	Probes    int       `json:"probes"`
	MatchedAt int       `json:"matchedAt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewEstimateRecord는 추정 결과로부터 이력 레코드를 만듭니다
func NewEstimateRecord(e *Estimation, now time.Time, ttl time.Duration) EstimateRecord {
	return EstimateRecord{
		Keyword:   e.Keyword,
		Score:     e.Score,
		Probes:    e.Probes,
		MatchedAt: e.MatchedAt,
		Status:    e.Status.String(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
