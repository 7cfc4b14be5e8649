package request

// EstimateQuery는 키워드 인기도 추정 요청 쿼리입니다
type EstimateQuery struct {
	Keyword string `json:"keyword" schema:"keyword" validate:"required"`
}

// EstimateHistoryQuery는 추정 이력 조회 쿼리입니다
type EstimateHistoryQuery struct {
	Keyword string `json:"keyword" schema:"keyword" validate:"required"`
	Limit   int    `json:"limit,omitempty" schema:"limit" validate:"min=0,max=100"`
}
