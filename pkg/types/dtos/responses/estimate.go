package response

import model "github.com/sh5080/keyword-go/pkg/types/models"

// Estimate는 키워드 인기도 추정 응답입니다
type Estimate struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
}

// EstimateHistory는 추정 이력 조회 응답입니다
type EstimateHistory struct {
	Keyword string                 `json:"keyword"`
	Records []model.EstimateRecord `json:"records"`
}
