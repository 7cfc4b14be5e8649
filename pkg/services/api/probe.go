package api

import (
	"iter"
	"strings"

	model "github.com/sh5080/keyword-go/pkg/types/models"
)

// prefixes는 키워드의 접두어를 한 글자씩 늘려가며 (인덱스, 접두어) 순서로 내보냅니다.
// 소비하는 쪽이 멈추면 더 이상 접두어를 만들지 않습니다.
func prefixes(keyword string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		runes := []rune(keyword)
		for i := range runes {
			if !yield(i, string(runes[:i+1])) {
				return
			}
		}
	}
}

// classify는 추천 목록에서 전체 키워드를 대소문자 구분 없이 정확히 찾습니다.
// 부분 문자열이나 접두어 일치는 일치로 보지 않습니다.
func classify(suggestions []string, keyword string) model.MatchStatus {
	for i, suggestion := range suggestions {
		if strings.EqualFold(suggestion, keyword) {
			if i == 0 {
				return model.MatchFirst
			}
			return model.MatchPresent
		}
	}
	return model.MatchNotPresent
}

// score는 길이 n인 키워드가 i번째 프로브에서 발견되었을 때의 점수입니다.
// 글자당 100/n점이며, 첫 번째 추천이 아니면 반 글자 몫을 뺍니다. 소수점 이하는 버립니다.
func score(n, i int, status model.MatchStatus) int {
	if !status.Found() {
		return 0
	}
	unit := 100.0 / float64(n)
	// 명시적 변환으로 곱셈 결과를 먼저 반올림 (FMA 결합 방지)
	s := float64(unit * float64(n-i))
	if status != model.MatchFirst {
		s -= unit / 2
	}
	return int(s)
}
