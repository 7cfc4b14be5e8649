package api

import (
	"testing"

	model "github.com/sh5080/keyword-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	var got []string
	for i, prefix := range prefixes("ab c") {
		assert.Equal(t, len(got), i)
		got = append(got, prefix)
	}
	assert.Equal(t, []string{"a", "ab", "ab ", "ab c"}, got)
}

func TestPrefixesMultibyte(t *testing.T) {
	var got []string
	for _, prefix := range prefixes("고양이") {
		got = append(got, prefix)
	}
	assert.Equal(t, []string{"고", "고양", "고양이"}, got)
}

func TestPrefixesStopsEarly(t *testing.T) {
	count := 0
	for range prefixes("keyboard") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		suggestions []string
		keyword     string
		want        model.MatchStatus
	}{
		{"first", []string{"cat", "car"}, "cat", model.MatchFirst},
		{"present", []string{"car", "cat"}, "cat", model.MatchPresent},
		{"case insensitive", []string{"phone"}, "Phone", model.MatchFirst},
		{"substring does not match", []string{"cat toy", "bobcat"}, "cat", model.MatchNotPresent},
		{"prefix does not match", []string{"ca"}, "cat", model.MatchNotPresent},
		{"empty list", nil, "cat", model.MatchNotPresent},
		{"first occurrence wins", []string{"dog", "CAT", "cat"}, "cat", model.MatchPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.suggestions, tt.keyword))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		n, i   int
		status model.MatchStatus
		want   int
	}{
		{"cat first at first probe", 3, 0, model.MatchFirst, 100},
		{"cat present at first probe", 3, 0, model.MatchPresent, 83},
		{"cat first at last probe", 3, 2, model.MatchFirst, 33},
		{"cat present at last probe", 3, 2, model.MatchPresent, 16},
		{"single char first", 1, 0, model.MatchFirst, 100},
		{"single char present", 1, 0, model.MatchPresent, 50},
		{"length 6 truncates", 6, 1, model.MatchFirst, 83},
		{"length 7 present", 7, 3, model.MatchPresent, 50},
		{"length 11 first at last", 11, 10, model.MatchFirst, 9},
		{"length 11 present at last", 11, 10, model.MatchPresent, 4},
		{"not present", 5, 0, model.MatchNotPresent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, score(tt.n, tt.i, tt.status))
		})
	}
}
