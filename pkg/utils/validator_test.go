package utils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	Keyword string `schema:"keyword" validate:"required,max=5"`
	Limit   int    `schema:"limit" validate:"min=0,max=10"`
	Exact   bool   `schema:"exact"`
}

func TestParseAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		queries map[string]string
		want    sampleQuery
		wantErr bool
	}{
		{
			name:    "keyword only",
			queries: map[string]string{"keyword": "cat"},
			want:    sampleQuery{Keyword: "cat"},
		},
		{
			name:    "all fields",
			queries: map[string]string{"keyword": "cat", "limit": "3", "exact": "true"},
			want:    sampleQuery{Keyword: "cat", Limit: 3, Exact: true},
		},
		{
			name:    "max counts runes not bytes",
			queries: map[string]string{"keyword": "가나다라마"},
			want:    sampleQuery{Keyword: "가나다라마"},
		},
		{
			name:    "missing keyword",
			queries: map[string]string{"limit": "3"},
			wantErr: true,
		},
		{
			name:    "empty keyword",
			queries: map[string]string{"keyword": ""},
			wantErr: true,
		},
		{
			name:    "keyword too long",
			queries: map[string]string{"keyword": "abcdef"},
			wantErr: true,
		},
		{
			name:    "limit over max",
			queries: map[string]string{"keyword": "cat", "limit": "11"},
			wantErr: true,
		},
		{
			name:    "unknown keys ignored",
			queries: map[string]string{"keyword": "cat", "utm_source": "mail"},
			want:    sampleQuery{Keyword: "cat"},
		},
		{
			name:    "negative limit",
			queries: map[string]string{"keyword": "cat", "limit": "-1"},
			wantErr: true,
		},
		{
			name:    "limit not a number",
			queries: map[string]string{"keyword": "cat", "limit": "ten"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sampleQuery
			err := ParseAndValidate(tt.queries, &got)
			if tt.wantErr {
				require.Error(t, err)
				var fiberErr *fiber.Error
				require.True(t, errors.As(err, &fiberErr))
				assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAndValidateRejectsNonPointer(t *testing.T) {
	err := ParseAndValidate(map[string]string{}, sampleQuery{})
	assert.Error(t, err)
}

func TestParseAndValidateMessages(t *testing.T) {
	var q sampleQuery
	err := ParseAndValidate(map[string]string{"limit": "11"}, &q)
	require.Error(t, err)
	assert.Equal(t, "keyword: 필수 항목입니다, limit: 최대 10 이하여야 합니다", err.(*fiber.Error).Message)

	err = ParseAndValidate(map[string]string{"keyword": "cat", "limit": "ten"}, &q)
	require.Error(t, err)
	assert.Contains(t, err.(*fiber.Error).Message, "limit:")
}

func TestValidationErrorsSorted(t *testing.T) {
	errs := ValidationErrors{}
	errs.Add("limit", "b")
	errs.Add("keyword", "a")
	assert.Equal(t, "keyword: a, limit: b", errs.Error())
}
