package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sh5080/keyword-go/pkg/configs"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	constants "github.com/sh5080/keyword-go/pkg/types"
	"github.com/sh5080/keyword-go/pkg/utils"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// CompletionAPIClient는 자동완성 API 요청을 처리하는 클라이언트입니다.
// 생성 이후에는 상태를 바꾸지 않으므로 여러 요청에서 동시에 사용할 수 있습니다.
type CompletionAPIClient struct {
	_interface.Service
	baseURL *url.URL
	params  url.Values
	limiter *rate.Limiter
}

var _ _interface.CompletionClient = (*CompletionAPIClient)(nil)

// NewCompletionAPIClient는 새로운 자동완성 API 클라이언트를 생성합니다.
func NewCompletionAPIClient(config *configs.EnvConfig) (*CompletionAPIClient, error) {
	baseURL, err := url.Parse(config.Completion.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: 자동완성 URL 파싱 실패: %w", constants.ErrRequestConstruction, err)
	}

	params := url.Values{}
	params.Set("client", config.Completion.Client)
	params.Set("search-alias", config.Completion.SearchAlias)
	params.Set("mkt", config.Completion.Market)

	limit := rate.Inf
	if config.Completion.RateLimit > 0 {
		limit = rate.Limit(config.Completion.RateLimit)
	}

	return &CompletionAPIClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: config.Completion.Timeout,
			},
			Config: config,
		},
		baseURL: baseURL,
		params:  params,
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// Suggest는 자동완성 API를 한 번 호출(프로브)하여 추천 검색어 목록을 반환합니다.
func (c *CompletionAPIClient) Suggest(ctx context.Context, prefix string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: 요청 대기 중단: %w", constants.ErrUpstreamTransport, err)
	}

	reqURL := c.probeURL(prefix)

	// HTTP 요청 생성
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		utils.Error(constants.COMPLETION_API_NAME, "자동완성 URL 생성 실패 (%s): %v", reqURL, err)
		return nil, fmt.Errorf("%w: %w", constants.ErrRequestConstruction, err)
	}
	req.Header.Set("Content-Type", "application/json")

	utils.Debug(constants.COMPLETION_API_NAME, "자동완성 API 호출: %s", reqURL)

	// 요청 실행
	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall(constants.COMPLETION_API_NAME, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: 요청 실행 실패: %w", constants.ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	// 응답 본문 읽기
	body, err := io.ReadAll(resp.Body)
	utils.RecordApiCall(constants.COMPLETION_API_NAME, resp.StatusCode, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: 응답 읽기 실패: %w", constants.ErrUpstreamTransport, err)
	}

	// 응답 상태 확인
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: API 오류 (%d): %s", constants.ErrUpstreamTransport, resp.StatusCode, truncate(string(body), 200))
	}

	return ParseSuggestions(body)
}

// probeURL은 고정 파라미터에 접두어를 q로 붙인 요청 URL을 만듭니다.
func (c *CompletionAPIClient) probeURL(prefix string) string {
	u := *c.baseURL
	u.RawQuery = c.params.Encode() + "&q=" + EncodePrefix(prefix)
	return u.String()
}

// EncodePrefix는 공백을 '+' 문자로 바꾸고 나머지 부분은 쿼리 인코딩합니다.
func EncodePrefix(prefix string) string {
	words := strings.Split(prefix, " ")
	for i, word := range words {
		words[i] = url.QueryEscape(word)
	}
	return strings.Join(words, "+")
}

// ParseSuggestions는 [질의, [추천, ...], ...] 형식의 응답에서 추천 목록(1번 요소)을 꺼냅니다.
// 요소가 2개 미만이면 추천이 없는 것으로 보고 빈 목록을 반환합니다.
// 추천 항목의 순서가 곧 순위이므로 문자열이 아닌 항목이 있으면 응답 전체를 오류로 봅니다.
func ParseSuggestions(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: JSON이 아닙니다: %s", constants.ErrUpstreamResponse, truncate(string(body), 200))
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: 최상위 값이 배열이 아닙니다", constants.ErrUpstreamResponse)
	}

	elements := root.Array()
	if len(elements) < 2 {
		return nil, nil
	}

	list := elements[1]
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: 추천 목록이 배열이 아닙니다", constants.ErrUpstreamResponse)
	}

	items := list.Array()
	suggestions := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: %d번째 추천 항목이 문자열이 아닙니다: %s", constants.ErrUpstreamResponse, i, truncate(item.Raw, 50))
		}
		suggestions = append(suggestions, item.Str)
	}
	return suggestions, nil
}

// truncate는 문자열을 최대 n바이트로 자르되 UTF-8 문자 중간에서 자르지 않습니다
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
