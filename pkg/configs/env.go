package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// 추정 이력 저장소 종류
const (
	HistoryBackendNone     = "none"
	HistoryBackendMemory   = "memory"
	HistoryBackendDynamoDB = "dynamodb"
)

type EnvConfig struct {
	Server struct {
		Port    string `env:"PORT" envDefault:"8080"`
		AppName string `env:"APP_NAME" envDefault:"keyword-estimator"`
		AppEnv  string `env:"APP_ENV" envDefault:"prod"`
		// 요청 하나의 마감 시간, 지나면 남은 프로브를 중단
		RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	}
	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
		JSON  bool   `env:"LOG_JSON" envDefault:"false"`
	}
	Completion struct {
		URL         string        `env:"COMPLETION_URL" envDefault:"https://completion.amazon.com/search/complete"`
		Client      string        `env:"COMPLETION_CLIENT" envDefault:"amazon-search-ui"`
		SearchAlias string        `env:"COMPLETION_SEARCH_ALIAS" envDefault:"aps"`
		Market      string        `env:"COMPLETION_MARKET" envDefault:"1"`
		Timeout     time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"10s"`
		RateLimit   float64       `env:"COMPLETION_RATE_LIMIT" envDefault:"0"` // 초당 요청 수, 0이면 제한 없음
	}
	History struct {
		Backend string        `env:"HISTORY_BACKEND" envDefault:"none"`
		TTL     time.Duration `env:"HISTORY_TTL" envDefault:"168h"`
	}
	AWS struct {
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
		Region           string `env:"AWS_REGION"`
		DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			Estimates string `env:"AWS_DYNAMODB_TABLE_ESTIMATES" envDefault:"KeywordEstimates"`
		}
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// Load는 .env 파일과 환경 변수를 읽어 설정을 만들고 검증합니다.
// .env 파일이 없으면 환경 변수만 사용합니다.
func Load() (*EnvConfig, error) {
	_ = godotenv.Load()

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate는 값 사이의 제약 조건을 확인합니다
func (c *EnvConfig) validate() error {
	u, err := url.Parse(c.Completion.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("COMPLETION_URL이 올바른 절대 URL이 아닙니다: %q", c.Completion.URL)
	}

	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT은 0 이상이어야 합니다: %v", c.Server.RequestTimeout)
	}

	if c.Completion.RateLimit < 0 {
		return fmt.Errorf("COMPLETION_RATE_LIMIT는 0 이상이어야 합니다: %v", c.Completion.RateLimit)
	}

	switch c.History.Backend {
	case HistoryBackendNone, HistoryBackendMemory:
	case HistoryBackendDynamoDB:
		if c.AWS.Region == "" {
			return fmt.Errorf("HISTORY_BACKEND=dynamodb에는 AWS_REGION이 필요합니다")
		}
	default:
		return fmt.Errorf("지원하지 않는 HISTORY_BACKEND: %q", c.History.Backend)
	}

	return nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			log.Fatalf("설정 로드 실패: %v", err)
		}
		configInstance = config
	})
	return configInstance
}
