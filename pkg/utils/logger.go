package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

func (l LogLevel) zerolog() zerolog.Level {
	return [...]zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.FatalLevel}[l]
}

// 디버그 모드 상태를 저장할 변수와 초기화를 한 번만 수행하기 위한 once
var isDebugMode bool
var debugOnce sync.Once

var (
	loggerMu   sync.RWMutex
	baseLogger = newLogger(os.Stdout, zerolog.InfoLevel, false)
)

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// InitLogger는 전역 로거의 레벨과 출력 형식을 설정합니다.
// 디버그 모드에서는 level과 관계없이 DEBUG 로그를 출력합니다.
func InitLogger(level string, jsonFormat bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if IsDebug() {
		lvl = zerolog.DebugLevel
	}
	SetLogOutput(os.Stdout, lvl, jsonFormat)
}

// SetLogOutput은 로그 출력 대상을 교체합니다
func SetLogOutput(w io.Writer, level zerolog.Level, jsonFormat bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	baseLogger = newLogger(w, level, jsonFormat)
}

func newLogger(w io.Writer, level zerolog.Level, jsonFormat bool) zerolog.Logger {
	if !jsonFormat {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logMessage(level, service, format, args...)
}

func logMessage(level LogLevel, service string, format string, args ...interface{}) {
	loggerMu.RLock()
	logger := baseLogger
	loggerMu.RUnlock()

	// 에러 레벨 이상은 메트릭에 기록
	if level >= ERROR {
		RecordError(service, level.String())
	}

	event := logger.WithLevel(level.zerolog())
	if event == nil {
		return
	}

	// 호출 위치 정보 (logMessage <- LogMessage/편의 함수 <- 호출자)
	if _, file, line, ok := runtime.Caller(2); ok {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
		event = event.Str("caller", fmt.Sprintf("%s:%d", file, line))
	}

	event.Str("service", service).Msgf(format, args...)
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	logMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	logMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	logMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	logMessage(ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	logMessage(FATAL, service, format, args...)
	os.Exit(1)
}
