package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestContext는 요청마다 마감 시간이 있는 context를 UserContext로 설정합니다.
// 핸들러가 끝나면 context를 취소하므로 남은 외부 호출도 함께 중단됩니다.
// timeout이 0 이하이면 마감 시간 없이 취소만 합니다.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(c.UserContext(), timeout)
		} else {
			ctx, cancel = context.WithCancel(c.UserContext())
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
