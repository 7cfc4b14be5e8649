package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/keyword-go/pkg/interfaces"
	middleware "github.com/sh5080/keyword-go/pkg/middlewares"
	constants "github.com/sh5080/keyword-go/pkg/types"
	requestDto "github.com/sh5080/keyword-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/keyword-go/pkg/types/dtos/responses"
	"github.com/sh5080/keyword-go/pkg/utils"
)

// Estimate는 키워드 인기도 추정 요청을 처리하는 핸들러입니다
func Estimate(estimateService _interface.EstimateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.EstimateQuery
		if err := utils.ParseAndValidate(c.Queries(), &req); err != nil {
			return errorResponse(c, err)
		}

		estimation, err := estimateService.EstimateKeyword(c.UserContext(), req.Keyword)
		if err != nil {
			utils.Error("controller", "[%s] 키워드 추정 실패 (%q): %v", middleware.GetRequestID(c), req.Keyword, err)
			return errorResponse(c, err)
		}

		return c.JSON(responseDto.Estimate{
			Keyword: estimation.Keyword,
			Score:   estimation.Score,
		})
	}
}

// EstimateHistory는 키워드의 최근 추정 이력을 반환하는 핸들러입니다
func EstimateHistory(estimateService _interface.EstimateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.EstimateHistoryQuery
		if err := utils.ParseAndValidate(c.Queries(), &req); err != nil {
			return errorResponse(c, err)
		}

		records, err := estimateService.EstimateHistory(c.UserContext(), req.Keyword, req.Limit)
		if err != nil {
			utils.Error("controller", "[%s] 추정 이력 조회 실패 (%q): %v", middleware.GetRequestID(c), req.Keyword, err)
			return errorResponse(c, err)
		}

		return c.JSON(responseDto.EstimateHistory{
			Keyword: req.Keyword,
			Records: records,
		})
	}
}

// errorResponse는 오류 종류에 맞는 상태 코드로 {"error": ...} 응답을 보냅니다
func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, constants.ErrInvalidKeyword):
		return fiber.StatusBadRequest
	case errors.Is(err, constants.ErrUpstreamTransport),
		errors.Is(err, constants.ErrUpstreamResponse),
		errors.Is(err, constants.ErrRequestConstruction):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
