package utils

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// ParseAndValidate는 쿼리 파라미터를 DTO로 변환하고 검증합니다.
// queries: 요청 쿼리 맵
// dto: 변환될 DTO 구조체 포인터
// 반환값: 에러가 있으면 fiber.Error(400), 성공 시 nil
func ParseAndValidate(queries map[string]string, dto interface{}) error {
	dtoValue := reflect.ValueOf(dto)
	if dtoValue.Kind() != reflect.Ptr || dtoValue.IsNil() || dtoValue.Elem().Kind() != reflect.Struct {
		return fiber.NewError(fiber.StatusInternalServerError, "DTO는 구조체 포인터여야 합니다")
	}

	// 빈 값은 전달되지 않은 것으로 취급
	values := make(map[string][]string, len(queries))
	for key, value := range queries {
		if value != "" {
			values[key] = []string{value}
		}
	}

	if err := queryDecoder.Decode(dto, values); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, decodeMessage(err))
	}

	if err := ValidateStruct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
