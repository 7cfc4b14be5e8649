package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var structValidator = newValidator()

// newValidator는 오류 메시지에 쿼리 이름(schema 태그)을 쓰는 검증기를 생성합니다
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrors는 필드별 유효성 검사 오류를 저장합니다
type ValidationErrors map[string]string

// Add는 ValidationErrors에 새 오류를 추가합니다
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Error는 필드 이름 순으로 정렬된 오류 문자열을 반환합니다
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, ", ")
}

// ValidateStruct는 validate 태그로 구조체를 검사합니다. 지원되는 규칙은 validator/v10을 따릅니다.
func ValidateStruct(data interface{}) error {
	err := structValidator.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := make(ValidationErrors)
	for _, fe := range fieldErrs {
		if _, exists := result[fe.Field()]; !exists {
			result.Add(fe.Field(), ruleMessage(fe))
		}
	}
	return result
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "min":
		return fmt.Sprintf("최소 %s 이상이어야 합니다", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s 이하여야 합니다", fe.Param())
	default:
		return fmt.Sprintf("%s 규칙을 만족하지 않습니다", fe.Tag())
	}
}

// decodeMessage는 쿼리 변환 오류를 필드별 메시지로 바꿉니다
func decodeMessage(err error) string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err.Error()
	}

	result := make(ValidationErrors)
	for key, fieldErr := range multi {
		var convErr schema.ConversionError
		if errors.As(fieldErr, &convErr) {
			result.Add(key, fmt.Sprintf("%s 타입으로 변환할 수 없습니다", convErr.Type))
			continue
		}
		result.Add(key, fieldErr.Error())
	}
	return result.Error()
}
