// Package errcode 도메인 오류를 종류(Kind)와 코드로 표현한다.
package errcode

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindValidation
	KindConflict
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError 경계 계층까지 그대로 전달되는 도메인 오류
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 코드가 같으면 같은 오류로 본다
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap 원인 오류를 붙인 사본을 만든다
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func NotFound(code, message string) *AppError     { return New(KindNotFound, code, message) }
func Forbidden(code, message string) *AppError    { return New(KindForbidden, code, message) }
func Validation(code, message string) *AppError   { return New(KindValidation, code, message) }
func Conflict(code, message string) *AppError     { return New(KindConflict, code, message) }
func Unauthorized(code, message string) *AppError { return New(KindUnauthorized, code, message) }

// KindOf AppError 가 아니면 KindInternal
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
