package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/pkg/errcode"
)

// 응답 코드
const (
	CodeSuccess          = 0
	CodeParamError       = 1000
	CodeAuthFailed       = 1001
	CodePermissionDenied = 1002
	CodeResourceNotFound = 1003
	CodeDuplicateAction  = 1005
	CodeServerError      = 5000
)

var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeParamError:       "잘못된 요청입니다",
	CodeAuthFailed:       "인증에 실패했습니다",
	CodePermissionDenied: "권한이 없습니다",
	CodeResourceNotFound: "리소스를 찾을 수 없습니다",
	CodeDuplicateAction:  "이미 처리된 요청입니다",
	CodeServerError:      "서버 내부 오류",
}

// Response 공통 응답 구조
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"error_code,omitempty"`
	Data      interface{} `json:"data"`
}

// PageData 페이지 응답. number 는 0부터
type PageData struct {
	Content interface{} `json:"content"`
	Page    PageInfo    `json:"page"`
}

type PageInfo struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPageData(content interface{}, total int64, page, size int) PageData {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PageData{
		Content: content,
		Page: PageInfo{
			Size:          size,
			Number:        page,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessPage 페이지 응답
func SuccessPage(c *gin.Context, total int64, page, size int, content interface{}) {
	Success(c, NewPageData(content, total, page, size))
}

func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Fail 서비스 오류를 응답 코드로 변환. AppError 가 아니면 5000
func Fail(c *gin.Context, err error) {
	var appErr *errcode.AppError
	if !errors.As(err, &appErr) {
		slog.Error("unhandled error", "path", c.FullPath(), "error", err)
		ServerError(c, "")
		return
	}

	code := CodeOf(appErr.Kind)
	if code == CodeServerError {
		slog.Error("internal error", "path", c.FullPath(), "code", appErr.Code, "error", err)
	}
	c.JSON(http.StatusOK, Response{
		Code:      code,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
		Data:      nil,
	})
}

func CodeOf(kind errcode.Kind) int {
	switch kind {
	case errcode.KindValidation:
		return CodeParamError
	case errcode.KindUnauthorized:
		return CodeAuthFailed
	case errcode.KindForbidden:
		return CodePermissionDenied
	case errcode.KindNotFound:
		return CodeResourceNotFound
	case errcode.KindConflict:
		return CodeDuplicateAction
	default:
		return CodeServerError
	}
}

func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

func AuthError(c *gin.Context, message string) {
	Error(c, CodeAuthFailed, message)
}

func PermissionError(c *gin.Context, message string) {
	Error(c, CodePermissionDenied, message)
}

func NotFoundError(c *gin.Context, message string) {
	Error(c, CodeResourceNotFound, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
