package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponseCode int

const (
	APIResponseCodeOK           APIResponseCode = 0
	APIResponseCodeBadRequest   APIResponseCode = 40000
	APIResponseCodeUnauthorized APIResponseCode = 40100
	APIResponseCodeForbidden    APIResponseCode = 40300
	APIResponseCodeNotFound     APIResponseCode = 40400
	APIResponseCodeConflict     APIResponseCode = 40900
	APIResponseCodeError        APIResponseCode = 50000
)

var codeToStatus = map[APIResponseCode]int{
	APIResponseCodeOK:           http.StatusOK,
	APIResponseCodeBadRequest:   http.StatusBadRequest,
	APIResponseCodeUnauthorized: http.StatusUnauthorized,
	APIResponseCodeForbidden:    http.StatusForbidden,
	APIResponseCodeNotFound:     http.StatusNotFound,
	APIResponseCodeConflict:     http.StatusConflict,
	APIResponseCodeError:        http.StatusInternalServerError,
}

// APIResponse is the generic response envelope used by HTTP APIs.
// The Error field mirrors Message for non-zero codes so clients can show it verbatim.
type APIResponse[T any] struct {
	Code    APIResponseCode `json:"code"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Data    T               `json:"data"`
}

// OKT returns a successful response envelope with data.
func OKT[T any](data T) *APIResponse[T] {
	return &APIResponse[T]{Code: APIResponseCodeOK, Message: "ok", Data: data}
}

// ErrorT returns an error envelope with a user-visible message.
func ErrorT[T any](code APIResponseCode, msg string) *APIResponse[T] {
	return &APIResponse[T]{Code: code, Message: msg, Error: msg}
}

// OK writes a 200 envelope with data.
func OK[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, OKT(data))
}

// Fail writes an error envelope with the HTTP status matching the code.
func Fail(c *gin.Context, code APIResponseCode, msg string) {
	status, ok := codeToStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorT[any](code, msg))
}

// AbortFail is Fail plus gin abort, for middleware use.
func AbortFail(c *gin.Context, code APIResponseCode, msg string) {
	Fail(c, code, msg)
	c.Abort()
}
