package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestFail_WritesMatchingHTTPStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code APIResponseCode
		want int
	}{
		{APIResponseCodeBadRequest, http.StatusBadRequest},
		{APIResponseCodeUnauthorized, http.StatusUnauthorized},
		{APIResponseCodeForbidden, http.StatusForbidden},
		{APIResponseCodeNotFound, http.StatusNotFound},
		{APIResponseCodeConflict, http.StatusConflict},
		{APIResponseCodeError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		Fail(c, tc.code, "boom")
		require.Equal(t, tc.want, w.Code)

		var body APIResponse[any]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, tc.code, body.Code)
		require.Equal(t, "boom", body.Error)
	}
}

func TestOK_WrapsPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, map[string]int{"n": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var body APIResponse[map[string]int]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, APIResponseCodeOK, body.Code)
	require.Equal(t, 3, body.Data["n"])
}
