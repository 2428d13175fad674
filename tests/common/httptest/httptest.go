//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Caller is the identity sent through the actor headers. The zero value sends none.
type Caller struct {
	ID   string
	Role string
}

var Anonymous = Caller{}

func Member(id uuid.UUID) Caller  { return Caller{ID: id.String(), Role: "member"} }
func Trainer(id uuid.UUID) Caller { return Caller{ID: id.String(), Role: "trainer"} }
func System() Caller              { return Caller{Role: "system"} }

// executes HTTP request as the given caller
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, caller Caller) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if caller.Role != "" {
		req.Header.Set("X-User-Role", caller.Role)
	}
	if caller.ID != "" {
		req.Header.Set("X-User-ID", caller.ID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
