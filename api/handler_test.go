package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FrozenSaturn/pawsome/repository"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// MockResponder is a mock type for the services.Responder interface.
type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

// newTestRouter builds the production router over a fresh seeded store
// and the given responder.
func newTestRouter(responder *MockResponder) (*gin.Engine, *repository.Store) {
	store := repository.NewStore()
	if responder == nil {
		responder = new(MockResponder)
	}
	return NewRouter(NewAPIHandler(store, responder)), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListEndpointsReturnSeedData(t *testing.T) {
	r, _ := newTestRouter(nil)

	tests := []struct {
		path string
		want int
	}{
		{"/api/action-snippets", 4},
		{"/api/impact-stories", 1},
		{"/api/local-groups", 3},
		{"/api/adoptable-pets", 3},
		{"/api/resources", 3},
		{"/api/knowledge-base", 4},
		{"/api/action-board", 4},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var items []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.Len(t, items, tt.want)
		})
	}
}

func TestListEndpointsAreIdempotent(t *testing.T) {
	r, _ := newTestRouter(nil)

	first := doJSON(t, r, http.MethodGet, "/api/adoptable-pets", nil)
	second := doJSON(t, r, http.MethodGet, "/api/adoptable-pets", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestCorsPreflight(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/adoptable-pets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
