package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ngram-go/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	gramService := service.NewGramService([]int{1, 2}, " ", 2, zap.NewNop())
	gramController := NewGramController(gramService, zap.NewNop())

	router := gin.New()
	router.POST("/generate", gramController.Generate)
	router.POST("/generateBatch", gramController.GenerateBatch)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate_Defaults(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generate", gin.H{
		"tokens": []string{"the", "quick", "brown"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"the", "quick", "brown", "the quick", "quick brown"}, resp.NGrams)
	assert.Equal(t, 5, resp.Count)
}

func TestGenerate_Overrides(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generate", gin.H{
		"tokens":    []string{"a", "b", "c"},
		"n_range":   []int{2},
		"delimiter": "-",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a-b", "b-c"}, resp.NGrams)
}

func TestGenerate_EmptyTokens(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generate", gin.H{"tokens": []string{}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.NGrams)
	assert.Zero(t, resp.Count)
}

func TestGenerate_InvalidNRange(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generate", gin.H{
		"tokens":  []string{"a", "b"},
		"n_range": []int{0},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBatch_RowAlignment(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generateBatch", gin.H{
		"rows": []interface{}{
			[]interface{}{"hello", "world"},
			[]interface{}{},
			[]interface{}{"x", 7}, // uninterpretable row
		},
		"n_range":   []int{2},
		"delimiter": "+",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateBatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "list[str]", resp.Schema)
	assert.Equal(t, 3, resp.RowCount)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, []string{"hello+world"}, resp.Results[0])
	assert.Empty(t, resp.Results[1])
	assert.Empty(t, resp.Results[2])
}

func TestGenerateBatch_InvalidNRange(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/generateBatch", gin.H{
		"rows":    []interface{}{[]interface{}{"a"}},
		"n_range": []int{-2},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
