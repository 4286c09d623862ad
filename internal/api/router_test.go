package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/chartwheel-backend-go/internal/config"
	"github.com/jengzang/chartwheel-backend-go/internal/database"
	"github.com/jengzang/chartwheel-backend-go/internal/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{
		Path: filepath.Join(t.TempDir(), "charts.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Port:          ":0",
		JWTSecret:     "test-secret",
		DefaultTheme:  "light",
		TokenTTLHours: 1,
		RateLimit:     1000,
	}
	return SetupRouter(cfg, db)
}

const snapshotBody = `{
	"id": "e2e",
	"wheel": {
		"id": "wheel",
		"innerRadius": 0.3,
		"outerRadius": 1.0,
		"rings": [
			{
				"id": "signs", "type": "signs",
				"innerRadius": 0.8, "outerRadius": 1.0,
				"items": [
					{"id": "sign-aries", "kind": "sign", "startLon": 0, "endLon": 30, "index": 0}
				]
			}
		]
	},
	"aspects": {}
}`

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreateRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charts", bytes.NewBufferString(snapshotBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CreateAndFetch(t *testing.T) {
	r := newTestRouter(t)

	token, err := middleware.IssueToken("test-secret", "tester", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charts", bytes.NewBufferString(snapshotBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Reads are open
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/charts/e2e/layout?size=600", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []struct {
				ScreenAngle float64 `json:"screenAngle"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.InDelta(t, 75, resp.Data.Items[0].ScreenAngle, 1e-6)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/charts/e2e/svg", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
}

func TestRouter_MalformedSnapshotRejected(t *testing.T) {
	r := newTestRouter(t)

	body := `{"snapshot": {"id": "bad", "wheel": {"id": "w", "rings": null}, "aspects": {}}, "options": {}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/layout/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_Preview(t *testing.T) {
	r := newTestRouter(t)

	body := `{"snapshot": ` + snapshotBody + `, "options": {"size": 400}, "visual": {"signColors": ["#abcdef"]}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/layout/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"#abcdef"`)
}

func TestRouter_Themes(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dark")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/themes/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
