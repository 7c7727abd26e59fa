package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mikiasgoitom/likeboard/internal/handler/http"
	dto "github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/likeboard/internal/handler/http/mocks"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/logger"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/repository/jsonfile"
	"github.com/mikiasgoitom/likeboard/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(uc usecasecontract.ILikeUseCase) *gin.Engine {
	r := gin.New()
	handler.NewRouter(uc, handler.RouterOptions{}).SetupRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, bytes.NewBuffer(body))
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func decodeLikes(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()
	var resp dto.LikesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.TotalLikes
}

func TestGetLikes(t *testing.T) {
	r := setupRouter(mocks.NewMockLikeUsecase(5))

	w := doRequest(t, r, "GET", "/api/likes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalLikes":5}`, w.Body.String())
}

func TestGetLikes_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase(5)
	mockUsecase.ShouldFailGetLikes = true
	r := setupRouter(mockUsecase)

	w := doRequest(t, r, "GET", "/api/likes", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to get likes"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "permission denied")
}

func TestLike(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase(5)
	r := setupRouter(mockUsecase)

	w := doRequest(t, r, "POST", "/api/likes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalLikes":6}`, w.Body.String())
	assert.Equal(t, 1, mockUsecase.LikeCalls)
}

func TestLike_IgnoresBody(t *testing.T) {
	r := setupRouter(mocks.NewMockLikeUsecase(0))

	w := doRequest(t, r, "POST", "/api/likes", []byte(`{"totalLikes":1000}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decodeLikes(t, w))
}

func TestLike_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase(5)
	mockUsecase.ShouldFailLike = true
	r := setupRouter(mockUsecase)

	w := doRequest(t, r, "POST", "/api/likes", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to update likes"}`, w.Body.String())
}

func TestHealthz(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase(0)
	r := setupRouter(mockUsecase)

	w := doRequest(t, r, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	mockUsecase.ShouldFailGetLikes = true
	w = doRequest(t, r, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupRouter(mocks.NewMockLikeUsecase(0))
	doRequest(t, r, "GET", "/api/likes", nil)

	w := doRequest(t, r, "GET", "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "likeboard_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(mocks.NewMockLikeUsecase(0))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/likes", nil)
	req.Header.Set("Origin", "https://party.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hooray</h1>"), 0o644))
	r := gin.New()
	handler.NewRouter(mocks.NewMockLikeUsecase(0), handler.RouterOptions{StaticDir: dir}).SetupRoutes(r)

	w := doRequest(t, r, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hooray")
}

func TestStaticDir_ReadOnlyMethods(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hooray</h1>"), 0o644))
	r := gin.New()
	handler.NewRouter(mocks.NewMockLikeUsecase(0), handler.RouterOptions{StaticDir: dir}).SetupRoutes(r)

	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
		for _, path := range []string{"/", "/index.html", "/anything"} {
			w := doRequest(t, r, method, path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", method, path)
			assert.NotContains(t, w.Body.String(), "hooray", "%s %s", method, path)
		}
	}

	w := doRequest(t, r, "HEAD", "/index.html", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticDir_NoDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "secret.txt"), []byte("psst"), 0o644))
	r := gin.New()
	handler.NewRouter(mocks.NewMockLikeUsecase(0), handler.RouterOptions{StaticDir: dir}).SetupRoutes(r)

	w := doRequest(t, r, "GET", "/sub/", nil)
	assert.NotContains(t, w.Body.String(), "secret.txt")

	w = doRequest(t, r, "GET", "/", nil)
	assert.NotContains(t, w.Body.String(), "sub/")

	w = doRequest(t, r, "GET", "/sub/secret.txt", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "psst", w.Body.String())
}

// Wires the real usecase and JSON file store behind the router.
func TestLikesFlow_FileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), jsonfile.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"totalLikes":5}`), 0o644))
	repo := jsonfile.NewLikeCounterRepository(path)
	uc := usecase.NewLikeUsecase(repo, logger.NewNopLogger(), nil)
	r := setupRouter(uc)

	w := doRequest(t, r, "POST", "/api/likes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalLikes":6}`, w.Body.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalLikes":6}`, string(data))

	w = doRequest(t, r, "GET", "/api/likes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), decodeLikes(t, w))
}

func TestLikesFlow_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), jsonfile.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	uc := usecase.NewLikeUsecase(jsonfile.NewLikeCounterRepository(path), logger.NewNopLogger(), nil)
	r := setupRouter(uc)

	w := doRequest(t, r, "GET", "/api/likes", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to get likes"}`, w.Body.String())

	w = doRequest(t, r, "POST", "/api/likes", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to update likes"}`, w.Body.String())
}
