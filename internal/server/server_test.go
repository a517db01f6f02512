package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencloud/gcrs/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	return New(cfg, nil, "test")
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func sampleRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range map[string]string{
		"src/app.py": "print('x')\n",
		"README.md":  "# readme\n",
		"go.mod":     "module x\n",
	} {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestScan_Success(t *testing.T) {
	s := testServer(t)
	root := sampleRepo(t)

	rr := postJSON(t, s.Handler(), "/scan", scanParams{RepoRoot: root})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp scanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 3, resp.ScannedCount)
	assert.Equal(t, 0, resp.SkippedCount)
	assert.Len(t, resp.Records, 3)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 1, resp.Summary.FilesByDependency["go-mod"])
}

func TestScan_SummaryOnlyOmitsRecords(t *testing.T) {
	s := testServer(t)
	root := sampleRepo(t)

	rr := postJSON(t, s.Handler(), "/scan", scanParams{RepoRoot: root, SummaryOnly: true})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp scanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
	assert.Equal(t, 3, resp.ScannedCount)
}

func TestScan_RootNotFound(t *testing.T) {
	s := testServer(t)

	rr := postJSON(t, s.Handler(), "/scan", scanParams{RepoRoot: filepath.Join(t.TempDir(), "gone")})
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp scanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestScan_BadBody(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewReader([]byte("{broken")))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScanSummary_WritesSummaryFile(t *testing.T) {
	s := testServer(t)
	root := sampleRepo(t)

	rr := postJSON(t, s.Handler(), "/scan/summary", summaryParams{
		RepoRoot:   root,
		OutputFile: "latest.summary.json",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.FilesScanned)
	assert.Equal(t, 3, *resp.FilesScanned)

	wantPath := filepath.Join(root, "output", "latest.summary.json")
	assert.Equal(t, wantPath, resp.OutputFile)
	raw, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.EqualValues(t, 3, onDisk["scanned_files"])
}

func TestScanSummary_DefaultFilename(t *testing.T) {
	s := testServer(t)
	root := sampleRepo(t)

	rr := postJSON(t, s.Handler(), "/scan/summary", summaryParams{RepoRoot: root})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.OutputFile, ".summary.json")
	_, err := os.Stat(resp.OutputFile)
	assert.NoError(t, err)
}

func TestRoot_Banner(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Green Cloud Repository Scanner", body["message"])
	assert.Equal(t, "test", body["version"])
}
