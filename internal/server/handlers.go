package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/greencloud/gcrs/internal/inventory"
	"github.com/greencloud/gcrs/internal/report"
)

// scanParams is the request body for POST /scan.
type scanParams struct {
	RepoRoot    string `json:"repo_root"`
	SummaryOnly bool   `json:"summary_only"`
}

// scanResponse is the response body for POST /scan.
type scanResponse struct {
	Status       string                 `json:"status"`
	RepoRoot     string                 `json:"repo_root"`
	ScannedCount int                    `json:"scanned_count"`
	SkippedCount int                    `json:"skipped_count"`
	Records      []inventory.FileRecord `json:"records,omitempty"`
	Summary      *inventory.Summary     `json:"summary,omitempty"`
	Incomplete   bool                   `json:"incomplete,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// summaryParams is the request body for POST /scan/summary.
type summaryParams struct {
	RepoRoot   string `json:"repo_root"`
	OutputDir  string `json:"output_dir"`
	OutputFile string `json:"output_file"`
}

// summaryResponse is the response body for POST /scan/summary.
type summaryResponse struct {
	Status       string             `json:"status"`
	RepoRoot     string             `json:"repo_root"`
	Summary      *inventory.Summary `json:"summary,omitempty"`
	FilesScanned *int               `json:"files_scanned,omitempty"`
	FilesSkipped *int               `json:"files_skipped,omitempty"`
	OutputFile   string             `json:"output_file,omitempty"`
	Error        string             `json:"error,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Green Cloud Repository Scanner",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var params scanParams
	if !decodeParams(w, r, &params) {
		return
	}
	if params.RepoRoot == "" {
		params.RepoRoot = s.cfg.ScanRoot
	}

	res, err := inventory.Scan(r.Context(), params.RepoRoot, inventory.Options{
		Tables:          s.tables,
		SummaryOnly:     params.SummaryOnly,
		ShebangFallback: s.cfg.ShebangFallback,
		Workers:         s.cfg.Workers,
	})
	if err != nil {
		writeScanError(w, params.RepoRoot, err)
		return
	}

	writeJSON(w, http.StatusOK, scanResponse{
		Status:       "success",
		RepoRoot:     res.Root,
		ScannedCount: res.Summary.ScannedFiles,
		SkippedCount: res.Summary.SkippedFiles,
		Records:      res.Records,
		Summary:      res.Summary,
		Incomplete:   res.Incomplete,
	})
}

func (s *Server) handleScanSummary(w http.ResponseWriter, r *http.Request) {
	var params summaryParams
	if !decodeParams(w, r, &params) {
		return
	}
	if params.RepoRoot == "" {
		params.RepoRoot = s.cfg.ScanRoot
	}
	if params.OutputDir == "" {
		params.OutputDir = s.cfg.OutputDir
	}

	res, err := inventory.Scan(r.Context(), params.RepoRoot, inventory.Options{
		Tables:          s.tables,
		SummaryOnly:     true,
		ShebangFallback: s.cfg.ShebangFallback,
		Workers:         s.cfg.Workers,
	})
	if err != nil {
		writeSummaryError(w, params.RepoRoot, err)
		return
	}

	// Relative output dirs resolve against the scanned repository.
	outDir := params.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(res.Root, outDir)
	}
	if err := report.EnsureDir(outDir); err != nil {
		writeJSON(w, http.StatusInternalServerError, summaryResponse{
			Status:   "error",
			RepoRoot: params.RepoRoot,
			Error:    err.Error(),
		})
		return
	}

	name := params.OutputFile
	if name == "" {
		name = report.DefaultFilename(res.Root, time.Now())
	}
	outPath := filepath.Join(outDir, name)
	if err := report.Write(outPath, res.Summary); err != nil {
		slog.Error("writing summary file", "path", outPath, "error", err)
		writeJSON(w, http.StatusInternalServerError, summaryResponse{
			Status:   "error",
			RepoRoot: params.RepoRoot,
			Error:    err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Status:       "success",
		RepoRoot:     res.Root,
		Summary:      res.Summary,
		FilesScanned: &res.Summary.ScannedFiles,
		FilesSkipped: &res.Summary.SkippedFiles,
		OutputFile:   outPath,
	})
}

// decodeParams parses the JSON request body, writing a 400 on failure.
func decodeParams(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status": "error",
			"error":  "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

func writeScanError(w http.ResponseWriter, root string, err error) {
	writeJSON(w, statusForScanError(err), scanResponse{
		Status:   "error",
		RepoRoot: root,
		Error:    err.Error(),
	})
}

func writeSummaryError(w http.ResponseWriter, root string, err error) {
	writeJSON(w, statusForScanError(err), summaryResponse{
		Status:   "error",
		RepoRoot: root,
		Error:    err.Error(),
	})
}

// statusForScanError maps the engine's fatal errors to HTTP statuses.
func statusForScanError(err error) int {
	switch {
	case errors.Is(err, inventory.ErrRootNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrRootNotDir):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
