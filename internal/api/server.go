package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"invoiceflow/internal/config"
	"invoiceflow/internal/models"
	"invoiceflow/internal/storage"
	"invoiceflow/internal/util"
	"invoiceflow/internal/workflows"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	tclient "go.temporal.io/sdk/client"
)

type Server struct {
	cfg          config.Config
	db           *storage.DB
	documentRepo *storage.DocumentRepo
	itemRepo     *storage.ItemRepo
	analysisRepo *storage.AnalysisRepo
	temporal     tclient.Client
}

func NewServer(cfg config.Config) *Server {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		panic(err)
	}
	tc, err := tclient.Dial(tclient.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		panic(err)
	}
	return &Server{
		cfg:          cfg,
		db:           db,
		documentRepo: storage.NewDocumentRepo(db),
		itemRepo:     storage.NewItemRepo(db),
		analysisRepo: storage.NewAnalysisRepo(db),
		temporal:     tc,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/documents", s.handleDocuments)
	mux.HandleFunc("/documents/", s.handleDocumentScoped)
	mux.HandleFunc("/ingest", s.handleIngest)
	mux.HandleFunc("/progress", s.handleProgress)
	mux.HandleFunc("/overview", s.handleOverview)
	return withCORS(mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		docs, err := s.documentRepo.ListDocuments(r.Context())
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
	case http.MethodPost:
		s.handleUpload(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
	}
}

func (s *Server) handleDocumentScoped(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/documents/"), "/"), "/")
	if len(parts) < 1 || parts[0] == "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	documentID := parts[0]

	if len(parts) == 1 {
		doc, err := s.documentRepo.GetDocumentByID(r.Context(), documentID)
		if err != nil {
			writeErr(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
		return
	}

	switch parts[1] {
	case "analysis":
		a, err := s.analysisRepo.GetAnalysis(r.Context(), documentID)
		if err != nil {
			writeErr(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	case "items":
		items, err := s.itemRepo.ListLineItems(r.Context(), documentID)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case "file":
		doc, err := s.documentRepo.GetDocumentByID(r.Context(), documentID)
		if err != nil {
			writeErr(w, http.StatusNotFound, err)
			return
		}
		http.ServeFile(w, r, util.SafeJoin(s.cfg.DataInRoot, doc.Filename))
	default:
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(128 << 20); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("parse multipart: %w", err))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		if single, ok := firstSingleFile(r.MultipartForm.File); ok {
			files = append(files, single)
		}
	}
	if len(files) == 0 {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("no files provided"))
		return
	}

	if err := util.EnsureDir(s.cfg.DataInRoot); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	type uploadResult struct {
		Filename   string `json:"filename"`
		DocumentID string `json:"document_id"`
	}
	out := make([]uploadResult, 0, len(files))

	for _, fh := range files {
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			continue
		}
		documentID, savedPath, err := saveUploadedFile(s.cfg.DataInRoot, fh)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		if err := s.documentRepo.UpsertDocument(r.Context(), models.Document{
			DocumentID: documentID,
			Filename:   filepath.Base(savedPath),
			Status:     "pending",
		}); err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, uploadResult{Filename: filepath.Base(savedPath), DocumentID: documentID})
	}
	if len(out) == 0 {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("no files provided"))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"uploaded": out})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	runID := uuid.NewString()
	we, err := s.temporal.ExecuteWorkflow(r.Context(), tclient.StartWorkflowOptions{
		ID:                                       "ingest",
		TaskQueue:                                s.cfg.TemporalTaskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}, workflows.BatchIngestWorkflow, workflows.BatchIngestInput{
		RunID:                 runID,
		InputDir:              s.cfg.DataInRoot,
		MaxConcurrentChildren: s.cfg.IngestMaxChildren,
		SummarySentences:      s.cfg.SummarySentences,
		KeywordCount:          s.cfg.KeywordCount,
		MinKeywordLength:      s.cfg.MinKeywordLength,
	})
	if err != nil {
		writeErr(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"workflow_id": we.GetID(), "run_id": we.GetRunID()})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var prog workflows.BatchIngestProgress
	resp, err := s.temporal.QueryWorkflow(r.Context(), "ingest", "", workflows.QueryGetProgress)
	if err != nil {
		// Fall back to DB-derived progress when no active workflow is queryable.
		docs, dErr := s.documentRepo.ListDocuments(r.Context())
		if dErr != nil {
			writeErr(w, http.StatusInternalServerError, dErr)
			return
		}
		per := make(map[string]string, len(docs))
		done := 0
		failed := 0
		for _, d := range docs {
			per[d.Filename] = d.Status
			if d.Status == "processed" {
				done++
			}
			if d.Status == "failed" {
				failed++
			}
		}
		writeJSON(w, http.StatusOK, workflows.BatchIngestProgress{
			Total:       len(docs),
			Done:        done,
			Failed:      failed,
			PerDocument: per,
		})
		return
	}
	if err := resp.Get(&prog); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, prog)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	overview, err := s.itemRepo.Overview(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func saveUploadedFile(dir string, fh *multipart.FileHeader) (documentID, savedPath string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	savedPath = util.SafeJoin(dir, fh.Filename)
	dst, err := os.Create(savedPath)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("write file: %w", err)
	}
	f, err := os.Open(savedPath)
	if err != nil {
		return "", "", fmt.Errorf("reopen for hash: %w", err)
	}
	defer f.Close()
	documentID, err = util.SHA256HexFromReader(f)
	if err != nil {
		return "", "", fmt.Errorf("hash upload: %w", err)
	}
	return documentID, savedPath, nil
}

func firstSingleFile(m map[string][]*multipart.FileHeader) (*multipart.FileHeader, bool) {
	for _, fhs := range m {
		if len(fhs) > 0 {
			return fhs[0], true
		}
	}
	return nil, false
}

type apiError struct {
	Code    string
	Message string
}

func toAPIError(status int, err error) apiError {
	code := "IF-API-5000"
	msg := "Internal server error. Please retry or check service logs."
	switch {
	case status >= 500:
		raw := ""
		if err != nil {
			raw = strings.ToLower(err.Error())
		}
		switch {
		case strings.Contains(raw, "does not exist"), strings.Contains(raw, "undefined_table"):
			return apiError{
				Code:    "IF-DB-5001",
				Message: "Database schema is not initialized. Run migrations and retry.",
			}
		case strings.Contains(raw, "connect"), strings.Contains(raw, "dial tcp"), strings.Contains(raw, "connection refused"):
			return apiError{
				Code:    "IF-DB-5002",
				Message: "Database connection is unavailable. Check local services and retry.",
			}
		default:
			return apiError{Code: code, Message: msg}
		}
	case status == http.StatusBadRequest:
		code = "IF-API-4001"
		msg = "Invalid request. Check inputs and retry."
	case status == http.StatusNotFound:
		code = "IF-API-4004"
		msg = "Requested resource was not found."
	case status == http.StatusConflict:
		code = "IF-API-4009"
		msg = "Operation conflicts with current state. Retry after checking status."
	case status == http.StatusMethodNotAllowed:
		code = "IF-API-4005"
		msg = "This endpoint does not support the requested method."
	}

	// For 4xx, keep user-safe validation context only.
	if status >= 400 && status < 500 && err != nil {
		low := strings.ToLower(err.Error())
		switch {
		case strings.Contains(low, "no files provided"):
			msg = "No PDF files were provided."
		case strings.Contains(low, "parse multipart"):
			msg = "Malformed multipart upload."
		}
	}

	return apiError{Code: code, Message: msg}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
