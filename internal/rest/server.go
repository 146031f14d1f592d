package rest

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/banzg00/bpml/internal/config"
	"github.com/banzg00/bpml/internal/log"
	"github.com/banzg00/bpml/internal/otel"
	apierror "github.com/banzg00/bpml/internal/rest/error"
	"github.com/banzg00/bpml/internal/rest/middleware"
	"github.com/banzg00/bpml/pkg/bpml"
	"github.com/banzg00/bpml/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	HistoryDefaultLimit = 10
	HistoryMaxLimit     = 100
)

type Server struct {
	sync.RWMutex
	engine  *bpml.Engine
	history storage.Storage
	addr    string
	server  *http.Server
	started time.Time
}

func NewServer(engine *bpml.Engine, history storage.Storage, conf config.Config) *Server {
	r := chi.NewRouter()
	s := Server{
		engine:  engine,
		history: history,
		addr:    conf.Server.Addr,
		started: time.Now(),
		server: &http.Server{
			ReadHeaderTimeout: 3 * time.Second,
			Handler:           r,
			Addr:              conf.Server.Addr,
		},
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Opentelemetry(conf))
	r.Use(middleware.StripEmptyQueryParams())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/models/validate", s.validateModel)
		r.Post("/models/analyze", s.analyzeModel)
		r.Get("/history", s.getHistory)
	})
	// register system endpoints
	r.Route("/system", func(r chi.Router) {
		r.Get("/metrics", promhttp.Handler().ServeHTTP)
		r.Get("/status", s.getStatus)
	})
	return &s
}

func (s *Server) Start() net.Listener {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		log.Error("failed to listen: %v", err)
	}
	log.Info("BPML REST server listening on %s", s.addr)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("Error starting server: %s", err)
		}
	}()
	return listener
}

func (s *Server) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if err != nil {
		log.Error("Error stopping server: %s", err)
	}
}

// ValidationResult is the response body of the validate endpoint.
type ValidationResult struct {
	Valid       bool   `json:"valid"`
	Key         int64  `json:"key,omitempty"`
	Checksum    string `json:"checksum,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
}

func (s *Server) validateModel(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, apierror.ApiError{
			Message: err.Error(),
			Type:    "BAD_REQUEST",
		})
		return
	}
	started := time.Now()
	otel.ValidationTotal.Add(r.Context(), 1)
	deployment, err := s.engine.LoadFromBytes(r.Context(), body)
	otel.ValidationDuration.Record(r.Context(), time.Since(started).Seconds()*1000)
	if err != nil {
		otel.ValidationFailedTotal.Add(r.Context(), 1)
		writeJSON(w, r, http.StatusUnprocessableEntity, ValidationResult{
			Valid:     false,
			Error:     err.Error(),
			ErrorKind: bpml.ErrorKind(err),
		})
		return
	}
	writeJSON(w, r, http.StatusOK, ValidationResult{
		Valid:       true,
		Key:         deployment.Key,
		Checksum:    deployment.Checksum,
		ProjectName: deployment.Model.ProjectInfo.Name,
	})
}

// AnalysisResult is the response body of the analyze endpoint. When no
// process query parameter is given, every process of the model is analyzed.
type AnalysisResult struct {
	Checksum    string                 `json:"checksum"`
	ProjectName string                 `json:"projectName"`
	Reports     []*bpml.AnalysisReport `json:"reports"`
}

func (s *Server) analyzeModel(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, apierror.ApiError{
			Message: err.Error(),
			Type:    "BAD_REQUEST",
		})
		return
	}
	deployment, err := s.engine.LoadFromBytes(r.Context(), body)
	if err != nil {
		writeJSON(w, r, http.StatusUnprocessableEntity, ValidationResult{
			Valid:     false,
			Error:     err.Error(),
			ErrorKind: bpml.ErrorKind(err),
		})
		return
	}

	var processNames []string
	if name := r.URL.Query().Get("process"); name != "" {
		processNames = []string{name}
	} else {
		for i := range deployment.Model.Processes {
			processNames = append(processNames, deployment.Model.Processes[i].Name)
		}
	}

	result := AnalysisResult{
		Checksum:    deployment.Checksum,
		ProjectName: deployment.Model.ProjectInfo.Name,
	}
	for _, name := range processNames {
		otel.AnalysisTotal.Add(r.Context(), 1)
		report, err := s.engine.Analyze(deployment, name)
		if err != nil {
			writeError(w, r, http.StatusNotFound, apierror.ApiError{
				Message: err.Error(),
				Type:    "NOT_FOUND",
			})
			return
		}
		result.Reports = append(result.Reports, report)
	}
	writeJSON(w, r, http.StatusOK, result)
}

// HistoryPage is the response body of the history endpoint.
type HistoryPage struct {
	Items []storage.ValidationRun `json:"items"`
	Count int                     `json:"count"`
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, r, http.StatusServiceUnavailable, apierror.ApiError{
			Message: "validation history is not configured",
			Type:    "HISTORY_DISABLED",
		})
		return
	}
	project := r.URL.Query().Get("project")
	limit := HistoryDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, apierror.ApiError{
				Message: "limit must be a positive integer",
				Type:    "BAD_REQUEST",
			})
			return
		}
		limit = min(parsed, HistoryMaxLimit)
	}
	runs, err := s.history.FindValidationRuns(r.Context(), project, limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, apierror.ApiError{
			Message: err.Error(),
			Type:    "ERROR",
		})
		return
	}
	if runs == nil {
		runs = []storage.ValidationRun{}
	}
	writeJSON(w, r, http.StatusOK, HistoryPage{Items: runs, Count: len(runs)})
}

type statusResponse struct {
	Engine string `json:"engine"`
	Uptime string `json:"uptime"`
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, statusResponse{
		Engine: s.engine.Name(),
		Uptime: time.Since(s.started).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, resp interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	body, err := json.Marshal(resp)
	if err != nil {
		log.Error("Server error: %s", err)
	} else {
		w.Write(body)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, resp interface{}) {
	writeJSON(w, r, status, resp)
}
