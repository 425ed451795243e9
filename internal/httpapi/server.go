package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/campusgate/janus/internal/janus/service"
	"github.com/campusgate/janus/internal/janus/store"
	"github.com/campusgate/janus/internal/janus/types"
)

type Dependencies struct {
	Logger           *log.Logger
	Addr             string
	AuthService      *service.AuthService
	EntryService     *service.EntryService
	AnalyticsService *service.AnalyticsService
	StudentService   *service.StudentService
}

type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	mux        *http.ServeMux
	auth       *service.AuthService
	entry      *service.EntryService
	analytics  *service.AnalyticsService
	students   *service.StudentService
}

func NewServer(d Dependencies) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger:    d.Logger,
		mux:       mux,
		auth:      d.AuthService,
		entry:     d.EntryService,
		analytics: d.AnalyticsService,
		students:  d.StudentService,
	}

	mux.HandleFunc("POST /v1/register", s.handleRegister)
	mux.HandleFunc("POST /v1/login", s.handleLogin)
	mux.HandleFunc("POST /v1/entry", s.handleEntry)
	mux.HandleFunc("GET /v1/analytics", s.requireAuth(s.handleAnalytics))
	mux.HandleFunc("POST /v1/students", s.requireAuth(s.handleAddStudent))
	mux.HandleFunc("GET /v1/students", s.requireAuth(s.handleListStudents))
	mux.HandleFunc("GET /v1/students/{enrollment}", s.requireAuth(s.handleGetStudent))
	mux.HandleFunc("DELETE /v1/students/{enrollment}", s.requireAuth(s.handleRemoveStudent))

	handler := loggingMiddleware(d.Logger, mux)

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	admin, err := s.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials),
			errors.Is(err, service.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, "invalid_credentials", err.Error())
		case errors.Is(err, store.ErrAdminExists):
			writeError(w, http.StatusConflict, "username_taken", "username already exists, try login instead")
		default:
			s.logger.Printf("register error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, types.RegisterResponse{OK: true, Username: admin.Username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, "invalid_credentials", err.Error())
		case errors.Is(err, service.ErrBadCredentials):
			writeError(w, http.StatusUnauthorized, "bad_credentials", "wrong username or password")
		default:
			s.logger.Printf("login error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{OK: true, Username: req.Username, Token: token})
}

// ── Entry ────────────────────────────────────────────────────────────────────

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	var req types.EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	resp, err := s.entry.RecordEntry(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEnrollment):
			writeError(w, http.StatusBadRequest, "invalid_enrollment", err.Error())
		case errors.Is(err, service.ErrUnknownStudent):
			writeError(w, http.StatusNotFound, "unknown_student", "no student with this enrollment number")
		case errors.Is(err, service.ErrScanConflict):
			writeError(w, http.StatusConflict, "scan_conflict", "scan raced with a concurrent scan, retry")
		default:
			s.logger.Printf("entry error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Analytics ────────────────────────────────────────────────────────────────

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	resp, err := s.analytics.CurrentlyInside(r.Context())
	if err != nil {
		s.logger.Printf("analytics error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Students ─────────────────────────────────────────────────────────────────

func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	var req types.AddStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	rec, err := s.students.AddStudent(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEnrollment),
			errors.Is(err, service.ErrMissingStudentFields):
			writeError(w, http.StatusBadRequest, "invalid_student", err.Error())
		case errors.Is(err, store.ErrStudentExists):
			writeError(w, http.StatusConflict, "student_exists", "student already exists")
		default:
			s.logger.Printf("add student error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, types.StudentResponse{OK: true, Student: studentPayload(rec)})
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	rec, err := s.students.GetStudent(r.Context(), r.PathValue("enrollment"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownStudent) {
			writeError(w, http.StatusNotFound, "unknown_student", "no student with this enrollment number")
			return
		}
		s.logger.Printf("get student error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	writeJSON(w, http.StatusOK, types.StudentResponse{OK: true, Student: studentPayload(rec)})
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.StudentFilter{
		Department: q.Get("department"),
		Batch:      q.Get("batch"),
	}
	if v := q.Get("semester"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_semester", "semester must be a positive integer")
			return
		}
		filter.Semester = n
	}

	recs, err := s.students.ListStudents(r.Context(), filter)
	if err != nil {
		s.logger.Printf("list students error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	out := make([]types.Student, 0, len(recs))
	for _, rec := range recs {
		out = append(out, studentPayload(rec))
	}
	writeJSON(w, http.StatusOK, types.StudentListResponse{OK: true, Total: len(out), Students: out})
}

func (s *Server) handleRemoveStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.students.RemoveStudent(r.Context(), r.PathValue("enrollment")); err != nil {
		if errors.Is(err, service.ErrUnknownStudent) {
			writeError(w, http.StatusNotFound, "unknown_student", "no student with this enrollment number")
			return
		}
		s.logger.Printf("remove student error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
