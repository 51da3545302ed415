package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/domain"
	"github.com/conorfennell/pianopace/internal/logger"
	"github.com/conorfennell/pianopace/internal/storage"
	"github.com/conorfennell/pianopace/internal/tracker"
)

const defaultPracticeLimit = 50

// Server holds the dependencies for the HTTP server.
type Server struct {
	tracker *tracker.Tracker
	router  *http.ServeMux
	log     *logger.Logger
}

// NewServer creates and configures a new server.
func NewServer(t *tracker.Tracker, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		tracker: t,
		router:  http.NewServeMux(),
		log:     log,
	}
	s.routes()
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealth())

	s.router.HandleFunc("GET /api/curriculum/weeks/{week}", s.handleGetWeek())
	s.router.HandleFunc("GET /api/curriculum/weeks/{week}/days/{day}", s.handleGetDay())

	s.router.HandleFunc("GET /api/learners", s.handleListLearners())
	s.router.HandleFunc("POST /api/learners", s.handleCreateLearner())
	s.router.HandleFunc("GET /api/learners/{id}", s.handleGetLearner())
	s.router.HandleFunc("GET /api/learners/{id}/status", s.handleGetStatus())
	s.router.HandleFunc("POST /api/learners/{id}/complete", s.handleCompleteDay())
	s.router.HandleFunc("POST /api/learners/{id}/practice", s.handleLogPractice())
	s.router.HandleFunc("GET /api/learners/{id}/practice", s.handleListPractice())
	s.router.HandleFunc("GET /api/learners/{id}/prompt", s.handleGetPrompt())
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, http.StatusOK, map[string]string{
			"status":     "ok",
			"curriculum": s.tracker.Catalog().Fingerprint(),
		})
	}
}

type weekResponse struct {
	curriculum.Week
	Phase     int    `json:"phase"`
	PhaseName string `json:"phase_name"`
}

func (s *Server) handleGetWeek() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.PathValue("week"))
		if err != nil {
			s.fail(w, r, errBadRequest("week must be a number"))
			return
		}
		week, ok := s.tracker.Catalog().Week(n)
		if !ok {
			s.fail(w, r, errNotFound("week not found"))
			return
		}
		phase := week.Phase()
		s.respond(w, http.StatusOK, weekResponse{
			Week:      week,
			Phase:     phase,
			PhaseName: curriculum.PhaseName(phase),
		})
	}
}

func (s *Server) handleGetDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, werr := strconv.Atoi(r.PathValue("week"))
		day, derr := strconv.Atoi(r.PathValue("day"))
		if werr != nil || derr != nil {
			s.fail(w, r, errBadRequest("week and day must be numbers"))
			return
		}
		d, ok := s.tracker.Catalog().Day(week, day)
		if !ok {
			s.fail(w, r, errNotFound("day not found"))
			return
		}
		s.respond(w, http.StatusOK, d)
	}
}

func (s *Server) handleListLearners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		learners, err := s.tracker.Learners(r.Context())
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if learners == nil {
			learners = []domain.Learner{}
		}
		s.respond(w, http.StatusOK, learners)
	}
}

func (s *Server) handleCreateLearner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.NewLearner
		if !s.decode(w, r, &in) {
			return
		}
		l, err := s.tracker.Enroll(r.Context(), in)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusCreated, l)
	}
}

func (s *Server) handleGetLearner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		l, err := s.tracker.Learner(r.Context(), id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusOK, l)
	}
}

func (s *Server) handleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		st, err := s.tracker.Status(r.Context(), id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusOK, st)
	}
}

func (s *Server) handleCompleteDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		p, err := s.tracker.CompleteDay(r.Context(), id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusOK, p)
	}
}

func (s *Server) handleLogPractice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		var in domain.NewPracticeLog
		if !s.decode(w, r, &in) {
			return
		}
		pl, err := s.tracker.LogPractice(r.Context(), id, in)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusCreated, pl)
	}
}

func (s *Server) handleListPractice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		limit := defaultPracticeLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				s.fail(w, r, errBadRequest("limit must be a positive number"))
				return
			}
			limit = n
		}
		logs, err := s.tracker.PracticeLogs(r.Context(), id, limit)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if logs == nil {
			logs = []domain.PracticeLog{}
		}
		s.respond(w, http.StatusOK, logs)
	}
}

func (s *Server) handleGetPrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.learnerID(w, r)
		if !ok {
			return
		}
		prompt, err := s.tracker.Prompt(r.Context(), id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, http.StatusOK, map[string]string{"system_prompt": prompt})
	}
}

func (s *Server) learnerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.fail(w, r, errBadRequest("learner id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.fail(w, r, errBadRequest("invalid JSON body: "+err.Error()))
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", "error", err)
	}
}

// apiError is an error with a fixed HTTP status and code.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func errBadRequest(msg string) error {
	return &apiError{status: http.StatusBadRequest, code: "bad_request", message: msg}
}

func errNotFound(msg string) error {
	return &apiError{status: http.StatusNotFound, code: "not_found", message: msg}
}

type errorBody struct {
	Error struct {
		Message string              `json:"message"`
		Code    string              `json:"code"`
		Fields  []domain.FieldError `json:"fields,omitempty"`
	} `json:"error"`
}

// fail maps err onto a status code and writes the error envelope.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var body errorBody
	status := http.StatusInternalServerError
	body.Error.Code = "internal"
	body.Error.Message = "internal server error"

	var apiErr *apiError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &apiErr):
		status, body.Error.Code, body.Error.Message = apiErr.status, apiErr.code, apiErr.message
	case errors.As(err, &verr):
		status, body.Error.Code, body.Error.Message = http.StatusBadRequest, "invalid_input", verr.Error()
		body.Error.Fields = verr.Fields
	case errors.Is(err, storage.ErrNotFound):
		status, body.Error.Code, body.Error.Message = http.StatusNotFound, "not_found", "learner not found"
	case errors.Is(err, tracker.ErrCurriculumComplete):
		status, body.Error.Code, body.Error.Message = http.StatusConflict, "curriculum_complete", err.Error()
	default:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.respond(w, status, body)
}
