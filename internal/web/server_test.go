package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/domain"
	"github.com/conorfennell/pianopace/internal/storage"
	"github.com/conorfennell/pianopace/internal/tracker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tr := tracker.New(tracker.Deps{
		Store: db,
		Clock: func() time.Time { return testNow },
	})
	return NewServer(tr, nil)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createLearner(t *testing.T, s *Server) domain.Learner {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/learners", domain.NewLearner{
		Name:          "Robin",
		StartDate:     "2026-01-05",
		TargetEndDate: "2026-12-07",
		DaysPerWeek:   5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[domain.Learner](t, rec)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, curriculum.Builtin().Fingerprint(), body["curriculum"])
}

func TestCurriculumEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/curriculum/weeks/9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	week := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 9, week["week"])
	assert.EqualValues(t, 2, week["phase"])
	assert.Equal(t, "Song Introduction", week["phase_name"])

	rec = do(t, s, http.MethodGet, "/api/curriculum/weeks/1/days/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	day := decodeBody[curriculum.Day](t, rec)
	assert.Equal(t, "Welcome to the Keyboard", day.Title)

	testCases := []struct {
		path string
		want int
	}{
		{"/api/curriculum/weeks/49", http.StatusNotFound},
		{"/api/curriculum/weeks/0", http.StatusNotFound},
		{"/api/curriculum/weeks/1/days/8", http.StatusNotFound},
		{"/api/curriculum/weeks/one", http.StatusBadRequest},
		{"/api/curriculum/weeks/1/days/x", http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, do(t, s, http.MethodGet, tc.path, nil).Code)
		})
	}
}

func TestLearnerLifecycle(t *testing.T) {
	s := newTestServer(t)
	l := createLearner(t, s)
	base := "/api/learners/" + l.ID.String()

	rec := do(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Robin", decodeBody[domain.Learner](t, rec).Name)

	rec = do(t, s, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeBody[domain.Progress](t, rec)
	assert.Equal(t, 1, p.DaysCompleted)
	assert.Equal(t, curriculum.Position{Week: 1, Day: 2}, p.Position)

	rec = do(t, s, http.MethodGet, base+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeBody[tracker.Status](t, rec)
	assert.Equal(t, "Foundation", st.PhaseName)
	assert.True(t, st.Pace.ActionRequired, "one day done eight weeks in")
	assert.NotEmpty(t, st.CatchUpPlan)
	require.NotNil(t, st.Lesson)
	assert.Equal(t, 2, st.Lesson.Day)

	rec = do(t, s, http.MethodGet, base+"/prompt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["system_prompt"], "Robin")
}

func TestPracticeEndpoints(t *testing.T) {
	s := newTestServer(t)
	l := createLearner(t, s)
	base := "/api/learners/" + l.ID.String() + "/practice"

	rec := do(t, s, http.MethodPost, base, domain.NewPracticeLog{PracticedOn: "2026-03-01", Minutes: 20, Notes: "scales"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decodeBody[[]domain.PracticeLog](t, rec)
	require.Len(t, logs, 1)
	assert.Equal(t, 20, logs[0].Minutes)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, base+"?limit=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, base, domain.NewPracticeLog{Minutes: 20}).Code)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t)

	t.Run("validation", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/learners", domain.NewLearner{Name: "Robin", DaysPerWeek: 9})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid_input", body.Error.Code)
		assert.NotEmpty(t, body.Error.Fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/learners", bytes.NewBufferString(`{"name":`))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown learner", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/learners/"+uuid.NewString()+"/status", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body.Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/learners/42", nil).Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodDelete, "/api/learners", nil).Code)
	})
}

func TestCompleteAfterFinishIsConflict(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	s := NewServer(tracker.New(tracker.Deps{Store: db, Clock: func() time.Time { return testNow }}), nil)

	l := createLearner(t, s)
	_, err = db.UpdateProgress(t.Context(), l.ID, func(p domain.Progress) (domain.Progress, error) {
		p.Position = curriculum.Position{Week: 48, Day: 7}
		p.DaysCompleted = 336
		return p, nil
	})
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/api/learners/"+l.ID.String()+"/complete", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "curriculum_complete", body.Error.Code)
}
