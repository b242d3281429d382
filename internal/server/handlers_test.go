package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/history"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0, Store: history.NewStore(history.NewMemoryKV())})
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func createAnalysis(t *testing.T, srv *Server) types.AnalysisEntry {
	t.Helper()
	rec := doRequest(t, srv, http.MethodPost, "/analyses",
		`{"company": "Infosys", "role": "SDE", "jdText": "strong DSA and SQL skills"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry types.AnalysisEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	return entry
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{Port: 8080})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestCreateAnalysis(t *testing.T) {
	srv := newTestServer(t)
	entry := createAnalysis(t, srv)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Infosys", entry.Company)
	assert.Contains(t, entry.ExtractedSkills[types.CategoryCoreCS], "DSA")
	assert.Contains(t, entry.ExtractedSkills[types.CategoryData], "SQL")
	assert.NotZero(t, entry.BaseScore)
}

func TestCreateAnalysis_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/analyses", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAnalysis_MissingJDTextAndURL(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/analyses", `{"company": "Infosys"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAnalysis_BlankJDText(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/analyses", `{"jdText": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAnalysis_FromJobURL(t *testing.T) {
	jobServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">strong DSA skills needed</div></body></html>`))
	}))
	defer jobServer.Close()

	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/analyses",
		`{"company": "Acme", "jobUrl": "`+jobServer.URL+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry types.AnalysisEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Contains(t, entry.JDText, "strong DSA skills needed")
	assert.Contains(t, entry.ExtractedSkills[types.CategoryCoreCS], "DSA")
}

func TestListAnalyses(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/analyses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var empty listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &empty))
	assert.Empty(t, empty.Entries)
	assert.False(t, empty.HadCorrupted)

	created := createAnalysis(t, srv)

	rec = doRequest(t, srv, http.MethodGet, "/analyses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Entries, 1)
	assert.Equal(t, created.ID, listed.Entries[0].ID)
}

func TestGetAnalysis(t *testing.T) {
	srv := newTestServer(t)
	created := createAnalysis(t, srv)

	rec := doRequest(t, srv, http.MethodGet, "/analyses/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entry types.AnalysisEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, created.ID, entry.ID)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/analyses/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateConfidence(t *testing.T) {
	srv := newTestServer(t)
	created := createAnalysis(t, srv)

	rec := doRequest(t, srv, http.MethodPatch, "/analyses/"+created.ID+"/confidence",
		`{"skill": "DSA", "confidence": "know"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry types.AnalysisEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, types.ConfidenceKnow, entry.SkillConfidenceMap["DSA"])
	assert.Equal(t, created.FinalScore+4, entry.FinalScore)
}

func TestUpdateConfidence_InvalidValue(t *testing.T) {
	srv := newTestServer(t)
	created := createAnalysis(t, srv)

	rec := doRequest(t, srv, http.MethodPatch, "/analyses/"+created.ID+"/confidence",
		`{"skill": "DSA", "confidence": "maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateConfidence_UnknownEntry(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(t, srv, http.MethodPatch, "/analyses/no-such-id/confidence",
		`{"skill": "DSA", "confidence": "know"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrEntryNotFound{ID: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Message: "bad"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
