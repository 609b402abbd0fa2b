package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/docvault/ai/mock"
	"github.com/poiesic/docvault/ingestion"
	"github.com/poiesic/docvault/search"
	"github.com/poiesic/docvault/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	docRepo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		docRepo.Close()
		backend.Close()
	})

	provider := mock.NewMockProvider()

	pipeline, err := ingestion.NewPipeline(docRepo, provider)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	searcher, err := search.NewSearcher(docRepo, provider)
	require.NoError(t, err)

	srv, err := New(Dependencies{
		Documents: docRepo,
		Pipeline:  pipeline,
		Searcher:  searcher,
		UploadDir: t.TempDir(),
	})
	require.NoError(t, err)
	return srv
}

func login(t *testing.T, srv *Server, username string) *http.Cookie {
	t.Helper()

	form := bytes.NewBufferString("username=" + username)
	req := httptest.NewRequest(http.MethodPost, "/login", form)
	req.Header.Set(echoContentType, "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

const echoContentType = "Content-Type"

func uploadFile(t *testing.T, srv *Server, cookie *http.Cookie, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echoContentType, writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func doGet(srv *Server, cookie *http.Cookie, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestLogin_InvalidUsername(t *testing.T) {
	srv := newTestServer(t)

	form := bytes.NewBufferString("username=nobody")
	req := httptest.NewRequest(http.MethodPost, "/login", form)
	req.Header.Set(echoContentType, "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username")
}

func TestRoutesRequireAuthentication(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{"/search?q=x", "/view/a.txt", "/download/a.txt"} {
		rec := doGet(srv, nil, target)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}

	rec := uploadFile(t, srv, nil, "a.txt", "content")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpload_MissingFilePart(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv, "eng_user")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echoContentType, writer.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file part")
}

func TestUploadAndSearch(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv, "eng_user")

	content := "Q3 Engineering Report\nvendor: Acme Corp\nTechnical specifications for the turbine."
	rec := uploadFile(t, srv, cookie, "q3_report.txt", content)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "'q3_report.txt' processed successfully!")

	rec = doGet(srv, cookie, "/search?q=technical+turbine")
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []searchHit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "q3_report.txt", hits[0].Filename)
	assert.Equal(t, "Q3 Engineering Report", hits[0].Title)
	assert.Equal(t, "Engineering", hits[0].Category)
	assert.Equal(t, "eng_user", hits[0].UploadedBy)
	assert.GreaterOrEqual(t, hits[0].Score, 20.0)
	assert.Contains(t, hits[0].Snippet, "<b>turbine</b>")
}

func TestSearch_EmptyQuery(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv, "eng_user")

	rec := uploadFile(t, srv, cookie, "doc.txt", "some technical content.")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(srv, cookie, "/search?q=")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSearch_CrossDepartment(t *testing.T) {
	srv := newTestServer(t)
	engCookie := login(t, srv, "eng_user")

	rec := uploadFile(t, srv, engCookie, "eng_only.txt", "turbine technical details.")
	require.Equal(t, http.StatusOK, rec.Code)

	finCookie := login(t, srv, "fin_user")
	rec = doGet(srv, finCookie, "/search?q=turbine")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	adminCookie := login(t, srv, "admin")
	rec = doGet(srv, adminCookie, "/search?q=turbine")
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []searchHit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	assert.Len(t, hits, 1)
}

func TestView_AccessControl(t *testing.T) {
	srv := newTestServer(t)
	engCookie := login(t, srv, "eng_user")

	content := "confidential turbine design."
	rec := uploadFile(t, srv, engCookie, "design.txt", content)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("owner can view", func(t *testing.T) {
		rec := doGet(srv, engCookie, "/view/design.txt")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "confidential turbine design.")
	})

	t.Run("other department denied", func(t *testing.T) {
		finCookie := login(t, srv, "fin_user")
		rec := doGet(srv, finCookie, "/view/design.txt")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access denied")
	})

	t.Run("admin can view", func(t *testing.T) {
		adminCookie := login(t, srv, "admin")
		rec := doGet(srv, adminCookie, "/view/design.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown filename is 404 not 403", func(t *testing.T) {
		rec := doGet(srv, engCookie, "/view/missing.txt")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDownload_AccessControl(t *testing.T) {
	srv := newTestServer(t)
	engCookie := login(t, srv, "eng_user")

	rec := uploadFile(t, srv, engCookie, "dl.txt", "downloadable body.")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(srv, engCookie, "/download/dl.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "downloadable body.")

	finCookie := login(t, srv, "fin_user")
	rec = doGet(srv, finCookie, "/download/dl.txt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogout_EndsSession(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv, "eng_user")

	rec := doGet(srv, cookie, "/logout")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(srv, cookie, "/search?q=x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.txt":          "report.txt",
		"../../etc/passwd":    "passwd",
		"my report.txt":       "my_report.txt",
		"we$ird*name.txt":     "weirdname.txt",
		"..\\..\\evil.txt":    "evil.txt",
		"...":                 "",
		"dir/sub/nested.txt":  "nested.txt",
		"spaces and $igns.md": "spaces_and_igns.md",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeFilename(input), input)
	}
}
