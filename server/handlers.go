package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/storage"
)

// uploadedAtFormat is the timestamp layout used in search responses.
const uploadedAtFormat = "2006-01-02 15:04"

// searchHit is the response shape for one search result.
type searchHit struct {
	Score      float64 `json:"score"`
	Filename   string  `json:"filename"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	UploadedBy string  `json:"uploaded_by"`
	UploadedAt string  `json:"uploaded_at"`
	Snippet    string  `json:"snippet"`
}

// HandleLogin starts a session for the posted username.
// There is no password: identity is trusted as-is.
func (s *Server) HandleLogin(c echo.Context) error {
	username := c.FormValue("username")
	user, ok := s.users.Lookup(username)
	if !ok {
		return NewUnauthorizedError("Invalid username")
	}

	token := s.sessions.Start(user)
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Logged in",
		"department": user.Department,
	})
}

// HandleLogout ends the caller's session.
func (s *Server) HandleLogout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		s.sessions.End(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleUpload accepts one multipart file, saves it under the uploads
// directory, and runs it through the ingestion pipeline synchronously.
func (s *Server) HandleUpload(c echo.Context) error {
	user := currentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("No file part")
	}
	if fileHeader.Filename == "" {
		return NewBadRequestError("No selected file")
	}

	filename := sanitizeFilename(fileHeader.Filename)
	if filename == "" {
		return NewBadRequestError("No selected file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("File upload failed")
	}
	defer src.Close()

	path := filepath.Join(s.uploadDir, filename)
	dst, err := os.Create(path)
	if err != nil {
		s.logger.Error("error creating upload file", "path", path, "err", err)
		return NewInternalError("File upload failed")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		s.logger.Error("error writing upload file", "path", path, "err", err)
		return NewInternalError("File upload failed")
	}

	if _, err := s.pipeline.IngestFile(c.Request().Context(), path, user); err != nil {
		s.logger.Error("error ingesting upload", "path", path, "err", err)
		return NewInternalError("File upload failed")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "'" + filename + "' processed successfully!",
	})
}

// HandleSearch ranks the caller's visible documents against the q parameter.
func (s *Server) HandleSearch(c echo.Context) error {
	user := currentUser(c)
	query := c.QueryParam("q")

	results, err := s.searcher.Search(c.Request().Context(), user, query)
	if err != nil {
		s.logger.Error("error executing search", "query", query, "err", err)
		return NewInternalError("Search failed")
	}

	hits := make([]searchHit, 0, len(results))
	for _, result := range results {
		doc := result.Document
		hits = append(hits, searchHit{
			Score:      result.Score,
			Filename:   doc.Filename,
			Title:      doc.Title,
			Category:   string(doc.Category),
			UploadedBy: doc.UploadedBy,
			UploadedAt: doc.UploadedAt.Format(uploadedAtFormat),
			Snippet:    result.Snippet,
		})
	}

	return c.JSON(http.StatusOK, hits)
}

// HandleView returns a document's raw text, re-extracted from disk.
// Unknown filenames are 404; a known document the caller may not read is
// an explicit 403 with no metadata attached.
func (s *Server) HandleView(c echo.Context) error {
	user := currentUser(c)
	filename := c.Param("filename")

	doc, err := s.documents.GetDocumentByFilename(c.Request().Context(), filename)
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError("File not found")
	}
	if err != nil {
		return NewInternalError("Lookup failed")
	}

	if !core.CanAccess(user, doc) {
		return NewForbiddenError("Access denied")
	}

	path := filepath.Join(s.uploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		return NewNotFoundError("File not found on server")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NewNotFoundError("File not found on server")
	}

	return c.JSON(http.StatusOK, map[string]string{"content": string(data)})
}

// HandleDownload serves the stored file under the same access rule as view.
func (s *Server) HandleDownload(c echo.Context) error {
	user := currentUser(c)
	filename := c.Param("filename")

	doc, err := s.documents.GetDocumentByFilename(c.Request().Context(), filename)
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError("File not found")
	}
	if err != nil {
		return NewInternalError("Lookup failed")
	}

	if !core.CanAccess(user, doc) {
		return NewForbiddenError("Access denied")
	}

	path := filepath.Join(s.uploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		return NewNotFoundError("File not found on server")
	}

	return c.Attachment(path, filename)
}

// sanitizeFilename reduces an uploaded name to a safe flat filename.
// Path components are stripped, spaces become underscores, and anything
// outside [A-Za-z0-9._-] is dropped.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	return cleaned
}
