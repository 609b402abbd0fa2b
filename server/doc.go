// Package server exposes the document vault over HTTP.
//
// Routes mirror a small departmental intranet app: form login with a
// session cookie, multipart upload feeding the ingestion pipeline, ranked
// search, and view/download endpoints guarded by the department access
// rule. Identity is trusted as-is; there is no password check.
package server
