// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/ingestion"
	"github.com/poiesic/docvault/search"
	"github.com/poiesic/docvault/storage"
)

// userContextKey is the echo context key holding the authenticated user.
const userContextKey = "docvault.user"

// Dependencies holds all server dependencies.
type Dependencies struct {
	Documents  storage.DocumentRepository
	Pipeline   *ingestion.Pipeline
	Searcher   *search.Searcher
	UploadDir  string
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// Server wires the HTTP routes to the document vault.
type Server struct {
	echo      *echo.Echo
	documents storage.DocumentRepository
	pipeline  *ingestion.Pipeline
	searcher  *search.Searcher
	sessions  *SessionManager
	users     *UserDirectory
	uploadDir string
	logger    *slog.Logger
	sweepStop chan struct{}
}

// New creates a server and registers its routes.
func New(deps Dependencies) (*Server, error) {
	if deps.Documents == nil {
		return nil, errors.New("document repository required")
	}
	if deps.Pipeline == nil {
		return nil, errors.New("ingestion pipeline required")
	}
	if deps.Searcher == nil {
		return nil, errors.New("searcher required")
	}
	if deps.UploadDir == "" {
		deps.UploadDir = "uploads"
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if err := os.MkdirAll(deps.UploadDir, 0o755); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	s := &Server{
		echo:      e,
		documents: deps.Documents,
		pipeline:  deps.Pipeline,
		searcher:  deps.Searcher,
		sessions:  NewSessionManager(deps.SessionTTL),
		users:     NewUserDirectory(),
		uploadDir: deps.UploadDir,
		logger:    deps.Logger,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.POST("/login", s.HandleLogin)
	s.echo.GET("/logout", s.HandleLogout, s.requireUser)

	s.echo.POST("/upload", s.HandleUpload, s.requireUser)
	s.echo.GET("/search", s.HandleSearch, s.requireUser)
	s.echo.GET("/view/:filename", s.HandleView, s.requireUser)
	s.echo.GET("/download/:filename", s.HandleDownload, s.requireUser)
}

// requireUser resolves the session cookie into a user, rejecting
// unauthenticated requests.
func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			return NewUnauthorizedError("Authentication required")
		}

		user, ok := s.sessions.Get(cookie.Value)
		if !ok {
			return NewUnauthorizedError("Authentication required")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the authenticated user set by requireUser.
func currentUser(c echo.Context) core.User {
	user, _ := c.Get(userContextKey).(core.User)
	return user
}

// Users exposes the user directory, e.g. for seeding extra accounts.
func (s *Server) Users() *UserDirectory {
	return s.users
}

// Echo exposes the underlying echo instance for serving and testing.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.sweepStop = make(chan struct{})
	go s.sweepSessions(s.sweepStop)

	s.logger.Info("http server starting", "addr", addr)
	return s.echo.Start(addr)
}

// sweepSessions periodically drops expired sessions until stop closes.
func (s *Server) sweepSessions(stop <-chan struct{}) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if dropped := s.sessions.Sweep(); dropped > 0 {
				s.logger.Debug("dropped expired sessions", "count", dropped)
			}
		case <-stop:
			return
		}
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sweepStop != nil {
		close(s.sweepStop)
		s.sweepStop = nil
	}
	return s.echo.Shutdown(ctx)
}
