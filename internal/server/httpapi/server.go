// Package httpapi exposes the JSON-over-HTTP surface of the task service:
// signup/login, owner-scoped task CRUD, and a health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

const shutdownTimeout = 5 * time.Second

type userSvc interface {
	Register(ctx context.Context, email string, password string) (string, *models.User, error)
	Login(ctx context.Context, email string, password string) (string, *models.User, error)
}

type taskSvc interface {
	List(ctx context.Context, userID int64) ([]*models.Task, error)
	Create(ctx context.Context, userID int64, title string, description string) (*models.Task, error)
	Update(ctx context.Context, userID int64, taskID int64, title string, description string, status string) (*models.Task, error)
	Delete(ctx context.Context, userID int64, taskID int64) error
}

type HTTPServer struct {
	address   string
	users     userSvc
	tasks     taskSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, ts taskSvc, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

func (s *HTTPServer) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.Handle("GET /tasks", s.requireAuth(http.HandlerFunc(s.handleListTasks)))
	mux.Handle("POST /tasks", s.requireAuth(http.HandlerFunc(s.handleCreateTask)))
	mux.Handle("PUT /tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateTask)))
	mux.Handle("DELETE /tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteTask)))

	return s.withRequestLog(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
