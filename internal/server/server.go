package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"discbin/internal/access"
	"discbin/internal/api"
	"discbin/internal/auth"
	"discbin/internal/config"
	"discbin/internal/faults"
	"discbin/internal/logging"
	"discbin/internal/store"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "session"

// Server exposes the catalog, cart, and auth endpoints over HTTP.
type Server struct {
	bind     string
	logger   *slog.Logger
	store    *store.Store
	catalog  *api.CatalogService
	auth     *auth.Authenticator
	carts    *cartRegistry
	currency string

	handler  http.Handler
	listener net.Listener
	server   *http.Server
}

// New wires the API server. A blank bind address disables it, mirroring how
// the daemon treats optional listeners.
func New(cfg *config.Config, st *store.Store, authn *auth.Authenticator, logger *slog.Logger) (*Server, error) {
	if cfg == nil || st == nil || authn == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	srv := &Server{
		bind:     bind,
		logger:   logger,
		store:    st,
		catalog:  api.NewCatalogService(st),
		auth:     authn,
		carts:    newCartRegistry(st),
		currency: cfg.Catalog.Currency,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/artists", srv.handleArtists)
	mux.HandleFunc("/api/cds", srv.handleCDs)
	mux.HandleFunc("/api/auth/login", srv.handleLogin)
	mux.HandleFunc("/api/auth/register", srv.handleRegister)
	mux.HandleFunc("/api/auth/logout", srv.handleLogout)
	mux.HandleFunc("/api/auth/session", srv.handleSession)
	mux.HandleFunc("/api/cart", srv.handleCart)
	mux.HandleFunc("/api/cart/items", srv.handleCartItems)

	srv.handler = srv.withRequestID(mux)
	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the routed handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr reports the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// withRequestID tags every request with a fresh id so log lines from one
// request can be correlated.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// session resolves the caller's session from the request cookie. A missing
// or unverifiable cookie yields nil.
func (s *Server) session(r *http.Request) *auth.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, ok := s.auth.Resume(cookie.Value)
	if !ok {
		return nil
	}
	return &session
}

// requireRole evaluates the access decision before any handler body runs.
// Denials are rendered as JSON: anonymous callers get 401, wrong-role
// callers get 403, both carrying the redirect path the UI should follow.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, required store.Role) (*auth.Session, bool) {
	session := s.session(r)
	decision := access.Check(session, required)
	if decision.Admitted {
		return session, true
	}
	status := http.StatusForbidden
	if session == nil {
		status = http.StatusUnauthorized
	}
	s.writeJSON(w, status, map[string]string{
		"error":    "access denied",
		"redirect": decision.Redirect,
	})
	return nil, false
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeFault maps a domain error onto its HTTP status. Backend faults are
// logged and masked; caller-correctable failures surface their message.
func (s *Server) writeFault(w http.ResponseWriter, r *http.Request, err error) {
	status := faults.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logging.WithContext(r.Context(), s.log()).Error("request failed", logging.Error(err))
		s.writeError(w, status, "internal error")
		return
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String("component", "api-server"))
	}
	return logging.NewNop()
}
