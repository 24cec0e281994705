package server

import (
	"net/http"

	"discbin/internal/api"
	"discbin/internal/auth"
	"discbin/internal/logging"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.LoginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	session, issue, err := s.auth.Login(r.Context(), req.Username, req.Password, req.Remember)
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	// A fresh login replaces any prior session; its cart starts empty.
	s.setSessionCookie(w, issue.Token, issue.MaxAge)
	s.writeJSON(w, http.StatusOK, api.FromSession(session))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.RegisterRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	id, err := s.auth.Register(r.Context(), auth.Profile{
		Name:     req.Name,
		Surname1: req.Surname1,
		Surname2: req.Surname2,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"userId": id})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if session := s.session(r); session != nil {
		s.carts.drop(session.ID)
		logging.WithContext(r.Context(), s.log()).Info("logged out",
			logging.String(logging.FieldUser, session.Username))
	}
	// Logout always succeeds, even with no session to clear.
	s.clearSessionCookie(w)
	s.writeJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		s.writeError(w, http.StatusUnauthorized, "no session")
		return
	}
	session, ok := s.auth.Resume(cookie.Value)
	if !ok {
		// Stale or tampered cookie: clear it so the client stops resending it.
		s.clearSessionCookie(w)
		s.writeError(w, http.StatusUnauthorized, "no session")
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromSession(session))
}
