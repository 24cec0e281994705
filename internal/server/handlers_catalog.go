package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"discbin/internal/api"
	"discbin/internal/store"
)

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listArtists(w, r)
	case http.MethodPost:
		s.createArtist(w, r)
	case http.MethodDelete:
		s.deleteArtist(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.catalog.ListArtists(r.Context())
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"artists": artists})
}

func (s *Server) createArtist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, store.RoleAdmin); !ok {
		return
	}
	var req api.CreateArtistRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	artist, err := s.catalog.CreateArtist(r.Context(), req)
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, artist)
}

func (s *Server) deleteArtist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, store.RoleAdmin); !ok {
		return
	}
	id, ok := s.queryID(w, r)
	if !ok {
		return
	}
	err := s.catalog.DeleteArtist(r.Context(), id)
	var inUse *store.ArtistInUseError
	if errors.As(err, &inUse) {
		s.writeJSON(w, http.StatusConflict, map[string]any{
			"error": inUse.Error(),
			"inUse": true,
			"count": inUse.Count,
		})
		return
	}
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleCDs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listCDs(w, r)
	case http.MethodPost:
		s.createCD(w, r)
	case http.MethodDelete:
		s.deleteCD(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listCDs(w http.ResponseWriter, r *http.Request) {
	cds, err := s.catalog.ListCDs(r.Context())
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cds": cds, "currency": s.currency})
}

func (s *Server) createCD(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, store.RoleAdmin); !ok {
		return
	}
	var req api.CreateCDRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	cd, err := s.catalog.CreateCD(r.Context(), req)
	if err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, cd)
}

func (s *Server) deleteCD(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, store.RoleAdmin); !ok {
		return
	}
	id, ok := s.queryID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteCD(r.Context(), id); err != nil {
		s.writeFault(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// queryID parses the ?id= query parameter used by the delete endpoints.
func (s *Server) queryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "id is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
