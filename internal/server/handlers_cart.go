package server

import (
	"net/http"

	"discbin/internal/api"
	"discbin/internal/cart"
	"discbin/internal/store"
)

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	session, ok := s.requireRole(w, r, store.RoleUser)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.cartView(s.carts.get(session.ID)))
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireRole(w, r, store.RoleUser)
	if !ok {
		return
	}
	c := s.carts.get(session.ID)

	switch r.Method {
	case http.MethodPost:
		var req api.CartAddRequest
		if !s.decodeJSON(w, r, &req) {
			return
		}
		cd, err := s.store.CDByID(r.Context(), req.CDID)
		if err != nil {
			s.writeFault(w, r, err)
			return
		}
		if err := c.Add(r.Context(), cd); err != nil {
			s.writeFault(w, r, err)
			return
		}
	case http.MethodPut:
		var req api.CartQuantityRequest
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if err := c.SetQuantity(r.Context(), req.CDID, req.Quantity); err != nil {
			s.writeFault(w, r, err)
			return
		}
	case http.MethodDelete:
		id, ok := s.queryID(w, r)
		if !ok {
			return
		}
		c.Remove(id)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Every mutation returns the full cart so the client re-renders from it.
	s.writeJSON(w, http.StatusOK, s.cartView(c))
}

func (s *Server) cartView(c *cart.Cart) api.Cart {
	view := api.FromCart(c)
	view.Currency = s.currency
	return view
}
