package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dashport/dashport/internal/migration"
	"github.com/dashport/dashport/internal/models"
	"github.com/dashport/dashport/internal/platform"
)

// tenantRequest is the create/update payload. The token arrives in the
// request body but never leaves through responses.
type tenantRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Token    string `json:"token"`
	Role     string `json:"role"`
	Insecure bool   `json:"insecure"`
}

func (s *Server) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.Role == "" {
		req.Role = "source"
	}
	t := &models.Tenant{
		Name:     req.Name,
		URL:      req.URL,
		Token:    req.Token,
		Role:     req.Role,
		Insecure: req.Insecure,
	}
	t.Normalize()
	s.Tenants.Create(t)
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants := s.Tenants.List()
	writeJSON(w, http.StatusOK, tenants)
}

func (s *Server) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing := s.Tenants.Get(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	t := &models.Tenant{
		ID:       id,
		Name:     req.Name,
		URL:      req.URL,
		Token:    req.Token,
		Role:     req.Role,
		Insecure: req.Insecure,
	}
	// An empty token in an update keeps the stored one.
	if t.Token == "" {
		t.Token = existing.Token
	}
	t.Normalize()
	if !s.Tenants.Update(t) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.Tenants.Delete(id) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckTenant runs the preflight guards (classification, version, token
// scopes) against a stored tenant and reports the outcome.
func (s *Server) CheckTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t := s.Tenants.Get(id)
	if t == nil {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}

	report, err := migration.CheckTenant(t, t.Role, platform.DefaultMinimumVersion, func(string) {})
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok":     false,
			"error":  err.Error(),
			"report": report,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"report": report,
	})
}
