package models

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Tenant represents one monitoring-platform environment: a base URL plus
// the API token used to authenticate against its configuration API.
type Tenant struct {
	ID       string `json:"id" yaml:"-"`
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Token    string `json:"-" yaml:"token"`
	Role     string `json:"role" yaml:"role"` // "source" or "destination"
	Insecure bool   `json:"insecure" yaml:"insecure"`
	CACert   string `json:"-" yaml:"ca_cert"`
}

// NormalizeURL gives a raw tenant URL an explicit scheme and strips one
// trailing slash. URLs without a scheme default to https.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimSuffix(u, "/")
}

// Normalize rewrites the tenant URL into canonical form.
func (t *Tenant) Normalize() {
	t.URL = NormalizeURL(t.URL)
}

// TenantStore is an in-memory thread-safe store for tenants.
type TenantStore struct {
	mu      sync.RWMutex
	tenants map[string]*Tenant
}

// NewTenantStore creates an empty tenant store.
func NewTenantStore() *TenantStore {
	return &TenantStore{tenants: make(map[string]*Tenant)}
}

// Create adds a new tenant, assigning it a UUID.
func (s *TenantStore) Create(t *Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.New().String()
	s.tenants[t.ID] = t
}

// Get returns a tenant by ID, or nil if not found.
func (s *TenantStore) Get(id string) *Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenants[id]
}

// List returns all tenants.
func (s *TenantStore) List() []*Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		result = append(result, t)
	}
	return result
}

// Update replaces an existing tenant's settings.
func (s *TenantStore) Update(t *Tenant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[t.ID]; !ok {
		return false
	}
	s.tenants[t.ID] = t
	return true
}

// Delete removes a tenant by ID.
func (s *TenantStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		return false
	}
	delete(s.tenants, id)
	return true
}
