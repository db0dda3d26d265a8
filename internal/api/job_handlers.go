package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dashport/dashport/internal/models"
)

// Handlers serialize job snapshots, never live jobs: the copy goroutine
// keeps mutating a running job while these endpoints read it.

func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.Jobs.List()
	snapshots := make([]models.JobSnapshot, 0, len(jobs))
	for _, j := range jobs {
		snapshots = append(snapshots, j.Snapshot())
	}
	writeJSON(w, http.StatusOK, snapshots)
}

func (s *Server) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job := s.Jobs.Get(id)
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}
