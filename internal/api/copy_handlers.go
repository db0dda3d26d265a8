package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dashport/dashport/internal/migration"
)

// StartCopy starts an async dashboard copy job between two stored tenants.
func (s *Server) StartCopy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceID      string `json:"source_id"`
		DestinationID string `json:"destination_id"`
		DashboardID   string `json:"dashboard_id"`
		NewName       string `json:"new_name"`
		SkipChecks    bool   `json:"skip_checks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.DashboardID == "" {
		writeError(w, http.StatusBadRequest, "dashboard_id is required")
		return
	}

	dst := s.Tenants.Get(req.DestinationID)
	if dst == nil {
		writeError(w, http.StatusNotFound, "destination tenant not found")
		return
	}
	// Source is optional; the pipeline defaults it to the destination.
	src := s.Tenants.Get(req.SourceID)
	if req.SourceID != "" && src == nil {
		writeError(w, http.StatusNotFound, "source tenant not found")
		return
	}

	job := s.Jobs.Create("copy", req.DestinationID)

	go func() {
		result, err := migration.Copy(migration.Options{
			Source:      src,
			Destination: dst,
			DashboardID: req.DashboardID,
			NewName:     req.NewName,
			SkipChecks:  req.SkipChecks,
		}, job.AppendLog)
		if err != nil {
			job.AppendLog("ERROR: " + err.Error())
			job.Fail(err.Error())
			s.Log.Warn("copy job failed", zap.String("job", job.ID), zap.Error(err))
			return
		}
		job.SetResult(result)
		job.Complete()
		s.Log.Info("copy job completed",
			zap.String("job", job.ID),
			zap.String("dashboard", result.ID),
		)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": job.ID})
}
