package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CopyResult identifies the dashboard created on the destination tenant.
type CopyResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Job represents an async operation (copy, check). Everything past
// StartedAt is mutated by the running goroutine; readers must go
// through Snapshot, LogsSince, or CurrentStatus rather than the fields.
type Job struct {
	ID         string
	Type       string // "copy", "check"
	TenantID   string
	Status     string // "running", "completed", "failed"
	StartedAt  time.Time
	FinishedAt *time.Time
	Error      string
	Output     []string
	Result     *CopyResult
	mu         sync.Mutex
}

// JobSnapshot is a consistent point-in-time copy of a Job, safe to
// serialize while the job is still running.
type JobSnapshot struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	TenantID   string      `json:"tenant_id"`
	Status     string      `json:"status"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
	Error      string      `json:"error,omitempty"`
	Output     []string    `json:"output"`
	Result     *CopyResult `json:"result,omitempty"`
}

// Snapshot returns a copy of the job's current state under lock.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	output := make([]string, len(j.Output))
	copy(output, j.Output)
	var finished *time.Time
	if j.FinishedAt != nil {
		f := *j.FinishedAt
		finished = &f
	}
	return JobSnapshot{
		ID:         j.ID,
		Type:       j.Type,
		TenantID:   j.TenantID,
		Status:     j.Status,
		StartedAt:  j.StartedAt,
		FinishedAt: finished,
		Error:      j.Error,
		Output:     output,
		Result:     j.Result,
	}
}

// CurrentStatus returns the job status under lock.
func (j *Job) CurrentStatus() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Status
}

// AppendLog adds a log line to the job output.
func (j *Job) AppendLog(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Output = append(j.Output, line)
}

// LogsSince returns log lines starting from the given index.
func (j *Job) LogsSince(offset int) []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	if offset >= len(j.Output) {
		return nil
	}
	lines := make([]string, len(j.Output)-offset)
	copy(lines, j.Output[offset:])
	return lines
}

// SetResult attaches the created-dashboard details to the job.
func (j *Job) SetResult(r *CopyResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Result = r
}

// Complete marks the job as completed.
func (j *Job) Complete() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = "completed"
	now := time.Now()
	j.FinishedAt = &now
}

// Fail marks the job as failed with an error message.
func (j *Job) Fail(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = "failed"
	j.Error = err
	now := time.Now()
	j.FinishedAt = &now
}

// JobStore is an in-memory thread-safe store for jobs.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*Job)}
}

// Create adds a new job, assigning it a UUID.
func (s *JobStore) Create(jobType, tenantID string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &Job{
		ID:        uuid.New().String(),
		Type:      jobType,
		TenantID:  tenantID,
		Status:    "running",
		StartedAt: time.Now(),
		Output:    []string{},
	}
	s.jobs[j.ID] = j
	return j
}

// Get returns a job by ID.
func (s *JobStore) Get(id string) *Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

// List returns all jobs, most recent first.
func (s *JobStore) List() []*Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		result = append(result, j)
	}
	// Sort by started_at descending
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].StartedAt.After(result[i].StartedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result
}
