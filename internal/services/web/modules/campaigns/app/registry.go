package app

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultFormTTL is how long an untouched campaign form stays resumable.
const DefaultFormTTL = 30 * time.Minute

// DefaultMaxForms caps how many forms the registry tracks at once.
const DefaultMaxForms = 10_000

// maxSweepInterval bounds how often expired forms are swept.
const maxSweepInterval = time.Minute

// FormRegistry tracks one SubmissionWorkflow per rendered campaign form,
// keyed by the hidden form id. Idle forms expire after the TTL; forms
// waiting on the campaign API are never evicted. Expired forms are swept
// at most once per sweep interval, and a full registry evicts one idle
// form per new entry.
type FormRegistry struct {
	creator    CampaignCreator
	ttl        time.Duration
	sweepEvery time.Duration
	maxForms   int
	now        func() time.Time

	mu        sync.Mutex
	forms     map[string]*SubmissionWorkflow
	lastSweep time.Time
}

// NewFormRegistry builds a registry. Non-positive ttl uses DefaultFormTTL.
func NewFormRegistry(creator CampaignCreator, ttl time.Duration, now func() time.Time) *FormRegistry {
	if ttl <= 0 {
		ttl = DefaultFormTTL
	}
	if now == nil {
		now = time.Now
	}
	return &FormRegistry{
		creator:    creator,
		ttl:        ttl,
		sweepEvery: min(ttl, maxSweepInterval),
		maxForms:   DefaultMaxForms,
		now:        now,
		forms:      map[string]*SubmissionWorkflow{},
	}
}

// Open registers a fresh idle form and returns its id.
func (r *FormRegistry) Open() (string, *SubmissionWorkflow) {
	id := uuid.NewString()
	workflow := NewSubmissionWorkflow(r.creator, r.now)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(id, workflow)
	return id, workflow
}

// Resolve returns the workflow for id. Unknown or expired ids that are
// well-formed are re-registered so a slow user can still submit; malformed
// ids get a fresh id.
func (r *FormRegistry) Resolve(id string) (string, *SubmissionWorkflow) {
	id = strings.TrimSpace(id)
	parsed, err := uuid.Parse(id)
	if err != nil {
		return r.Open()
	}
	id = parsed.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.maybeSweepLocked()
	if workflow, ok := r.forms[id]; ok {
		return id, workflow
	}
	workflow := NewSubmissionWorkflow(r.creator, r.now)
	r.insertLocked(id, workflow)
	return id, workflow
}

func (r *FormRegistry) insertLocked(id string, workflow *SubmissionWorkflow) {
	r.maybeSweepLocked()
	if len(r.forms) >= r.maxForms {
		r.evictOneLocked()
	}
	r.forms[id] = workflow
}

func (r *FormRegistry) maybeSweepLocked() {
	now := r.now()
	if !r.lastSweep.IsZero() && now.Sub(r.lastSweep) < r.sweepEvery {
		return
	}
	r.lastSweep = now
	cutoff := now.Add(-r.ttl)
	for id, workflow := range r.forms {
		lastSeen, evictable := workflow.idleSince()
		if evictable && lastSeen.Before(cutoff) {
			delete(r.forms, id)
		}
	}
}

// evictOneLocked drops an arbitrary idle form. Its id stays usable: Resolve
// re-registers well-formed ids.
func (r *FormRegistry) evictOneLocked() {
	for id, workflow := range r.forms {
		if _, evictable := workflow.idleSince(); evictable {
			delete(r.forms, id)
			return
		}
	}
}

func (r *FormRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}
