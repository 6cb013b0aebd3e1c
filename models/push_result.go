// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// FamilyStats counts what happened to the items of one content family.
type FamilyStats struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Published int `json:"published"`
	Deleted   int `json:"deleted"`
	Failed    int `json:"failed"`
}

// PushResult summarises a push. It is safe for concurrent use by the pusher's
// item workers; read the counters through Stats once the push has returned.
type PushResult struct {
	mu    sync.Mutex
	stats map[string]FamilyStats
}

// NewPushResult returns an empty result.
func NewPushResult() *PushResult {
	return &PushResult{stats: make(map[string]FamilyStats)}
}

// Add applies fn to the counters of family.
func (r *PushResult) Add(family string, fn func(*FamilyStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stats == nil {
		r.stats = make(map[string]FamilyStats)
	}
	st := r.stats[family]
	fn(&st)
	r.stats[family] = st
}

// Stats returns a copy of the per-family counters.
func (r *PushResult) Stats() map[string]FamilyStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]FamilyStats, len(r.stats))
	for k, v := range r.stats {
		out[k] = v
	}
	return out
}

// Family returns the counters of one family.
func (r *PushResult) Family(family string) FamilyStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats[family]
}

// TotalFailed is the number of failed item operations across all families.
func (r *PushResult) TotalFailed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, st := range r.stats {
		n += st.Failed
	}
	return n
}
