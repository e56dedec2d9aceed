package domain

import (
	"strconv"
	"sync"
)

const cancelPrefix = "CANCEL"

// Sequence issues reservation references: the owner's business code followed
// by a per-owner monotonic counter. Counters never repeat within a process,
// so two concurrent reservations can never collide on a reference.
type Sequence struct {
	mu   sync.Mutex
	next map[string]uint64
}

func NewSequence() *Sequence {
	return &Sequence{next: make(map[string]uint64)}
}

func (s *Sequence) Next(owner string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next[owner]++
	return owner + strconv.FormatUint(s.next[owner], 10)
}

// CancelToken derives the cancellation token for a reference. The derivation
// is deterministic: a cancelled reservation can always be re-queried with the
// token alone.
func CancelToken(reference string) string {
	return cancelPrefix + reference
}
