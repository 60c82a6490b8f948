package application

import "sync"

// resultSlot holds the most recent generated artifact. Every generate request
// takes a ticket before rendering; once rendered, the artifact replaces the
// current one only if no newer request has already resolved, so that a slow
// render cannot overwrite the outcome of a later one.
type resultSlot struct {
	lock sync.Mutex

	nextSeq     uint64
	resolvedSeq uint64
	artifact    *Artifact
}

func (s *resultSlot) begin() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.nextSeq++
	return s.nextSeq
}

// resolve stores the artifact of request seq and reports whether it was
// accepted.
func (s *resultSlot) resolve(seq uint64, artifact *Artifact) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if seq <= s.resolvedSeq {
		return false
	}
	s.resolvedSeq = seq
	s.artifact = artifact
	return true
}

func (s *resultSlot) latest() *Artifact {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.artifact
}
