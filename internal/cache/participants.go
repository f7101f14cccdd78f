package cache

import "sync"

// Participants is the process-local mirror of the rooms' live counts.
// It only ever holds values the backend confirmed; it is rebuilt lazily
// per room and never persisted.
type Participants struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewParticipants() *Participants {
	return &Participants{counts: make(map[string]int)}
}

func (p *Participants) Get(roomID string) (int, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n, ok := p.counts[roomID]
	return n, ok
}

func (p *Participants) Set(roomID string, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counts[roomID] = count
}

// Snapshot returns a copy of the full map, safe to hand to broadcasters.
func (p *Participants) Snapshot() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}
