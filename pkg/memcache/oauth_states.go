package memcache

import (
	"sync"
	"time"

	"mapsplanner/pkg/utils"
)

type OAuthStateStore interface {
	// Issue mints a fresh state nonce valid for ttl.
	Issue(ttl time.Duration) (string, error)

	// Consume reports whether state was issued and not expired,
	// and removes it (single-use). Returns false if missing/expired.
	Consume(state string) bool
}

type entry struct {
	expiresAt time.Time
}

type OAuthStates struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewOAuthStates() *OAuthStates {
	return &OAuthStates{data: make(map[string]entry)}
}

func (s *OAuthStates) Issue(ttl time.Duration) (string, error) {
	state, err := utils.GenerateSecureToken(utils.DefaultTokenLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gcLocked()
	s.data[state] = entry{expiresAt: time.Now().Add(ttl)}
	return state, nil
}

func (s *OAuthStates) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[state]
	if !ok {
		return false
	}
	delete(s.data, state)
	return time.Now().Before(e.expiresAt)
}

// gcLocked drops expired entries so abandoned logins do not pile up.
func (s *OAuthStates) gcLocked() {
	now := time.Now()
	for state, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, state)
		}
	}
}
