package tutor

import (
	"maps"
	"slices"
	"sync"

	"github.com/pipit-keyboard/chordc/errors"
)

// DefaultInitialLearnState is how many more correct than incorrect
// attempts a name needs before it counts as learned.
const DefaultInitialLearnState = 10

// Session is one practice session over exported data. It is safe for
// concurrent use.
type Session struct {
	mu      sync.RWMutex
	data    *Data
	mode    string
	initial int
	learn   map[string]int
}

// NewSession starts a session in the first mode by name.
func NewSession(data *Data) (*Session, error) {
	if data == nil || len(data.Modes) == 0 {
		return nil, errors.NewConfigError("tutor data has no modes")
	}
	return &Session{
		data:    data,
		mode:    slices.Sorted(maps.Keys(data.Modes))[0],
		initial: DefaultInitialLearnState,
		learn:   make(map[string]int),
	}, nil
}

// Modes lists the available modes, sorted.
func (s *Session) Modes() []string {
	return slices.Sorted(maps.Keys(s.data.Modes))
}

// Mode returns the current mode.
func (s *Session) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches modes. Chords may differ between modes, so every learn
// state starts over.
func (s *Session) SetMode(mode string) error {
	if _, ok := s.data.Modes[mode]; !ok {
		return errors.NewLookupError(mode, "tutor modes")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.resetLocked()
	return nil
}

// Chord returns the chord for name in the current mode. The empty name
// gets the empty entry; the tutor uses it for gaps.
func (s *Session) Chord(name string) (Entry, bool) {
	if name == "" {
		return Entry{}, true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data.Modes[s.mode][name]
	return e, ok
}

// NameFor returns the chord name that types text.
func (s *Session) NameFor(text string) (string, bool) {
	name, ok := s.data.Spellings[text]
	return name, ok
}

// Record counts one attempt at typing name.
func (s *Session) Record(name string, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.learn[name]
	if !ok {
		state = s.initial
	}
	if correct {
		state = max(state-1, 0)
	} else {
		state++
	}
	s.learn[name] = state
}

// LearnState is the number of correct attempts still needed for name.
func (s *Session) LearnState(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.learn[name]; ok {
		return state
	}
	return s.initial
}

// IsLearned reports whether name is learned. seen is false if name was
// never attempted.
func (s *Session) IsLearned(name string) (learned, seen bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.learn[name]
	return ok && state == 0, ok
}

// SetInitialLearnState changes the starting state and resets every name
// to it.
func (s *Session) SetInitialLearnState(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initial = n
	s.resetLocked()
}

func (s *Session) resetLocked() {
	for name := range s.learn {
		s.learn[name] = s.initial
	}
}
