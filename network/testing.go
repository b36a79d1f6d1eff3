package network

import (
	"io"
	"sync"
)

// Scripted is an in-memory Transport for tests: it answers reads from
// a canned script and records every line written to it. Once the
// script runs out, reads fail like a hung-up peer.
type Scripted struct {
	mu      sync.Mutex
	peer    string
	answers []string
	lines   [][]byte
	closed  bool
}

func NewScripted(peer string, answers ...string) *Scripted {
	return &Scripted{peer: peer, answers: answers}
}

func (s *Scripted) ReadChunk() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.answers) == 0 {
		return nil, io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return []byte(answer), nil
}

func (s *Scripted) WriteLine(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return io.ErrClosedPipe
	}
	s.lines = append(s.lines, append([]byte(nil), line...))
	return nil
}

func (s *Scripted) Peer() string {
	return s.peer
}

func (s *Scripted) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Lines returns a copy of everything written so far.
func (s *Scripted) Lines() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([][]byte, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Closed reports whether Close was called.
func (s *Scripted) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
