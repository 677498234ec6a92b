// Package memory provides a scripted Source for tests and headless use:
// replies are served in order and reads are counted.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/tendril/pkg/domain"
)

// Source serves a fixed script of replies. Once the script is exhausted,
// further reads report domain.ErrCancelled, mirroring EOF on a pipe.
type Source struct {
	mu          sync.Mutex
	replies     []string
	next        int
	reads       int
	secretReads int
}

// New creates a scripted source serving the given replies in order.
func New(replies ...string) *Source {
	return &Source{replies: replies}
}

func (s *Source) ReadLine(ctx context.Context) (string, error) {
	return s.read(ctx, false)
}

func (s *Source) ReadSecret(ctx context.Context) (string, error) {
	return s.read(ctx, true)
}

// Interactive always reports false; scripted input is not a terminal.
func (s *Source) Interactive() bool { return false }

// Reads returns the total number of reads served, secret reads included.
func (s *Source) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// SecretReads returns the number of non-echoing reads served.
func (s *Source) SecretReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secretReads
}

func (s *Source) read(ctx context.Context, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.replies) {
		return "", fmt.Errorf("%w: script exhausted", domain.ErrCancelled)
	}
	reply := s.replies[s.next]
	s.next++
	s.reads++
	if secret {
		s.secretReads++
	}
	return reply, nil
}
