package usecase

import (
	"context"

	"github.com/luxehub/luxehub/internal/domain"
)

// memStore is an in-memory StateStore for tests.
type memStore struct {
	m map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Save(_ context.Context, key, value string) error {
	s.m[key] = value
	return nil
}

func (s *memStore) Reset(_ context.Context) error {
	s.m = map[string]string{}
	return nil
}

var (
	accept  = domain.ConfirmerFunc(func(context.Context, string) bool { return true })
	decline = domain.ConfirmerFunc(func(context.Context, string) bool { return false })
)

// stubGateway scripts the AI backend.
type stubGateway struct {
	parsed     *domain.ParsedWardrobeItem
	parseErr   error
	reply      string
	replyErr   error
	lastPrompt string
}

func (g *stubGateway) Converse(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.reply, g.replyErr
}

func (g *stubGateway) ExtractWardrobeItem(_ context.Context, text string) (*domain.ParsedWardrobeItem, error) {
	g.lastPrompt = text
	return g.parsed, g.parseErr
}
