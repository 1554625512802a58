package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUnparsable means the AI extraction could not produce a complete
	// item. Callers show a rejection message and must not mutate anything.
	ErrUnparsable = errors.New("could not understand input")
)

// Storage keys. Versioned so a schema change can bump a key without
// touching the others.
const (
	KeyBrands       = "luxe_brands_v4"
	KeyWardrobe     = "luxe_wardrobe_v2"
	KeyRegion       = "luxe_region"
	KeyConfirmVisit = "luxe_confirm_visit"
)

// StateStore is the durable key/value store. Values are opaque strings;
// serialization belongs to the caller. Load reports ok=false when the key
// has never been written.
type StateStore interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Reset(ctx context.Context) error
}

// AIGateway is the narrow contract against the generative backend. Both
// calls are single-shot and stateless; ExtractWardrobeItem returns
// (nil, nil) when the response cannot be validated into a complete item.
type AIGateway interface {
	Converse(ctx context.Context, prompt string) (string, error)
	ExtractWardrobeItem(ctx context.Context, text string) (*ParsedWardrobeItem, error)
}

// Confirmer gates destructive mutations. A false answer makes the mutation
// a no-op; the prompt describes the target by name.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmerFunc func(ctx context.Context, prompt string) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }
