package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/luxehub/luxehub/internal/domain"
)

const highlightWindow = time.Second

// HubUC owns the ordered brand sequence. Every mutation rewrites the whole
// brand key in the store; lookup misses are silent no-ops.
type HubUC struct {
	store domain.StateStore

	mu           sync.Mutex
	brands       []domain.Brand
	lastMovedID  string
	highlight    *time.Timer
	highlightTTL time.Duration
}

func NewHubUC(ctx context.Context, store domain.StateStore) *HubUC {
	uc := &HubUC{store: store, highlightTTL: highlightWindow}
	uc.brands = loadBrands(ctx, store)
	return uc
}

func loadBrands(ctx context.Context, store domain.StateStore) []domain.Brand {
	raw, ok, err := store.Load(ctx, domain.KeyBrands)
	if err != nil {
		log.Warn().Err(err).Msg("loading brand list, using seed catalog")
		return domain.SeedBrands()
	}
	if !ok {
		return domain.SeedBrands()
	}
	var brands []domain.Brand
	if err := json.Unmarshal([]byte(raw), &brands); err != nil {
		log.Warn().Err(err).Msg("stored brand list unreadable, using seed catalog")
		return domain.SeedBrands()
	}
	return brands
}

// Brands returns a copy of the full ordered sequence.
func (uc *HubUC) Brands() []domain.Brand {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.Brand, len(uc.brands))
	copy(out, uc.brands)
	return out
}

// ByCategory filters the sequence; CategoryAll passes everything through.
func (uc *HubUC) ByCategory(cat domain.BrandCategory) []domain.Brand {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cat == domain.CategoryAll || cat == "" {
		out := make([]domain.Brand, len(uc.brands))
		copy(out, uc.brands)
		return out
	}
	out := []domain.Brand{}
	for _, b := range uc.brands {
		if b.Category == cat {
			out = append(out, b)
		}
	}
	return out
}

func (uc *HubUC) Get(id string) (domain.Brand, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, b := range uc.brands {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Brand{}, false
}

// AddBrand normalizes the URL, derives the logo lookup and appends. It never
// fails on a malformed URL; only the logo lookup degrades.
func (uc *HubUC) AddBrand(ctx context.Context, name, rawURL string, category domain.BrandCategory) (domain.Brand, error) {
	normalized := NormalizeURL(rawURL)
	host := hostnameOf(normalized)
	if host == "" {
		host = rawURL
	}
	b := domain.Brand{
		ID:       uuid.NewString(),
		Name:     name,
		URL:      normalized,
		Logo:     "https://logo.clearbit.com/" + host,
		Category: category,
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.brands = append(uc.brands, b)
	return b, uc.persist(ctx)
}

// RemoveBrand is gated behind the confirmer; a decline or an unknown id
// leaves the sequence untouched.
func (uc *HubUC) RemoveBrand(ctx context.Context, id string, confirm domain.Confirmer) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := -1
	name := "this brand"
	for i, b := range uc.brands {
		if b.ID == id {
			idx = i
			name = b.Name
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if !confirm.Confirm(ctx, fmt.Sprintf("Are you sure you want to remove %s from your hub?", name)) {
		return nil
	}
	uc.brands = append(uc.brands[:idx], uc.brands[idx+1:]...)
	return uc.persist(ctx)
}

// MoveBrand swaps the brand with its neighbor. Moves past either end and
// unknown ids are no-ops. A successful move marks the id recently-moved for
// the highlight window; the pending clear is cancelled by the next move so a
// stale timer never wipes a newer mark.
func (uc *HubUC) MoveBrand(ctx context.Context, id string, dir domain.MoveDirection) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := -1
	for i, b := range uc.brands {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	target := idx - 1
	if dir == domain.MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(uc.brands) {
		return nil
	}
	uc.brands[idx], uc.brands[target] = uc.brands[target], uc.brands[idx]

	if uc.highlight != nil {
		uc.highlight.Stop()
	}
	uc.lastMovedID = id
	uc.highlight = time.AfterFunc(uc.highlightTTL, func() {
		uc.mu.Lock()
		if uc.lastMovedID == id {
			uc.lastMovedID = ""
		}
		uc.mu.Unlock()
	})
	return uc.persist(ctx)
}

// RecentlyMoved reports the id highlighted by the last move, or "" once the
// window has expired. Presentation hint only.
func (uc *HubUC) RecentlyMoved() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.lastMovedID
}

// SetLogo replaces a brand's logo lookup URL. Unknown ids are no-ops.
func (uc *HubUC) SetLogo(ctx context.Context, id, logoURL string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.brands {
		if uc.brands[i].ID == id {
			uc.brands[i].Logo = logoURL
			return uc.persist(ctx)
		}
	}
	return nil
}

// ResetAll restores the seed catalog.
func (uc *HubUC) ResetAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.brands = domain.SeedBrands()
	uc.lastMovedID = ""
	return uc.persist(ctx)
}

// persist rewrites the whole brand key. Callers hold uc.mu.
func (uc *HubUC) persist(ctx context.Context) error {
	raw, err := json.Marshal(uc.brands)
	if err != nil {
		return fmt.Errorf("encoding brand list: %w", err)
	}
	return uc.store.Save(ctx, domain.KeyBrands, string(raw))
}

// NormalizeURL prefixes https:// when the input carries no scheme.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

func hostnameOf(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
