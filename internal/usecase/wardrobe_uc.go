package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/luxehub/luxehub/internal/domain"
)

// WardrobeUC owns the wardrobe sequence, most-recent-first. Items enter only
// through AI-assisted parsing; notes are the only field edited in place.
type WardrobeUC struct {
	store domain.StateStore
	ai    domain.AIGateway

	mu    sync.Mutex
	items []domain.WardrobeItem
}

func NewWardrobeUC(ctx context.Context, store domain.StateStore, ai domain.AIGateway) *WardrobeUC {
	uc := &WardrobeUC{store: store, ai: ai}
	uc.items = loadWardrobe(ctx, store)
	return uc
}

func loadWardrobe(ctx context.Context, store domain.StateStore) []domain.WardrobeItem {
	raw, ok, err := store.Load(ctx, domain.KeyWardrobe)
	if err != nil {
		log.Warn().Err(err).Msg("loading wardrobe, starting empty")
		return []domain.WardrobeItem{}
	}
	if !ok {
		return []domain.WardrobeItem{}
	}
	var items []domain.WardrobeItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Msg("stored wardrobe unreadable, starting empty")
		return []domain.WardrobeItem{}
	}
	return items
}

func (uc *WardrobeUC) Items() []domain.WardrobeItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.WardrobeItem, len(uc.items))
	copy(out, uc.items)
	return out
}

func (uc *WardrobeUC) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.items)
}

// AddFromText runs the free text through the extraction gateway and, when a
// complete item comes back, catalogs it. Any backend failure or incomplete
// extraction surfaces as ErrUnparsable with nothing mutated.
func (uc *WardrobeUC) AddFromText(ctx context.Context, text string) (domain.WardrobeItem, error) {
	if strings.TrimSpace(text) == "" {
		return domain.WardrobeItem{}, domain.ErrUnparsable
	}
	if uc.ai == nil {
		return domain.WardrobeItem{}, domain.ErrUnparsable
	}
	parsed, err := uc.ai.ExtractWardrobeItem(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("wardrobe extraction failed")
		return domain.WardrobeItem{}, domain.ErrUnparsable
	}
	if parsed == nil {
		return domain.WardrobeItem{}, domain.ErrUnparsable
	}
	return uc.AddParsed(ctx, *parsed)
}

// AddParsed builds the item with its derived image lookup and prepends it.
func (uc *WardrobeUC) AddParsed(ctx context.Context, parsed domain.ParsedWardrobeItem) (domain.WardrobeItem, error) {
	item := domain.WardrobeItem{
		ID:       uuid.NewString(),
		Name:     parsed.Name,
		Category: parsed.Category,
		Color:    parsed.Color,
		Brand:    parsed.Brand,
		ImageURL: WardrobeImageURL(parsed.Color, parsed.Category),
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items = append([]domain.WardrobeItem{item}, uc.items...)
	return item, uc.persist(ctx)
}

func (uc *WardrobeUC) RemoveItem(ctx context.Context, id string, confirm domain.Confirmer) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := -1
	for i, it := range uc.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if !confirm.Confirm(ctx, "Remove this item from your wardrobe?") {
		return nil
	}
	uc.items = append(uc.items[:idx], uc.items[idx+1:]...)
	return uc.persist(ctx)
}

// UpdateNote replaces only the notes field of the matching item.
func (uc *WardrobeUC) UpdateNote(ctx context.Context, id, note string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.items {
		if uc.items[i].ID == id {
			uc.items[i].Notes = note
			return uc.persist(ctx)
		}
	}
	return nil
}

func (uc *WardrobeUC) ResetAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items = []domain.WardrobeItem{}
	return uc.persist(ctx)
}

func (uc *WardrobeUC) persist(ctx context.Context) error {
	raw, err := json.Marshal(uc.items)
	if err != nil {
		return fmt.Errorf("encoding wardrobe: %w", err)
	}
	return uc.store.Save(ctx, domain.KeyWardrobe, string(raw))
}

// WardrobeImageURL keys a stock-photo lookup on color plus the category with
// whitespace removed and lower-cased.
func WardrobeImageURL(color, category string) string {
	compact := strings.ToLower(strings.Join(strings.Fields(category), ""))
	return fmt.Sprintf("https://loremflickr.com/320/320/%s,clothing,%s", color, compact)
}
