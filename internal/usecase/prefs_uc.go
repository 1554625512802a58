package usecase

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/luxehub/luxehub/internal/domain"
)

// PrefsUC holds the preferences singleton. Region and the confirm flag
// persist under independent keys as plain tokens.
type PrefsUC struct {
	store domain.StateStore

	mu           sync.Mutex
	region       domain.Region
	confirmVisit bool
}

func NewPrefsUC(ctx context.Context, store domain.StateStore) *PrefsUC {
	uc := &PrefsUC{store: store, region: domain.DefaultRegion, confirmVisit: true}

	if raw, ok, err := store.Load(ctx, domain.KeyRegion); err == nil && ok {
		if r, valid := domain.ParseRegion(raw); valid {
			uc.region = r
		}
	} else if err != nil {
		log.Warn().Err(err).Msg("loading region preference")
	}

	if raw, ok, err := store.Load(ctx, domain.KeyConfirmVisit); err == nil && ok {
		// Anything other than the two boolean tokens keeps the default.
		if v, perr := strconv.ParseBool(raw); perr == nil {
			uc.confirmVisit = v
		}
	} else if err != nil {
		log.Warn().Err(err).Msg("loading confirm-before-visit preference")
	}

	return uc
}

func (uc *PrefsUC) Region() domain.Region {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.region
}

func (uc *PrefsUC) SetRegion(ctx context.Context, r domain.Region) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.region = r
	return uc.store.Save(ctx, domain.KeyRegion, string(r))
}

func (uc *PrefsUC) ConfirmBeforeVisit() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.confirmVisit
}

func (uc *PrefsUC) SetConfirmBeforeVisit(ctx context.Context, v bool) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.confirmVisit = v
	return uc.store.Save(ctx, domain.KeyConfirmVisit, strconv.FormatBool(v))
}

func (uc *PrefsUC) Preferences() domain.Preferences {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return domain.Preferences{Region: uc.region, ConfirmBeforeVisit: uc.confirmVisit}
}

func (uc *PrefsUC) ResetAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.region = domain.DefaultRegion
	uc.confirmVisit = true
	if err := uc.store.Save(ctx, domain.KeyRegion, string(uc.region)); err != nil {
		return err
	}
	return uc.store.Save(ctx, domain.KeyConfirmVisit, "true")
}
