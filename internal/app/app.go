package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/luxehub/luxehub/internal/adapters/httpserver"
	"github.com/luxehub/luxehub/internal/adapters/repo/sqlite"
	"github.com/luxehub/luxehub/internal/adapters/scraper"
	"github.com/luxehub/luxehub/internal/domain"
	"github.com/luxehub/luxehub/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	Store     *sqlite.StateStore
	Hub       *usecase.HubUC
	Wardrobe  *usecase.WardrobeUC
	Assistant *usecase.AssistantUC
	Prefs     *usecase.PrefsUC
	View      *usecase.ViewState
	Logos     *scraper.LogoFinder
}

// NewApp wires the durable store and controllers. A nil gateway leaves the
// app fully usable with the two AI operations degrading to their fixed
// user-facing messages.
func NewApp(ctx context.Context, db *gorm.DB, ai domain.AIGateway) (*App, error) {
	store := sqlite.NewStateStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}

	prefs := usecase.NewPrefsUC(ctx, store)
	wardrobe := usecase.NewWardrobeUC(ctx, store, ai)

	return &App{
		DB:        db,
		Store:     store,
		Hub:       usecase.NewHubUC(ctx, store),
		Wardrobe:  wardrobe,
		Assistant: usecase.NewAssistantUC(ai, prefs, wardrobe),
		Prefs:     prefs,
		View:      usecase.NewViewState(),
		Logos:     scraper.NewLogoFinder(),
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Hub, a.Wardrobe, a.Assistant, a.Prefs, a.View, a.Logos, a.Store)
}
