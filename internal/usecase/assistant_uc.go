package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/luxehub/luxehub/internal/domain"
)

// ApologyReply replaces any concierge failure; errors never reach the UI.
const ApologyReply = "I apologize, but I'm unable to provide fashion advice right now."

// AssistantUC drives the concierge chat. Each call is stateless: whatever
// continuity the answer needs is rebuilt into the prompt from current state.
type AssistantUC struct {
	ai       domain.AIGateway
	prefs    *PrefsUC
	wardrobe *WardrobeUC
}

func NewAssistantUC(ai domain.AIGateway, prefs *PrefsUC, wardrobe *WardrobeUC) *AssistantUC {
	return &AssistantUC{ai: ai, prefs: prefs, wardrobe: wardrobe}
}

// Ask assembles the context prompt and returns the concierge's prose, or the
// fixed apology when the backend is unreachable or unconfigured.
func (uc *AssistantUC) Ask(ctx context.Context, query string) string {
	prompt := fmt.Sprintf("Context: Region is %s. Wardrobe has %d items. Query: %s",
		uc.prefs.Region(), uc.wardrobe.Count(), query)
	if uc.ai == nil {
		return ApologyReply
	}
	reply, err := uc.ai.Converse(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("concierge request failed")
		return ApologyReply
	}
	return reply
}
