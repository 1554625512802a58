package usecase

import (
	"sync"

	"github.com/luxehub/luxehub/internal/domain"
)

type View string

const (
	ViewHub       View = "hub"
	ViewWardrobe  View = "wardrobe"
	ViewAssistant View = "ai-assistant"
	ViewSettings  View = "settings"
)

func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewHub, ViewWardrobe, ViewAssistant, ViewSettings:
		return View(s), true
	}
	return "", false
}

type HubDisplay string

const (
	HubDisplayList HubDisplay = "list"
	HubDisplayGrid HubDisplay = "grid"
)

// SelectAction is the outcome of tapping a brand in the hub.
type SelectAction string

const (
	// SelectIgnored: hub manage mode suppresses selection entirely.
	SelectIgnored SelectAction = "ignored"
	// SelectPreview: the confirmation card opens before any navigation.
	SelectPreview SelectAction = "preview"
	// SelectNavigate: go straight to the brand's site.
	SelectNavigate SelectAction = "navigate"
)

// ViewState is the transient UI state. None of it is ever persisted, and
// switching views resets both manage modes.
type ViewState struct {
	mu               sync.Mutex
	view             View
	activeCategory   domain.BrandCategory
	hubDisplay       HubDisplay
	managingHub      bool
	managingWardrobe bool
	preview          *domain.Brand
	editingNoteID    string
	chatBusy         bool
	parseBusy        bool
}

func NewViewState() *ViewState {
	return &ViewState{view: ViewHub, activeCategory: domain.CategoryAll, hubDisplay: HubDisplayList}
}

func (v *ViewState) SetView(view View) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = view
	v.managingHub = false
	v.managingWardrobe = false
}

func (v *ViewState) View() View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

func (v *ViewState) ToggleManageHub() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.managingHub = !v.managingHub
	return v.managingHub
}

func (v *ViewState) ToggleManageWardrobe() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.managingWardrobe = !v.managingWardrobe
	return v.managingWardrobe
}

func (v *ViewState) ManagingHub() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.managingHub
}

func (v *ViewState) ManagingWardrobe() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.managingWardrobe
}

func (v *ViewState) SetCategory(cat domain.BrandCategory) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.activeCategory = cat
}

func (v *ViewState) Category() domain.BrandCategory {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeCategory
}

func (v *ViewState) SetHubDisplay(d HubDisplay) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hubDisplay = d
}

// SelectBrand decides what tapping a brand does. This is the single place
// where the confirm-before-visit preference changes control flow.
func (v *ViewState) SelectBrand(b domain.Brand, confirmBeforeVisit bool) SelectAction {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.managingHub {
		return SelectIgnored
	}
	if confirmBeforeVisit {
		v.preview = &b
		return SelectPreview
	}
	return SelectNavigate
}

func (v *ViewState) Preview() *domain.Brand {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preview
}

func (v *ViewState) ClosePreview() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.preview = nil
}

func (v *ViewState) EditNote(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editingNoteID = id
}

func (v *ViewState) EditingNote() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editingNoteID
}

// BeginChat claims the chat loading flag; false means a request is already
// in flight. This is a caller-visible guard, not mutual exclusion.
func (v *ViewState) BeginChat() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.chatBusy {
		return false
	}
	v.chatBusy = true
	return true
}

func (v *ViewState) EndChat() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chatBusy = false
}

func (v *ViewState) BeginParse() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.parseBusy {
		return false
	}
	v.parseBusy = true
	return true
}

func (v *ViewState) EndParse() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.parseBusy = false
}

// Snapshot is the transient state as the presentation layer sees it.
type Snapshot struct {
	View             View                 `json:"view"`
	ActiveCategory   domain.BrandCategory `json:"activeCategory"`
	HubDisplay       HubDisplay           `json:"hubDisplay"`
	ManagingHub      bool                 `json:"managingHub"`
	ManagingWardrobe bool                 `json:"managingWardrobe"`
	Preview          *domain.Brand        `json:"preview,omitempty"`
	EditingNoteID    string               `json:"editingNoteId,omitempty"`
	ChatBusy         bool                 `json:"chatBusy"`
	ParseBusy        bool                 `json:"parseBusy"`
}

func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		View:             v.view,
		ActiveCategory:   v.activeCategory,
		HubDisplay:       v.hubDisplay,
		ManagingHub:      v.managingHub,
		ManagingWardrobe: v.managingWardrobe,
		Preview:          v.preview,
		EditingNoteID:    v.editingNoteID,
		ChatBusy:         v.chatBusy,
		ParseBusy:        v.parseBusy,
	}
}
