package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/luxehub/luxehub/internal/adapters/export"
	"github.com/luxehub/luxehub/internal/domain"
	"github.com/luxehub/luxehub/internal/usecase"
)

const AppVersion = "3.2.0"

type updateNote struct {
	Version string `json:"version"`
	Note    string `json:"note"`
}

var updateHistory = []updateNote{
	{Version: "3.2.0", Note: "Iconic management navigation, unified typography, and enhanced brand preview visuals."},
	{Version: "3.1.0", Note: "Improved wardrobe notes and confirm-before-visit safety toggle."},
	{Version: "3.0.0", Note: "Introduced Closet management and AI-powered wardrobe assistant."},
}

// LogoResolver finds a better logo for a brand, best effort.
type LogoResolver interface {
	Resolve(ctx context.Context, b domain.Brand) string
}

type Server struct {
	mux       *http.ServeMux
	hub       *usecase.HubUC
	wardrobe  *usecase.WardrobeUC
	assistant *usecase.AssistantUC
	prefs     *usecase.PrefsUC
	view      *usecase.ViewState
	logos     LogoResolver
	store     domain.StateStore
}

func New(hub *usecase.HubUC, wardrobe *usecase.WardrobeUC, assistant *usecase.AssistantUC, prefs *usecase.PrefsUC, view *usecase.ViewState, logos LogoResolver, store domain.StateStore) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		hub:       hub,
		wardrobe:  wardrobe,
		assistant: assistant,
		prefs:     prefs,
		view:      view,
		logos:     logos,
		store:     store,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/brands", s.handleBrands)
	s.mux.HandleFunc("/api/brands/", s.handleBrandByID)

	s.mux.HandleFunc("/api/wardrobe", s.handleWardrobe)
	s.mux.HandleFunc("/api/wardrobe/export", s.handleWardrobeExport)
	s.mux.HandleFunc("/api/wardrobe/", s.handleWardrobeItem)

	s.mux.HandleFunc("/api/assistant", s.handleAssistant)
	s.mux.HandleFunc("/api/preferences", s.handlePreferences)

	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.HandleFunc("/api/state/view", s.handleStateView)
	s.mux.HandleFunc("/api/state/manage", s.handleStateManage)
	s.mux.HandleFunc("/api/state/category", s.handleStateCategory)
	s.mux.HandleFunc("/api/state/display", s.handleStateDisplay)
	s.mux.HandleFunc("/api/state/note", s.handleStateNote)
	s.mux.HandleFunc("/api/state/preview/close", s.handlePreviewClose)
	s.mux.HandleFunc("/api/state/preview/visit", s.handlePreviewVisit)

	s.mux.HandleFunc("/api/app", s.handleAppInfo)
	s.mux.HandleFunc("/api/reset", s.handleReset)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// reqConfirmer carries the client's confirmation answer into the gated
// mutations. The prompt was already shown client-side.
func reqConfirmer(r *http.Request) domain.Confirmer {
	confirmed := r.URL.Query().Get("confirmed") == "true"
	if !confirmed && r.Body != nil {
		var body struct {
			Confirmed bool `json:"confirmed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			confirmed = body.Confirmed
		}
	}
	return domain.ConfirmerFunc(func(context.Context, string) bool { return confirmed })
}

// --- Hub ---

func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cat := domain.CategoryAll
		if q := r.URL.Query().Get("category"); q != "" && q != string(domain.CategoryAll) {
			parsed, ok := domain.ParseBrandCategory(q)
			if !ok {
				writeError(w, http.StatusBadRequest, "unknown category")
				return
			}
			cat = parsed
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"brands":        s.hub.ByCategory(cat),
			"recentlyMoved": s.hub.RecentlyMoved(),
		})
	case http.MethodPost:
		var body struct {
			Name     string `json:"name"`
			URL      string `json:"url"`
			Category string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.URL) == "" {
			writeError(w, http.StatusBadRequest, "name and url are required")
			return
		}
		cat, ok := domain.ParseBrandCategory(body.Category)
		if !ok {
			cat = domain.CategoryCustom
		}
		b, err := s.hub.AddBrand(r.Context(), body.Name, body.URL, cat)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not save brand")
			return
		}
		writeJSON(w, http.StatusCreated, b)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleBrandByID routes /api/brands/{id}[/move|/select|/logo].
func (s *Server) handleBrandByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/brands/")
	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodDelete:
		if err := s.hub.RemoveBrand(r.Context(), id, reqConfirmer(r)); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save hub")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brands": s.hub.Brands()})

	case action == "move" && r.Method == http.MethodPost:
		var body struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		dir := domain.MoveDirection(body.Direction)
		if dir != domain.MoveUp && dir != domain.MoveDown {
			writeError(w, http.StatusBadRequest, "direction must be up or down")
			return
		}
		if err := s.hub.MoveBrand(r.Context(), id, dir); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save hub")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"brands":        s.hub.Brands(),
			"recentlyMoved": s.hub.RecentlyMoved(),
		})

	case action == "select" && r.Method == http.MethodPost:
		b, ok := s.hub.Get(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		result := s.view.SelectBrand(b, s.prefs.ConfirmBeforeVisit())
		resp := map[string]any{"action": result}
		if result == usecase.SelectPreview {
			resp["brand"] = b
		}
		if result == usecase.SelectNavigate {
			resp["url"] = b.URL
		}
		writeJSON(w, http.StatusOK, resp)

	case action == "logo" && r.Method == http.MethodPost:
		b, ok := s.hub.Get(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		logo := s.logos.Resolve(r.Context(), b)
		if err := s.hub.SetLogo(r.Context(), id, logo); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save hub")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"logo": logo})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// --- Wardrobe ---

func (s *Server) handleWardrobe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.wardrobe.Items()})
	case http.MethodPost:
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		if strings.TrimSpace(body.Text) == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		if !s.view.BeginParse() {
			writeError(w, http.StatusConflict, "a wardrobe request is already in progress")
			return
		}
		defer s.view.EndParse()
		item, err := s.wardrobe.AddFromText(r.Context(), body.Text)
		if err != nil {
			if errors.Is(err, domain.ErrUnparsable) {
				writeError(w, http.StatusUnprocessableEntity, "Failed to parse wardrobe item. Try simpler terms.")
				return
			}
			writeError(w, http.StatusInternalServerError, "could not save wardrobe")
			return
		}
		writeJSON(w, http.StatusCreated, item)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleWardrobeItem routes /api/wardrobe/{id}[/notes].
func (s *Server) handleWardrobeItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/wardrobe/")
	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodDelete:
		if err := s.wardrobe.RemoveItem(r.Context(), id, reqConfirmer(r)); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save wardrobe")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": s.wardrobe.Items()})

	case action == "notes" && r.Method == http.MethodPut:
		var body struct {
			Notes string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		if err := s.wardrobe.UpdateNote(r.Context(), id, body.Notes); err != nil {
			writeError(w, http.StatusInternalServerError, "could not save wardrobe")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": s.wardrobe.Items()})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWardrobeExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	buf, err := export.WardrobeWorkbook(s.wardrobe.Items())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not build export")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=wardrobe-%s.xlsx", time.Now().Format("2006-01-02")))
	_, _ = w.Write(buf.Bytes())
}

// --- Assistant ---

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(body.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if !s.view.BeginChat() {
		writeError(w, http.StatusConflict, "a concierge request is already in progress")
		return
	}
	defer s.view.EndChat()
	reply := s.assistant.Ask(r.Context(), body.Query)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// --- Preferences ---

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.prefs.Preferences())
	case http.MethodPut:
		var body struct {
			Region             *string `json:"region"`
			ConfirmBeforeVisit *bool   `json:"confirmBeforeVisit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
		if body.Region != nil {
			reg, ok := domain.ParseRegion(*body.Region)
			if !ok {
				writeError(w, http.StatusBadRequest, "unknown region")
				return
			}
			if err := s.prefs.SetRegion(r.Context(), reg); err != nil {
				writeError(w, http.StatusInternalServerError, "could not save preferences")
				return
			}
		}
		if body.ConfirmBeforeVisit != nil {
			if err := s.prefs.SetConfirmBeforeVisit(r.Context(), *body.ConfirmBeforeVisit); err != nil {
				writeError(w, http.StatusInternalServerError, "could not save preferences")
				return
			}
		}
		writeJSON(w, http.StatusOK, s.prefs.Preferences())
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// --- View state ---

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handleStateView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	view, ok := usecase.ParseView(body.View)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown view")
		return
	}
	s.view.SetView(view)
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handleStateManage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Collection string `json:"collection"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	switch body.Collection {
	case "hub":
		s.view.ToggleManageHub()
	case "wardrobe":
		s.view.ToggleManageWardrobe()
	default:
		writeError(w, http.StatusBadRequest, "collection must be hub or wardrobe")
		return
	}
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handleStateCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Category == string(domain.CategoryAll) {
		s.view.SetCategory(domain.CategoryAll)
	} else {
		cat, ok := domain.ParseBrandCategory(body.Category)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
		s.view.SetCategory(cat)
	}
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handleStateDisplay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	mode := usecase.HubDisplay(body.Mode)
	if mode != usecase.HubDisplayList && mode != usecase.HubDisplayGrid {
		writeError(w, http.StatusBadRequest, "mode must be list or grid")
		return
	}
	s.view.SetHubDisplay(mode)
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handleStateNote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.view.EditNote(body.ID)
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

func (s *Server) handlePreviewClose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.view.ClosePreview()
	writeJSON(w, http.StatusOK, s.view.Snapshot())
}

// handlePreviewVisit resolves the previewed brand to its URL and closes the
// card. This is the "Enter Boutique" action on the preview.
func (s *Server) handlePreviewVisit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	b := s.view.Preview()
	if b == nil {
		writeError(w, http.StatusConflict, "nothing previewed")
		return
	}
	s.view.ClosePreview()
	writeJSON(w, http.StatusOK, map[string]string{"url": b.URL})
}

// --- App info / reset ---

func (s *Server) handleAppInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version": AppVersion,
		"history": updateHistory,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !reqConfirmer(r).Confirm(r.Context(), "Factory reset your entire digital hub?") {
		writeJSON(w, http.StatusOK, map[string]bool{"reset": false})
		return
	}
	ctx := r.Context()
	if err := s.store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "could not reset store")
		return
	}
	if err := s.hub.ResetAll(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "could not reseed hub")
		return
	}
	if err := s.wardrobe.ResetAll(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "could not clear wardrobe")
		return
	}
	if err := s.prefs.ResetAll(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "could not reset preferences")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
