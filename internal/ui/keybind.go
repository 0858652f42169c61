package ui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys ("c", "esc", "ctrl+c") to commands.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key without a help description.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDescForMode(k, cmd, "", nil)
}

// BindWithDesc registers a key with a description for the help footer.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key that only fires in the given modes.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
	if len(modes) > 0 {
		r.modeFilter[k] = modes
	} else {
		delete(r.modeFilter, k)
	}
}

// Lookup returns the command for k in mode, or nil if not bound there.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	if !r.appliesToMode(k, mode) {
		return nil
	}
	return r.bindings[k]
}

// Hint is one entry of the help footer.
type Hint struct {
	Key  string
	Desc string
}

// Hints returns described bindings active in mode, sorted by key.
func (r *KeybindRegistry) Hints(mode AppMode) []Hint {
	var out []Hint
	for k, cmd := range r.bindings {
		desc, ok := r.descriptions[k]
		if cmd == nil || !ok || !r.appliesToMode(k, mode) {
			continue
		}
		out = append(out, Hint{Key: k, Desc: desc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeyHandler dispatches page-level keys to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key was bound and should not reach views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}
