package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press. It reports false to let lower-priority
// bindings for the same key run.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	HelpKey     string
	Handler     KeyHandler
	Description string
	Sections    []Section
	Priority    int
}

func (b KeyBinding) AppliesTo(s Section) bool {
	if len(b.Sections) == 0 {
		return true
	}
	for _, v := range b.Sections {
		if v == s {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.section) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsFor(s Section) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer help line. Section-specific bindings are listed
// before global ones.
func (r *HandlerRegistry) HelpFor(s Section) string {
	bindings := r.GetBindingsFor(s)
	sort.SliceStable(bindings, func(i, j int) bool {
		return len(bindings[i].Sections) > 0 && len(bindings[j].Sections) == 0
	})
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		label := b.Key
		if b.HelpKey != "" {
			label = b.HelpKey
		}
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
