// Package sprites provides a global registry for pup sprite themes.
// Themes register themselves in init() functions, allowing the platform
// to discover and list them without hardcoded dependencies.
package sprites

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/pet"
)

// Frame is a single animation cel, drawn line by line.
type Frame struct {
	Lines []string
	Color core.Color
}

// Width returns the rune width of the widest line.
func (f Frame) Width() int {
	w := 0
	for _, line := range f.Lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of lines in the frame.
func (f Frame) Height() int {
	return len(f.Lines)
}

// Theme is a complete sprite set for the pup.
type Theme interface {
	// ID returns a unique identifier for this theme (e.g., "classic", "mini").
	// Used for CLI flags and config.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Frames returns the animation cels for a behavior, cycled in order.
	// Every behavior yields at least one frame.
	Frames(b pet.Behavior) []Frame
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from a theme's init() function.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID()]; exists {
		panic(fmt.Sprintf("sprites: theme %q already registered", t.ID()))
	}

	themes[t.ID()] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for _, t := range themes {
		result = append(result, ThemeInfo{
			ID:    t.ID(),
			Title: t.Title(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered theme by its ID.
// Returns an error if the theme ID is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return nil, fmt.Errorf("sprites: unknown theme %q", id)
	}

	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// Static is a Theme backed by a fixed frame table, the common case for
// hand-drawn sprite sets.
type Static struct {
	id     string
	title  string
	frames map[pet.Behavior][]Frame
}

// NewStatic builds a static theme from a frame table. Behaviors missing
// from the table fall back to the Idle frames.
func NewStatic(id, title string, frames map[pet.Behavior][]Frame) *Static {
	return &Static{id: id, title: title, frames: frames}
}

// ID returns the theme identifier.
func (s *Static) ID() string { return s.id }

// Title returns the display name.
func (s *Static) Title() string { return s.title }

// Frames returns the cels for a behavior, falling back to Idle.
func (s *Static) Frames(b pet.Behavior) []Frame {
	if frames, ok := s.frames[b]; ok && len(frames) > 0 {
		return frames
	}
	return s.frames[pet.BehaviorIdle]
}
