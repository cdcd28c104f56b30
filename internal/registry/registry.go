// Package registry provides a global registry for sandbox scenes.
// Scenes register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// Scene is a named starting layout for a sandbox.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "beach").
	// Used for CLI commands and session history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary shown in menus.
	Description() string

	// Populate spawns the scene's particles into sim. It is called on an
	// empty simulation whose size is already set.
	Populate(sim *world.Simulation)
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SceneInfo)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	s := f()
	infos[id] = SceneInfo{ID: id, Title: s.Title(), Description: s.Description()}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
