// Package spawner implements a timed, capacity-limited entity spawner.
//
// The Manager decides when and where entities appear; a Factory owned by the
// host creates and destroys them. Handles returned by the Factory may be
// invalidated by code outside the Manager at any time, so the Manager checks
// liveness through the Factory and forgets dead handles lazily.
package spawner

import (
	"errors"

	"github.com/vovakirdan/tui-spawner/internal/core"
)

// ErrNoTemplate is reported when a Manager is built without a usable template.
// Such a Manager never auto-spawns and refuses explicit spawns.
var ErrNoTemplate = errors.New("spawner: no entity template configured")

// Handle is an opaque, comparable reference to an instantiated entity.
// The zero Handle never refers to a live entity.
type Handle uint64

// Template identifies the prototype the Factory instantiates.
type Template string

// Factory creates and destroys entities on behalf of a Manager.
type Factory interface {
	// Instantiate creates an entity from t at the given placement.
	Instantiate(t Template, pos core.Vec3, rot core.Quat) Handle

	// Destroy removes the entity. Destroying a dead handle is a no-op.
	Destroy(h Handle)

	// IsAlive reports whether h still refers to a live entity.
	IsAlive(h Handle) bool
}

// TemplateChecker is implemented by factories that can tell whether they know
// a template. A Manager consults it once, at construction.
type TemplateChecker interface {
	HasTemplate(t Template) bool
}

// Transform is the spawner's own live placement in the scene.
type Transform interface {
	Position() core.Vec3
	Rotation() core.Quat
}

// Parent attaches spawned entities underneath the spawner in a scene graph.
// Parenting is presentation only; the Manager still owns the handle.
type Parent interface {
	Adopt(child Handle)
}

// Clock supplies monotonically increasing time in seconds.
type Clock interface {
	Now() float64
}

// Stats are cumulative counters since the Manager was created.
type Stats struct {
	Spawned int // Entities created by Spawn (directly or via TrySpawn/Tick)
	Blocked int // TrySpawn calls refused by the capacity limit
	Removed int // RemoveOldest calls that popped an entry
	Cleared int // Alive entities destroyed by ClearAll
	Peak    int // Largest tracked count observed after a spawn
}
