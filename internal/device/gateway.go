package device

import (
	"errors"

	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/wake"
)

// ErrNoSnapshot is returned by Gateway.Load when no complete snapshot exists.
// A first boot and a partially written record both look like this; the caller
// starts from defaults rather than trusting half a save.
var ErrNoSnapshot = errors.New("device: no snapshot")

// Snapshot is the full persisted record of a pup: every stat plus the save
// moment. It is written and read as one unit so a power loss can never leave
// the stats and the stamp disagreeing.
type Snapshot struct {
	Stats pet.Stats
	Stamp wake.Stamp
}

// Gateway is the interface for snapshot persistence.
// It allows the device to save and restore state without depending on the
// storage package.
type Gateway interface {
	// Load reads the last saved snapshot. It returns ErrNoSnapshot when no
	// complete record exists.
	Load() (Snapshot, error)

	// Save writes the snapshot atomically, replacing any previous record.
	// It must be durable before returning.
	Save(snap Snapshot) error

	// Clear removes the persisted record entirely. A Load after Clear
	// returns ErrNoSnapshot.
	Clear() error
}
