// Package nvs provides the non-volatile snapshot store for a pup.
// It keeps one small value per field inside a namespaced bucket, the flash
// layout handheld firmware uses, backed by a BoltDB file so every save is a
// single durable transaction.
package nvs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/vovakirdan/pocketpup/internal/device"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/wake"
)

// namespace is the default bucket holding every persisted field.
const namespace = "puppy"

// Field keys inside the namespace. The stats default to their factory values
// when a key is missing; saveTime is the existence marker for the whole
// record, so a partial write without it reads back as no snapshot at all.
const (
	keyHunger    = "hunger"
	keyHappiness = "happiness"
	keyEnergy    = "energy"
	keyHealth    = "health"
	keyAge       = "age"
	keyState     = "state"
	keySaveTime  = "saveTime"
	keySaveMonth = "saveMonth"
)

// Store manages the BoltDB file holding a pup snapshot. Each Store reads and
// writes a single bucket; Namespace derives sibling views over the same file
// for hosting several pups at once.
type Store struct {
	db     *bbolt.DB
	bucket string
}

// Open creates or opens the snapshot store at the given path.
// It expands a leading ~ and creates parent directories if needed.
func Open(path string) (*Store, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("nvs: cannot create directory %s: %w", filepath.Dir(path), err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("nvs: cannot open store: %w", err)
	}

	store := &Store{db: db, bucket: namespace}
	if err := store.ensureNamespace(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// OpenReadOnly opens an existing store for inspection without taking the
// writer lock. It fails when no store file exists yet.
func OpenReadOnly(path string) (*Store, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("nvs: cannot open store read-only: %w", err)
	}

	return &Store{db: db, bucket: namespace}, nil
}

// Namespace returns a view over the same database file that keeps its
// snapshot in a separate bucket, one pup per name. Views share the underlying
// handle; closing any of them closes the file for all.
func (s *Store) Namespace(name string) *Store {
	return &Store{db: s.db, bucket: namespace + ":" + name}
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("nvs: store path is required")
	}
	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("nvs: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Clean(path), nil
}

func (s *Store) ensureNamespace() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(s.bucket))
		return err
	})
	if err != nil {
		return fmt.Errorf("nvs: cannot create namespace: %w", err)
	}
	return nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes the full snapshot in one transaction. All fields land or none
// do, so a crash mid-save can never leave stats and stamp disagreeing.
func (s *Store) Save(snap device.Snapshot) error {
	fields := []struct {
		key   string
		value string
	}{
		{keyHunger, strconv.Itoa(snap.Stats.Hunger)},
		{keyHappiness, strconv.Itoa(snap.Stats.Happiness)},
		{keyEnergy, strconv.Itoa(snap.Stats.Energy)},
		{keyHealth, strconv.Itoa(snap.Stats.Health)},
		{keyAge, strconv.FormatUint(snap.Stats.Age, 10)},
		{keyState, strconv.Itoa(int(snap.Stats.Behavior))},
		{keySaveTime, strconv.FormatUint(uint64(snap.Stamp.Minutes), 10)},
		{keySaveMonth, strconv.Itoa(snap.Stamp.Month)},
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(s.bucket))
		if err != nil {
			return err
		}
		for _, f := range fields {
			if err := bucket.Put([]byte(f.key), []byte(f.value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("nvs: cannot save snapshot: %w", err)
	}
	return nil
}

// Load reads the last saved snapshot. A missing or unreadable save moment
// means the record cannot be trusted as a whole and reads back as
// device.ErrNoSnapshot; individual missing stats fall back to their factory
// defaults and out-of-range values are clamped.
func (s *Store) Load() (device.Snapshot, error) {
	var snap device.Snapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(s.bucket))
		if bucket == nil {
			return device.ErrNoSnapshot
		}

		raw := bucket.Get([]byte(keySaveTime))
		if raw == nil {
			return device.ErrNoSnapshot
		}
		saveTime, err := strconv.ParseUint(string(raw), 10, 32)
		if err != nil {
			return device.ErrNoSnapshot
		}

		snap.Stamp = wake.Stamp{
			Minutes: uint32(saveTime),
			Month:   getInt(bucket, keySaveMonth, 0),
		}
		snap.Stats = pet.Stats{
			Hunger:    getInt(bucket, keyHunger, pet.DefaultHunger),
			Happiness: getInt(bucket, keyHappiness, pet.DefaultHappiness),
			Energy:    getInt(bucket, keyEnergy, pet.DefaultEnergy),
			Health:    getInt(bucket, keyHealth, pet.DefaultHealth),
			Age:       getUint(bucket, keyAge, 0),
			Behavior:  pet.BehaviorFromInt(getInt(bucket, keyState, 0)),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, device.ErrNoSnapshot) {
			return device.Snapshot{}, err
		}
		return device.Snapshot{}, fmt.Errorf("nvs: cannot load snapshot: %w", err)
	}

	snap.Stats.ClampAll()
	return snap, nil
}

// Clear removes the whole namespace. A Load afterwards reports no snapshot.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(s.bucket)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(s.bucket))
		return err
	})
	if err != nil {
		return fmt.Errorf("nvs: cannot clear snapshot: %w", err)
	}
	return nil
}

func getInt(bucket *bbolt.Bucket, key string, def int) int {
	raw := bucket.Get([]byte(key))
	if raw == nil {
		return def
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return def
	}
	return v
}

func getUint(bucket *bbolt.Bucket, key string, def uint64) uint64 {
	raw := bucket.Get([]byte(key))
	if raw == nil {
		return def
	}
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// Ensure Store implements the device persistence gateway
var _ device.Gateway = (*Store)(nil)
