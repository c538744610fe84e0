package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"motosync-api/models"
)

// Snapshot is the full dataset at one point in time. Engine checks run
// against a snapshot, never against storage handles.
type Snapshot struct {
	Yards       []models.Yard
	Spots       []models.Spot
	Motorcycles []models.Motorcycle
	Users       []models.User
}

// SnapshotRepository layers typed load/save on a Store and serializes
// every mutation. The store has no transactions, so read-validate-write
// must not interleave: two nearly simultaneous submissions would both
// pass validation against the same stale snapshot.
type SnapshotRepository struct {
	store Store
	mu    sync.Mutex
}

func NewSnapshotRepository(store Store) *SnapshotRepository {
	return &SnapshotRepository{store: store}
}

// Load reads the full dataset. Absent keys yield empty lists.
func (r *SnapshotRepository) Load() (*Snapshot, error) {
	snap := &Snapshot{}
	if err := r.loadKey(KeyYards, &snap.Yards); err != nil {
		return nil, err
	}
	if err := r.loadKey(KeySpots, &snap.Spots); err != nil {
		return nil, err
	}
	if err := r.loadKey(KeyMotorcycles, &snap.Motorcycles); err != nil {
		return nil, err
	}
	if err := r.loadKey(KeyUsers, &snap.Users); err != nil {
		return nil, err
	}
	return snap, nil
}

// Update runs fn against a fresh snapshot under the repository lock and
// persists the result. If fn returns an error nothing is written, so a
// failed validation leaves the store untouched.
func (r *SnapshotRepository) Update(fn func(*Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.Load()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return r.save(snap)
}

func (r *SnapshotRepository) save(snap *Snapshot) error {
	if err := r.saveKey(KeyYards, snap.Yards); err != nil {
		return err
	}
	if err := r.saveKey(KeySpots, snap.Spots); err != nil {
		return err
	}
	if err := r.saveKey(KeyMotorcycles, snap.Motorcycles); err != nil {
		return err
	}
	return r.saveKey(KeyUsers, snap.Users)
}

func (r *SnapshotRepository) loadKey(key string, out interface{}) error {
	data, ok, err := r.store.Get(key)
	if err != nil {
		return err
	}
	if !ok || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("corrupt data under %q: %w", key, err)
	}
	return nil
}

func (r *SnapshotRepository) saveKey(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return r.store.Set(key, data)
}
