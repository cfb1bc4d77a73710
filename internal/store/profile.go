package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/prepcoach/ent"
	"github.com/abhisek/prepcoach/ent/profile"
	"github.com/abhisek/prepcoach/internal/progress"
)

// userLocks hands out one mutex per user ID so that profile updates for a
// single user are serialized while different users proceed in parallel.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) forUser(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
	locks  *userLocks
}

func (r *profileRepo) Load(ctx context.Context, userID string) (*progress.Profile, error) {
	row, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.NewProfile(userID), nil
		}
		return nil, fmt.Errorf("query profile %q: %w", userID, err)
	}
	return profileFromMap(userID, row.Data)
}

func (r *profileRepo) Save(ctx context.Context, p *progress.Profile) error {
	dataMap, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile %q: %w", p.UserID, err)
	}

	row, err := r.client.Profile.Query().
		Where(profile.UserID(p.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile %q: %w", p.UserID, err)
		}
		_, err = r.client.Profile.Create().
			SetUserID(p.UserID).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile %q: %w", p.UserID, err)
		}
		return nil
	}

	_, err = row.Update().SetData(dataMap).Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile %q: %w", p.UserID, err)
	}
	return nil
}

func (r *profileRepo) Update(ctx context.Context, userID string, fn func(p *progress.Profile) error) (*progress.Profile, error) {
	lock := r.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := r.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := r.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// profileToMap converts a Profile to map[string]any for ent JSON storage.
func profileToMap(p *progress.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// profileFromMap converts a stored JSON document back into a Profile.
func profileFromMap(userID string, m map[string]any) (*progress.Profile, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	p := progress.NewProfile(userID)
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	p.UserID = userID
	p.EnsureMaps()
	return p, nil
}
