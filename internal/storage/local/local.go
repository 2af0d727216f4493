// Package local provides the on-disk fallback implementation of the
// storage.Store interface, backed by BoltDB.
//
// Groups live in one serialized record: bucket "local", key "dnd-groups",
// value a JSON object mapping slug to group. Selections are stored one per
// key, "groupID/dateKey/playerName", so keys of a group share a prefix and
// iterate in date then player order.
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mmynk/quando/internal/models"
	"github.com/mmynk/quando/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const (
	localBucket      = "local"
	selectionsBucket = "selections"

	// GroupsKey is the key of the serialized slug → group record.
	GroupsKey = "dnd-groups"

	keySep = "/"
)

// ErrSlugTaken is returned when a slug already belongs to another group.
var ErrSlugTaken = errors.New("slug already taken")

// Store is a BoltDB-backed fallback store.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Name returns "local".
func (s *Store) Name() string {
	return "local"
}

// Ping checks that the buckets are present.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{localBucket, selectionsBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("%s bucket is missing", name)
			}
		}
		return nil
	})
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateGroup stores the group under its slug. Writing the same group again
// replaces it; a slug held by another group returns ErrSlugTaken.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(group.Slug) == "" {
		return fmt.Errorf("group slug is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(localBucket))
		groups, err := decodeGroups(bucket.Get([]byte(GroupsKey)))
		if err != nil {
			return err
		}
		if existing, ok := groups[group.Slug]; ok && existing.ID != group.ID {
			return fmt.Errorf("%w: %s", ErrSlugTaken, group.Slug)
		}
		groups[group.Slug] = group

		payload, err := json.Marshal(groups)
		if err != nil {
			return fmt.Errorf("marshal groups: %w", err)
		}
		return bucket.Put([]byte(GroupsKey), payload)
	})
}

// GetGroupBySlug returns the group stored under slug, or nil.
func (s *Store) GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var group *models.Group
	err := s.db.View(func(tx *bbolt.Tx) error {
		groups, err := decodeGroups(tx.Bucket([]byte(localBucket)).Get([]byte(GroupsKey)))
		if err != nil {
			return err
		}
		group = groups[slug]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// ListSelections returns the selections of a group in date key, player order.
func (s *Store) ListSelections(ctx context.Context, groupID string) ([]models.Selection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(groupID + keySep)
	selections := []models.Selection{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(selectionsBucket)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var sel models.Selection
			if err := json.Unmarshal(v, &sel); err != nil {
				return fmt.Errorf("unmarshal selection %s: %w", k, err)
			}
			selections = append(selections, sel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selections, nil
}

// UpsertSelection writes one flag, keeping the original CreatedAt when the
// key already exists.
func (s *Store) UpsertSelection(ctx context.Context, sel *models.Selection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.Contains(sel.GroupID, keySep) || strings.Contains(sel.DateKey, keySep) {
		return fmt.Errorf("invalid selection key %q/%q", sel.GroupID, sel.DateKey)
	}

	key := []byte(sel.GroupID + keySep + sel.DateKey + keySep + sel.PlayerName)
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(selectionsBucket))

		record := *sel
		if existing := bucket.Get(key); existing != nil {
			var prev models.Selection
			if err := json.Unmarshal(existing, &prev); err == nil {
				record.CreatedAt = prev.CreatedAt
			}
		}

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal selection: %w", err)
		}
		return bucket.Put(key, payload)
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{localBucket, selectionsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func decodeGroups(payload []byte) (map[string]*models.Group, error) {
	groups := make(map[string]*models.Group)
	if payload == nil {
		return groups, nil
	}
	if err := json.Unmarshal(payload, &groups); err != nil {
		return nil, fmt.Errorf("unmarshal groups: %w", err)
	}
	return groups, nil
}
