//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=../mocks/mock_profile_cache.go -package=mocks
package repositories

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"

	"social-sync/domain"
)

const profilePrefix = "profile:"

type IProfileCache interface {
	Get(participantID string) (domain.Participant, bool)
	Put(p domain.Participant) error
	All() ([]domain.Participant, error)
}

// ProfileCache stores resolved participant identities in BadgerDB for the
// lifetime of the session. The daemon opens the database in-memory, so
// nothing outlives the process.
type ProfileCache struct {
	db *badger.DB
}

func NewProfileCache(db *badger.DB) *ProfileCache {
	return &ProfileCache{db: db}
}

func (c *ProfileCache) Get(participantID string) (domain.Participant, bool) {
	var p domain.Participant
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profilePrefix + participantID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return domain.Participant{}, false
	}
	return p, true
}

func (c *ProfileCache) Put(p domain.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profilePrefix+p.ID), data)
	})
}

// All returns every cached profile using a prefix scan. Used by the
// diagnostics inspector.
func (c *ProfileCache) All() ([]domain.Participant, error) {
	var out []domain.Participant
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(profilePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var p domain.Participant
				if err := json.Unmarshal(val, &p); err != nil {
					return err
				}
				out = append(out, p)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}
