//go:generate mockgen -source=store.go -destination=store_mock.go -package=commands
package commands

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
	"dockhand/internal/config/logger"
)

var bucketCommands = []byte("commands")

// Store is the bbolt backed command registry
type Store interface {
	Service
	// Synchronize creates, updates and deletes commands inside a single transaction
	Synchronize(toCreate, toUpdate, toDelete []*Command) error
	Close() error
}

// Opener opens the store on demand, so only commands that need it lock the database file
type Opener func() (Store, error)

type boltStore struct {
	db  *bolt.DB
	log logger.Logger
}

// NewOpener returns an Opener for the configured store path
func NewOpener(cfg *config.Config, log logger.Logger) Opener {
	return func() (Store, error) {
		return OpenStore(cfg.Store.Path, log)
	}
}

// OpenStore opens or creates the database at path
func OpenStore(path string, log logger.Logger) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: config.StoreTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCommands)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	log = log.WithComponent("STORE")
	log.Debug().Msgf("Store ready at %s", path)

	return &boltStore{db: db, log: log}, nil
}

func (s *boltStore) Command(_ context.Context, id CommandID) (*Command, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketCommands).Get(itob(id))
		if value == nil {
			return errors.ErrCommandNotFound
		}

		data = make([]byte, len(value))
		copy(data, value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	var command Command
	if err := json.Unmarshal(data, &command); err != nil {
		return nil, fmt.Errorf("failed to decode command %d: %w", id, err)
	}

	return &command, nil
}

func (s *boltStore) Commands(_ context.Context) ([]Command, error) {
	commands := make([]Command, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCommands).ForEach(func(_, v []byte) error {
			var command Command
			if err := json.Unmarshal(v, &command); err != nil {
				return err
			}

			commands = append(commands, command)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return commands, nil
}

func (s *boltStore) CreateCommand(_ context.Context, command *Command) error {
	var id CommandID

	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		id, err = storeNew(tx.Bucket(bucketCommands), command)

		return err
	})
	if err != nil {
		return err
	}

	command.ID = id

	return nil
}

func (s *boltStore) UpdateCommand(_ context.Context, id CommandID, command *Command) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCommands)
		if bucket.Get(itob(id)) == nil {
			return errors.ErrCommandNotFound
		}

		return put(bucket, id, command)
	})
	if err != nil {
		return err
	}

	command.ID = id

	return nil
}

func (s *boltStore) DeleteCommand(_ context.Context, id CommandID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCommands)
		if bucket.Get(itob(id)) == nil {
			return errors.ErrCommandNotFound
		}

		return bucket.Delete(itob(id))
	})
}

// Synchronize assigns IDs to toCreate only once the transaction has committed
func (s *boltStore) Synchronize(toCreate, toUpdate, toDelete []*Command) error {
	ids := make([]CommandID, len(toCreate))

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCommands)

		for i, command := range toCreate {
			id, err := storeNew(bucket, command)
			if err != nil {
				return err
			}

			ids[i] = id
		}

		for _, command := range toUpdate {
			if bucket.Get(itob(command.ID)) == nil {
				return fmt.Errorf("%w: %d", errors.ErrCommandNotFound, command.ID)
			}

			if err := put(bucket, command.ID, command); err != nil {
				return err
			}
		}

		for _, command := range toDelete {
			if err := bucket.Delete(itob(command.ID)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for i, command := range toCreate {
		command.ID = ids[i]
	}

	return nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

func storeNew(bucket *bolt.Bucket, command *Command) (CommandID, error) {
	seq, err := bucket.NextSequence()
	if err != nil {
		return 0, err
	}

	id := CommandID(seq)

	if err := put(bucket, id, command); err != nil {
		return 0, err
	}

	return id, nil
}

// put stores command under id without touching the caller's copy
func put(bucket *bolt.Bucket, id CommandID, command *Command) error {
	record := *command
	record.ID = id

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return bucket.Put(itob(id), data)
}

// itob encodes id big-endian so that keys sort numerically
func itob(id CommandID) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))

	return b
}
