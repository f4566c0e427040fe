package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

var conversationsBucket = []byte("conversations")

// Bolt persists conversation state in a bbolt file, selected with
// STATE_BACKEND=bolt. A failed read degrades that turn to the root state
// instead of failing the webhook.
type Bolt struct {
	db  *bolt.DB
	log zerolog.Logger
}

func NewBolt(path string, logger *zerolog.Logger) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(conversationsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating conversations bucket: %w", err)
	}

	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Bolt{db: db, log: l}, nil
}

func (b *Bolt) Get(userID string) State {
	var s State
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(conversationsBucket).Get([]byte(userID))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &s)
	})
	if err != nil {
		b.log.Error().Err(err).Str("user", userID).Msg("store: reading state")
		return State{}
	}
	return s
}

func (b *Bolt) Set(userID string, s State) {
	err := b.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		return tx.Bucket(conversationsBucket).Put([]byte(userID), data)
	})
	if err != nil {
		b.log.Error().Err(err).Str("user", userID).Msg("store: writing state")
	}
}

func (b *Bolt) Reset(userID string) {
	b.Set(userID, State{})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
