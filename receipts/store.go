package receipts

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketLocalStorage = []byte("localStorage")
	keyReceiptHistory  = []byte("receiptHistory")
)

// Store is the local receipt history
type Store interface {
	Load() ([]Record, error)
	Append(Record) error
}

// BoltStore keeps the receipt history as one JSON array in a bbolt file
type BoltStore struct {
	db     *bolt.DB
	logger *log.Logger
}

// OpenBoltStore opens (or creates) the history file at path
func OpenBoltStore(path string, logger *log.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open receipt store %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLocalStorage)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db, logger: logger}, nil
}

// Close releases the underlying Bolt database handle
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the stored history. A missing or unreadable value is an empty history.
func (s *BoltStore) Load() ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		records = s.decode(tx.Bucket(bucketLocalStorage).Get(keyReceiptHistory))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Append adds r to the end of the history and rewrites it
func (s *BoltStore) Append(r Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketLocalStorage)
		records := append(s.decode(bucket.Get(keyReceiptHistory)), r)
		payload, err := json.Marshal(records)
		if err != nil {
			return err
		}
		return bucket.Put(keyReceiptHistory, payload)
	})
}

// Put overwrites the raw stored value
func (s *BoltStore) Put(raw []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLocalStorage).Put(keyReceiptHistory, raw)
	})
}

func (s *BoltStore) decode(raw []byte) []Record {
	if len(raw) == 0 {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Error("Error parsing receipt history", "err", err)
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

// MemoryStore is an in-process history
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore creates a history holding records
func NewMemoryStore(records ...Record) *MemoryStore {
	return &MemoryStore{records: append([]Record(nil), records...)}
}

func (s *MemoryStore) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Append(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

var (
	_ Store = (*BoltStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
