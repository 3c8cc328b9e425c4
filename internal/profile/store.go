package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orderly-eats/gateway/internal/models"
)

// DocumentKey is the fixed key the profile document lives under.
const DocumentKey = "orderlyUserProfile"

// Store is an observable store for the single profile document. Writes
// broadcast a payload-free change signal; subscribers re-read the store.
type Store struct {
	db *gorm.DB

	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// NewStore creates a Store backed by the documents table in db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:   db,
		subs: make(map[int]chan struct{}),
	}
}

// Load returns the persisted profile. A missing row or a document that no
// longer parses both yield the template profile; reads never fail upward.
func (s *Store) Load(ctx context.Context) models.Profile {
	var doc models.Document
	if err := s.db.WithContext(ctx).Where("key = ?", DocumentKey).First(&doc).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[profile] failed to read document: %v", err)
		}
		return models.TemplateProfile()
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(doc.Value), &p); err != nil {
		log.Printf("[profile] stored document is malformed, serving template: %v", err)
		return models.TemplateProfile()
	}
	return p
}

// Save upserts the profile document and notifies subscribers.
func (s *Store) Save(ctx context.Context, p models.Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	doc := models.Document{Key: DocumentKey, Value: string(payload), UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return err
	}

	s.Notify()
	return nil
}

// Reset writes the template profile back and notifies subscribers.
func (s *Store) Reset(ctx context.Context) (models.Profile, error) {
	p := models.TemplateProfile()
	if err := s.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// RecordOrder applies the post-order counter update against a fresh read of
// the document, not a caller-held copy, and returns the updated profile.
func (s *Store) RecordOrder(ctx context.Context, totalSpent int) (models.Profile, error) {
	p := s.Load(ctx)
	p.OrdersPlaced++
	p.TotalSpent += totalSpent
	p.RestaurantsTried++
	p.AvgRating = 4.5
	if err := s.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Subscribe registers for change notifications. The returned channel carries
// coalesced, payload-free signals; the cancel func must be called to
// unregister. Slow subscribers miss intermediate signals rather than block
// writers.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// Notify broadcasts a change signal to all subscribers without blocking.
func (s *Store) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// NotifyAfter re-broadcasts the change signal after the given delay, used to
// nudge late-attaching consumers after an order lands.
func (s *Store) NotifyAfter(d time.Duration) {
	time.AfterFunc(d, s.Notify)
}
