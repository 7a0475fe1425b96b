// Package store holds the ordered, in-memory item collection.
//
// A Store is owned by a single control flow and is not safe for concurrent
// use. All mutation goes through Add, Update and Delete.
package store

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

type Store struct {
	items []model.Item
	now   Clock
	ids   IDGenerator
	log   *zap.Logger
}

type Option func(*Store)

func WithClock(c Clock) Option { return func(s *Store) { s.now = c } }

func WithIDGenerator(g IDGenerator) Option { return func(s *Store) { s.ids = g } }

func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.log = l } }

// New returns an empty store using the wall clock and UUID ids unless told otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		ids: UUIDs{},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new item and returns it. It never fails and does not validate.
func (s *Store) Add(title, description string) model.Item {
	it := model.Item{
		ID:          s.ids.NewID(),
		Title:       title,
		Description: description,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}
	s.items = append(s.items, it)
	s.log.Debug("item added", zap.String("id", it.ID), zap.Int("count", len(s.items)))
	return it
}

// Update replaces title and description of the item with the given id.
// An unknown id is a no-op.
func (s *Store) Update(id, title, description string) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug("update of unknown item ignored", zap.String("id", id))
		return
	}
	s.items[i].Title = title
	s.items[i].Description = description
	s.log.Debug("item updated", zap.String("id", id))
}

// Delete removes every item whose id matches. An unknown id is a no-op.
func (s *Store) Delete(id string) {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it model.Item) bool { return it.ID == id })
	if len(s.items) == before {
		s.log.Debug("delete of unknown item ignored", zap.String("id", id))
		return
	}
	s.log.Debug("item deleted", zap.String("id", id), zap.Int("count", len(s.items)))
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

// Get looks up a single item by id.
func (s *Store) Get(id string) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
