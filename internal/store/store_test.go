package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

// tickingClock advances one second per call.
func tickingClock() Clock {
	t := epoch
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{WithClock(tickingClock()), WithIDGenerator(&Sequence{})}
	return New(append(base, opts...)...)
}

func seeded(t *testing.T, n int) *Store {
	t.Helper()
	s := newTestStore()
	for i := 0; i < n; i++ {
		s.Add("title", "description")
	}
	require.Equal(t, n, s.Len())
	return s
}

func TestAddAssignsFreshIDsInOrder(t *testing.T) {
	for _, gen := range []IDGenerator{&Sequence{}, UUIDs{}} {
		s := New(WithIDGenerator(gen))
		const n = 50
		for i := 0; i < n; i++ {
			s.Add("t", "d")
		}
		items := s.Items()
		require.Len(t, items, n)

		seen := make(map[string]bool, n)
		for _, it := range items {
			assert.NotEmpty(t, it.ID)
			assert.False(t, seen[it.ID], "duplicate id %q", it.ID)
			seen[it.ID] = true
		}
	}
}

func TestAddStampsCreatedAt(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 11, 0, 0, 123456789, time.FixedZone("CEST", 2*3600))
	s := New(WithClock(func() time.Time { return fixed }), WithIDGenerator(&Sequence{}))

	it := s.Add("Buy milk", "2% milk")

	assert.Equal(t, "1", it.ID)
	assert.Equal(t, "Buy milk", it.Title)
	assert.Equal(t, "2% milk", it.Description)
	assert.True(t, it.CreatedAt.Equal(fixed.Truncate(time.Millisecond)))
	assert.Equal(t, time.UTC, it.CreatedAt.Location())
	assert.Equal(t, "2026-10-18T09:00:00.123Z", it.CreatedISO())
}

func TestAddAppendsToEnd(t *testing.T) {
	s := newTestStore()
	a := s.Add("a", "1")
	b := s.Add("b", "2")
	c := s.Add("c", "3")

	if diff := cmp.Diff([]model.Item{a, b, c}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateExisting(t *testing.T) {
	s := seeded(t, 3)
	before := s.Items()
	target := before[1]

	s.Update(target.ID, "new title", "new description")

	after := s.Items()
	require.Len(t, after, 3)
	assert.Equal(t, target.ID, after[1].ID)
	assert.Equal(t, target.CreatedAt, after[1].CreatedAt)
	assert.Equal(t, "new title", after[1].Title)
	assert.Equal(t, "new description", after[1].Description)

	// neighbours untouched
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestUpdateUnknownIsNoop(t *testing.T) {
	s := seeded(t, 3)
	before := s.Items()

	s.Update("does-not-exist", "x", "y")

	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}

func TestUpdateUnknownIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := newTestStore(WithLogger(zap.New(core)))

	s.Update("ghost", "x", "y")

	entries := logs.FilterMessage("update of unknown item ignored").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ghost", entries[0].ContextMap()["id"])
}

func TestDeleteExisting(t *testing.T) {
	s := seeded(t, 3)
	before := s.Items()

	s.Delete(before[1].ID)

	want := []model.Item{before[0], before[2]}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	_, ok := s.Get(before[1].ID)
	assert.False(t, ok)
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	s := seeded(t, 2)
	before := s.Items()

	s.Delete("does-not-exist")

	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}

func TestDeleteTwiceMatchesOnce(t *testing.T) {
	once := seeded(t, 3)
	twice := seeded(t, 3)
	id := once.Items()[0].ID
	require.Equal(t, id, twice.Items()[0].ID)

	once.Delete(id)
	twice.Delete(id)
	twice.Delete(id)

	if diff := cmp.Diff(once.Items(), twice.Items()); diff != "" {
		t.Fatalf("double delete diverged (-once +twice):\n%s", diff)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := seeded(t, 1)
	items := s.Items()
	items[0].Title = "mutated"

	got, ok := s.Get(items[0].ID)
	require.True(t, ok)
	assert.Equal(t, "title", got.Title)
}

func TestAddUpdateDeleteScenario(t *testing.T) {
	s := New(WithClock(tickingClock()))

	added := s.Add("Buy milk", "2% milk")
	require.Equal(t, 1, s.Len())
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	s.Update(added.ID, "Buy oat milk", "2% milk")
	got, ok := s.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Equal(t, "2% milk", got.Description)
	assert.Equal(t, added.CreatedAt, got.CreatedAt)

	s.Delete(added.ID)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Items())
}

func TestGenerator(t *testing.T) {
	seq := Generator("sequence")
	assert.Equal(t, "1", seq.NewID())
	assert.Equal(t, "2", seq.NewID())

	assert.IsType(t, UUIDs{}, Generator("uuid"))
	assert.IsType(t, UUIDs{}, Generator(""))
}
