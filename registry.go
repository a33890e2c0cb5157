package minabox

import (
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
)

// Item is the layout information registered for one index.
//
// X and Y are the logical position of the item in content space. A locked
// axis ignores the logical position and follows the current scroll offset
// instead, which keeps sticky headers pinned to the viewport.
type Item struct {
	X, Y             float64
	Width, Height    Dimension
	LockHorizontally bool
	LockVertically   bool
}

// Size resolves the item dimensions against the viewport size.
func (it Item) Size(viewport Size) Size {
	return Size{
		Width:  it.Width.Resolve(viewport.Width),
		Height: it.Height.Resolve(viewport.Height),
	}
}

// Registry maps item indices to their layout information.
//
// Lookup must not fail for unknown indices: items are routinely queried
// before they are registered or after they are removed. It reports false
// instead.
type Registry interface {
	Lookup(index int) (Item, bool)
}

// Items is a map-backed Registry. It is not safe to mutate while other
// goroutines read it; use Store for that. A nil Items is an empty,
// read-only registry: create one with make, a literal or NewItems
// before calling Put.
type Items map[int]Item

// NewItems registers count items at indices 0..count-1, asking layout for
// each. A negative count yields an empty registry.
func NewItems(count int, layout func(index int) Item) Items {
	items := make(Items, max(count, 0))
	for i := 0; i < count; i++ {
		items[i] = layout(i)
	}
	return items
}

// Lookup implements Registry.
func (m Items) Lookup(index int) (Item, bool) {
	it, ok := m[index]
	return it, ok
}

// Put registers or replaces the item at index.
func (m Items) Put(index int, it Item) error {
	if index < 0 {
		return fmt.Errorf("put %d: %w", index, ErrNegativeIndex)
	}
	if m == nil {
		return fmt.Errorf("put %d: %w", index, ErrNilItems)
	}
	m[index] = it
	return nil
}

// Delete removes the item at index. Deleting an absent index is a no-op.
func (m Items) Delete(index int) {
	delete(m, index)
}

// Len returns the number of registered items.
func (m Items) Len() int {
	return len(m)
}

// Store is a Registry that may be mutated while resolvers read it.
//
// Writes copy the current item set and publish the copy atomically, so
// readers never block and every Snapshot stays immutable. Writes are
// O(n); Store suits item sets that change per relayout rather than per
// frame.
type Store struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Items]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	s := &Store{}
	empty := Items{}
	s.current.Store(&empty)
	return s
}

// Snapshot returns the current item set. The returned Items must not be
// modified. A nil Store has an empty snapshot.
func (s *Store) Snapshot() Items {
	if s == nil {
		return nil
	}
	if p := s.current.Load(); p != nil {
		return *p
	}
	return nil
}

// Lookup implements Registry against the current snapshot.
func (s *Store) Lookup(index int) (Item, bool) {
	return s.Snapshot().Lookup(index)
}

// Len returns the number of items in the current snapshot.
func (s *Store) Len() int {
	return len(s.Snapshot())
}

// Put registers or replaces the item at index.
func (s *Store) Put(index int, it Item) error {
	if index < 0 {
		return fmt.Errorf("put %d: %w", index, ErrNegativeIndex)
	}
	s.update(func(m Items) { m[index] = it })
	Logger().Debug("minabox: item registered", "index", index)
	return nil
}

// PutAll registers count items at indices first..first+count-1 in one write.
func (s *Store) PutAll(first, count int, layout func(index int) Item) error {
	if first < 0 {
		return fmt.Errorf("put all from %d: %w", first, ErrNegativeIndex)
	}
	if count < 0 {
		return fmt.Errorf("put all %d: %w", count, ErrNegativeCount)
	}
	s.update(func(m Items) {
		for i := first; i < first+count; i++ {
			m[i] = layout(i)
		}
	})
	Logger().Debug("minabox: items registered", "first", first, "count", count)
	return nil
}

// Delete removes the item at index.
func (s *Store) Delete(index int) {
	s.update(func(m Items) { delete(m, index) })
	Logger().Debug("minabox: item removed", "index", index)
}

// Reset removes every item.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	empty := Items{}
	s.current.Store(&empty)
}

func (s *Store) update(fn func(Items)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := maps.Clone(s.Snapshot())
	if next == nil {
		next = Items{}
	}
	fn(next)
	s.current.Store(&next)
}
