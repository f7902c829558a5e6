package constclass

import (
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a point-in-time copy of a class, taken under one read lock.
// Later class mutations do not touch it.
type Snapshot struct {
	// ID uniquely identifies this snapshot.
	ID string `json:"id"`

	// Class is the name of the class the snapshot was taken from.
	Class string `json:"class"`

	// TakenAt is when the snapshot was taken, in UTC.
	TakenAt time.Time `json:"taken_at"`

	// Entries holds the constants in registration order.
	Entries []Entry `json:"entries"`
}

// Snapshot captures the current constants.
func (c *Class) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, 0, len(c.order))
	for _, n := range c.order {
		entries = append(entries, Entry{Name: n, Value: c.entries[n]})
	}
	return Snapshot{
		ID:      uuid.NewString(),
		Class:   c.name,
		TakenAt: time.Now().UTC(),
		Entries: entries,
	}
}

// AsMap returns the snapshot entries as a map.
func (s Snapshot) AsMap() map[string]any {
	m := make(map[string]any, len(s.Entries))
	for _, e := range s.Entries {
		m[e.Name] = e.Value
	}
	return m
}

// Changes describes the difference between two constant sets. Each list is
// sorted by name.
type Changes struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	Changed []string `json:"changed,omitempty"`
}

// Empty reports whether the sets were identical.
func (ch Changes) Empty() bool {
	return len(ch.Added) == 0 && len(ch.Removed) == 0 && len(ch.Changed) == 0
}

// DiffSnapshots reports the names added, removed, and changed going from
// before to after.
func DiffSnapshots(before, after Snapshot) Changes {
	return diffMaps(before.AsMap(), after.AsMap())
}

func diffMaps(before, after map[string]any) Changes {
	var ch Changes
	for name, v := range after {
		old, ok := before[name]
		switch {
		case !ok:
			ch.Added = append(ch.Added, name)
		case !reflect.DeepEqual(old, v):
			ch.Changed = append(ch.Changed, name)
		}
	}
	for name := range before {
		if _, ok := after[name]; !ok {
			ch.Removed = append(ch.Removed, name)
		}
	}
	sort.Strings(ch.Added)
	sort.Strings(ch.Removed)
	sort.Strings(ch.Changed)
	return ch
}
