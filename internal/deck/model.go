package deck

import (
	"log"
	"sync"

	"ygodeck/internal/card"
	"ygodeck/internal/diag"
)

// Store loads and saves both decks. Implementations handle their own
// failures: Load returns empty decks and Save logs.
type Store interface {
	Load() (main, extra []Entry)
	Save(main, extra []Entry)
}

// Notifier receives a Change after every successful mutation
type Notifier interface {
	Publish(Change)
}

// Change describes a committed mutation
type Change struct {
	Op     string
	Mode   Mode
	Counts Counts
}

// Counts summarises both decks. Category buckets cover the active deck only.
type Counts struct {
	MainTotal  int `json:"mainTotal"`
	ExtraTotal int `json:"extraTotal"`
	Monster    int `json:"monster"`
	Spell      int `json:"spell"`
	Trap       int `json:"trap"`
}

// Option configures a Model
type Option func(*Model)

// WithNotifier publishes changes to n
func WithNotifier(n Notifier) Option {
	return func(m *Model) { m.notifier = n }
}

// WithLimits overrides the construction caps
func WithLimits(l Limits) Option {
	return func(m *Model) { m.limits = l }
}

// Model holds the main and extra decks and the active mode. Every method is
// atomic: caps are validated and the result committed under one lock.
type Model struct {
	mu       sync.Mutex
	main     []Entry
	extra    []Entry
	mode     Mode
	limits   Limits
	store    Store
	notifier Notifier
}

// NewModel loads both decks from store and starts in main mode
func NewModel(store Store, opts ...Option) *Model {
	m := &Model{
		mode:   ModeMain,
		limits: DefaultLimits,
		store:  store,
	}
	for _, opt := range opts {
		opt(m)
	}

	if store != nil {
		main, extra := store.Load()
		m.main = normalize(main, m.limits.MainMax, m.limits.CopyMax, ModeMain)
		m.extra = normalize(extra, m.limits.ExtraMax, m.limits.CopyMax, ModeExtra)
	}
	return m
}

// Limits returns the construction caps in force
func (m *Model) Limits() Limits {
	return m.limits
}

// Mode returns the active mode
func (m *Model) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// SetMode switches the active deck. Nothing is persisted.
func (m *Model) SetMode(mode Mode) error {
	if mode != ModeMain && mode != ModeExtra {
		return diag.New(ErrUnknownMode, diag.MsgUnknownDeck, string(mode))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.notifyLocked("mode")
	return nil
}

// Add puts one copy of c into the active deck
func (m *Model) Add(c card.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.activeLocked()
	max := m.limits.Max(m.mode)

	if Total(*target) >= max {
		return diag.New(ErrDeckFull, diag.MsgDeckFull, m.mode.Label(), max)
	}

	if i := indexOf(*target, c.ID); i >= 0 {
		if (*target)[i].Qty >= m.limits.CopyMax {
			return diag.New(ErrCopyLimit, diag.MsgCopyLimit, m.limits.CopyMax)
		}
		(*target)[i].Qty++
	} else {
		*target = append(*target, NewEntry(c))
	}

	m.commitLocked("add")
	return nil
}

// ChangeQty applies delta (+1 or -1) to the entry at index. An entry that
// drops to zero copies is removed.
func (m *Model) ChangeQty(index, delta int) error {
	if delta != 1 && delta != -1 {
		return diag.New(ErrInvalidDelta, diag.MsgBadQuantity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.activeLocked()
	if index < 0 || index >= len(*target) {
		return diag.New(ErrNoEntry, diag.MsgNoEntry)
	}

	entry := &(*target)[index]
	if delta > 0 {
		if entry.Qty >= m.limits.CopyMax {
			return diag.New(ErrCopyLimit, diag.MsgCopyLimitQty, m.limits.CopyMax)
		}
		if Total(*target)+1 > m.limits.Max(m.mode) {
			return diag.New(ErrDeckFull, diag.MsgWouldExceed)
		}
		entry.Qty++
	} else {
		entry.Qty--
		if entry.Qty <= 0 {
			*target = append((*target)[:index], (*target)[index+1:]...)
		}
	}

	m.commitLocked("qty")
	return nil
}

// RemoveAt deletes the entry at index from the active deck
func (m *Model) RemoveAt(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.activeLocked()
	if index < 0 || index >= len(*target) {
		return diag.New(ErrNoEntry, diag.MsgNoEntry)
	}
	*target = append((*target)[:index], (*target)[index+1:]...)

	m.commitLocked("remove")
	return nil
}

// ClearActive empties the active deck
func (m *Model) ClearActive() {
	m.mu.Lock()
	defer m.mu.Unlock()

	*m.activeLocked() = nil
	m.commitLocked("clear")
}

// Snapshot returns a copy of the selected deck
func (m *Model) Snapshot(which Which) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var src []Entry
	switch which {
	case Main:
		src = m.main
	case Extra:
		src = m.extra
	default:
		src = *m.activeLocked()
	}
	return append([]Entry{}, src...)
}

// Counts returns deck totals and the category breakdown of the active deck
func (m *Model) Counts() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countsLocked()
}

func (m *Model) countsLocked() Counts {
	c := Counts{
		MainTotal:  Total(m.main),
		ExtraTotal: Total(m.extra),
	}
	for _, e := range *m.activeLocked() {
		switch card.Classify(e.Type) {
		case card.CategoryMonster:
			c.Monster += e.Qty
		case card.CategorySpell:
			c.Spell += e.Qty
		case card.CategoryTrap:
			c.Trap += e.Qty
		}
	}
	return c
}

func (m *Model) activeLocked() *[]Entry {
	if m.mode == ModeExtra {
		return &m.extra
	}
	return &m.main
}

// commitLocked persists both decks and notifies. Callers hold mu so saves
// land in mutation order.
func (m *Model) commitLocked(op string) {
	if m.store != nil {
		m.store.Save(append([]Entry{}, m.main...), append([]Entry{}, m.extra...))
	}
	m.notifyLocked(op)
}

func (m *Model) notifyLocked(op string) {
	if m.notifier == nil {
		return
	}
	m.notifier.Publish(Change{Op: op, Mode: m.mode, Counts: m.countsLocked()})
}

func indexOf(entries []Entry, id int) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// normalize repairs persisted data so the invariants hold: qty is clamped
// to [1, copyMax], repeated ids are merged and copies past the deck cap are
// dropped.
func normalize(entries []Entry, max, copyMax int, mode Mode) []Entry {
	out := make([]Entry, 0, len(entries))
	total := 0
	for _, e := range entries {
		if e.Qty < 1 {
			e.Qty = 1
		}

		if i := indexOf(out, e.ID); i >= 0 {
			log.Printf("⚠️ %s deck: merged duplicate entry for card %d", mode, e.ID)
			room := copyMax - out[i].Qty
			add := min(e.Qty, room, max-total)
			if add > 0 {
				out[i].Qty += add
				total += add
			}
			continue
		}

		if e.Qty > copyMax {
			log.Printf("⚠️ %s deck: card %d had %d copies, clamped to %d", mode, e.ID, e.Qty, copyMax)
			e.Qty = copyMax
		}
		if total+e.Qty > max {
			e.Qty = max - total
			log.Printf("⚠️ %s deck: dropped copies of card %d beyond the %d card limit", mode, e.ID, max)
			if e.Qty <= 0 {
				continue
			}
		}
		out = append(out, e)
		total += e.Qty
	}
	return out
}
