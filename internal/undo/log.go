package undo

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/undolog/internal/logging"
)

// noEntry is the cursor value of an empty log.
const noEntry = -1

// entry wraps a committed transaction with metadata.
type entry struct {
	id          string
	description string
	timestamp   time.Time
	tx          Transaction
}

// Log tracks committed transactions and the undo/redo cursor.
type Log struct {
	entries []*entry
	top     int
	undoing bool

	changed func(*Log)

	// Grouping state
	grouping   bool
	groupName  string
	groupItems Transaction

	// Configuration
	maxEntries int
	logger     *logging.Logger
	now        func() time.Time
	newID      func() string
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{
		top:    noEntry,
		logger: logging.Null(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetChangeHandler replaces the change notification callback.
// The callback runs after Clear, Commit, Undo and Redo. Pass nil to remove it.
func (l *Log) SetChangeHandler(fn func(*Log)) {
	l.changed = fn
}

// Clear drops every transaction without deadening or awakening anything.
// Any open group is discarded.
func (l *Log) Clear() {
	if l.undoing {
		l.logger.Debug("ignored clear during undo operation")
		return
	}

	l.entries = nil
	l.top = noEntry
	l.grouping = false
	l.groupName = ""
	l.groupItems = nil

	l.logger.Debug("cleared history")
	l.notify()
}

// Commit appends tx to the history and deadens its items.
// Redo history is discarded first. While grouping, the items are buffered
// until EndGroup instead. Commit does nothing during another commit, undo or
// redo.
func (l *Log) Commit(tx Transaction) {
	l.CommitNamed("", tx)
}

// CommitItem commits a transaction holding a single item.
func (l *Log) CommitItem(item Item) {
	l.CommitNamed("", Transaction{item})
}

// CommitNamed commits tx with a description shown by Entries.
func (l *Log) CommitNamed(description string, tx Transaction) {
	if l.undoing {
		l.logger.Debug("ignored commit during undo operation")
		return
	}

	if l.grouping {
		l.groupItems = append(l.groupItems, tx...)
		return
	}

	l.push(description, tx)
}

// push adds a transaction without checking the guards.
func (l *Log) push(description string, tx Transaction) {
	defer l.begin()()

	if l.HasRedo() {
		dropped := len(l.entries) - 1 - l.top
		l.entries = slices.Delete(l.entries, l.top+1, len(l.entries))
		l.logger.Debug("discarded %d redo transactions", dropped)
	}

	e := &entry{
		id:          l.newID(),
		description: description,
		timestamp:   l.now(),
		tx:          slices.Clone(tx),
	}
	l.entries = append(l.entries, e)

	// Enforce max entries
	if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
		excess := len(l.entries) - l.maxEntries
		l.entries = slices.Delete(l.entries, 0, excess)
		l.logger.Debug("dropped %d oldest transactions", excess)
	}

	l.top = len(l.entries) - 1
	l.logger.Debug("committed transaction %s with %d items", e.id, len(e.tx))

	e.tx.deaden()
	l.notify()
}

// Undo moves the cursor to the previous transaction and awakens it.
// It reports whether the cursor moved; without a predecessor nothing happens.
func (l *Log) Undo() bool {
	if l.undoing {
		l.logger.Debug("ignored undo during undo operation")
		return false
	}
	if !l.HasUndo() {
		return false
	}

	defer l.begin()()

	l.top--
	l.logger.Debug("undo to transaction %s", l.entries[l.top].id)
	l.entries[l.top].tx.awaken()
	l.notify()
	return true
}

// Redo moves the cursor to the next transaction and awakens it.
// It reports whether the cursor moved; without a successor nothing happens.
func (l *Log) Redo() bool {
	if l.undoing {
		l.logger.Debug("ignored redo during undo operation")
		return false
	}
	if !l.HasRedo() {
		return false
	}

	defer l.begin()()

	l.top++
	l.logger.Debug("redo to transaction %s", l.entries[l.top].id)
	l.entries[l.top].tx.awaken()
	l.notify()
	return true
}

// HasUndo reports whether a transaction precedes the cursor.
func (l *Log) HasUndo() bool {
	return l.top > 0
}

// HasRedo reports whether a transaction follows the cursor.
func (l *Log) HasRedo() bool {
	return l.top != noEntry && l.top < len(l.entries)-1
}

// IsUndoing reports whether a commit, undo or redo is in progress.
func (l *Log) IsUndoing() bool {
	return l.undoing
}

// Contents returns a copy of the full history, oldest first.
// The payloads are shared with the log and must be treated as read-only.
func (l *Log) Contents() []Transaction {
	result := make([]Transaction, len(l.entries))
	for i, e := range l.entries {
		result[i] = slices.Clone(e.tx)
	}
	return result
}

// Len returns the number of transactions in the history.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the index of the current transaction, or -1 when empty.
func (l *Log) Cursor() int {
	return l.top
}

// UndoCount returns the number of undo steps available.
func (l *Log) UndoCount() int {
	if l.top == noEntry {
		return 0
	}
	return l.top
}

// RedoCount returns the number of redo steps available.
func (l *Log) RedoCount() int {
	if l.top == noEntry {
		return 0
	}
	return len(l.entries) - 1 - l.top
}

// SetMaxEntries changes the history bound.
// If the history is larger, the oldest transactions are dropped first, then
// the newest redo transactions. The current transaction always survives.
func (l *Log) SetMaxEntries(n int) {
	l.maxEntries = n
	if n <= 0 || len(l.entries) <= n || l.undoing {
		return
	}

	excess := len(l.entries) - n
	head := min(excess, l.top)
	tail := excess - head

	l.entries = slices.Delete(l.entries, len(l.entries)-tail, len(l.entries))
	l.entries = slices.Delete(l.entries, 0, head)
	l.top -= head
	l.logger.Debug("dropped %d oldest and %d redo transactions", head, tail)
}

// MaxEntries returns the history bound, or zero when unbounded.
func (l *Log) MaxEntries() int {
	return max(l.maxEntries, 0)
}

// begin sets the undoing flag and returns the func that resets it.
func (l *Log) begin() func() {
	l.undoing = true
	return func() {
		l.undoing = false
	}
}

func (l *Log) notify() {
	if l.changed != nil {
		l.changed(l)
	}
}
