package undo

import "time"

// Info describes one committed transaction.
// Used for displaying the history list to users.
type Info struct {
	ID          string    // Unique transaction ID
	Description string    // Human-readable description, may be empty
	Timestamp   time.Time // When the transaction was committed
	Items       int       // Number of items in the transaction
	Current     bool      // True for the transaction under the cursor
}

// Entries returns info about every transaction, oldest first.
func (l *Log) Entries() []Info {
	result := make([]Info, len(l.entries))
	for i, e := range l.entries {
		result[i] = Info{
			ID:          e.id,
			Description: e.description,
			Timestamp:   e.timestamp,
			Items:       len(e.tx),
			Current:     i == l.top,
		}
	}
	return result
}

// Current returns info about the transaction under the cursor.
func (l *Log) Current() (Info, bool) {
	if l.top == noEntry {
		return Info{}, false
	}
	e := l.entries[l.top]
	return Info{
		ID:          e.id,
		Description: e.description,
		Timestamp:   e.timestamp,
		Items:       len(e.tx),
		Current:     true,
	}, true
}

// Checkpoint returns the ID of the current transaction.
// Pass it to RevertTo to come back to this point later.
func (l *Log) Checkpoint() (string, bool) {
	if l.top == noEntry {
		return "", false
	}
	return l.entries[l.top].id, true
}

// RevertTo undoes or redoes one step at a time until the transaction with
// the given ID is current. Every step awakens its transaction and fires the
// change handler. It returns false if the ID is no longer in the history.
func (l *Log) RevertTo(id string) bool {
	if l.undoing {
		return false
	}

	target := -1
	for i, e := range l.entries {
		if e.id == id {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}

	for l.top > target {
		if !l.Undo() {
			return false
		}
	}
	for l.top < target {
		if !l.Redo() {
			return false
		}
	}
	return true
}
