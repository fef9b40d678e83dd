package undo

// BeginGroup starts a transaction group.
// Items committed while grouping are combined into a single transaction.
// Nested calls are ignored, so the first EndGroup closes the group; use
// GroupScope or Group when grouped code may itself open a group.
func (l *Log) BeginGroup(name string) {
	if l.undoing || l.grouping {
		return
	}

	l.grouping = true
	l.groupName = name
	l.groupItems = nil
}

// EndGroup commits every item buffered since BeginGroup as one transaction.
// An empty group commits nothing.
func (l *Log) EndGroup() {
	if l.undoing || !l.grouping {
		return
	}

	l.grouping = false
	items := l.groupItems
	name := l.groupName
	l.groupItems = nil
	l.groupName = ""

	if len(items) == 0 {
		return
	}

	l.push(name, items)
}

// CancelGroup drops the buffered items without committing them.
// Application state already changed by the caller is not restored.
func (l *Log) CancelGroup() {
	if l.undoing {
		return
	}

	l.grouping = false
	l.groupName = ""
	l.groupItems = nil
}

// IsGrouping returns true if a group is open.
func (l *Log) IsGrouping() bool {
	return l.grouping
}

// GroupScope provides a convenient way to group commits using defer.
// Usage:
//
//	func resize(log *undo.Log) {
//	    defer log.GroupScope("Resize").End()
//	    // ... several commits ...
//	}
type GroupScope struct {
	log    *Log
	active bool
}

// GroupScope starts a new group scope.
// A scope opened inside another group does not own it: its End and Cancel
// do nothing, and its commits join the outer group.
func (l *Log) GroupScope(name string) *GroupScope {
	owns := !l.undoing && !l.grouping
	l.BeginGroup(name)
	return &GroupScope{
		log:    l,
		active: owns,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.log.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without committing.
func (g *GroupScope) Cancel() {
	if g.active {
		g.log.CancelGroup()
		g.active = false
	}
}

// Group runs fn inside a group scope.
// If fn returns an error or panics, a group opened by this call is cancelled.
func (l *Log) Group(name string, fn func() error) error {
	scope := l.GroupScope(name)
	defer scope.Cancel()

	if err := fn(); err != nil {
		return err
	}

	scope.End()
	return nil
}
