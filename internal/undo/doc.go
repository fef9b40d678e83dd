// Package undo provides a linear undo/redo transaction log.
//
// The application commits full snapshots of its state. Each commit is a
// Transaction: an ordered list of Items, where every Item holds an opaque
// payload plus two optional lifecycle hooks.
//
// # Deaden and Awaken
//
// Committed snapshots are compacted immediately. Right after a commit the log
// deadens every item of the new transaction, letting the payload drop data
// that can be rebuilt later. When Undo or Redo moves the cursor onto a
// transaction, every item of it is awakened: the hook rebuilds the derived
// data and publishes the payload back into live application state. The log
// never touches application state itself.
//
//	log := undo.New()
//	log.Commit(undo.Transaction{{
//	    Data:   snapshot,
//	    Deaden: func(data any) any { data.(*Doc).DropIndex(); return data },
//	    Awaken: func(data any) { app.Restore(data.(*Doc)) },
//	}})
//
// A payload may instead implement Deadener and Awakener directly. The methods
// are used when the corresponding Item func is nil.
//
// # History
//
// The log keeps a cursor on the current transaction. Undo and Redo move it
// one step and never delete anything. A commit made while redo history exists
// first discards every transaction after the cursor.
//
// # Grouping
//
// Commits made between BeginGroup and EndGroup are merged into one
// transaction, so they undo together:
//
//	defer log.GroupScope("Resize").End()
//
// # Re-entrancy
//
// Commit, Undo and Redo set an undoing flag for their whole extent, hooks and
// the change handler included. Mutating calls made while the flag is set are
// ignored, so a hook cannot corrupt the history it is being called from.
//
// A Log is not safe for concurrent use.
package undo
