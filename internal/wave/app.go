package wave

import (
	"fmt"
	"io"

	"github.com/dshills/undolog/internal/undo"
)

// App holds the live sine wave and records its history in an undo log.
type App struct {
	live Sine
	log  *undo.Log
}

// NewApp creates an app showing the given wave.
func NewApp(initial Params, log *undo.Log) *App {
	return &App{
		live: NewSine(initial),
		log:  log,
	}
}

// Log returns the app's undo log.
func (a *App) Log() *undo.Log {
	return a.log
}

// Current returns a copy of the live wave.
func (a *App) Current() Sine {
	return a.live.Clone()
}

// Set replaces the live wave. The change is not recorded until Commit.
func (a *App) Set(p Params) {
	a.live = NewSine(p)
}

// Commit records a snapshot of the live wave.
func (a *App) Commit(description string) {
	a.log.CommitNamed(description, undo.Transaction{a.snapshot()})
}

// Undo restores the previous snapshot.
func (a *App) Undo() bool {
	return a.log.Undo()
}

// Redo restores the next snapshot.
func (a *App) Redo() bool {
	return a.log.Redo()
}

func (a *App) snapshot() undo.Item {
	snap := a.live.Clone()
	return undo.Item{
		Data: &snap,
		Deaden: func(data any) any {
			data.(*Sine).Clear()
			return data
		},
		Awaken: func(data any) {
			a.live = data.(*Sine).Clone()
			a.live.Fill()
		},
	}
}

// Show writes the live wave parameters.
func (a *App) Show(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"  amplitude: %g\n  frequency: %g\n  cycles:    %d\n-------------\n",
		a.live.Amplitude, a.live.Frequency, a.live.Cycles)
	return err
}
