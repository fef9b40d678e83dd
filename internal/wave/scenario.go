package wave

import (
	"fmt"
	"io"
)

// DefaultEdits are the edits applied after the baseline in RunScenario.
var DefaultEdits = []Params{
	{Amplitude: 12.5, Frequency: 10, Cycles: 7},
	{Amplitude: 47, Frequency: 22, Cycles: 3},
}

// RunScenario commits the live wave as a baseline, applies and commits each
// edit, then walks back through the history and forward again, writing the
// live wave after every step.
func RunScenario(w io.Writer, app *App, edits []Params) error {
	app.Commit("Baseline")
	for i, p := range edits {
		app.Set(p)
		app.Commit(fmt.Sprintf("Edit %d", i+1))
	}

	if err := step(w, app, "Current data:", nil); err != nil {
		return err
	}
	for i := 1; i <= len(edits); i++ {
		if err := step(w, app, fmt.Sprintf("After %s:", count(i, "undo")), app.Undo); err != nil {
			return err
		}
	}
	for i := 1; i <= len(edits); i++ {
		if err := step(w, app, fmt.Sprintf("After %s:", count(i, "redo")), app.Redo); err != nil {
			return err
		}
	}
	return nil
}

func step(w io.Writer, app *App, title string, action func() bool) error {
	if action != nil {
		action()
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	return app.Show(w)
}

func count(n int, noun string) string {
	words := []string{"zero", "one", "two", "three", "four", "five"}
	word := fmt.Sprint(n)
	if n < len(words) {
		word = words[n]
	}
	if n == 1 {
		return word + " " + noun
	}
	return word + " " + noun + "s"
}
