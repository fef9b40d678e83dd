// Package script drives a wave app from Lua.
//
// Scripts run in a state with only the base, table, string and math
// libraries opened. The following globals are installed:
//
//	set(amplitude, frequency, cycles)  replace the live wave
//	commit([description])              record the live wave
//	undo() / redo()                    step through history, return true if moved
//	clear()                            drop the history
//	has_undo() / has_redo()            query the cursor
//	state()                            table with amplitude, frequency, cycles, samples
//	history()                          array of {id, description, items, current}
//	show()                             write the live wave to the output
//
// print writes to the runner's output instead of stdout.
package script
