// Package command demonstrates the Command pattern: actions captured as
// values, executed against a receiver by an invoker that never learns
// their concrete types.
//
// 🚀 What is a command?
//
//	Each command captures its receiver (an Editor) and its parameters at
//	construction; Execute performs the captured action. Commands that can
//	reverse themselves additionally implement Undoable. The Invoker runs
//	commands, keeps an execution log for replay/audit, and pops the
//	history stack to undo the most recent reversible action.
//
// ✨ Key properties:
//   - Parameters are frozen at construction, not at execution
//   - Execute may run repeatedly; each run re-applies the action
//   - The invoker depends only on the Execute/Undo capabilities
//
// ⚙️ Usage:
//
//	ed := command.NewEditor()
//	inv := command.NewInvoker()
//	_ = inv.Do(command.NewInsert(ed, "hello"))
//	_ = inv.UndoLast() // editor text is empty again
package command
