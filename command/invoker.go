package command

// Invoker runs commands without knowing their concrete types, keeping an
// execution log for replay and a stack of undoable commands.
//
// Invoker is not safe for concurrent use.
type Invoker struct {
	log     []string
	history []Undoable
}

// NewInvoker returns an invoker with empty log and history.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Do executes cmd. Successful executions are appended to the log; those
// that can be reversed are additionally pushed onto the undo stack.
// A failed Execute records nothing.
func (inv *Invoker) Do(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if err := cmd.Execute(); err != nil {
		return err
	}

	inv.log = append(inv.log, cmd.String())
	if u, ok := cmd.(Undoable); ok {
		inv.history = append(inv.history, u)
	}

	return nil
}

// UndoLast reverses the most recent undoable command and pops it off the
// stack. An empty stack returns ErrNothingToUndo.
func (inv *Invoker) UndoLast() error {
	if len(inv.history) == 0 {
		return ErrNothingToUndo
	}

	last := inv.history[len(inv.history)-1]
	if err := last.Undo(); err != nil {
		return err
	}
	inv.history = inv.history[:len(inv.history)-1]

	return nil
}

// History returns a copy of the execution log in run order.
func (inv *Invoker) History() []string {
	out := make([]string, len(inv.log))
	copy(out, inv.log)

	return out
}
