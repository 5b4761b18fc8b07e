package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for command execution and invoker state.
var (
	// ErrNilReceiver is returned when a command is constructed or run
	// without an editor to act on.
	ErrNilReceiver = errors.New("command: nil receiver")

	// ErrNilCommand is returned when the invoker is handed nothing to run.
	ErrNilCommand = errors.New("command: nil command")

	// ErrNothingToUndo is returned when the undo stack is empty.
	ErrNothingToUndo = errors.New("command: nothing to undo")
)

// Command is the capability an invoker depends on: perform the captured
// action against the captured receiver. Implementations also satisfy
// fmt.Stringer so invokers can log them without knowing their type.
type Command interface {
	// Execute applies the action. It may be called repeatedly; every call
	// re-applies the same captured parameters.
	Execute() error
	// String describes the captured action for logs and replays.
	String() string
}

// Undoable marks commands that can reverse their most recent Execute.
type Undoable interface {
	Command
	// Undo reverses the effect of the last Execute call.
	Undo() error
}

// Editor is the receiver commands act on: a tiny append/truncate text
// buffer. It knows nothing about commands.
type Editor struct {
	text string
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Text returns the current buffer contents.
func (e *Editor) Text() string { return e.text }

// Insert appends s to the buffer.
func (e *Editor) Insert(s string) {
	e.text += s
}

// Delete removes up to n trailing runes and returns what was removed,
// so the caller can restore it later.
func (e *Editor) Delete(n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(e.text)
	if n > len(runes) {
		n = len(runes)
	}
	cut := string(runes[len(runes)-n:])
	e.text = string(runes[:len(runes)-n])

	return cut
}

// insert captures an editor and the text to append. Both are fixed at
// construction; Execute only replays them.
type insert struct {
	ed   *Editor
	text string
}

// NewInsert builds a command that appends text to ed when executed.
func NewInsert(ed *Editor, text string) Undoable {
	return &insert{ed: ed, text: text}
}

// Execute appends the captured text.
func (c *insert) Execute() error {
	if c.ed == nil {
		return ErrNilReceiver
	}
	c.ed.Insert(c.text)

	return nil
}

// Undo removes the text appended by the last Execute.
func (c *insert) Undo() error {
	if c.ed == nil {
		return ErrNilReceiver
	}
	c.ed.Delete(len([]rune(c.text)))

	return nil
}

func (c *insert) String() string { return fmt.Sprintf("insert(%q)", c.text) }

// del captures an editor and a rune count. What was actually removed is
// recorded on Execute so Undo can restore it verbatim.
type del struct {
	ed      *Editor
	n       int
	removed string
}

// NewDelete builds a command that removes the last n runes when executed.
func NewDelete(ed *Editor, n int) Undoable {
	return &del{ed: ed, n: n}
}

// Execute removes up to n trailing runes, remembering them for Undo.
func (c *del) Execute() error {
	if c.ed == nil {
		return ErrNilReceiver
	}
	c.removed = c.ed.Delete(c.n)

	return nil
}

// Undo re-inserts whatever the last Execute removed.
func (c *del) Undo() error {
	if c.ed == nil {
		return ErrNilReceiver
	}
	c.ed.Insert(c.removed)
	c.removed = ""

	return nil
}

func (c *del) String() string { return fmt.Sprintf("delete(%d)", c.n) }
