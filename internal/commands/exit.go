package commands

import (
	"context"
	"fmt"
	"io"
)

// QuitCmd implements "quit".
type QuitCmd struct{}

func (c *QuitCmd) Name() string        { return "quit" }
func (c *QuitCmd) Description() string { return "Quit command to exit the program." }
func (c *QuitCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	return ErrQuit
}

// EOFCmd handles end of input, typed or real.
type EOFCmd struct{}

func (c *EOFCmd) Name() string        { return "EOF" }
func (c *EOFCmd) Description() string { return "Exits the program at end of input." }
func (c *EOFCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	fmt.Fprintln(output)
	return ErrQuit
}
