package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// HelpCmd implements "help [verb]".
type HelpCmd struct {
	Registry *Registry
}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Description() string { return "Lists the commands, or describes one. Usage: help [command]" }
func (c *HelpCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	if topic := field(line, 0); topic != "" {
		cmd, ok := c.Registry.Lookup(topic)
		if !ok {
			fmt.Fprintf(output, "*** No help on %s\n", topic)
			return nil
		}
		fmt.Fprintln(output, cmd.Description())
		return nil
	}

	const header = "Documented commands (type help <topic>):"
	fmt.Fprintln(output)
	fmt.Fprintln(output, header)
	fmt.Fprintln(output, strings.Repeat("=", len(header)))
	fmt.Fprintln(output, strings.Join(c.Registry.Verbs(), "  "))
	fmt.Fprintln(output)
	return nil
}
