// Package console is the hbnb command dispatcher: it classifies each input
// line, rewrites the dotted Class.verb(args) form into canonical verb form and
// runs the matching command.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/internal/commands"
)

// ErrSaveFailed is printed when a command could not persist the store.
const ErrSaveFailed commands.Diagnostic = "** save failed **"

// dictUpdater is implemented by the update command.
type dictUpdater interface {
	ExecuteDict(ctx context.Context, class, id, literal string, output io.Writer) error
}

// Console runs one command per line against a command registry.
type Console struct {
	registry *commands.Registry
	output   io.Writer
	logger   *zap.Logger
}

// New creates a console writing command output to output.
func New(registry *commands.Registry, output io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		registry: registry,
		output:   output,
		logger:   logger,
	}
}

// Execute runs line and reports whether the session should end.
func (c *Console) Execute(ctx context.Context, line string) bool {
	return c.ExecuteTo(ctx, line, c.output)
}

// ExecuteTo runs line writing its result to output.
func (c *Console) ExecuteTo(ctx context.Context, line string, output io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if call, ok := parseDottedCall(line); ok {
		if call.verb == "update" && isDictLiteral(call.rest) {
			return c.updateDict(ctx, call, output)
		}
		line = strings.TrimSpace(call.canonical())
		c.logger.Debug("rewrote dotted call", zap.String("command", line))
	}
	return c.dispatch(ctx, line, output)
}

// dispatch runs a canonical "verb args" line.
func (c *Console) dispatch(ctx context.Context, line string, output io.Writer) bool {
	verb, args := splitVerb(line)
	cmd, exists := c.registry.Lookup(verb)
	if verb == "" || !exists {
		fmt.Fprintf(output, "*** Unknown syntax: %s\n", line)
		return false
	}
	return c.report(cmd.Execute(ctx, args, output), verb, output)
}

func (c *Console) updateDict(ctx context.Context, call dottedCall, output io.Writer) bool {
	cmd, exists := c.registry.Lookup("update")
	if !exists {
		fmt.Fprintf(output, "*** Unknown syntax: %s.update\n", call.class)
		return false
	}
	updater, ok := cmd.(dictUpdater)
	if !ok {
		c.logger.Error("update command does not take dictionaries", zap.String("type", fmt.Sprintf("%T", cmd)))
		return false
	}
	return c.report(updater.ExecuteDict(ctx, call.class, call.id, call.rest, output), "update", output)
}

// report prints the outcome of a command and reports whether it ends the
// session.
func (c *Console) report(err error, verb string, output io.Writer) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, commands.ErrQuit) {
		return true
	}
	var diag commands.Diagnostic
	if errors.As(err, &diag) {
		fmt.Fprintln(output, diag)
		return false
	}
	c.logger.Error("command failed", zap.String("command", verb), zap.Error(err))
	fmt.Fprintln(output, ErrSaveFailed)
	return false
}

// splitVerb splits off the leading identifier of line; the rest is trimmed.
func splitVerb(line string) (verb, args string) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return line[:i], strings.TrimSpace(line[i:])
}
