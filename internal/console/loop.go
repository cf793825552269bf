package console

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunStream executes r line by line without a prompt, as when input is piped.
// End of input is handled like the EOF command. Cancelling ctx returns at
// once, even while a read is pending; the reader goroutine then exits after
// its current read.
func (c *Console) RunStream(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("context done, leaving", zap.Error(ctx.Err()))
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return errors.Wrap(err, "read input")
				}
				c.Execute(ctx, "EOF")
				return nil
			}
			if c.Execute(ctx, line) {
				return nil
			}
		}
	}
}

// InteractiveOptions configures RunInteractive.
type InteractiveOptions struct {
	Prompt      string
	HistoryFile string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	// IsTerminal overrides terminal detection; nil checks stdout.
	IsTerminal func() bool
}

// RunInteractive reads commands with line editing until quit, end of input,
// an interrupt on an empty line, or the cancellation of ctx.
func (c *Console) RunInteractive(ctx context.Context, opts InteractiveOptions) error {
	stdin := readline.NewCancelableStdin(opts.Stdin)
	cfg := &readline.Config{
		Prompt:            opts.Prompt,
		HistoryFile:       opts.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "",
		HistorySearchFold: true,
		Stdin:             stdin,
		Stdout:            opts.Stdout,
		Stderr:            opts.Stderr,
		FuncIsTerminal:    opts.IsTerminal,
	}
	if opts.IsTerminal != nil && !opts.IsTerminal() {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		_ = stdin.Close()
		return errors.Wrap(err, "initialize line editor")
	}
	// Closing the editor leaves stdin open, and a pending read on it would
	// block the editor's Close.
	var closeOnce sync.Once
	closeEditor := func() {
		closeOnce.Do(func() {
			_ = stdin.Close()
			_ = l.Close()
		})
	}
	defer closeEditor()

	// Closing the editor unblocks a pending Readline with io.EOF.
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			closeEditor()
		case <-finished:
		}
	}()

	for {
		line, err := l.Readline()
		if ctx.Err() != nil {
			c.logger.Debug("context done, leaving", zap.Error(ctx.Err()))
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				c.logger.Debug("interrupted on empty line, leaving")
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			c.Execute(ctx, "EOF")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "read line")
		}
		if c.Execute(ctx, line) {
			return nil
		}
	}
}
