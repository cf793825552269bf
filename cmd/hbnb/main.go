package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Giddy-K/AirBnB-clone/internal/commands"
	"github.com/Giddy-K/AirBnB-clone/internal/config"
	"github.com/Giddy-K/AirBnB-clone/internal/console"
	"github.com/Giddy-K/AirBnB-clone/internal/models"
	"github.com/Giddy-K/AirBnB-clone/internal/storage"
	"github.com/Giddy-K/AirBnB-clone/internal/tui"
)

var (
	configPath string
	useTUI     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hbnb",
	Short: "hbnb - command interpreter for the AirBnB clone objects",
	Long: `hbnb reads one command per line and manages BaseModel, User, State,
City, Amenity, Place and Review objects stored in a JSON file.

Commands: create, show, destroy, all, count, update, help, quit.
Each command also accepts the form <Class>.<command>(<args>).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "run the full-screen interface")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hbnb: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin *os.File, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.Source != "" {
		logger.Debug("configuration loaded", zap.String("file", cfg.Source))
	}

	store := storage.New(cfg.Storage.File, models.Defaults(), logger.Named("storage"))
	if err := store.Load(); err != nil {
		return err
	}
	registry, err := commands.NewDefaultRegistry(store, logger.Named("commands"))
	if err != nil {
		return err
	}
	c := console.New(registry, stdout, logger.Named("console"))

	interactive := isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd())
	switch {
	case useTUI:
		err = tui.Run(ctx, c, "hbnb console", logger.Named("tui"))
	case interactive:
		err = c.RunInteractive(ctx, console.InteractiveOptions{
			Prompt:      cfg.Console.Prompt,
			HistoryFile: cfg.Console.HistoryFile,
			Stdin:       stdin,
			Stdout:      stdout,
			Stderr:      os.Stderr,
		})
	default:
		err = c.RunStream(ctx, stdin)
	}

	if saveErr := store.Save(); saveErr != nil {
		logger.Error("final save failed", zap.Error(saveErr))
		if err == nil {
			err = saveErr
		}
	}
	return err
}

// newLogger builds a production logger on stderr so stdout only carries
// command output.
func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
