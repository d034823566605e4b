package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/modoterra/jrnlvw/internal/buildinfo"
	"github.com/modoterra/jrnlvw/pkg/config"
	"github.com/modoterra/jrnlvw/pkg/core"
	"github.com/modoterra/jrnlvw/pkg/filter"
	"github.com/modoterra/jrnlvw/pkg/journal"
	"github.com/modoterra/jrnlvw/pkg/report"
	tuimodel "github.com/modoterra/jrnlvw/pkg/tui/model"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// stdinName as the logfile argument reads the export from standard input.
const stdinName = "-"

// cliFlags holds the raw flag values of one invocation. Values only
// override the profile when the flag was set explicitly.
type cliFlags struct {
	configPath string
	verbose    bool
	values     config.Options
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	root := &cobra.Command{
		Use:   "jrnlvw [flags] <logfile|->",
		Short: "Viewer for systemd journal JSON exports",
		Long: "jrnlvw reads a journal exported with `journalctl -o json`, groups entries by boot and " +
			"prints them as a table, JSON or CSV. Compressed (zstd, gzip) exports are read transparently.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, f, args[0])
		},
	}

	bindFlags(root.PersistentFlags(), f)

	root.AddCommand(newBrowseCmd(f))
	root.AddCommand(newVersionCmd())
	return root
}

func bindFlags(fs *pflag.FlagSet, f *cliFlags) {
	d := config.Default()
	v := &f.values

	fs.StringVar(&f.configPath, "config", "", "path to a YAML profile (default "+config.DefaultPath+" if present)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")

	fs.BoolVarP(&v.ListBoots, "list-boots", "l", false, "list the boot IDs found in the file and exit")
	fs.BoolVarP(&v.Kernel, "kernel", "k", false, "show kernel messages only")
	fs.StringVarP(&v.Priority, "priority", "p", d.Priority, "maximum level, 0-7 or emerg|alert|crit|err|warning|notice|info|debug")
	fs.StringArrayVarP(&v.Boots, "boot", "b", nil, "show only this boot ID (repeatable)")
	fs.StringArrayVarP(&v.Units, "unit", "u", nil, "show only this unit (repeatable)")
	fs.IntVarP(&v.Number, "number", "n", 0, "maximum entries printed per boot, 0 for all")
	fs.StringVar(&v.SinceTime, "since-time", "", "start of the daily window, HH:MM[:SS]")
	fs.StringVar(&v.UntilTime, "until-time", "", "end of the daily window, HH:MM[:SS]")
	fs.StringVar(&v.SinceDate, "since-date", "", "first day, YYYY-MM-DD")
	fs.StringVar(&v.UntilDate, "until-date", "", "last day, YYYY-MM-DD")
	fs.StringVarP(&v.Output, "output", "o", d.Output, "output format: table, json or csv")
	fs.BoolVar(&v.Color, "color", false, "color the level column of table output")
}

// resolve loads the profile and applies every explicitly set flag on top.
func (f *cliFlags) resolve(fs *pflag.FlagSet, logfile string) (*config.Options, error) {
	o, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return nil, err
	}
	o.Logfile = logfile

	v := &f.values
	overrides := map[string]func(){
		"list-boots": func() { o.ListBoots = v.ListBoots },
		"kernel":     func() { o.Kernel = v.Kernel },
		"priority":   func() { o.Priority = v.Priority },
		"boot":       func() { o.Boots = v.Boots },
		"unit":       func() { o.Units = v.Units },
		"number":     func() { o.Number = v.Number },
		"since-time": func() { o.SinceTime = v.SinceTime },
		"until-time": func() { o.UntilTime = v.UntilTime },
		"since-date": func() { o.SinceDate = v.SinceDate },
		"until-date": func() { o.UntilDate = v.UntilDate },
		"output":     func() { o.Output = v.Output },
		"color":      func() { o.Color = v.Color },
	}
	fs.Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply()
		}
	})

	if errs := config.Validate(o); len(errs) > 0 {
		return nil, fmt.Errorf("invalid options: %w", errors.Join(errs...))
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// session is the loaded and indexed journal shared by the report and
// browse commands.
type session struct {
	opts    *config.Options
	spec    *filter.Spec
	entries []core.Entry
	index   []string
	logger  *slog.Logger
}

func load(cmd *cobra.Command, f *cliFlags, logfile string) (*session, error) {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	opts, err := f.resolve(cmd.Flags(), logfile)
	if err != nil {
		return nil, err
	}
	spec, err := filter.NewSpec(opts, logger)
	if err != nil {
		return nil, err
	}

	reader := journal.NewReader(logger)
	var entries []core.Entry
	if opts.Logfile == stdinName {
		entries, _, err = reader.ReadStream("stdin", cmd.InOrStdin())
	} else {
		entries, _, err = reader.ReadFile(opts.Logfile)
	}
	if err != nil {
		return nil, err
	}
	return &session{
		opts:    opts,
		spec:    spec,
		entries: entries,
		index:   journal.IndexSessions(entries, logger),
		logger:  logger,
	}, nil
}

func (s *session) build() (*report.Report, error) {
	return report.Build(s.opts.Logfile, s.entries, s.spec, s.index, s.logger)
}

// --- Root: report ---

func runReport(cmd *cobra.Command, f *cliFlags, logfile string) error {
	s, err := load(cmd, f, logfile)
	if err != nil {
		return err
	}

	if s.opts.ListBoots {
		fmt.Fprintf(cmd.ErrOrStderr(), "'%s' contains following boot IDs:\n", s.opts.Logfile)
		return report.RenderSessions(cmd.OutOrStdout(), s.index)
	}

	format, err := report.ParseFormat(s.opts.Output)
	if err != nil {
		return err
	}
	r, err := s.build()
	if err != nil {
		return err
	}

	// Render fully before writing so a failure leaves stdout untouched.
	var buf bytes.Buffer
	if err := report.Render(&buf, r, report.Options{Format: format, Limit: s.spec.Limit(), Color: s.opts.Color}); err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// --- Browse ---

func newBrowseCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [flags] <logfile>",
		Short: "Page through the report interactively, one boot at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinName {
				return errors.New("browse reads keys from stdin; pass a file")
			}
			s, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			r, err := s.build()
			if err != nil {
				return err
			}

			p := tea.NewProgram(tuimodel.New(r, s.spec.Limit()),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
}

// --- Version ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jrnlvw %s (%s) built %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		},
	}
}
