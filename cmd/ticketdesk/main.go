package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"ticketdesk/internal/api"
	"ticketdesk/internal/config"
	"ticketdesk/internal/debug"
	"ticketdesk/internal/domain"
	"ticketdesk/internal/ui"
	"ticketdesk/internal/ui/theme"
)

const jsonFetchTimeout = 30 * time.Second

// stdoutIsTerminal is a variable so tests can force either mode.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	apiURL       string
	timeout      time.Duration
	theme        string
	outputFormat string
	debug        bool
	version      bool
	jsonOutput   bool

	search   string
	category string
	priority string
	status   string
}

func newFlagSet(out io.Writer) (*pflag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := pflag.NewFlagSet("ticketdesk", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.apiURL, "api-url", config.DefaultAPIBaseURL, "Backend base URL (or set TD_API_BASE_URL)")
	fs.DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (0 uses the transport default)")
	fs.StringVar(&f.theme, "theme", "", "Colour theme ("+strings.Join(theme.Available(), ", ")+")")
	fs.StringVar(&f.outputFormat, "output-format", "rich", "Detail pane markdown style (rich, light, plain)")
	fs.BoolVar(&f.debug, "debug", false, "Write a debug log to ~/.ticketdesk/debug.log")
	fs.BoolVar(&f.version, "version", false, "Print version information and exit")
	fs.BoolVar(&f.jsonOutput, "json", false, "Print the filtered ticket list as JSON and exit")
	fs.StringVar(&f.search, "search", "", "Initial search text")
	fs.StringVar(&f.category, "category", "", "Initial category filter")
	fs.StringVar(&f.priority, "priority", "", "Initial priority filter")
	fs.StringVar(&f.status, "status", "", "Initial status filter")
	return fs, f
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, flags := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if flags.version {
		printVersion(stdout)
		return 0
	}

	if err := config.Initialize(); err != nil {
		fmt.Fprintf(stderr, "Error initializing config: %v\n", err)
		return 1
	}

	runtime, err := computeRuntimeOptions(fs, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if !runtime.jsonOutput && !stdoutIsTerminal() {
		runtime.jsonOutput = true
	}

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	if runtime.theme != "" && !theme.Set(runtime.theme) {
		fmt.Fprintf(stderr, "Warning: unknown theme %q, using %s\n", runtime.theme, theme.CurrentName())
	}

	client := newAPIClient(runtime)
	if err := runWithRuntime(context.Background(), runtime, client, stdout, newTeaProgram); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type runtimeOptions struct {
	baseURL      string
	timeout      time.Duration
	theme        string
	outputFormat string
	debug        bool
	jsonOutput   bool
	filter       domain.Filter
}

// computeRuntimeOptions folds explicitly set flags into the configuration and
// reads the effective values back. Flags left at their defaults never mask
// config files or the environment.
func computeRuntimeOptions(fs *pflag.FlagSet, flags *cliFlags) (runtimeOptions, error) {
	overrides := map[string]any{}
	if fs.Changed("api-url") {
		overrides[config.KeyAPIBaseURL] = flags.apiURL
	}
	if fs.Changed("timeout") {
		overrides[config.KeyAPITimeout] = flags.timeout
	}
	if fs.Changed("theme") {
		overrides[config.KeyTheme] = flags.theme
	}
	if fs.Changed("output-format") {
		overrides[config.KeyOutputFormat] = flags.outputFormat
	}
	if fs.Changed("debug") {
		overrides[config.KeyDebug] = flags.debug
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return runtimeOptions{}, fmt.Errorf("apply flags: %w", err)
	}

	filter, err := initialFilter(flags)
	if err != nil {
		return runtimeOptions{}, err
	}

	timeout := config.GetDuration(config.KeyAPITimeout)
	if timeout < 0 {
		timeout = 0
	}

	return runtimeOptions{
		baseURL:      config.APIBaseURL(),
		timeout:      timeout,
		theme:        strings.TrimSpace(config.GetString(config.KeyTheme)),
		outputFormat: strings.TrimSpace(config.GetString(config.KeyOutputFormat)),
		debug:        config.GetBool(config.KeyDebug),
		jsonOutput:   flags.jsonOutput,
		filter:       filter,
	}, nil
}

// initialFilter validates the filter flags. Blank values leave a field unset.
func initialFilter(flags *cliFlags) (domain.Filter, error) {
	f := domain.Filter{}.With(domain.FilterSearch, flags.search)
	if strings.TrimSpace(flags.category) != "" {
		c, err := domain.ParseCategory(flags.category)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Category = c
	}
	if strings.TrimSpace(flags.priority) != "" {
		p, err := domain.ParsePriority(flags.priority)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Priority = p
	}
	if strings.TrimSpace(flags.status) != "" {
		s, err := domain.ParseStatus(flags.status)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Status = s
	}
	return f, nil
}

func newAPIClient(runtime runtimeOptions) api.Client {
	return api.NewHTTPClient(runtime.baseURL,
		api.WithTimeout(runtime.timeout),
		api.WithLogger(debug.L()),
		api.WithUserAgent("ticketdesk/"+Version),
	)
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func newTeaProgram(app *ui.App) programRunner {
	return tea.NewProgram(app, tea.WithAltScreen())
}

// runWithRuntime prints JSON or runs the TUI followed by the exit summary.
func runWithRuntime(ctx context.Context, runtime runtimeOptions, client api.Client, stdout io.Writer, factory programFactory) error {
	if runtime.jsonOutput {
		ctx, cancel := context.WithTimeout(ctx, jsonFetchTimeout)
		defer cancel()
		return printTicketsJSON(ctx, stdout, client, runtime.filter)
	}

	appCfg := ui.Config{
		Client:       client,
		OutputFormat: runtime.outputFormat,
		Filter:       runtime.filter,
		Version:      Version,
		SaveTheme:    config.SaveTheme,
	}
	app, err := runProgram(appCfg, ui.NewApp, factory)
	if err != nil {
		return err
	}
	printExitSummary(stdout, ExitSummary{Version: Version, Session: app.Session()})
	return nil
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) (*ui.App, error) {
	app, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	return app, nil
}
