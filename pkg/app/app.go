// Package app is the command scaffold shared by every Lesedi binary. It wires
// cobra flags, a viper config file with environment overrides, log setup and
// log-level hot reload.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/lesedi-io/lesedi/pkg/log"
)

// RunFunc is the entry point of a command once options are ready.
type RunFunc func() error

// Option configures an App.
type Option func(*App)

// App is a cobra root command plus the option plumbing around it.
type App struct {
	name        string
	shortDesc   string
	description string
	options     CliOptions
	runFunc     RunFunc
	args        cobra.PositionalArgs
	noConfig    bool
	watch       bool
	subcommands []*cobra.Command

	v   *viper.Viper
	cmd *cobra.Command
}

// WithOptions sets the options the App parses into.
func WithOptions(opts CliOptions) Option {
	return func(a *App) { a.options = opts }
}

// WithRunFunc sets the function run by the root command.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) { a.runFunc = run }
}

// WithDescription sets the long description.
func WithDescription(desc string) Option {
	return func(a *App) { a.description = desc }
}

// WithDefaultValidArgs rejects positional arguments on the root command.
func WithDefaultValidArgs() Option {
	return func(a *App) {
		a.args = func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) > 0 {
					return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
				}
			}
			return nil
		}
	}
}

// WithValidArgs sets a custom positional argument check.
func WithValidArgs(args cobra.PositionalArgs) Option {
	return func(a *App) { a.args = args }
}

// WithNoConfig removes the --config flag.
func WithNoConfig() Option {
	return func(a *App) { a.noConfig = true }
}

// WithWatchConfig reloads the log level when the config file changes.
func WithWatchConfig() Option {
	return func(a *App) { a.watch = true }
}

// WithSubCommands attaches subcommands. Options are loaded before any of
// them runs.
func WithSubCommands(cmds ...*cobra.Command) Option {
	return func(a *App) { a.subcommands = append(a.subcommands, cmds...) }
}

// NewApp builds an App named name.
func NewApp(name string, shortDesc string, opts ...Option) *App {
	a := &App{
		name:      name,
		shortDesc: shortDesc,
		v:         viper.New(),
	}

	for _, o := range opts {
		o(a)
	}

	a.buildCommand()
	return a
}

// Command returns the root cobra command.
func (a *App) Command() *cobra.Command {
	return a.cmd
}

// Viper returns the config store backing this App.
func (a *App) Viper() *viper.Viper {
	return a.v
}

// Run executes the command and exits the process with status 1 on error.
func (a *App) Run() {
	if err := a.cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *App) buildCommand() {
	cmd := &cobra.Command{
		Use:           a.name,
		Short:         a.shortDesc,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          a.args,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	cmd.Flags().SortFlags = true

	var fss cliflag.NamedFlagSets
	if a.options != nil {
		fss = a.options.Flags()
		fs := cmd.PersistentFlags()
		for _, name := range fss.Order {
			fs.AddFlagSet(fss.FlagSets[name])
		}
	}

	if !a.noConfig {
		addConfigFlag(a.name, a.v, fss.FlagSet("Global"))
		cmd.PersistentFlags().AddFlagSet(fss.FlagSet("Global"))
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		return a.prepare(c)
	}

	if a.runFunc != nil {
		cmd.RunE = func(*cobra.Command, []string) error {
			return a.runFunc()
		}
	}

	cmd.AddCommand(a.subcommands...)
	cliflag.SetUsageAndHelpFunc(cmd, fss, 80)

	a.cmd = cmd
}

// prepare merges config file, environment and flags into the options, then
// completes and validates them and installs the logger.
func (a *App) prepare(cmd *cobra.Command) error {
	if a.options == nil {
		return nil
	}

	if !a.noConfig {
		if err := a.v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := a.v.Unmarshal(a.options); err != nil {
			return fmt.Errorf("failed to decode configuration: %w", err)
		}
	}

	if err := a.options.Complete(); err != nil {
		return err
	}
	if err := a.options.Validate(); err != nil {
		return err
	}

	if lo, ok := a.options.(interface{ LogOptions() *log.Options }); ok {
		log.Init(lo.LogOptions())
	}

	if a.watch && !a.noConfig && a.v.ConfigFileUsed() != "" {
		watchLogLevel(a.v)
	}

	return nil
}

func envPrefix(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}
