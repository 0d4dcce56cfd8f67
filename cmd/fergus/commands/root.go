// Package commands implements the CLI commands for fergus.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fergus/internal/app"
	"go.trai.ch/fergus/internal/build"
	"go.trai.ch/fergus/internal/core/domain"
)

// CLI represents the command line interface for fergus.
type CLI struct {
	app     Application
	json    jsonSetter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, request string) (string, error)
	Hook(ctx context.Context, request string) (string, error)
	Render(ctx context.Context, w io.Writer, request string, opts app.RenderOptions) error
	Build(ctx context.Context, opts app.BuildOptions) (app.BuildResult, error)
	Status(ctx context.Context) ([]domain.TemplateStatus, error)
	Watch(ctx context.Context) error
	Clean(ctx context.Context) error
	EnableTracing()
}

// jsonSetter is implemented by loggers that support JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogger lets the --json flag switch the logger output format. Loggers without
// JSON support are ignored.
func WithLogger(logger any) Option {
	return func(c *CLI) {
		if setter, ok := logger.(jsonSetter); ok {
			c.json = setter
		}
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fergus",
		Short:         "Compile and cache markup templates for the host template engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log resolve and compile spans with their durations")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enabled, _ := cmd.Flags().GetBool("json"); enabled && c.json != nil {
			c.json.SetJSON(true)
		}
		if enabled, _ := cmd.Flags().GetBool("trace"); enabled {
			c.app.EnableTracing()
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newHookCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
