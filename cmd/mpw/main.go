// mpw derives site passwords from a full name, a master password and a site
// name. Nothing but site metadata is ever stored.
//
// Running without a subcommand launches the interactive terminal UI.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-master-password/internal/adapter"
	"github.com/MKhiriev/go-master-password/internal/client"
	"github.com/MKhiriev/go-master-password/internal/config"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(newCLI(os.Stdin, os.Stdout, os.Stderr)).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// cli carries the state shared by all commands.
type cli struct {
	flags     config.Flags
	buildInfo models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	readPassword func(prompt string) (string, error)
	lines        *bufio.Reader
	clipboard    adapter.Clipboard

	cfg *config.StructuredConfig
	log *logger.Logger
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	c := &cli{
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		clipboard: adapter.NewSystemClipboard(),
	}
	c.readPassword = c.promptPassword
	return c
}

// newRootCmd creates the root command. It is also used to build fresh
// command trees in tests.
func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mpw",
		Short: "Stateless site passwords from your name and a master password.",
		Long: `mpw computes the password of a site from your full name, your master
password and the site name. The same inputs always give the same password,
so passwords are never stored; only site names, counters and password types
are remembered for the terminal UI.

Running without a subcommand launches the interactive terminal UI.`,
		Version:      c.buildInfo.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}

	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	cmd.SetVersionTemplate(c.buildInfo.String() + "\n")

	c.flags.Register(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenerateCmd(c),
		newSitesCmd(c),
		newTUICmd(c),
		newVersionCmd(c),
	)

	return cmd
}

// load reads the configuration and sets up the logger. It runs before every
// command.
func (c *cli) load() error {
	cfg, err := config.GetStructuredConfig(&c.flags)
	if err != nil {
		return c.fail(fmt.Errorf("load config: %w", err))
	}

	c.cfg = cfg
	c.log = logger.NewClientLogger("mpw", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return c.fail(err)
	}
	c.log.Debug().Str("log_level", cfg.Log.Level).Msg("configuration loaded")
	return nil
}

// openApp opens the site store. The caller must Close the returned app.
func (c *cli) openApp(ctx context.Context) (*client.App, error) {
	app, err := client.NewApp(ctx, c.cfg, c.buildInfo, c.clipboard, c.log)
	if err != nil {
		return nil, c.fail(err)
	}
	return app, nil
}

func (c *cli) runTUI(ctx context.Context) error {
	app, err := c.openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err = app.Run(ctx); err != nil {
		return c.fail(err)
	}
	return nil
}

// fail logs err and returns it for cobra to print.
func (c *cli) fail(err error) error {
	if c.log != nil {
		c.log.Error().Err(err).Msg("command failed")
	}
	return err
}
