// Package cli implements the contactdesk command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/internal/metrics"
	"github.com/mesh-intelligence/contactdesk/internal/paths"
	"github.com/mesh-intelligence/contactdesk/pkg/contactdesk"
	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// skipConfig marks commands that run without loading config.yaml.
const skipConfig = "skip-config"

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	yamlMode  bool
	verbose   bool
	metrics   bool
}

// cli is the state shared by one invocation's commands.
type cli struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *zap.Logger
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
}

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "contactdesk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "contactdesk",
		Short:         "Browse and edit a contact list",
		Long:          "contactdesk searches, sorts, pages through and batch-edits a contact list\nstored in SQLite or PostgreSQL, and records customer inquiries.",
		Version:       contactdesk.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			_ = c.logger.Sync()
			if c.flags.metrics && c.registry != nil {
				return writeMetrics(cmd.ErrOrStderr(), c.registry)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configDir, "config-dir", "", "configuration directory (env "+paths.EnvConfigDir+")")
	pf.StringVar(&c.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.BoolVar(&c.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVar(&c.flags.yamlMode, "yaml", false, "output in YAML format")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&c.flags.metrics, "metrics", false, "print metrics to stderr after the command")
	root.MarkFlagsMutuallyExclusive("json", "yaml")

	root.AddCommand(
		c.newInitCmd(),
		c.newSeedCmd(),
		c.newAddCmd(),
		c.newListCmd(),
		c.newEditCmd(),
		c.newInquiryCmd(),
		newGreetCmd(c),
		newVersionCmd(c),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return ExitCode(err)
}

// setup resolves directories, loads config.yaml, and builds the logger and
// metrics for a command that touches the backend.
func (c *cli) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(c.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	dataDir, err := paths.ResolveDataDir(c.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	cfg, err := configFromViper(v, dataDir)
	if err != nil {
		return userError(fmt.Errorf("config %s: %w", paths.ConfigFile(configDir), err))
	}

	c.configDir = configDir
	c.cfg = cfg
	c.logger = newLogger(cmd.ErrOrStderr(), c.flags.verbose)
	c.registry = prometheus.NewRegistry()
	c.metrics = metrics.New(c.registry)
	c.logger.Debug("Loaded configuration",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
		zap.String("backend", cfg.Backend))
	return nil
}

// openBackend opens the configured backend. The caller must Close it.
func (c *cli) openBackend(ctx context.Context) (contactdesk.Backend, error) {
	b, err := contactdesk.Open(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, sysError(fmt.Errorf("open backend: %w", err))
	}
	return b, nil
}
