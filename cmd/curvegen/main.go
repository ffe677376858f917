// Package main provides the CLI entry point for curvegen.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/curvegen-go/pkg/curvegen"
)

// cli carries state shared by all commands.
type cli struct {
	v       *viper.Viper
	log     *log.Logger
	cfgFile string
	now     func() time.Time
}

func newCLI() *cli {
	return &cli{
		v:   viper.New(),
		log: log.Default(),
		now: time.Now,
	}
}

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curvegen <command>",
		Short: "Turn hand-drawn curves into daily time series",
		Long: heredoc.Doc(`
			curvegen converts curve documents (points drawn in a unit square)
			into a six-month daily table and writes it as xlsx, JSON or CSV.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.v.BindPFlag("log-level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return err
			}
			if err := c.initConfig(); err != nil {
				return err
			}
			return c.initLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "Config file (default is $HOME/.curvegen.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newExportCmd(c))
	cmd.AddCommand(newCaptureCmd(c))
	cmd.AddCommand(newInspectCmd(c))
	cmd.AddCommand(newServeCmd(c))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig reads the config file and environment. A missing default
// config file is not an error.
func (c *cli) initConfig() error {
	c.v.SetEnvPrefix("CURVEGEN")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("can't read config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	c.v.AddConfigPath(home)
	c.v.SetConfigName(".curvegen")
	c.v.SetConfigType("yaml")

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("can't read config: %w", err)
		}
	}
	return nil
}

func (c *cli) initLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}
	c.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "curvegen",
		Level:           level,
		ReportTimestamp: true,
	})
	if used := c.v.ConfigFileUsed(); used != "" {
		c.log.Debug("Loaded config", "file", used)
	}
	return nil
}

// bindFlags ties config keys to the running command's flags. Called from
// PreRunE since keys are shared between commands.
func (c *cli) bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := c.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// options builds export options from the "mode" and "sheet" keys.
func (c *cli) options() (curvegen.Options, error) {
	opts := curvegen.DefaultOptions()
	if m := c.v.GetString("mode"); m != "" {
		mode, err := curvegen.ParseMode(m)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	opts.SheetName = c.v.GetString("sheet")
	return opts, opts.Validate()
}
