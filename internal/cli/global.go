package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/translator-tools/reasoner-converter/internal/config"
	"github.com/translator-tools/reasoner-converter/pkg/log"
)

const (
	appName = "reasoner-converter"
)

type GlobalOptions struct {
	ConfigFilePath string
	LogLevel       string

	config *config.Config
	log    *logrus.Logger
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigFilePath: config.ConfigFile(),
		LogLevel:       "",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFilePath, "config", o.ConfigFilePath, "Path of the configuration file. Defaults apply when it does not exist.")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level, overriding log.level from the configuration file.")
}

// Complete loads the configuration and sets up the logger. Log lines go to
// the command's error stream.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(o.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	o.config = cfg

	level := cfg.Log.Level
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	logger, err := log.InitLogs(level)
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())
	o.log = logger
	o.log.WithField("config", o.ConfigFilePath).Debugf("Using config: %s", cfg)
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}
