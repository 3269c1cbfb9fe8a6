package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graeme-hill/complexcalc-go/config"
	"github.com/graeme-hill/complexcalc-go/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgFile string
	debug   bool

	cfg *config.Config
	log *zap.Logger
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded", zap.String("path", a.cfgFile))
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "complexcalc",
		Short: "Tokenize complex-number expressions and run complex arithmetic",
		Long: `complexcalc splits expressions such as "(6+2i) * y - 25 / (1+i**2)" into
tokens and evaluates single complex operations such as "calc div 3+4i 1-2i".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newTokenizeCmd(a),
		newCalcCmd(a),
		newMigrateCmd(a),
		newHistoryCmd(a),
	)
	return root
}
