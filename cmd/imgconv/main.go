package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/internal/config"
	_ "github.com/srlehn/imgconv/internal/encoder/encall"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/internal/logx"
	_ "github.com/srlehn/imgconv/resize/all"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "imgconv converts and resizes images",
	Long:             "imgconv converts and resizes images, writes multi-size icons and previews the result in the terminal",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, implies --log-level=debug`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, `log-level`, ``, `log level (debug, info, warn, error)`)
	rootCmd.PersistentFlags().StringVar(&configFlag, `config`, ``, `config file (default: `+config.FileName+` in the xdg config dirs)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

var (
	debugFlag    bool
	silentFlag   bool
	logFileFlag  string
	logLevelFlag string
	configFlag   string
)

// set up by run before the command function is called
var (
	cfg    config.Config
	logger = logx.Discard
)

func run(fn func() error) {
	var err error
	var exitCode int
	closeLog := func() error { return nil }
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintln(os.Stderr, r)
					debug.PrintStack()
				}
			}
		}
		_ = closeLog()
		os.Exit(exitCode)
	}()
	if fn == nil {
		err = errors.NilParam()
	} else {
		closeLog, err = setup()
		if err == nil {
			err = fn()
		}
	}
	if err != nil {
		logx.IsErr(err, logx.Prov(logger), slog.LevelError)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

// setup loads the configuration and opens the log file.
func setup() (func() error, error) {
	noop := func() error { return nil }
	c, err := config.Load(configFlag)
	if err != nil {
		return noop, err
	}
	cfg = c
	if len(logFileFlag) == 0 {
		return noop, nil
	}
	lvl := logx.ParseLevel(cfg.LogLevel)
	if len(logLevelFlag) > 0 {
		lvl = logx.ParseLevel(logLevelFlag)
	}
	if debugFlag {
		lvl = slog.LevelDebug
	}
	l, closeFn, err := logx.NewFileLogger(logFileFlag, lvl)
	if err != nil {
		return noop, err
	}
	logger = l
	return closeFn, nil
}
