package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/filetug/dutug/pkg/dutug"
)

var osExit = os.Exit
var runDutug = dutug.Run

func main() {
	logger := newLogger(os.Stderr)
	run(newRootCommand(logger), logger)
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

func newRootCommand(logger logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:           "dutug [dir]",
		Short:         "List directory entries sorted by their total size",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			return runDutug(dir,
				dutug.WithOutput(cmd.OutOrStdout()),
				dutug.WithLogger(logger),
			)
		},
	}
}

type command interface{ Execute() error }

var run = func(cmd command, logger logrus.FieldLogger) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			osExit(1)
		}
	}()
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("dutug failed")
		osExit(1)
	}
}
