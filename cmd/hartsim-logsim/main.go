// Command hartsim-logsim replays recorded HART responses from a captured
// communication log instead of simulating live device state.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hartsim/hartsim/pkg/config"
	"github.com/hartsim/hartsim/pkg/link"
	"github.com/hartsim/hartsim/pkg/logreplay"
)

const replyPreambleCount = 5

func main() {
	rootCmd := &cobra.Command{
		Use:   "hartsim-logsim",
		Short: "Replay recorded HART responses from a communication log",
	}

	runCmd := &cobra.Command{
		Use:   "run <config.json> <log-file>",
		Short: "Listen on the configured port and replay the log's recorded responses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Err)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitCodeError struct {
	Code int
	Err  error
}

func (e *exitCodeError) Error() string { return e.Err.Error() }
func (e *exitCodeError) Unwrap() error { return e.Err }

func run(configPath, logPath string) error {
	logger := log.Default()

	processConfig, err := config.LoadProcessConfig(configPath)
	if err != nil {
		return &exitCodeError{Code: 1, Err: err}
	}

	requestResponses, err := logreplay.ParseLogFile(logPath)
	if err != nil {
		return &exitCodeError{Code: 1, Err: err}
	}
	provider := logreplay.NewResponseProvider(requestResponses)
	logger.Info("log loaded", "requests", provider.RequestCount(), "responses", provider.TotalResponseCount())
	if provider.RequestCount() == 0 {
		logger.Warn("no request/response pairs found in log file")
	}

	port, err := link.OpenSerialPort(processConfig.Port)
	if err != nil {
		return &exitCodeError{Code: 2, Err: err}
	}
	defer port.Close()

	logger.Info("listening", "port", processConfig.Port)
	if err := serve(port, provider, logger); err != nil {
		return &exitCodeError{Code: 2, Err: err}
	}
	return nil
}

func serve(port link.Port, provider *logreplay.ResponseProvider, logger *log.Logger) error {
	framer := logreplay.NewIdleFramer()
	buf := make([]byte, 256)

	for {
		n, err := port.Read(buf)
		if err != nil {
			return err
		}
		now := time.Now()
		if n > 0 {
			framer.Feed(buf[:n], now)
			continue
		}
		if !framer.Ready(now) {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		request := logreplay.StripPreambles(framer.Take())
		if len(request) == 0 {
			continue
		}

		response := provider.GetResponse(request)
		if response == nil {
			logger.Info("no match", "request", fmt.Sprintf("%X", request))
			continue
		}

		reply := make([]byte, 0, replyPreambleCount+len(response))
		for i := 0; i < replyPreambleCount; i++ {
			reply = append(reply, 0xFF)
		}
		reply = append(reply, response...)

		if err := port.SetDTR(true); err != nil {
			return err
		}
		_, writeErr := port.Write(reply)
		if err := port.SetDTR(false); err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
		logger.Info("replayed", "request", fmt.Sprintf("%X", request), "response", fmt.Sprintf("%X", response))
	}
}
