// Command hartsim simulates one or more HART field devices on a serial
// port, answering master requests per each device's spec file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hartsim/hartsim/pkg/config"
	"github.com/hartsim/hartsim/pkg/link"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hartsim",
		Short: "Simulate HART field devices over a serial port",
	}

	runCmd := &cobra.Command{
		Use:   "run <config.json> <device-spec.json>...",
		Short: "Listen on the configured port and answer requests for the given devices",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1:])
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

// exitCodeError tags an error with the process exit code spec.md §6
// mandates: 1 for a config/spec error, 2 for a port I/O error.
type exitCodeError struct {
	Code int
	Err  error
}

func (e *exitCodeError) Error() string { return e.Err.Error() }
func (e *exitCodeError) Unwrap() error { return e.Err }

func run(configPath string, specPaths []string) error {
	logger := log.Default()

	processConfig, err := config.LoadProcessConfig(configPath)
	if err != nil {
		return &exitCodeError{Code: 1, Err: err}
	}

	registry := link.NewRegistry()
	for _, path := range specPaths {
		spec, err := config.LoadDeviceSpec(path)
		if err != nil {
			return &exitCodeError{Code: 1, Err: err}
		}
		dev, err := config.BuildDevice(spec)
		if err != nil {
			return &exitCodeError{Code: 1, Err: err}
		}
		registry.Add(dev)
		logger.Info("device loaded", "spec", path,
			"polling_address", dev.PollingAddress.Value(),
			"long_address", fmt.Sprintf("0x%010X", dev.LongAddress))
	}

	port, err := link.OpenSerialPort(processConfig.Port)
	if err != nil {
		return &exitCodeError{Code: 2, Err: err}
	}
	defer port.Close()

	loop := link.NewLoop(port, registry)
	if err := loop.Run(); err != nil {
		return &exitCodeError{Code: 2, Err: err}
	}
	return nil
}
