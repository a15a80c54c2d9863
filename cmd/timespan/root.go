package main

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"

	"github.com/sdhoward/timespan/pbtime"
	"github.com/sdhoward/timespan/promtime"
	"github.com/sdhoward/timespan/stdtime"
)

var (
	backend string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "timespan <duration>...",
	Short: "Parse systemd-style duration strings",
	Long: `timespan parses systemd-style duration strings like "1d3h", "52.1775w",
"-1s-1ns", or "300" (a bare number is a count of seconds) and prints the
resulting value.

Backends:
  std    time.Duration (signed 64-bit nanoseconds)
  proto  protobuf Duration (whole seconds plus nanoseconds, ±10000 years)
  prom   Prometheus model.Duration (non-negative only)

Examples:
  timespan 1d3h
  timespan -b proto -- -1s-1ns
  timespan -b prom 52.1775w 300`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		switch backend {
		case "std", "proto", "prom":
			return nil
		default:
			return fmt.Errorf("invalid backend %q: must be one of std, proto, or prom", backend)
		}
	},
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&backend, "backend", "b", "std",
		"target representation: std, proto, prom")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	color := func(name string) func(string) string {
		if noColor {
			return ansi.ColorFunc("")
		}
		return ansi.ColorFunc(name)
	}
	cyan := color("cyan")
	red := color("red+b")

	var failed bool
	for _, arg := range args {
		out, err := parseOne(arg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("error:"), err)
			failed = true
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", cyan(arg), out)
	}
	if failed {
		return fmt.Errorf("some inputs did not parse")
	}
	return nil
}

func parseOne(s string) (string, error) {
	switch backend {
	case "proto":
		d, err := pbtime.Parse(s)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%ds %dns (%s)",
			d.GetSeconds(), d.GetNanos(), human(d.AsDuration())), nil
	case "prom":
		d, err := promtime.Parse(s)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%s)", d, human(time.Duration(d))), nil
	default:
		d, err := stdtime.Parse(s)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%s)", d, human(d)), nil
	}
}

func human(d time.Duration) string {
	return durafmt.Parse(d).String()
}
