package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loosedirt/internal/core"
)

var (
	benchSim   string
	benchSteps int
	benchSet   []string
)

// changeReporter is implemented by sims that track per-tick churn.
type changeReporter interface {
	ChangedLastTick() int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		factory, ok := core.Sims()[benchSim]
		if !ok {
			return fmt.Errorf("unknown sim %q", benchSim)
		}
		params, err := benchParams(cmd)
		if err != nil {
			return err
		}
		sim, err := factory(params)
		if err != nil {
			return err
		}
		sim.Reset(seed)

		size := sim.Size()
		logrus.Infof("bench: %s %dx%d, %d steps", sim.Name(), size.W, size.H, benchSteps)

		reporter, _ := sim.(changeReporter)
		totalChanged := 0
		start := time.Now()
		for i := 0; i < benchSteps; i++ {
			sim.Step()
			if reporter != nil {
				totalChanged += reporter.ChangedLastTick()
				logrus.Debugf("tick %d: %d cells changed", i+1, reporter.ChangedLastTick())
			}
		}
		elapsed := time.Since(start)

		counts := make([]int, 4)
		for _, c := range sim.Cells() {
			if int(c) < len(counts) {
				counts[int(c)]++
			}
		}
		logrus.Infof("bench: %d steps in %v (%.0f steps/s)",
			benchSteps, elapsed.Round(time.Microsecond), float64(benchSteps)/elapsed.Seconds())
		logrus.Infof("bench: empty=%d solid=%d liquid=%d granular=%d", counts[0], counts[1], counts[2], counts[3])
		if reporter != nil && benchSteps > 0 {
			logrus.Infof("bench: %.1f cells changed per tick on average", float64(totalChanged)/float64(benchSteps))
		}
		return nil
	},
}

// benchParams assembles the flag-style key/value map handed to the sim
// factory, merging the shared dimension flags with --set overrides.
func benchParams(cmd *cobra.Command) (map[string]string, error) {
	params := map[string]string{}
	flags := cmd.Flags()
	if flags.Changed("width") {
		params["w"] = strconv.Itoa(width)
	}
	if flags.Changed("height") {
		params["h"] = strconv.Itoa(height)
	}
	if flags.Changed("seed") {
		params["seed"] = strconv.FormatInt(seed, 10)
	}
	for _, kv := range benchSet {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed --set %q, want key=value", kv)
		}
		params[key] = value
	}
	return params, nil
}

func init() {
	benchCmd.Flags().StringVar(&benchSim, "sim", "sand", "simulation to run")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 600, "ticks to simulate")
	benchCmd.Flags().StringArrayVar(&benchSet, "set", nil, "sim parameter override in key=value form (repeatable)")
	rootCmd.AddCommand(benchCmd)
}
