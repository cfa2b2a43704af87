package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ThirdLetterC/nanocron"
	"github.com/ThirdLetterC/nanocron/internal/config"
	"github.com/ThirdLetterC/nanocron/internal/logger"
)

var (
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "nanocrond",
		Short: "Reference driver for the nanocron schedule engine",
		Long:  `nanocrond drives a single cron.Context from the wall clock, for development and manual testing of schedule expressions.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format: json, console")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(runCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <schedule>",
	Short: "Parse a schedule expression and report any error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := cron.ParseSchedule(args[0]); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

var nextAfterFlag string

var nextCmd = &cobra.Command{
	Use:   "next <schedule>",
	Short: "Print the next matching instant after a reference time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		after, err := parseAfterFlag(nextAfterFlag)
		if err != nil {
			return err
		}

		ctx := cron.NewContext()
		if _, err := ctx.Add(args[0], func(any, cron.Instant) {}, nil); err != nil {
			return err
		}

		next, ok := ctx.NextAfter(after)
		if !ok {
			return fmt.Errorf("no match within the search horizon")
		}
		fmt.Println(next.Time().Format(time.RFC3339Nano))
		return nil
	},
}

var runInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run <schedule>",
	Short: "Tick a schedule against the wall clock until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if runInterval > 0 {
			cfg.TickInterval = runInterval
		}

		level, format := logLevel, logFormat
		if !cmd.Flags().Changed("log-level") {
			level = cfg.LogLevel
		}
		if !cmd.Flags().Changed("log-format") {
			format = cfg.LogFormat
		}
		log := logger.New("nanocrond", level, format)
		runID := uuid.New()

		ctx := cron.NewContext()
		job, err := ctx.Add(args[0], func(_ any, at cron.Instant) {
			log.Info().
				Str("run_id", runID.String()).
				Time("fired_at", at.Time()).
				Msg("schedule fired")
		}, nil)
		if err != nil {
			return err
		}

		log.Info().
			Str("run_id", runID.String()).
			Str("schedule", args[0]).
			Str("job_id", job.DiagID().String()).
			Dur("tick_interval", cfg.TickInterval).
			Msg("nanocrond starting")

		sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()

		clock := cron.SystemClock{}
		for {
			select {
			case <-sigCtx.Done():
				log.Info().Str("run_id", runID.String()).Msg("nanocrond shutting down")
				return nil
			case <-ticker.C:
				ctx.Tick(clock)
			}
		}
	},
}

func init() {
	runCmd.Flags().DurationVar(&runInterval, "interval", 0, "override NANOCROND_TICK_INTERVAL for this run")
	nextCmd.Flags().StringVar(&nextAfterFlag, "after", "", "reference RFC3339 instant, or unix:<seconds>[:<nanos>] (default: now)")
}

func parseAfterFlag(raw string) (cron.Instant, error) {
	if raw == "" {
		return cron.InstantFromTime(time.Now().UTC()), nil
	}
	if strings.HasPrefix(raw, "unix:") {
		parts := strings.Split(strings.TrimPrefix(raw, "unix:"), ":")
		sec, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return cron.Instant{}, fmt.Errorf("invalid unix seconds %q: %w", parts[0], err)
		}
		var nsec int64
		if len(parts) > 1 {
			nsec, err = strconv.ParseInt(parts[1], 10, 32)
			if err != nil {
				return cron.Instant{}, fmt.Errorf("invalid unix nanoseconds %q: %w", parts[1], err)
			}
		}
		inst := cron.Instant{Sec: sec, Nsec: int32(nsec)}
		if !inst.Valid() {
			return cron.Instant{}, fmt.Errorf("unix nanoseconds %d out of range [0, 999999999]", nsec)
		}
		return inst, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return cron.Instant{}, fmt.Errorf("invalid --after value %q: %w", raw, err)
	}
	return cron.InstantFromTime(t.UTC()), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
