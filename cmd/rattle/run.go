package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rattle/internal/gen"
	"rattle/internal/harness"
	"rattle/internal/observ"
	"rattle/internal/record"
	"rattle/internal/target"
	"rattle/internal/toolchain"
	"rattle/internal/trace"
)

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Run a fuzzing session against the registered toolchains",
	Long:  `Run resolves every known target capability, feeds each one adversarial inputs for the configured number of iterations, and exits non-zero when any failure was recorded`,
	Args:  cobra.NoArgs,
	RunE:  runSession,
}

func init() {
	runCmd.Flags().Int("iterations", 0, "iteration count (0 = RATTLE_ITERATIONS, rattle.toml, or 300)")
	runCmd.Flags().Int64("seed", 0, "random seed (0 = time-based)")
	runCmd.Flags().Bool("demo", false, "register the built-in demo toolchain")
	runCmd.Flags().String("log", "", "failure log path (default fuzz-results.log)")
	runCmd.Flags().String("summary", "", "run summary path (default fuzz-summary.json)")
	runCmd.Flags().Bool("no-ui", false, "disable the live progress display")
}

type sessionConfig struct {
	iterations    int
	seed          int64
	throttleEvery int
	logPath       string
	summaryPath   string
	withUI        bool
}

func runSession(cmd *cobra.Command, args []string) error {
	// non-zero exit from here means failures were recorded, not bad usage
	cmd.SilenceUsage = true

	iterFlag, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetInt64("seed")
	demo, _ := cmd.Flags().GetBool("demo")
	logFlag, _ := cmd.Flags().GetString("log")
	summaryFlag, _ := cmd.Flags().GetString("summary")
	noUI, _ := cmd.Flags().GetBool("no-ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	manifest, _, err := loadSessionManifest(".")
	if err != nil {
		return err
	}

	cfg := sessionConfig{
		iterations:    resolveIterations(iterFlag, os.Getenv(iterationsEnvVar), manifest),
		seed:          seed,
		throttleEvery: resolveThrottleEvery(manifest),
		withUI:        !noUI && !quiet && isTerminal(os.Stdout),
	}
	var manifestLog, manifestSummary string
	if manifest != nil {
		manifestLog = manifest.Config.Artifacts.Log
		manifestSummary = manifest.Config.Artifacts.Summary
		if seed == 0 {
			cfg.seed = manifest.Config.Session.Seed
		}
	}
	cfg.logPath = resolveArtifact(logFlag, manifestLog, "fuzz-results.log")
	cfg.summaryPath = resolveArtifact(summaryFlag, manifestSummary, "fuzz-summary.json")

	level := sessionLogLevel(cmd, quiet)
	// the ring keeps the failure trail even when live logging is off
	ring := trace.NewRingTracer(64, trace.LevelError)
	multiLevel := level
	if multiLevel < trace.LevelError {
		multiLevel = trace.LevelError
	}
	tracer := trace.NewMultiTracer(multiLevel,
		trace.NewStreamTracer(cmd.ErrOrStderr(), level, trace.FormatText),
		ring,
	)
	defer func() { _ = tracer.Flush() }()

	reg := target.Default
	if demo {
		toolchain.Register(reg)
	}

	timer := observ.NewTimer()
	result, err := executeSession(reg, cfg, tracer, timer)
	if err != nil {
		return err
	}

	printVerdict(cmd, result)
	if result.Failures > 0 && level == trace.LevelOff {
		printFailureTrail(cmd, ring)
	}
	if timings {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}
	if result.Failures > 0 {
		return fmt.Errorf("recorded %d failure(s), see %s and %s", result.Failures, cfg.logPath, cfg.summaryPath)
	}
	return nil
}

// executeSession runs one full fuzzing session: resolve, iterate, report.
// The returned error covers setup trouble only; target failures are conveyed
// through the result.
func executeSession(reg *target.Registry, cfg sessionConfig, tracer trace.Tracer, timer *observ.Timer) (harness.Result, error) {
	stop := timer.Phase("resolve")
	table := target.Resolve(reg, target.DefaultSpecs())
	stop()
	trace.Info(tracer, "resolve", fmt.Sprintf("%d of %d capabilities resolved", table.ResolvedCount(), len(target.Capabilities)), nil)

	rec, err := record.Open(cfg.logPath, tracer)
	if err != nil {
		return harness.Result{}, err
	}
	defer func() { _ = rec.Close() }()

	runner := &harness.Runner{
		Table:  table,
		Gen:    gen.NewSource(cfg.seed),
		Rec:    rec,
		Tracer: tracer,
	}
	opts := harness.Options{
		Iterations:    cfg.iterations,
		ThrottleEvery: cfg.throttleEvery,
		SummaryPath:   cfg.summaryPath,
		Tracer:        tracer,
	}

	stop = timer.Phase("run")
	var result harness.Result
	if cfg.withUI {
		result = runSessionWithUI(runner, rec, opts)
	} else {
		result = harness.NewController(runner, rec, opts).Run()
	}
	stop()
	return result, nil
}

func sessionLogLevel(cmd *cobra.Command, quiet bool) trace.Level {
	levelFlag, _ := cmd.Root().PersistentFlags().GetString("log-level")
	level, err := trace.ParseLevel(levelFlag)
	if err != nil {
		level = trace.LevelInfo
	}
	if quiet && level > trace.LevelError {
		level = trace.LevelError
	}
	return level
}

// printFailureTrail dumps the retained error events when live logging was
// disabled, so a silent run still leaves a scent on stderr.
func printFailureTrail(cmd *cobra.Command, ring *trace.RingTracer) {
	events := ring.Snapshot()
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "last failures:")
	for _, ev := range events {
		_, _ = cmd.ErrOrStderr().Write(trace.FormatEvent(ev, trace.FormatText))
	}
}

func printVerdict(cmd *cobra.Command, result harness.Result) {
	useColor := colorEnabled(cmd)
	verdict := color.New(color.FgGreen, color.Bold)
	text := fmt.Sprintf("clean: %d iterations, no failures", result.Iterations)
	if result.Failures > 0 {
		verdict = color.New(color.FgRed, color.Bold)
		text = fmt.Sprintf("broken: %d failure(s) over %d iterations", result.Failures, result.Iterations)
	}
	if !useColor {
		verdict.DisableColor()
	}
	fmt.Fprintln(cmd.OutOrStdout(), verdict.Sprint(text))
}

func colorEnabled(cmd *cobra.Command) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}
