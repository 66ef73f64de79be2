package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/snifftrap/internal/configloader"
	"github.com/yaklabco/snifftrap/internal/logging"
	"github.com/yaklabco/snifftrap/internal/ui/pretty"
	"github.com/yaklabco/snifftrap/pkg/config"
	"github.com/yaklabco/snifftrap/pkg/event"
	"github.com/yaklabco/snifftrap/pkg/report"
)

type checkFlags struct {
	roots      []string
	reportPath string
	signatures []string
	printSigs  bool
	marker     string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [output-files...]",
		Short: "Reconcile captured animalsniffer output into a report",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.roots, "root", nil,
		"source root used to relativize paths (repeatable)")
	cmd.Flags().StringVarP(&flags.reportPath, "report", "o", "",
		"path of the report file to write")
	cmd.Flags().StringArrayVar(&flags.signatures, "signature", nil,
		"signature file name active for the matching input (repeatable, by position)")
	cmd.Flags().BoolVar(&flags.printSigs, "print-signatures", false,
		"prefix findings with the signature name that produced them")
	cmd.Flags().StringVar(&flags.marker, "marker", "",
		"cache marker separating the cache prefix from the signature name")

	return cmd
}

const checkLongDescription = `Reconcile captured animalsniffer output into a report.

Reads raw checker output from the given files, or from stdin when no file is
given. Each input corresponds to one analysis phase; pair inputs with the
signature active during that phase using repeated --signature flags.

Examples:
  animalsniffer ... | snifftrap check --root /src -o build/report.txt
  snifftrap check out-jdk8.log out-android.log \
      --signature jdk8.sig --signature android.sig --print-signatures`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return err
	}
	applyCheckFlags(cmd, flags, &cfg)

	if cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}
	logger.Debug("configuration resolved",
		logging.FieldRoots, cfg.SourceRoots,
		logging.FieldReport, cfg.Report,
	)

	collector := report.NewCollector(report.Options{
		Roots:               cfg.SourceRoots,
		PrintSignatureNames: cfg.PrintSignatureNames,
		CacheMarker:         cfg.CacheMarker,
	})
	interceptor := event.NewInterceptor(collector, nil, logger)

	if err := feedInputs(cmd, args, flags.signatures, collector, interceptor); err != nil {
		return err
	}
	if err := interceptor.Err(); err != nil {
		return fmt.Errorf("diagnostic output did not match any known format: %w", err)
	}
	logger.Debug("inputs processed",
		logging.FieldErrors, collector.ErrorsCnt(),
		logging.FieldFiles, collector.FilesCnt(),
	)

	// Console report goes through the error-level sink, like the build-tool
	// embedding does; summary and confirmations go to stdout.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	sink := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	collector.PrintToConsole(sink)

	fmt.Fprintln(out, styles.FormatSummary(collector.ErrorsCnt(), collector.FilesCnt()))

	if cfg.Report != "" {
		if err := collector.WriteToFile(cfg.Report); err != nil {
			return err
		}
		logger.Debug("report persisted", logging.FieldReport, cfg.Report)
		fmt.Fprintln(out, styles.FormatReportWritten(cfg.Report))
	}

	if collector.ErrorsCnt() > 0 {
		return ErrViolationsFound
	}
	return nil
}

// applyCheckFlags layers explicitly provided CLI flags over the file config.
func applyCheckFlags(cmd *cobra.Command, flags *checkFlags, cfg *config.Config) {
	if len(flags.roots) > 0 {
		cfg.SourceRoots = flags.roots
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = flags.reportPath
	}
	if cmd.Flags().Changed("print-signatures") {
		cfg.PrintSignatureNames = flags.printSigs
	}
	if cmd.Flags().Changed("marker") {
		cfg.CacheMarker = flags.marker
	}
}

// feedInputs replays each input's lines through the interceptor as
// message-logged events of the owned task, switching the active signature
// between inputs when one was given for that position.
func feedInputs(cmd *cobra.Command, args, signatures []string, collector *report.Collector, interceptor *event.Interceptor) error {
	feed := func(idx int, r io.Reader, name string) error {
		logging.Default().Debug("replaying input", logging.FieldInput, name)
		if idx < len(signatures) {
			collector.ContextSignature(signatures[idx])
		}
		return replay(r, name, collector, interceptor)
	}

	if len(args) == 0 {
		return feed(0, cmd.InOrStdin(), "stdin")
	}

	for i, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input %s: %w", path, err)
		}
		err = feed(i, f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func replay(r io.Reader, name string, collector *report.Collector, interceptor *event.Interceptor) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		interceptor.MessageLogged(event.Event{
			Producer: name,
			Task:     event.TaskName,
			Kind:     event.KindMessageLogged,
			Priority: event.PriorityDebug,
			Message:  line,
			Channel:  name,
			Token:    collector.Token(),
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input %s: %w", name, err)
	}
	return nil
}
