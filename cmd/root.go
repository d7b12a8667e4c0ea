package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/devmap/internal/metrics"
	"github.com/abhisek/devmap/internal/ui/theme"
	"github.com/spf13/cobra"
)

// Environment variables consulted when the matching flag is not set.
const (
	envTaxonomy    = "DEVMAP_TAXONOMY"
	envAssessments = "DEVMAP_ASSESSMENTS"
	envLogLevel    = "DEVMAP_LOG_LEVEL"
)

// options carries the persistent flags and the per-run collaborators.
type options struct {
	taxonomyPath    string
	assessmentsPath string
	logLevel        string
	strict          bool
	jsonOut         bool
	noColor         bool

	logger  *slog.Logger
	metrics *metrics.Registry
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd(metrics.DefaultRegistry()).Execute()
}

func newRootCmd(reg *metrics.Registry) *cobra.Command {
	opts := &options{metrics: reg}

	rootCmd := &cobra.Command{
		Use:   "devmap",
		Short: "Developmental skill ceilings and assessment priorities",
		Long: "devmap computes how far each developmental skill can safely progress given its\n" +
			"prerequisites, flags skills rated above that ceiling, and ranks unassessed\n" +
			"skills by how much assessing them would reveal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.taxonomyPath, "taxonomy", "", "Path to a taxonomy YAML file (overrides "+envTaxonomy+")")
	pf.StringVarP(&opts.assessmentsPath, "assessments", "a", "", "Assessment snapshot (.json, .yaml, .yml, or - for stdin; overrides "+envAssessments+")")
	pf.BoolVar(&opts.strict, "strict", false, "Reject snapshot skill ids missing from the taxonomy")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error (overrides "+envLogLevel+")")
	pf.BoolVar(&opts.jsonOut, "json", false, "Emit JSON instead of tables")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		newSkillCmd(opts),
		newCeilingsCmd(opts),
		newConstrainedCmd(opts),
		newInfluenceCmd(opts),
		newStartHereCmd(opts),
		newReadinessCmd(opts),
		newCoverageCmd(opts),
		newAnalyzeCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// resolve applies flag > environment > default and sets up logging.
func (o *options) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("taxonomy") {
		o.taxonomyPath = os.Getenv(envTaxonomy)
	}
	if !flags.Changed("assessments") {
		o.assessmentsPath = os.Getenv(envAssessments)
	}
	if !flags.Changed("log-level") {
		if v := os.Getenv(envLogLevel); v != "" {
			o.logLevel = v
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.noColor || o.jsonOut {
		theme.SetEnabled(false)
	}
	return nil
}
