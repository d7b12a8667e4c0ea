package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/devmap/internal/assessment"
	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/taxonomy"
	"github.com/spf13/cobra"
)

// errNoSnapshot is returned by commands that need an assessment snapshot.
var errNoSnapshot = errors.New("no assessment snapshot: pass --assessments or set " + envAssessments)

// loadEngine returns the engine over the --taxonomy file, or the embedded
// taxonomy when none is configured.
func (o *options) loadEngine() (*ceiling.Engine, error) {
	start := time.Now()
	var eng *ceiling.Engine
	if o.taxonomyPath == "" {
		eng = ceiling.Default()
	} else {
		tax, err := taxonomy.Load(o.taxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		eng = ceiling.New(tax)
	}

	tax := eng.Taxonomy()
	perDomain := make(map[string]int)
	for _, d := range tax.Domains() {
		perDomain[d.ID] = len(tax.SkillsInDomain(d.ID))
	}
	o.metrics.SetTaxonomySize(perDomain, tax.EdgeCount())
	o.logger.Debug("taxonomy ready",
		"version", tax.Version(),
		"skills", tax.Len(),
		"edges", tax.EdgeCount(),
		"source", o.taxonomySource(),
		"elapsed", time.Since(start))
	return eng, nil
}

func (o *options) taxonomySource() string {
	if o.taxonomyPath == "" {
		return "embedded"
	}
	return o.taxonomyPath
}

// loadSnapshot reads the configured snapshot and resolves it against the
// engine's taxonomy. Without a configured path it returns an empty snapshot
// unless required is set.
func (o *options) loadSnapshot(cmd *cobra.Command, eng *ceiling.Engine, required bool) (ceiling.Assessments, error) {
	if o.assessmentsPath == "" {
		if required {
			return nil, errNoSnapshot
		}
		o.logger.Info("no assessment snapshot configured; treating every skill as unassessed")
		return ceiling.Assessments{}, nil
	}

	raw, err := assessment.Load(o.assessmentsPath, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	a, ignored, err := assessment.Resolve(raw, eng.Taxonomy(), o.strict)
	if err != nil {
		return nil, &assessment.SnapshotError{Path: o.assessmentsPath, Err: err}
	}
	if len(ignored) > 0 {
		o.metrics.RecordIgnored(len(ignored))
		o.logger.Warn("ignoring unknown skill ids in snapshot",
			"path", o.assessmentsPath,
			"count", len(ignored),
			"ids", ignored)
	}
	o.logger.Debug("snapshot loaded", "path", o.assessmentsPath, "assessed", len(a))
	return a, nil
}

// timed runs one engine query, recording its duration.
func (o *options) timed(op string, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	o.metrics.RecordQuery(op, elapsed)
	o.logger.Debug("query", "op", op, "elapsed", elapsed)
}
