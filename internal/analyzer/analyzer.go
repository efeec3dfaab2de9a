package analyzer

import (
	"context"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/codedoc/solution-analyzer/internal/lang"
	"github.com/codedoc/solution-analyzer/internal/parsers"
	"github.com/codedoc/solution-analyzer/internal/summary"
	"github.com/codedoc/solution-analyzer/internal/workspace"
)

// Stats summarizes one extraction run.
type Stats struct {
	Projects      int
	Documents     int
	Records       int
	ParseFailures int
	Duration      time.Duration
}

// Analyzer drives the full pipeline: load the solution, parse and extract
// every document across a bounded worker pool, and assemble the ordered
// index of per-file records.
type Analyzer struct {
	registry *lang.Registry
	workers  int
	log      *zap.SugaredLogger
	progress ProgressReporter
}

// New creates an Analyzer. workers <= 0 means one worker per CPU. The
// registry must already be initialized; see lang.Default.
func New(registry *lang.Registry, workers int, log *zap.SugaredLogger, progress ProgressReporter) *Analyzer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}
	return &Analyzer{
		registry: registry,
		workers:  workers,
		log:      log,
		progress: progress,
	}
}

// job is one (project, document) pair with its reserved slot in the result
// buffer. Slot order is the solution's enumeration order, so the final index
// is independent of worker scheduling.
type job struct {
	slot     int
	project  *workspace.Project
	document workspace.Document
}

// Run extracts the semantic index for the solution at manifestPath. Loader
// failures abort the run; per-document parse and read failures are contained
// at the document boundary and logged at warn level. A cancelled context
// aborts in-flight work and returns the context's error with no records.
func (a *Analyzer) Run(ctx context.Context, manifestPath string) ([]summary.FileRecord, *Stats, error) {
	start := time.Now()
	log := a.log.With("run_id", uuid.NewString())

	a.progress.OnLoadStart(manifestPath)
	sol, err := workspace.NewLoader(a.registry).Load(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	jobs := flatten(sol)
	a.progress.OnLoadComplete(len(sol.Projects), len(jobs))
	log.Infow("workspace loaded",
		"manifest", sol.ManifestPath,
		"projects", len(sol.Projects),
		"documents", len(jobs),
	)

	a.progress.OnExtractionStart(len(jobs))

	// Each worker owns a disjoint slot, so no locking is needed around the
	// result buffer.
	results := make([]*summary.FileRecord, len(jobs))
	var failures atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[j.slot] = a.extractDocument(gctx, log, j, &failures)
			a.progress.OnDocumentProcessed(j.document.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	records := make([]summary.FileRecord, 0, len(jobs))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	stats := &Stats{
		Projects:      len(sol.Projects),
		Documents:     len(jobs),
		Records:       len(records),
		ParseFailures: int(failures.Load()),
		Duration:      time.Since(start),
	}
	a.progress.OnComplete(stats)
	log.Infow("extraction complete",
		"records", stats.Records,
		"parse_failures", stats.ParseFailures,
		"duration", stats.Duration,
	)
	return records, stats, nil
}

// extractDocument runs the parse → extract → aggregate steps for one
// document. Every failure is absorbed here: the document contributes zero
// facts and the run continues.
func (a *Analyzer) extractDocument(ctx context.Context, log *zap.SugaredLogger, j job, failures *atomic.Int64) *summary.FileRecord {
	grammar, ok := a.registry.ByID(j.document.Language)
	if !ok {
		return nil
	}
	p := parsers.For(grammar)
	if p == nil {
		return nil
	}

	source, err := os.ReadFile(j.document.Path)
	if err != nil {
		failures.Add(1)
		log.Warnw("skipping unreadable document",
			"project", j.project.Name,
			"file", j.document.Name,
			"error", err,
		)
		return nil
	}

	facts, err := p.Parse(ctx, j.document.Path, source)
	if err != nil {
		failures.Add(1)
		log.Warnw("skipping unparseable document",
			"project", j.project.Name,
			"file", j.document.Name,
			"error", err,
		)
		return nil
	}

	return summary.Aggregate(j.project.Name, j.document.Name, facts.Types, facts.Members, facts.DocComments)
}

func flatten(sol *workspace.Solution) []job {
	var jobs []job
	for _, p := range sol.Projects {
		for _, d := range p.Documents {
			jobs = append(jobs, job{slot: len(jobs), project: p, document: d})
		}
	}
	return jobs
}
