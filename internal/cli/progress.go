package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/codedoc/solution-analyzer/internal/analyzer"
)

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet bool

	mu      sync.Mutex
	fileBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnLoadStart(manifestPath string) {
	if c.quiet {
		return
	}
	fmt.Printf("Loading solution %s...\n", manifestPath)
}

func (c *CLIProgressReporter) OnLoadComplete(projects, documents int) {
	if c.quiet {
		return
	}
	fmt.Printf("Analyzing %d documents across %d projects\n", documents, projects)
}

func (c *CLIProgressReporter) OnExtractionStart(totalDocuments int) {
	if c.quiet || totalDocuments == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileBar = progressbar.NewOptions(totalDocuments,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnDocumentProcessed(name string) {
	if c.quiet {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(stats *analyzer.Stats) {
	if c.quiet {
		return
	}
	fmt.Printf("✓ Extracted %d records (%d documents, %d parse failures)\n",
		stats.Records, stats.Documents, stats.ParseFailures)
}
