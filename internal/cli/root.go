package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFlag  string
	workersFlag int
	quietFlag   bool
)

// rootCmd is the whole invocation surface: one command, one positional
// argument naming the solution manifest. A missing argument prints usage and
// exits non-zero without producing output.
var rootCmd = &cobra.Command{
	Use:   "solution-analyzer <solution-manifest>",
	Short: "Extract a semantic summary from a multi-project solution",
	Long: `solution-analyzer loads a solution manifest, parses every source file in
every project, and extracts type names, method names, and documentation
comments into one deterministic JSON summary.

The summary (semantic_summary.json by default) is the input to a downstream
documentation generator; its schema is stable across versions.

Examples:
  # Analyze a solution
  solution-analyzer path/to/solution.yml

  # Write the summary somewhere else
  solution-analyzer --output build/summary.json path/to/solution.yml
`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "summary destination (default semantic_summary.json)")
	rootCmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "extraction workers (default: number of CPUs)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress bars and non-error output")
}
