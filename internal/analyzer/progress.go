package analyzer

// ProgressReporter receives callbacks as an extraction run advances. All
// callbacks may be invoked from worker goroutines; implementations must be
// safe for concurrent use.
type ProgressReporter interface {
	// OnLoadStart fires before the solution manifest is resolved.
	OnLoadStart(manifestPath string)

	// OnLoadComplete fires once the project graph is resolved.
	OnLoadComplete(projects, documents int)

	// OnExtractionStart fires before per-document work is scheduled.
	OnExtractionStart(totalDocuments int)

	// OnDocumentProcessed fires after each document finishes, whether or
	// not it contributed facts.
	OnDocumentProcessed(name string)

	// OnComplete fires after the index has been assembled.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a ProgressReporter that does nothing.
type NoOpProgressReporter struct{}

func (*NoOpProgressReporter) OnLoadStart(string)         {}
func (*NoOpProgressReporter) OnLoadComplete(int, int)    {}
func (*NoOpProgressReporter) OnExtractionStart(int)      {}
func (*NoOpProgressReporter) OnDocumentProcessed(string) {}
func (*NoOpProgressReporter) OnComplete(*Stats)          {}
