// Package tracker determines which classes a whole-program reachability
// analysis would eliminate, without shrinking the real output artifact. It
// drives the engine twice: an enumeration pass with shrinking disabled to
// learn the full universe of first-party classes, then the real shrink pass
// whose usage log yields the unused set.
package tracker

import (
	"fmt"
	"path/filepath"

	"github.com/classtrim/classtrim/pkg/collector"
	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/classtrim/classtrim/pkg/fs"
	"github.com/classtrim/classtrim/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocktracker.gen.go -package=tracker

// tempOutputDir is the fixed directory name for processed class output under
// the work directory.
const tempOutputDir = "unused-classes"

// Tracker interface provides unused class analysis around the reachability
// engine.
type Tracker interface {
	// AddDependency registers a candidate dependency archive or directory.
	// Candidates outside the to-minimize collection are silently ignored.
	AddDependency(path string)

	// KeepRules runs the enumeration pass and returns one synthesized keep
	// rule per first-party class, as the engine itself sees the program.
	// Regenerated on every call.
	KeepRules() ([]string, error)

	// FindUnused runs the shrink pass and returns the external names of
	// classes the engine determined to be unreachable.
	FindUnused() (map[string]struct{}, error)

	// OutputPath resolves where processed bytes for a class are written
	// during FindUnused.
	OutputPath(external string) string

	// Dependencies returns the accumulated dependency set, sorted.
	Dependencies() []string
}

type realTracker struct {
	classDirs   []string
	apiArchives []string
	toMinimize  map[string]struct{}
	deps        map[string]struct{}
	tempRoot    string
	engine      engine.Engine
	collector   collector.Collector
	fs          fs.FS
	logger      logger.Logger
}

// NewTrackerParams contains parameters for creating a new Tracker.
type NewTrackerParams struct {
	// ClassDirs are the first-party class output directories.
	ClassDirs []string
	// APIArchives are first-party archives analyzed as program inputs but
	// never eligible for minimization.
	APIArchives []string
	// ToMinimize is the collection of dependency archives and directories
	// eligible for stripping.
	ToMinimize []string
	// WorkDir is the root under which the temporary class output tree is
	// created.
	WorkDir   string
	Engine    engine.Engine
	Collector collector.Collector
	FS        fs.FS
	Logger    logger.Logger
}

// New creates a new Tracker instance. The temporary output directory is
// created eagerly.
func New(params NewTrackerParams) (Tracker, error) {
	if params.Engine == nil {
		return nil, ErrEngineMissing
	}

	t := &realTracker{
		classDirs:   params.ClassDirs,
		apiArchives: params.APIArchives,
		toMinimize:  make(map[string]struct{}, len(params.ToMinimize)),
		deps:        make(map[string]struct{}),
		tempRoot:    filepath.Join(params.WorkDir, tempOutputDir),
		engine:      params.Engine,
		collector:   params.Collector,
		fs:          params.FS,
		logger:      params.Logger,
	}
	if t.fs == nil {
		t.fs = fs.NewFS()
	}
	if t.logger == nil {
		t.logger = logger.NewNoopLogger()
	}
	if t.collector == nil {
		t.collector = collector.NewCollector(t.fs)
	}

	// Candidates are matched by cleaned path so a differently spelled path
	// for the same artifact still classifies.
	for _, path := range params.ToMinimize {
		t.toMinimize[filepath.Clean(path)] = struct{}{}
	}

	if err := t.fs.MkdirAll(t.tempRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temporary output directory: %w", err)
	}

	return t, nil
}
