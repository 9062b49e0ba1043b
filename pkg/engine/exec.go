package engine

import (
	"fmt"
	iofs "io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/classtrim/classtrim/pkg/fs"
	"github.com/classtrim/classtrim/pkg/logger"
)

// runner executes the engine tool and returns its combined output. Split out
// so tests can run invocations without a JVM.
type runner func(name string, args ...string) ([]byte, error)

func execRun(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// execEngine runs the shrinker as an external jar: it renders the invocation
// into a configuration file, launches the tool, then feeds the usage file and
// the emitted class tree into the invocation's sinks.
type execEngine struct {
	fs             fs.FS
	logger         logger.Logger
	javaBin        string
	engineJar      string
	runtimeArchive string
	workDir        string
	run            runner
}

// NewExecEngineParams contains parameters for creating a new exec-backed
// engine.
type NewExecEngineParams struct {
	FS             fs.FS
	Logger         logger.Logger
	JavaBin        string
	EngineJar      string
	RuntimeArchive string
	WorkDir        string
}

// NewExecEngine creates an Engine that shells out to an external shrinker
// jar.
func NewExecEngine(params NewExecEngineParams) Engine {
	e := &execEngine{
		fs:             params.FS,
		logger:         params.Logger,
		javaBin:        params.JavaBin,
		engineJar:      params.EngineJar,
		runtimeArchive: params.RuntimeArchive,
		workDir:        params.WorkDir,
		run:            execRun,
	}
	if e.fs == nil {
		e.fs = fs.NewFS()
	}
	if e.logger == nil {
		e.logger = logger.NewNoopLogger()
	}
	if e.javaBin == "" {
		e.javaBin = "java"
	}
	return e
}

// Run executes the engine over one invocation.
func (e *execEngine) Run(inv Invocation) error {
	if e.engineJar == "" {
		return ErrEngineJarMissing
	}

	outDir := filepath.Join(e.workDir, "out")
	usageFile := filepath.Join(e.workDir, "usage.txt")

	// Start each run from an empty output tree so emitted classes from a
	// previous invocation cannot leak into the sinks.
	if err := e.fs.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to reset engine output directory: %w", err)
	}
	if err := e.fs.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create engine output directory: %w", err)
	}

	programPaths, err := e.materialize(inv.Program)
	if err != nil {
		return err
	}

	confPath := filepath.Join(e.workDir, "engine.conf")
	conf := renderConfig(renderParams{
		ProgramPaths: programPaths,
		LibraryPaths: e.libraryPaths(inv.Library),
		OutDir:       outDir,
		UsageFile:    usageFile,
		Rules:        inv.Rules,
	})
	if err := e.fs.WriteFile(confPath, []byte(conf), 0644); err != nil {
		return fmt.Errorf("failed to write engine configuration: %w", err)
	}

	e.logger.Logf("running engine: %s -jar %s @%s", e.javaBin, e.engineJar, confPath)
	output, err := e.run(e.javaBin, "-jar", e.engineJar, "@"+confPath)
	if err != nil {
		return fmt.Errorf("%w: %v (output: %s)", ErrEngineFailed, err, string(output))
	}

	if err := e.streamUsage(usageFile, inv.UsageSink); err != nil {
		return err
	}
	return e.emitClasses(outDir, inv.ClassSink)
}

// materialize writes raw-byte entries to scratch files so the engine can read
// them, and passes path entries through unchanged.
func (e *execEngine) materialize(entries []Entry) ([]string, error) {
	scratchDir := filepath.Join(e.workDir, "program")

	var paths []string
	for i, entry := range entries {
		if entry.Data == nil {
			paths = append(paths, entry.Path)
			continue
		}

		path := filepath.Join(scratchDir, fmt.Sprintf("entry-%04d.class", i))
		if err := e.fs.WriteFile(path, entry.Data, 0644); err != nil {
			return nil, fmt.Errorf("failed to materialize program entry %q: %w", entry.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// libraryPaths resolves library entries to paths, appending the JDK runtime
// archive when configured.
func (e *execEngine) libraryPaths(entries []Entry) []string {
	var paths []string
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	if e.runtimeArchive != "" {
		paths = append(paths, e.runtimeArchive)
	}
	return paths
}

// streamUsage tokenizes the usage file into the sink: one token per log line,
// each followed by a Separator token.
func (e *execEngine) streamUsage(usageFile string, sink func(token string)) error {
	if sink == nil {
		return nil
	}

	exists, err := e.fs.Exists(usageFile)
	if err != nil {
		return fmt.Errorf("failed to check usage file: %w", err)
	}
	if !exists {
		// The engine writes no usage file when nothing was analyzed.
		return nil
	}

	data, err := e.fs.ReadFile(usageFile)
	if err != nil {
		return fmt.Errorf("failed to read usage file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == len(lines)-1 && line == "" {
			break
		}
		if line != "" {
			sink(line)
		}
		sink(Separator)
	}
	return nil
}

// emitClasses walks the engine output tree and feeds every emitted class into
// the sink with its internal name derived from the relative path.
func (e *execEngine) emitClasses(outDir string, sink func(internalName string, data []byte)) error {
	if sink == nil {
		return nil
	}

	return e.fs.WalkDir(outDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".class") {
			return nil
		}

		data, err := e.fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read emitted class %s: %w", path, err)
		}

		rel, err := filepath.Rel(outDir, path)
		if err != nil {
			return fmt.Errorf("failed to resolve emitted class path %s: %w", path, err)
		}

		internal := strings.TrimSuffix(filepath.ToSlash(rel), ".class")
		sink(internal, data)
		return nil
	})
}
