package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/source"
)

// Status is a coarse per-file progress state for UI consumers.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusClean
	StatusIssues
	StatusFailed
)

// Event is one progress update from a multi-file run.
type Event struct {
	Path   string
	Status Status
}

// ProgressSink receives progress events. Send is called from worker
// goroutines and must be safe for concurrent use.
type ProgressSink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) { s.Ch <- ev }

func emit(sink ProgressSink, path string, status Status) {
	if sink != nil {
		sink.Send(Event{Path: path, Status: status})
	}
}

func statusOf(res *LintResult) Status {
	switch {
	case res.Fatal != nil:
		return StatusFailed
	case res.Clean():
		return StatusClean
	default:
		return StatusIssues
	}
}

// LintFiles lints every file concurrently, bounded by jobs workers
// (jobs <= 0 means GOMAXPROCS). Each file gets its own FileSet so
// workers share nothing; results come back in input order. A file that
// fails to load produces a result carrying an io_load_error diagnostic
// instead of failing the whole run.
func LintFiles(ctx context.Context, files []string, opts Options, jobs int) ([]*LintResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*LintResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Progress, path, StatusChecking)
			fs := source.NewFileSet()
			res, err := LintFile(fs, path, opts)
			if err != nil {
				res = loadFailure(fs, path, opts, err)
			}
			results[i] = res
			emit(opts.Progress, path, statusOf(res))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func loadFailure(fs *source.FileSet, path string, opts Options, err error) *LintResult {
	// Anchor the diagnostic in an empty placeholder so formatters can
	// resolve its span.
	id := fs.AddVirtual(path, nil)
	res := &LintResult{
		FileSet: fs,
		File:    fs.Get(id),
		Path:    path,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
		Fatal:   err,
	}
	rep := &diag.BagReporter{Bag: res.Bag}
	rep.Report(diag.IOLoadFileError, diag.SevError, source.Span{File: id},
		fmt.Sprintf("cannot load %s: %v", path, err), nil, nil)
	return res
}
