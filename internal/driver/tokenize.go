package driver

import (
	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/lexer"
	"github.com/zeth/jscodestyle/internal/source"
	"github.com/zeth/jscodestyle/internal/stream"
	"github.com/zeth/jscodestyle/internal/tracker"
)

// TokenizeResult carries the annotated token stream of one file for
// inspection tooling.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *stream.Stream
	Bag     *diag.Bag
	Fatal   error
}

// TokenizeFile loads one file and produces its annotated token stream.
// Annotation still runs so the dump shows depths and roles; a fatal
// lexical error leaves Stream nil.
func TokenizeFile(fs *source.FileSet, path string, opts Options) (*TokenizeResult, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, fs.Get(id), opts), nil
}

// TokenizeSource tokenizes in-memory content.
func TokenizeSource(fs *source.FileSet, name string, content []byte, opts Options) *TokenizeResult {
	id := fs.AddVirtual(name, content)
	return tokenize(fs, fs.Get(id), opts)
}

func tokenize(fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	res := &TokenizeResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	rep := &diag.BagReporter{Bag: res.Bag}

	s, err := lexer.Lex(file, lexer.Options{Reporter: rep})
	if err != nil {
		res.Fatal = err
		return res
	}
	res.Stream = s
	tracker.Annotate(s, tracker.Options{Interner: source.NewInterner(), Reporter: rep})
	return res
}
