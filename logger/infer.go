package logger

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

const maxFrames = 32

// A resolver recovers the source expression passed to a level method,
// so a lone value can be labeled with the name it has at the call site.
//
// Resolution is best effort: any failure yields no name.
// Binaries built without their sources, or with -trimpath, never get names.
type resolver struct {
	mu    sync.Mutex
	files map[string]*sourceFile // nil entries are files that could not be read or parsed

	// site and next rotate through several calls on one line, e.g.,
	// a slice of closures each logging a different value.
	// The state is shared by every call site; interleaving two partially
	// executed lines picks the wrong call.
	site string
	next int
}

func newResolver() *resolver {
	return &resolver{files: make(map[string]*sourceFile)}
}

// resolve finds the argument text for the level method skip frames above the caller of resolve.
func (r *resolver) resolve(skip int) (string, bool) {
	fn, file, line, ok := callSite(skip + 2)
	if !ok {
		return "", false
	}

	src := r.source(file)
	if src == nil {
		return "", false
	}

	calls := src.callsAt(fn, line)
	switch len(calls) {
	case 0:
		return "", false
	case 1:
		return src.argument(calls[0])
	default:
		i := r.rotate(file+":"+strconv.Itoa(line), len(calls))
		return src.argument(calls[i])
	}
}

// rotate picks the next of n calls on site.
// Arriving at a new site starts over from its first call.
func (r *resolver) rotate(site string, n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if site != r.site {
		r.site = site
		r.next = 0
	}

	i := r.next % n
	r.next++
	return i
}

func (r *resolver) source(path string) *sourceFile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.files[path]; ok {
		return src
	}

	src := parseSource(path)
	r.files[path] = src
	return src
}

// callSite names the function skip frames above callSite
// and the file and line from which that function was called.
func callSite(skip int) (fn, file string, line int, ok bool) {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for i := 0; ; i++ {
		frame, more := frames.Next()
		switch i {
		case skip:
			fn = funcName(frame.Function)
		case skip + 1:
			return fn, frame.File, frame.Line, fn != "" && frame.File != ""
		}

		if !more {
			return "", "", 0, false
		}
	}
}

// funcName trims a qualified function name down to what appears at a call site.
//
//	github.com/xy-planning-network/kellog/logger.(*Logger).Debug => Debug
//	main.show[...]                                                => show
func funcName(qualified string) string {
	qualified = strings.TrimSuffix(qualified, "[...]")
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

func parseSource(path string) *sourceFile {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil
	}

	return &sourceFile{fset: fset, file: f, src: src}
}

// callsAt collects, in source order, the calls to fn spanning line.
func (s *sourceFile) callsAt(fn string, line int) []*ast.CallExpr {
	var calls []*ast.CallExpr
	ast.Inspect(s.file, func(n ast.Node) bool {
		if n == nil {
			return false
		}

		if s.fset.Position(n.Pos()).Line > line || s.fset.Position(n.End()).Line < line {
			return false
		}

		if call, ok := n.(*ast.CallExpr); ok && calledName(call.Fun) == fn {
			calls = append(calls, call)
		}

		return true
	})

	return calls
}

// argument is the source text of the only argument in call.
// Literals and fmt calls are values in their own right and get no name.
func (s *sourceFile) argument(call *ast.CallExpr) (string, bool) {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return "", false
	}

	arg := call.Args[0]
	if isLiteral(arg) {
		return "", false
	}

	start, end := s.fset.Position(arg.Pos()).Offset, s.fset.Position(arg.End()).Offset
	if start < 0 || end > len(s.src) || start >= end {
		return "", false
	}

	return string(s.src[start:end]), true
}

func calledName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calledName(f.X)
	case *ast.IndexListExpr:
		return calledName(f.X)
	case *ast.ParenExpr:
		return calledName(f.X)
	default:
		return ""
	}
}

func isLiteral(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return true
	case *ast.ParenExpr:
		return isLiteral(e.X)
	case *ast.UnaryExpr:
		return isLiteral(e.X)
	case *ast.BinaryExpr:
		return isLiteral(e.X) && isLiteral(e.Y)
	case *ast.CallExpr:
		sel, ok := e.Fun.(*ast.SelectorExpr)
		if !ok {
			return false
		}
		pkg, ok := sel.X.(*ast.Ident)
		return ok && pkg.Name == "fmt"
	default:
		return false
	}
}
