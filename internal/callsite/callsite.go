// Package callsite finds where an assertion was called from and recovers the
// source text of its arguments.
package callsite

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"unicode"
)

const maxFrames = 64

var (
	ErrNoCaller     = errors.New("no caller outside the assertion package")
	ErrCallNotFound = errors.New("assertion call not found in source")
	ErrNoArgument   = errors.New("assertion call has no such argument")
	// ErrAmbiguousCall is returned when several calls share the caller's line
	// and their arguments read differently. Frames carry no column to tell
	// them apart.
	ErrAmbiguousCall = errors.New("assertion calls on one line disagree")
)

// Site is the location of an assertion call.
type Site struct {
	// Func is the exported assertion called from user code, e.g. "ContainKey".
	Func string
	File string
	Line int
}

func (s Site) String() string {
	return fmt.Sprintf("%s at %s:%d", s.Func, s.File, s.Line)
}

// Locate walks the stack of the calling goroutine. Frames belonging to pkg are
// assertion frames; the outermost exported function among them names the
// assertion, and the frame right after it is the caller.
func Locate(pkg string) (Site, error) {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	prefix := pkg + "."
	var name string
	for {
		frame, more := frames.Next()
		if fn, ok := strings.CutPrefix(frame.Function, prefix); ok {
			if exported := exportedName(fn); exported != "" {
				name = exported
			}
		} else if name != "" {
			return Site{Func: name, File: frame.File, Line: frame.Line}, nil
		}
		if !more {
			break
		}
	}
	return Site{}, ErrNoCaller
}

// exportedName reduces "Be[...]" or "Panic.func1" to the top-level exported
// function name. Methods and unexported helpers yield "".
func exportedName(fn string) string {
	head, _, _ := strings.Cut(fn, ".")
	head, _, _ = strings.Cut(head, "[")
	if head == "" {
		return ""
	}
	if r := []rune(head)[0]; !unicode.IsUpper(r) {
		return ""
	}
	return head
}

// Expression returns the source text of argument arg of the call to site.Func
// that spans site.Line.
func Expression(site Site, arg int) (string, error) {
	src, err := os.ReadFile(site.File)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", site.File, err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, site.File, src, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", site.File, err)
	}

	calls := findCalls(fset, file, site)
	if len(calls) == 0 {
		return "", fmt.Errorf("%s: %w", site, ErrCallNotFound)
	}

	var expr string
	for i, call := range calls {
		if arg < 0 || arg >= len(call.Args) {
			return "", fmt.Errorf("%s argument %d: %w", site, arg, ErrNoArgument)
		}
		node := unwrapFuncLit(call.Args[arg])
		start := fset.Position(node.Pos()).Offset
		end := fset.Position(node.End()).Offset
		text := strings.TrimSpace(string(src[start:end]))
		if i > 0 && text != expr {
			return "", fmt.Errorf("%s: %d calls: %w", site, len(calls), ErrAmbiguousCall)
		}
		expr = text
	}
	return expr, nil
}

// findCalls returns the narrowest calls to site.Func whose span covers
// site.Line. More than one comes back when calls of equal span share it.
func findCalls(fset *token.FileSet, file *ast.File, site Site) []*ast.CallExpr {
	var (
		best     []*ast.CallExpr
		bestSpan int
	)
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != site.Func {
			return true
		}
		start := fset.Position(call.Pos()).Line
		end := fset.Position(call.End()).Line
		if site.Line < start || site.Line > end {
			return true
		}
		switch span := end - start; {
		case best == nil || span < bestSpan:
			best, bestSpan = []*ast.CallExpr{call}, span
		case span == bestSpan:
			best = append(best, call)
		}
		return true
	})
	return best
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}

// unwrapFuncLit reduces a function literal with a single statement to that
// statement, so `func() { doThing() }` reads as `doThing()`.
func unwrapFuncLit(expr ast.Expr) ast.Node {
	lit, ok := expr.(*ast.FuncLit)
	if !ok || lit.Body == nil || len(lit.Body.List) != 1 {
		return expr
	}
	stmt := lit.Body.List[0]
	if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
		return ret.Results[0]
	}
	return stmt
}
