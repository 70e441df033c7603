package guard

import (
	"cmp"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"github.com/dmitrymomot/sharedkit/pkg/cache"
)

// callSite is where Verify or VerifyWith was called from.
type callSite struct {
	pc       uintptr
	file     string
	line     int
	funcName string
	argIndex int
}

type parsedSource struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

// lineCalls holds the return addresses seen for one source line of one
// compiled function, in ascending order.
type lineCalls struct {
	mu  sync.Mutex
	pcs []uintptr
}

var (
	parsedSources = cache.New[string, *parsedSource](32)
	expressions   = cache.New[string, []string](512)
	callOrders    = cache.New[string, *lineCalls](512)
)

// expression returns the source text of the argument at site.argIndex of the
// innermost call to site.funcName covering site.line. It returns "" when the
// source is unavailable, e.g. in binaries built with -trimpath.
//
// Calls sharing a line are told apart by their return address: Go evaluates
// them left to right and the compiler emits them in that order. Until every
// call on the line has run once, a call is matched to the earliest candidate
// its address allows, so a call reached after short-circuiting past a sibling
// may take that sibling's text. When no candidate fits, "" is returned and
// the value labels the message.
func (site callSite) expression() string {
	if site.file == "" {
		return ""
	}
	key := site.file + ":" + strconv.Itoa(site.line) + ":" + site.funcName
	texts, _ := expressions.GetOrCompute(key, func() ([]string, error) {
		return site.resolve(), nil
	})
	switch len(texts) {
	case 0:
		return ""
	case 1:
		return texts[0]
	}
	if i := site.rank(key, len(texts)); i >= 0 {
		return texts[i]
	}
	return ""
}

// rank returns the position of site.pc among the n calls on its line, or -1.
func (site callSite) rank(key string, n int) int {
	if site.pc == 0 {
		return -1
	}
	if fn := runtime.FuncForPC(site.pc); fn != nil {
		key += "@" + strconv.FormatUint(uint64(fn.Entry()), 16)
	}
	lc, _ := callOrders.GetOrCompute(key, func() (*lineCalls, error) {
		return &lineCalls{}, nil
	})

	lc.mu.Lock()
	defer lc.mu.Unlock()
	i, found := slices.BinarySearch(lc.pcs, site.pc)
	if !found {
		if len(lc.pcs) >= n {
			return -1
		}
		lc.pcs = slices.Insert(lc.pcs, i, site.pc)
	}
	return i
}

// resolve returns the argument texts of the innermost calls to site.funcName
// covering site.line, in source order.
func (site callSite) resolve() []string {
	ps, err := parsedSources.GetOrCompute(site.file, func() (*parsedSource, error) {
		src, err := os.ReadFile(site.file)
		if err != nil {
			return nil, err
		}
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, site.file, src, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		return &parsedSource{fset: fset, file: f, src: src}, nil
	})
	if err != nil {
		return nil
	}

	var best []*ast.CallExpr
	bestSpan := -1
	ast.Inspect(ps.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != site.funcName || len(call.Args) <= site.argIndex {
			return true
		}
		start := ps.fset.Position(call.Pos()).Line
		end := ps.fset.Position(call.End()).Line
		if site.line < start || site.line > end {
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

	slices.SortFunc(best, func(a, b *ast.CallExpr) int { return cmp.Compare(a.Pos(), b.Pos()) })
	texts := make([]string, 0, len(best))
	for _, call := range best {
		arg := call.Args[site.argIndex]
		from := ps.fset.Position(arg.Pos()).Offset
		to := ps.fset.Position(arg.End()).Offset
		if from < 0 || to > len(ps.src) || from >= to {
			return nil
		}
		texts = append(texts, string(ps.src[from:to]))
	}
	return texts
}

// calleeName unwraps pkg.Func, Func[T] and pkg.Func[T] to Func.
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
	}
	return ""
}
