package gen

import (
	"fmt"
	"go/types"
	"path"
	"reflect"
	"strconv"

	"golang.org/x/exp/slices"
)

const issamePath = "github.com/go-leo/issame"

// exprBuilder renders the comparison expression for one struct type,
// collecting the imports the expression needs along the way.
type exprBuilder struct {
	pkg       *types.Package
	tag       string
	requested map[string]bool
	deps      map[string]string // import path -> package name
	needLib   bool
}

func newExprBuilder(pkg *types.Package, tag string, requested map[string]bool) *exprBuilder {
	return &exprBuilder{pkg: pkg, tag: tag, requested: requested, deps: map[string]string{}}
}

func (b *exprBuilder) qualifier(p *types.Package) string {
	if p == b.pkg {
		return ""
	}
	b.deps[p.Path()] = p.Name()
	return p.Name()
}

func (b *exprBuilder) typeString(t types.Type) string {
	return types.TypeString(t, b.qualifier)
}

func (b *exprBuilder) importLines() []string {
	var lines []string
	if b.needLib {
		lines = append(lines, strconv.Quote(issamePath))
	}
	for p, name := range b.deps {
		line := strconv.Quote(p)
		if path.Base(p) != name {
			line = name + " " + line
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines
}

// structBody renders the field-wise conjunction in declared order. A struct
// with no fields compares unconditionally the same.
func (b *exprBuilder) structBody(name string, st *types.Struct) (string, error) {
	if st.NumFields() == 0 {
		return "true", nil
	}
	terms := make([]string, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		shared := reflect.StructTag(st.Tag(i)).Get(b.tag) == "shared"
		term, err := b.compareExpr(field.Type(), "x."+field.Name(), "other."+field.Name(), shared)
		if err != nil {
			if shapeErr, ok := err.(*ShapeError); ok && shapeErr.Type == "" {
				shapeErr.Type = name
				shapeErr.Field = field.Name()
			}
			return "", err
		}
		terms = append(terms, term)
	}
	return joinTerms(terms), nil
}

// joinTerms chains the per-field terms with &&, which short-circuits at the
// first differing field.
func joinTerms(terms []string) string {
	out := terms[0]
	for _, term := range terms[1:] {
		out += " &&\n\t\t" + term
	}
	return out
}

// compareExpr renders a boolean expression comparing l and r of type t.
func (b *exprBuilder) compareExpr(t types.Type, l, r string, shared bool) (string, error) {
	t = types.Unalias(t)
	if shared {
		if _, ok := t.Underlying().(*types.Pointer); !ok {
			return "", &ShapeError{Reason: "the shared tag applies to pointer fields only"}
		}
		return l + " == " + r, nil
	}
	if b.comparesByMethod(t) {
		return l + ".IsSame(" + r + ")", nil
	}
	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch u.Kind() {
		case types.Float32:
			return b.bitsExpr("Float32", "float32", t, l, r), nil
		case types.Float64:
			return b.bitsExpr("Float64", "float64", t, l, r), nil
		case types.Complex64:
			return b.bitsExpr("Complex64", "complex64", t, l, r), nil
		case types.Complex128:
			return b.bitsExpr("Complex128", "complex128", t, l, r), nil
		}
		if u.Info()&(types.IsBoolean|types.IsInteger|types.IsString) != 0 {
			return l + " == " + r, nil
		}
		return "", &ShapeError{Reason: fmt.Sprintf("basic type %s has no sameness", u)}
	case *types.Pointer:
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("issame.RefFunc[%s](%s)(%s, %s)", b.typeString(u.Elem()), fn, l, r), nil
	case *types.Slice:
		if isByte(u.Elem()) {
			b.needLib = true
			if _, plain := t.(*types.Slice); plain {
				return fmt.Sprintf("issame.Bytes(%s, %s)", l, r), nil
			}
			return fmt.Sprintf("issame.Bytes([]byte(%s), []byte(%s))", l, r), nil
		}
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("issame.SliceFunc(%s, %s, %s)", l, r, fn), nil
	case *types.Map:
		if isEmptyStruct(u.Elem()) {
			b.needLib = true
			return fmt.Sprintf("issame.Set(%s, %s)", l, r), nil
		}
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("issame.MapFunc(%s, %s, %s)", l, r, fn), nil
	case *types.Array:
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		// x and other are variables, so slicing the array fields is legal.
		return fmt.Sprintf("issame.SliceFunc(%s[:], %s[:], %s)", l, r, fn), nil
	case *types.Struct:
		return "", &ShapeError{Reason: fmt.Sprintf("struct type %s neither implements IsSame nor is derived in this run", b.typeString(t))}
	default:
		return "", &ShapeError{Reason: fmt.Sprintf("type %s has no sameness", b.typeString(t))}
	}
}

// funcExpr renders an expression of type issame.Func[t].
func (b *exprBuilder) funcExpr(t types.Type) (string, error) {
	t = types.Unalias(t)
	ts := b.typeString(t)
	if b.comparesByMethod(t) {
		b.needLib = true
		return "issame.Same[" + ts + "]", nil
	}
	switch u := t.Underlying().(type) {
	case *types.Basic:
		_, plain := t.(*types.Basic)
		switch u.Kind() {
		case types.Float32:
			b.needLib = true
			if plain {
				return "issame.Float32", nil
			}
			return fmt.Sprintf("func(a, b %s) bool { return issame.Float32(float32(a), float32(b)) }", ts), nil
		case types.Float64:
			b.needLib = true
			if plain {
				return "issame.Float64", nil
			}
			return fmt.Sprintf("func(a, b %s) bool { return issame.Float64(float64(a), float64(b)) }", ts), nil
		case types.Complex64:
			b.needLib = true
			if plain {
				return "issame.Complex64", nil
			}
			return fmt.Sprintf("func(a, b %s) bool { return issame.Complex64(complex64(a), complex64(b)) }", ts), nil
		case types.Complex128:
			b.needLib = true
			if plain {
				return "issame.Complex128", nil
			}
			return fmt.Sprintf("func(a, b %s) bool { return issame.Complex128(complex128(a), complex128(b)) }", ts), nil
		}
		if u.Info()&(types.IsBoolean|types.IsInteger|types.IsString) != 0 {
			b.needLib = true
			return "issame.Scalar[" + ts + "]", nil
		}
		return "", &ShapeError{Reason: fmt.Sprintf("basic type %s has no sameness", u)}
	case *types.Pointer:
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("issame.RefFunc[%s](%s)", b.typeString(u.Elem()), fn), nil
	case *types.Slice:
		if isByte(u.Elem()) {
			b.needLib = true
			if _, plain := t.(*types.Slice); plain {
				return "issame.Bytes", nil
			}
			return fmt.Sprintf("func(a, b %s) bool { return issame.Bytes([]byte(a), []byte(b)) }", ts), nil
		}
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("func(a, b %s) bool { return issame.SliceFunc(a, b, %s) }", ts, fn), nil
	case *types.Map:
		if isEmptyStruct(u.Elem()) {
			b.needLib = true
			return fmt.Sprintf("func(a, b %s) bool { return issame.Set(a, b) }", ts), nil
		}
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("func(a, b %s) bool { return issame.MapFunc(a, b, %s) }", ts, fn), nil
	case *types.Array:
		fn, err := b.funcExpr(u.Elem())
		if err != nil {
			return "", err
		}
		b.needLib = true
		return fmt.Sprintf("func(a, b %s) bool { return issame.SliceFunc(a[:], b[:], %s) }", ts, fn), nil
	default:
		return "", &ShapeError{Reason: fmt.Sprintf("type %s has no sameness", ts)}
	}
}

func (b *exprBuilder) bitsExpr(helper, conv string, t types.Type, l, r string) string {
	b.needLib = true
	if _, plain := t.(*types.Basic); plain {
		return fmt.Sprintf("issame.%s(%s, %s)", helper, l, r)
	}
	return fmt.Sprintf("issame.%s(%s(%s), %s(%s))", helper, conv, l, conv, r)
}

// comparesByMethod reports whether t compares through an IsSame method,
// either one it already has or one being derived for it in this run.
func (b *exprBuilder) comparesByMethod(t types.Type) bool {
	if hasIsSame(t) {
		return true
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() == b.pkg && b.requested[obj.Name()]
}

func hasIsSame(t types.Type) bool {
	sel := types.NewMethodSet(t).Lookup(nil, "IsSame")
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok {
		return false
	}
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}
	if !types.Identical(sig.Params().At(0).Type(), t) {
		return false
	}
	basic, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && basic.Kind() == types.Bool
}

func isByte(t types.Type) bool {
	basic, ok := types.Unalias(t).(*types.Basic)
	return ok && basic.Kind() == types.Uint8
}

func isEmptyStruct(t types.Type) bool {
	st, ok := types.Unalias(t).(*types.Struct)
	return ok && st.NumFields() == 0
}
