package issame

import (
	"math"
	"reflect"
	"sync"
)

// TagKey is the struct tag key inspected by both derivers. A pointer field
// tagged `issame:"shared"` is a shared-ownership handle and compares by
// identity only.
const TagKey = "issame"

const sharedTag = "shared"

// comparer 基于 reflect.Value 比较两个同类型的值
type comparer func(a, b reflect.Value) bool

var comparerCache sync.Map // reflect.Type -> comparer

// Of derives a comparator for T from its structure, once; derived per-type
// comparers are cached and shared. Struct fields compare in declared order,
// stopping at the first mismatch; a struct with no fields is always the
// same. Shapes the deriver does not support (interfaces, channels,
// functions, unexported fields) are reported here at derivation time, never
// deferred to comparison time.
//
// The issame command emits the same comparison as source code; prefer it for
// types with unexported fields, which reflection cannot reach.
func Of[T any]() (Func[T], error) {
	t := reflect.TypeFor[T]()
	if err := checkShape(t, nil); err != nil {
		return nil, err
	}
	same := cachedComparer(t)
	return func(a, b T) bool {
		return same(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
	}, nil
}

// MustOf is Of, panicking on unsupported shapes.
func MustOf[T any]() Func[T] {
	same, err := Of[T]()
	if err != nil {
		panic(err)
	}
	return same
}

// checkShape walks the full type graph before any comparer is built, so an
// unsupported shape surfaces as an error from Of and never as a partially
// derived comparison.
func checkShape(t reflect.Type, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	if seen == nil {
		seen = make(map[reflect.Type]bool)
	}
	seen[t] = true
	if _, ok := samerMethod(t); ok {
		return nil
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return nil
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return checkShape(t.Elem(), seen)
	case reflect.Map:
		return checkShape(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				return newUnsupportedFieldError(t, field.Name)
			}
			if field.Tag.Get(TagKey) == sharedTag {
				if field.Type.Kind() != reflect.Pointer {
					return newUnsupportedFieldError(t, field.Name)
				}
				continue
			}
			if err := checkShape(field.Type, seen); err != nil {
				return err
			}
		}
		return nil
	default:
		return newUnsupportedShapeError(t)
	}
}

// cachedComparer 基于 reflect.Type 获取 comparer, 递归类型通过占位 comparer 解环
func cachedComparer(t reflect.Type) comparer {
	if c, ok := comparerCache.Load(t); ok {
		return c.(comparer)
	}

	// Self-referential types find the placeholder instead of recursing; it
	// only runs once the real comparer is in place.
	var (
		wg   sync.WaitGroup
		same comparer
	)
	wg.Add(1)
	placeholder, loaded := comparerCache.LoadOrStore(t, comparer(func(a, b reflect.Value) bool {
		wg.Wait()
		return same(a, b)
	}))
	if loaded {
		return placeholder.(comparer)
	}
	same = newTypeComparer(t)
	wg.Done()
	comparerCache.Store(t, same)
	return same
}

func newTypeComparer(t reflect.Type) comparer {
	if m, ok := samerMethod(t); ok {
		return newSamerComparer(m)
	}
	switch t.Kind() {
	case reflect.Bool:
		return boolComparer
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intComparer
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintComparer
	case reflect.Float32:
		return float32Comparer
	case reflect.Float64:
		return float64Comparer
	case reflect.Complex64:
		return complex64Comparer
	case reflect.Complex128:
		return complex128Comparer
	case reflect.String:
		return stringComparer
	case reflect.Pointer:
		return newPointerComparer(t)
	case reflect.Slice:
		return newSliceComparer(t)
	case reflect.Array:
		return newArrayComparer(t)
	case reflect.Map:
		return newMapComparer(t)
	case reflect.Struct:
		return newStructComparer(t)
	default:
		// checkShape rejects every other kind before we get here.
		panic(newUnsupportedShapeError(t))
	}
}

var boolType = reflect.TypeFor[bool]()

// samerMethod reports the IsSame method of t when its signature matches
// Samer[t].
func samerMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName("IsSame")
	if !ok {
		return reflect.Method{}, false
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.In(1) != t || mt.NumOut() != 1 || mt.Out(0) != boolType {
		return reflect.Method{}, false
	}
	return m, true
}

func newSamerComparer(m reflect.Method) comparer {
	return func(a, b reflect.Value) bool {
		return a.Method(m.Index).Call([]reflect.Value{b})[0].Bool()
	}
}

func boolComparer(a, b reflect.Value) bool {
	return a.Bool() == b.Bool()
}

func intComparer(a, b reflect.Value) bool {
	return a.Int() == b.Int()
}

func uintComparer(a, b reflect.Value) bool {
	return a.Uint() == b.Uint()
}

func float32Comparer(a, b reflect.Value) bool {
	return float32Bits(a) == float32Bits(b)
}

func float64Comparer(a, b reflect.Value) bool {
	return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
}

func complex64Comparer(a, b reflect.Value) bool {
	return complex64Bits(a) == complex64Bits(b)
}

// float32Bits reads the raw bit pattern of a float32-kind value. Going
// through Value.Float widens to float64, which quiets signaling NaNs and
// collapses distinct bit patterns.
func float32Bits(v reflect.Value) uint32 {
	if !v.CanAddr() {
		p := reflect.New(v.Type()).Elem()
		p.Set(v)
		v = p
	}
	return *(*uint32)(v.Addr().UnsafePointer())
}

// complex64Bits reads the bit patterns of both components, never widening
// them to float64. complex64 is only 4-byte aligned, so the components are
// read as two uint32s.
func complex64Bits(v reflect.Value) uint64 {
	if !v.CanAddr() {
		p := reflect.New(v.Type()).Elem()
		p.Set(v)
		v = p
	}
	parts := (*[2]uint32)(v.Addr().UnsafePointer())
	return uint64(parts[0])<<32 | uint64(parts[1])
}

func complex128Comparer(a, b reflect.Value) bool {
	return Complex128(a.Complex(), b.Complex())
}

func stringComparer(a, b reflect.Value) bool {
	return a.String() == b.String()
}

func sharedComparer(a, b reflect.Value) bool {
	return a.UnsafePointer() == b.UnsafePointer()
}

func newPointerComparer(t reflect.Type) comparer {
	elem := cachedComparer(t.Elem())
	return func(a, b reflect.Value) bool {
		if a.UnsafePointer() == b.UnsafePointer() {
			return true
		}
		if a.IsNil() || b.IsNil() {
			return false
		}
		return elem(a.Elem(), b.Elem())
	}
}

var byteSliceType = reflect.TypeFor[[]byte]()

func newSliceComparer(t reflect.Type) comparer {
	if t == byteSliceType {
		return bytesComparer
	}
	elem := cachedComparer(t.Elem())
	return func(a, b reflect.Value) bool {
		if a.Len() != b.Len() {
			return false
		}
		if a.Len() == 0 || a.UnsafePointer() == b.UnsafePointer() {
			return true
		}
		for i := 0; i < a.Len(); i++ {
			if !elem(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
}

func bytesComparer(a, b reflect.Value) bool {
	return Bytes(a.Bytes(), b.Bytes())
}

func newArrayComparer(t reflect.Type) comparer {
	n := t.Len()
	elem := cachedComparer(t.Elem())
	return func(a, b reflect.Value) bool {
		for i := 0; i < n; i++ {
			if !elem(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
}

func newMapComparer(t reflect.Type) comparer {
	elem := cachedComparer(t.Elem())
	return func(a, b reflect.Value) bool {
		// The size check also catches keys present only in b.
		if a.Len() != b.Len() {
			return false
		}
		it := a.MapRange()
		for it.Next() {
			bv := b.MapIndex(it.Key())
			if !bv.IsValid() || !elem(it.Value(), bv) {
				return false
			}
		}
		return true
	}
}

func newStructComparer(t reflect.Type) comparer {
	comparers := make([]comparer, t.NumField())
	for i := range comparers {
		field := t.Field(i)
		if field.Tag.Get(TagKey) == sharedTag {
			comparers[i] = sharedComparer
			continue
		}
		comparers[i] = cachedComparer(field.Type)
	}
	return func(a, b reflect.Value) bool {
		for i, same := range comparers {
			if !same(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	}
}
