// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// TypeDescriptor is an opaque handle to a runtime type, as returned by
// Introspector.TypeOf. The core never inspects it directly; every
// operation on it goes back through the Introspector.
type TypeDescriptor any

// Kind identifies which dispatch case the mark phase uses to enumerate an
// object's outbound references (spec.md §4.5).
type Kind uint8

const (
	// KindPlainBits is a value with no pointers; it has no children.
	KindPlainBits Kind = iota
	// KindArray is an array-like object: shape/descriptor, an optional
	// out-of-line buffer header, and optional non-plain-bits elements.
	KindArray
	// KindTuple is a fixed-length tuple of possibly-null elements.
	KindTuple
	// KindFuncCompileInfo is a function's compile-time metadata.
	KindFuncCompileInfo
	// KindClosure is a function closure: an environment plus optional
	// compile-info.
	KindClosure
	// KindTypeName wraps a primary type.
	KindTypeName
	// KindTypeDescriptor is a tag/struct/bits type descriptor.
	KindTypeDescriptor
	// KindMethodTable holds a method definition list and a call cache.
	KindMethodTable
	// KindTask is a concurrent task's control block.
	KindTask
	// KindModule is a binding table, marked via its own dispatch path
	// (spec.md §4.5, "Modules are marked separately").
	KindModule
	// KindGeneric is the fallback: an ordinary struct instance with N
	// fields, N supplied by the type descriptor.
	KindGeneric
)

// ArrayRefs describes the outbound references of an array-like object.
type ArrayRefs struct {
	// Descriptor is the array's shape/type descriptor. Always marked.
	Descriptor unsafe.Pointer
	// BufferHeader is the header of the out-of-line payload buffer, or
	// nil if the payload is inlined within the cell.
	BufferHeader unsafe.Pointer
	// Elements holds the array's non-null elements when its element
	// type is not plain bits; nil when it is.
	Elements []unsafe.Pointer
}

// FuncCompileInfoRefs describes a function's compile-time metadata
// references (spec.md §4.5, "Function compile-info").
type FuncCompileInfoRefs struct {
	AST, StaticParams, TypeFuncCache unsafe.Pointer
	Roots, SpecTypes                 []unsafe.Pointer
	// Unspecialized is the optional unspecialized form, nil if absent.
	Unspecialized unsafe.Pointer
}

// ClosureRefs describes a function closure's references.
type ClosureRefs struct {
	Env unsafe.Pointer
	// CompileInfo is nil if the closure has none.
	CompileInfo unsafe.Pointer
}

// TypeDescRefs describes a tag/struct/bits type descriptor's references.
// FieldNames and FieldTypes are only populated for struct descriptors.
type TypeDescRefs struct {
	Name, Super            unsafe.Pointer
	Params                 []unsafe.Pointer
	FieldNames, FieldTypes unsafe.Pointer
	Ctor, CachedInstance   unsafe.Pointer
}

// MethodListNodeRefs describes one node of a method table's definition
// or cache list.
type MethodListNodeRefs struct {
	Sig, TypeVars, Func unsafe.Pointer
}

// MethodTableRefs describes a method table's two lists of node pointers.
type MethodTableRefs struct {
	Defs, Cache []unsafe.Pointer
}

// TaskRefs describes a task's references. Frames carries the task's
// saved GC-frame chain (spec.md §9 flags its omission as a TODO in the
// source this spec is drawn from; this package traces it like any other
// field, sourced from the host runtime's per-task root iterator).
type TaskRefs struct {
	Entry, ExitHandler, Result, ExceptionHandlerTask unsafe.Pointer
	Frames                                           []unsafe.Pointer
}

// ModuleBinding is one occupied slot of a module's binding table.
// Value and DeclaredType may be nil (a binding can be declared but not
// yet assigned).
type ModuleBinding struct {
	Record, Value, DeclaredType unsafe.Pointer
}
