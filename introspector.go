// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// Introspector is the capability the host runtime supplies so the mark
// phase can enumerate an object's outbound references without the core
// knowing anything about the runtime's value hierarchy (spec.md §1, "out
// of scope"; §6, "consumed capabilities"). Every method must be safe to
// call during a collection: no allocation, no blocking, no mutation of
// the object graph.
type Introspector interface {
	// TypeOf returns obj's runtime type descriptor.
	TypeOf(obj unsafe.Pointer) TypeDescriptor
	// KindOf selects which dispatch case mark uses for t.
	KindOf(t TypeDescriptor) Kind
	// FieldCount returns the number of fields a KindGeneric instance of
	// t carries, taken from the type descriptor's field-name list length.
	FieldCount(t TypeDescriptor) int

	// ArrayRefs returns obj's references, for obj of KindArray.
	ArrayRefs(obj unsafe.Pointer) ArrayRefs
	// TupleRefs returns obj's elements, for obj of KindTuple.
	TupleRefs(obj unsafe.Pointer) []unsafe.Pointer
	// FuncCompileInfoRefs returns obj's references, for obj of
	// KindFuncCompileInfo.
	FuncCompileInfoRefs(obj unsafe.Pointer) FuncCompileInfoRefs
	// ClosureRefs returns obj's references, for obj of KindClosure.
	ClosureRefs(obj unsafe.Pointer) ClosureRefs
	// TypeNameRefs returns the primary type obj names, or nil, for obj
	// of KindTypeName.
	TypeNameRefs(obj unsafe.Pointer) unsafe.Pointer
	// TypeDescRefs returns obj's references, for obj of
	// KindTypeDescriptor.
	TypeDescRefs(obj unsafe.Pointer) TypeDescRefs
	// MethodTableRefs returns obj's definition and cache lists, for obj
	// of KindMethodTable.
	MethodTableRefs(obj unsafe.Pointer) MethodTableRefs
	// MethodListNodeRefs returns one method-list node's references.
	// node is itself a heap cell (spec.md §4.5).
	MethodListNodeRefs(node unsafe.Pointer) MethodListNodeRefs
	// TaskRefs returns obj's references, for obj of KindTask.
	TaskRefs(obj unsafe.Pointer) TaskRefs
	// ModuleBindings returns every occupied slot of obj's binding
	// table, for obj of KindModule.
	ModuleBindings(obj unsafe.Pointer) []ModuleBinding
	// GenericRefs returns the first n fields of obj, for obj of
	// KindGeneric. n is FieldCount(TypeOf(obj)).
	GenericRefs(obj unsafe.Pointer, n int) []unsafe.Pointer
}

// RootSet is the capability the host runtime supplies to enumerate the
// collector's root set: active tasks, interned modules, built-in
// singletons, and the type cache (spec.md §4.7). EnumerateRoots must
// call visit once per root and must not allocate.
type RootSet interface {
	EnumerateRoots(visit func(obj unsafe.Pointer))
}
