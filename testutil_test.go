// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// fakePageAllocator serves pages from the Go heap and records every
// freed slice's base address, so a sweep test can assert a page was
// actually released rather than merely unlinked.
type fakePageAllocator struct {
	freed []uintptr
}

func (a *fakePageAllocator) allocPage(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (a *fakePageAllocator) freePage(b []byte) error {
	a.freed = append(a.freed, uintptr(unsafe.Pointer(unsafe.SliceData(b))))
	return nil
}

// fakeObject is a heap cell used by mark/sweep tests that don't need
// real struct shapes, just a Kind plus enough registered reference data
// for fakeIntrospector to answer whichever accessor that Kind dispatches
// through. refs backs the flat-list Kinds (tuple, generic); every other
// Kind's references live in the side tables below, keyed by address.
type fakeObject struct {
	kind Kind
	refs []unsafe.Pointer
}

// fakeIntrospector implements Introspector over a plain map from object
// address to fakeObject, with one side table per non-flat Kind so every
// dispatch case in mark.go's traceOne has something real to return.
type fakeIntrospector struct {
	objs map[unsafe.Pointer]*fakeObject

	arrayRefs       map[unsafe.Pointer]ArrayRefs
	funcInfoRefs    map[unsafe.Pointer]FuncCompileInfoRefs
	closureRefs     map[unsafe.Pointer]ClosureRefs
	typeNameRefs    map[unsafe.Pointer]unsafe.Pointer
	typeDescRefs    map[unsafe.Pointer]TypeDescRefs
	methodTableRefs map[unsafe.Pointer]MethodTableRefs
	methodNodeRefs  map[unsafe.Pointer]MethodListNodeRefs
	taskRefs        map[unsafe.Pointer]TaskRefs
	moduleBindings  map[unsafe.Pointer][]ModuleBinding
}

func newFakeIntrospector() *fakeIntrospector {
	return &fakeIntrospector{
		objs:            make(map[unsafe.Pointer]*fakeObject),
		arrayRefs:       make(map[unsafe.Pointer]ArrayRefs),
		funcInfoRefs:    make(map[unsafe.Pointer]FuncCompileInfoRefs),
		closureRefs:     make(map[unsafe.Pointer]ClosureRefs),
		typeNameRefs:    make(map[unsafe.Pointer]unsafe.Pointer),
		typeDescRefs:    make(map[unsafe.Pointer]TypeDescRefs),
		methodTableRefs: make(map[unsafe.Pointer]MethodTableRefs),
		methodNodeRefs:  make(map[unsafe.Pointer]MethodListNodeRefs),
		taskRefs:        make(map[unsafe.Pointer]TaskRefs),
		moduleBindings:  make(map[unsafe.Pointer][]ModuleBinding),
	}
}

// register declares addr's Kind and, for KindTuple and KindGeneric,
// its flat reference list. Every other Kind's references are declared
// through the matching registerX method below.
func (fi *fakeIntrospector) register(addr unsafe.Pointer, kind Kind, refs ...unsafe.Pointer) {
	fi.objs[addr] = &fakeObject{kind: kind, refs: refs}
}

func (fi *fakeIntrospector) registerArray(addr unsafe.Pointer, refs ArrayRefs) {
	fi.objs[addr] = &fakeObject{kind: KindArray}
	fi.arrayRefs[addr] = refs
}

func (fi *fakeIntrospector) registerFuncCompileInfo(addr unsafe.Pointer, refs FuncCompileInfoRefs) {
	fi.objs[addr] = &fakeObject{kind: KindFuncCompileInfo}
	fi.funcInfoRefs[addr] = refs
}

func (fi *fakeIntrospector) registerClosure(addr unsafe.Pointer, refs ClosureRefs) {
	fi.objs[addr] = &fakeObject{kind: KindClosure}
	fi.closureRefs[addr] = refs
}

func (fi *fakeIntrospector) registerTypeName(addr unsafe.Pointer, primary unsafe.Pointer) {
	fi.objs[addr] = &fakeObject{kind: KindTypeName}
	fi.typeNameRefs[addr] = primary
}

func (fi *fakeIntrospector) registerTypeDesc(addr unsafe.Pointer, refs TypeDescRefs) {
	fi.objs[addr] = &fakeObject{kind: KindTypeDescriptor}
	fi.typeDescRefs[addr] = refs
}

func (fi *fakeIntrospector) registerMethodTable(addr unsafe.Pointer, refs MethodTableRefs) {
	fi.objs[addr] = &fakeObject{kind: KindMethodTable}
	fi.methodTableRefs[addr] = refs
}

func (fi *fakeIntrospector) registerMethodNode(addr unsafe.Pointer, refs MethodListNodeRefs) {
	fi.methodNodeRefs[addr] = refs
}

func (fi *fakeIntrospector) registerTask(addr unsafe.Pointer, refs TaskRefs) {
	fi.objs[addr] = &fakeObject{kind: KindTask}
	fi.taskRefs[addr] = refs
}

func (fi *fakeIntrospector) registerModule(addr unsafe.Pointer, bindings []ModuleBinding) {
	fi.objs[addr] = &fakeObject{kind: KindModule}
	fi.moduleBindings[addr] = bindings
}

func (fi *fakeIntrospector) TypeOf(obj unsafe.Pointer) TypeDescriptor { return fi.objs[obj] }
func (fi *fakeIntrospector) KindOf(t TypeDescriptor) Kind             { return t.(*fakeObject).kind }
func (fi *fakeIntrospector) FieldCount(t TypeDescriptor) int          { return len(t.(*fakeObject).refs) }

func (fi *fakeIntrospector) ArrayRefs(obj unsafe.Pointer) ArrayRefs {
	return fi.arrayRefs[obj]
}
func (fi *fakeIntrospector) TupleRefs(obj unsafe.Pointer) []unsafe.Pointer {
	return fi.objs[obj].refs
}
func (fi *fakeIntrospector) FuncCompileInfoRefs(obj unsafe.Pointer) FuncCompileInfoRefs {
	return fi.funcInfoRefs[obj]
}
func (fi *fakeIntrospector) ClosureRefs(obj unsafe.Pointer) ClosureRefs {
	return fi.closureRefs[obj]
}
func (fi *fakeIntrospector) TypeNameRefs(obj unsafe.Pointer) unsafe.Pointer {
	return fi.typeNameRefs[obj]
}
func (fi *fakeIntrospector) TypeDescRefs(obj unsafe.Pointer) TypeDescRefs {
	return fi.typeDescRefs[obj]
}
func (fi *fakeIntrospector) MethodTableRefs(obj unsafe.Pointer) MethodTableRefs {
	return fi.methodTableRefs[obj]
}
func (fi *fakeIntrospector) MethodListNodeRefs(node unsafe.Pointer) MethodListNodeRefs {
	return fi.methodNodeRefs[node]
}
func (fi *fakeIntrospector) TaskRefs(obj unsafe.Pointer) TaskRefs {
	return fi.taskRefs[obj]
}
func (fi *fakeIntrospector) ModuleBindings(obj unsafe.Pointer) []ModuleBinding {
	return fi.moduleBindings[obj]
}
func (fi *fakeIntrospector) GenericRefs(obj unsafe.Pointer, n int) []unsafe.Pointer {
	refs := fi.objs[obj].refs
	if n > len(refs) {
		n = len(refs)
	}
	return refs[:n]
}

// fakeRootSet enumerates a fixed slice of roots.
type fakeRootSet struct {
	roots []unsafe.Pointer
}

func (rs *fakeRootSet) EnumerateRoots(visit func(obj unsafe.Pointer)) {
	for _, r := range rs.roots {
		visit(r)
	}
}
