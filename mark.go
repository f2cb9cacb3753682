// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// marker drives the mark phase: an explicit work stack of pending
// objects, drained until empty (spec.md §4.5 requires an explicit stack
// rather than recursion, to bound stack depth on deep object graphs).
type marker struct {
	introspect Introspector
	stack      []unsafe.Pointer
}

// push marks obj and queues it for tracing, unless it is nil or already
// marked. Every call site in this file that discovers a reference goes
// through push, so an object is ever queued once.
func (m *marker) push(obj unsafe.Pointer) {
	if obj == nil {
		return
	}
	h := headerOf(obj)
	if h.isMarked() {
		return
	}
	h.setMarked()
	m.stack = append(m.stack, obj)
}

// drain traces every object reachable from the current stack contents,
// dispatching each by its Kind (spec.md §4.5).
func (m *marker) drain() {
	for len(m.stack) > 0 {
		n := len(m.stack) - 1
		obj := m.stack[n]
		m.stack = m.stack[:n]
		m.traceOne(obj)
	}
}

// traceOne enumerates obj's outbound references via the Introspector and
// pushes each one.
func (m *marker) traceOne(obj unsafe.Pointer) {
	t := m.introspect.TypeOf(obj)
	switch m.introspect.KindOf(t) {
	case KindPlainBits:
		// No outbound references.

	case KindArray:
		refs := m.introspect.ArrayRefs(obj)
		m.push(refs.Descriptor)
		m.push(refs.BufferHeader)
		for _, e := range refs.Elements {
			m.push(e)
		}

	case KindTuple:
		for _, e := range m.introspect.TupleRefs(obj) {
			m.push(e)
		}

	case KindFuncCompileInfo:
		refs := m.introspect.FuncCompileInfoRefs(obj)
		m.push(refs.AST)
		m.push(refs.StaticParams)
		m.push(refs.TypeFuncCache)
		m.push(refs.Unspecialized)
		for _, r := range refs.Roots {
			m.push(r)
		}
		for _, s := range refs.SpecTypes {
			m.push(s)
		}

	case KindClosure:
		refs := m.introspect.ClosureRefs(obj)
		m.push(refs.Env)
		m.push(refs.CompileInfo)

	case KindTypeName:
		m.push(m.introspect.TypeNameRefs(obj))

	case KindTypeDescriptor:
		refs := m.introspect.TypeDescRefs(obj)
		m.push(refs.Name)
		m.push(refs.Super)
		for _, p := range refs.Params {
			m.push(p)
		}
		m.push(refs.FieldNames)
		m.push(refs.FieldTypes)
		m.push(refs.Ctor)
		m.push(refs.CachedInstance)

	case KindMethodTable:
		refs := m.introspect.MethodTableRefs(obj)
		for _, n := range refs.Defs {
			m.markMethodListNode(n)
		}
		for _, n := range refs.Cache {
			m.markMethodListNode(n)
		}

	case KindTask:
		refs := m.introspect.TaskRefs(obj)
		m.push(refs.Entry)
		m.push(refs.ExitHandler)
		m.push(refs.Result)
		m.push(refs.ExceptionHandlerTask)
		for _, f := range refs.Frames {
			m.push(f)
		}

	case KindModule:
		m.traceModule(obj)

	case KindGeneric:
		n := m.introspect.FieldCount(t)
		for _, f := range m.introspect.GenericRefs(obj, n) {
			m.push(f)
		}

	default:
		if debugChecks {
			panic(&CorruptHeaderError{Addr: obj})
		}
	}
}

// markMethodListNode marks and traces one node of a method table's
// definition or cache list. A node is itself a heap cell, so its mark bit
// is set here directly and its sig, type variables and func are pushed;
// the node itself is never pushed or passed to traceOne (spec.md §4.5,
// "Method tables").
func (m *marker) markMethodListNode(node unsafe.Pointer) {
	if node == nil {
		return
	}
	h := headerOf(node)
	alreadyMarked := h.isMarked()
	h.setMarked()
	if alreadyMarked {
		return
	}
	refs := m.introspect.MethodListNodeRefs(node)
	m.push(refs.Sig)
	m.push(refs.TypeVars)
	m.push(refs.Func)
}

// traceModule marks a module's every occupied binding slot. Modules are
// traced through their own path rather than KindGeneric's fixed field
// list, since a binding table's slot count is dynamic (spec.md §4.5,
// "Modules are marked separately").
func (m *marker) traceModule(obj unsafe.Pointer) {
	for _, b := range m.introspect.ModuleBindings(obj) {
		m.push(b.Record)
		m.push(b.Value)
		m.push(b.DeclaredType)
	}
}
