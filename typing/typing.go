// Package typing implements candidate local-variable typings over a method
// body and their minimization down to the most specific, mutually
// consistent set.
package typing

import (
	"hash/fnv"
	"iter"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/midir/ir"
)

// Typing is one complete candidate assignment of types to a method's locals.
// It is total over the enclosing body's variable set; comparing typings from
// different bodies is undefined.
//
// The backing map is persistent, so Copy is O(1) and candidate lists can
// share structure freely. Set swaps the root in place and must not race with
// concurrent readers: the minimizer treats typings as read-only payloads.
type Typing struct {
	m *immutable.Map[ir.Local, ir.Type]
}

type localHasher struct{}

func (localHasher) Hash(l ir.Local) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(l.Name))
	return h.Sum32() ^ uint32(l.Num)*0x9e3779b9
}

func (localHasher) Equal(a, b ir.Local) bool { return a == b }

// New is a fresh, unconstrained typing: every local starts at the bottom
// null type.
func New(locals []ir.Local) *Typing {
	m := immutable.NewMap[ir.Local, ir.Type](localHasher{})
	for _, l := range locals {
		m = m.Set(l, ir.NullType{})
	}
	return &Typing{m: m}
}

// Copy is an independent copy of tg: a later Set on either typing is not
// visible through the other.
func Copy(tg *Typing) *Typing {
	return &Typing{m: tg.m}
}

func (t *Typing) Get(l ir.Local) ir.Type {
	ty, ok := t.m.Get(l)
	if !ok {
		return ir.NullType{}
	}
	return ty
}

func (t *Typing) Set(l ir.Local, ty ir.Type) {
	t.m = t.m.Set(l, ty)
}

func (t *Typing) Len() int { return t.m.Len() }

// All ranges over every local and its assigned type, in no particular order.
func (t *Typing) All() iter.Seq2[ir.Local, ir.Type] {
	return func(yield func(ir.Local, ir.Type) bool) {
		it := t.m.Iterator()
		for !it.Done() {
			l, ty, _ := it.Next()
			if !yield(l, ty) {
				return
			}
		}
	}
}

// Locals ranges over the variable set.
func (t *Typing) Locals() iter.Seq[ir.Local] {
	return func(yield func(ir.Local) bool) {
		for l := range t.All() {
			if !yield(l) {
				return
			}
		}
	}
}

// String renders the typing with locals ordered by name, for logs and the
// minimize CLI.
func (t *Typing) String() string {
	type entry struct {
		l  ir.Local
		ty ir.Type
	}
	entries := make([]entry, 0, t.m.Len())
	for l, ty := range t.All() {
		entries = append(entries, entry{l: l, ty: ty})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].l.Name != entries[j].l.Name {
			return entries[i].l.Name < entries[j].l.Name
		}
		return entries[i].l.Num < entries[j].l.Num
	})
	sb := &strings.Builder{}
	sb.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.l.String())
		sb.WriteString(":")
		sb.WriteString(e.ty.String())
	}
	sb.WriteString("}")
	return sb.String()
}
