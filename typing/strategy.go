package typing

import (
	"github.com/cottand/midir/hierarchy"
	"github.com/cottand/midir/ir"
)

// Strategy is the seam through which the surrounding inference algorithm
// creates, prunes and finalizes candidate typings.
type Strategy interface {
	// NewTyping is a fresh, unconstrained typing over the given locals.
	NewTyping(locals []ir.Local) *Typing
	// CopyTyping is an independent copy of an existing typing.
	CopyTyping(tg *Typing) *Typing
	// Minimize reduces tgs in place to its most-specific subset.
	Minimize(tgs *Candidates)
	// FinalizeTypes legalizes tg in place for code emission.
	FinalizeTypes(tg *Typing)
}

// DefaultStrategy implements Strategy with a Minimizer over an injected
// oracle.
type DefaultStrategy struct {
	minimizer *Minimizer
}

var _ Strategy = &DefaultStrategy{}

func NewDefaultStrategy(oracle hierarchy.Oracle, universe ir.Universe, opts Options) *DefaultStrategy {
	return &DefaultStrategy{minimizer: NewMinimizer(oracle, universe, opts)}
}

func (s *DefaultStrategy) NewTyping(locals []ir.Local) *Typing { return New(locals) }

func (s *DefaultStrategy) CopyTyping(tg *Typing) *Typing { return Copy(tg) }

func (s *DefaultStrategy) Minimize(tgs *Candidates) { s.minimizer.Minimize(tgs) }

func (s *DefaultStrategy) FinalizeTypes(tg *Typing) { FinalizeTypes(tg) }
