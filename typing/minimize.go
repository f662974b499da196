package typing

import (
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cottand/midir/hierarchy"
	"github.com/cottand/midir/internal/log"
	"github.com/cottand/midir/ir"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "typing")

// DefaultParallelThreshold is the candidate count above which Minimize picks
// the parallel strategy. Below it, coordination overhead outweighs the
// pairwise comparison work.
const DefaultParallelThreshold = 1000

// Options configure a Minimizer. The zero value enables minimization with
// the default parallel threshold.
type Options struct {
	// Disabled turns Minimize into an identity pass, useful when
	// comparing inference results with and without pruning.
	Disabled bool
	// ParallelThreshold is the candidate count above which the parallel
	// strategy runs. 0 means DefaultParallelThreshold; a negative value
	// runs the parallel strategy regardless of size.
	ParallelThreshold int
	// Workers bounds the parallel fan-out. 0 means GOMAXPROCS.
	Workers int
	// StrictDedup also removes candidates that tie with an earlier
	// candidate on every compared local. The stock behaviour keeps such
	// duplicates, matching the comparator's treatment of an all-tie
	// verdict as "no information".
	StrictDedup bool
}

// Candidates is the working list of typings under minimization. A nil entry
// is a tombstone: logically deleted but kept in place so index-based
// iteration stays valid. Minimize compacts every tombstone away before
// returning, so callers never observe one.
type Candidates []*Typing

func (c *Candidates) compact() (removed int) {
	out := (*c)[:0]
	for _, tg := range *c {
		if tg == nil {
			removed++
			continue
		}
		out = append(out, tg)
	}
	*c = out
	return removed
}

// Minimizer prunes candidate lists to their most-specific subset under an
// oracle. It holds no mutable state and is safe to share.
type Minimizer struct {
	oracle   hierarchy.Oracle
	universe ir.Universe
	opts     Options
}

func NewMinimizer(oracle hierarchy.Oracle, universe ir.Universe, opts Options) *Minimizer {
	if opts.ParallelThreshold == 0 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Minimizer{
		oracle:   oracle,
		universe: universe,
		opts:     opts,
	}
}

// Minimize prunes tgs in place: a candidate whose types are
// supertypes-or-equal of another's at every compared local is dominated and
// dropped. Unrelated and conflicting candidates all survive; they are
// genuinely different solutions.
//
// The sequential strategy keeps survivors in input order. The parallel one
// guarantees only the survivor set, not its order.
func (m *Minimizer) Minimize(tgs *Candidates) {
	if m.opts.Disabled {
		return
	}
	if len(*tgs) > m.opts.ParallelThreshold {
		m.minimizeParallel(tgs)
		return
	}
	m.minimizeSequential(tgs)
}

func (m *Minimizer) minimizeSequential(tgs *Candidates) {
	ignore := ObjectLikeVars(*tgs, m.universe)
	list := *tgs
outer:
	for i := 0; i < len(list); i++ {
		tgi := list[i]
		if tgi == nil {
			continue
		}
		for j := i + 1; j < len(list); j++ {
			tgj := list[j]
			if tgj == nil {
				continue
			}
			switch Compare(tgi, tgj, m.oracle, ignore) {
			case MoreGeneral:
				// tgi would type locals to broad supertypes where tgj
				// achieves something more specific; once dominated it
				// can dominate nothing further itself, so move on
				list[i] = nil
				continue outer
			case LessGeneral:
				list[j] = nil
			case EqualOrMixed:
				if m.opts.StrictDedup {
					list[j] = nil
				}
			}
		}
	}
	tgs.compact()
}

func (m *Minimizer) minimizeParallel(tgs *Candidates) {
	logger.Debug("performing parallel minimization", "candidates", len(*tgs))
	ignore := ObjectLikeVars(*tgs, m.universe)

	// tasks only ever read typings from the snapshot; tombstones live in
	// dead, one slot per original index
	snapshot := slices.Clone(*tgs)
	dead := make([]atomic.Bool, len(snapshot))

	var next, processed atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < m.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(snapshot) {
					return
				}
				if count := processed.Add(1); count%1000 == 0 {
					logger.Debug("minimizing", "processed", count, "total", len(snapshot))
				}
				if dead[i].Load() {
					continue
				}
				m.scan(i, snapshot, dead, ignore)
			}
		}()
	}
	wg.Wait()

	out := (*tgs)[:0]
	for i, tg := range snapshot {
		if !dead[i].Load() {
			out = append(out, tg)
		}
	}
	*tgs = out
	if removed := len(snapshot) - len(out); removed > 0 {
		logger.Debug("minimizing has removed candidates", "removed", removed, "of", len(snapshot))
	}
}

// scan runs one index's inner pass against every later index. A stale read
// of dead[j] only costs a redundant comparison: tombstoning is monotonic and
// idempotent, so racing writers never disagree on the outcome.
func (m *Minimizer) scan(i int, snapshot []*Typing, dead []atomic.Bool, ignore *set.Set[ir.Local]) {
	tgi := snapshot[i]
	for j := i + 1; j < len(snapshot); j++ {
		if dead[j].Load() {
			continue
		}
		switch Compare(tgi, snapshot[j], m.oracle, ignore) {
		case MoreGeneral:
			dead[i].Store(true)
			return
		case LessGeneral:
			dead[j].Store(true)
		case EqualOrMixed:
			if m.opts.StrictDedup {
				dead[j].Store(true)
			}
		}
	}
}
