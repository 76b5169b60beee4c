package compose

import (
	"context"
	"fmt"
	"sort"

	"github.com/giuliop/gf2fn/gf2err"
	"github.com/giuliop/gf2fn/internal/logging"
	"github.com/giuliop/gf2fn/monomap"
	"github.com/giuliop/gf2fn/monomial"
)

// composeViaSets builds a set-of-monomials memo and recombines it
// per output row by symmetric difference.
func (c *Composer) composeViaSets(ctx context.Context, outer, inner Input) (Input, Metrics, error) {
	nO := outer.InputLen
	nI := inner.InputLen
	var metrics Metrics

	expansions := make(map[string]monoSet)
	basis := make(map[string]monomial.Monomial)

	for i := 0; i < nO; i++ {
		lin := monomial.Linear(nO, i)
		s := newMonoSet()
		for k, m := range inner.Monomials {
			if inner.Contributions[k].Get(i) {
				s[m.Key()] = m
			}
		}
		expansions[lin.Key()] = s
		basis[lin.Key()] = lin
	}

	required := make(map[string]monomial.Monomial)
	for _, m := range outer.Monomials {
		if !m.IsConstant() {
			required[m.Key()] = m
		}
	}

	maxOrder := c.cfg.maxOuterOrder
	if maxOrder <= 0 {
		for _, m := range required {
			if m.Cardinality() > maxOrder {
				maxOrder = m.Cardinality()
			}
		}
	}

	if err := c.greedyExpand(ctx, expansions, basis, required, maxOrder, &metrics); err != nil {
		return Input{}, metrics, err
	}
	if err := recoverRemaining(expansions, basis, required); err != nil {
		return Input{}, metrics, err
	}

	composed := monomap.New(outer.OutputLen)
	for row := 0; row < outer.OutputLen; row++ {
		acc := newMonoSet()
		for k, m := range outer.Monomials {
			if !outer.Contributions[k].Get(row) {
				continue
			}
			var exp monoSet
			if m.IsConstant() {
				c := monomial.Constant(nI)
				exp = monoSet{c.Key(): c}
			} else {
				exp = expansions[m.Key()]
			}
			acc = symmetricDifference(acc, exp)
		}
		for _, m := range acc {
			composed.SetBit(m, row)
		}
	}

	monomials, contributions := composed.ToArrays()
	metrics.BasisSize = len(basis)
	return Input{InputLen: nI, OutputLen: outer.OutputLen, Monomials: monomials, Contributions: contributions},
		metrics, nil
}

// sortedMonomials returns the values of basis in an explicit total
// order (cardinality, then packed-word key), so the greedy
// scheduler's "first seen" tie-break is reproducible run to run.
func sortedMonomials(basis map[string]monomial.Monomial) []monomial.Monomial {
	out := make([]monomial.Monomial, 0, len(basis))
	for _, m := range basis {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cardinality() != out[j].Cardinality() {
			return out[i].Cardinality() < out[j].Cardinality()
		}
		return out[i].Key() < out[j].Key()
	})
	return out
}

type candidate struct {
	a, b  monomial.Monomial
	p     monomial.Monomial
	score int
	valid bool
}

// greedyExpand repeats, while some required monomial is not yet
// expanded: find the candidate product of two already-expanded basis
// monomials that divides the most required monomials, expand it, and
// continue. Candidate scoring for one round
// runs concurrently across the Composer's pool; selection itself
// stays sequential so the tie-break total order is honored exactly
// once per round.
func (c *Composer) greedyExpand(ctx context.Context, expansions map[string]monoSet,
	basis map[string]monomial.Monomial, required map[string]monomial.Monomial, maxOrder int,
	metrics *Metrics) error {

	requiredList := make([]monomial.Monomial, 0, len(required))
	for _, m := range required {
		requiredList = append(requiredList, m)
	}

	for {
		missing := false
		for k := range required {
			if _, ok := expansions[k]; !ok {
				missing = true
				break
			}
		}
		if !missing {
			return nil
		}

		basisList := sortedMonomials(basis)
		type pair struct{ i, j int }
		pairs := make([]pair, 0, len(basisList)*(len(basisList)+1)/2)
		for i := range basisList {
			for j := i; j < len(basisList); j++ {
				pairs = append(pairs, pair{i, j})
			}
		}

		results := make([]candidate, len(pairs))
		err := c.pool.Run(ctx, len(pairs), func(_ context.Context, idx int) error {
			pr := pairs[idx]
			a, b := basisList[pr.i], basisList[pr.j]
			p := monomial.Product(a, b)
			if p.Cardinality() > maxOrder {
				return nil
			}
			if _, ok := expansions[p.Key()]; ok {
				return nil
			}
			score := 0
			for _, r := range requiredList {
				if r.HasFactor(p) {
					score++
				}
			}
			if score > 0 {
				results[idx] = candidate{a: a, b: b, p: p, score: score, valid: true}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("%w: candidate scoring: %v", gf2err.ErrWorkerFault, err)
		}

		var best *candidate
		for i := range results {
			if !results[i].valid {
				continue
			}
			if best == nil || results[i].score > best.score {
				best = &results[i]
			}
		}
		if best == nil {
			// No positive-score candidate this round: fall back to
			// the single-step recovery pass outside this loop.
			return nil
		}

		expansions[best.p.Key()] = setProduct(expansions[best.a.Key()], expansions[best.b.Key()])
		basis[best.p.Key()] = best.p
		metrics.StagesRun++
		metrics.CandidatesConsidered += len(pairs)

		logging.Logger().Debug().
			Str("product", best.p.String()).
			Int("score", best.score).
			Int("basisSize", len(basis)).
			Msg("composer: expanded candidate")
	}
}

// recoverRemaining handles required monomials the greedy loop could
// not reach directly: for each one still unexpanded, find a required
// q such that r/q and q are both expanded, and derive r's expansion
// from theirs.
func recoverRemaining(expansions map[string]monoSet, basis map[string]monomial.Monomial,
	required map[string]monomial.Monomial) error {

	for _, r := range required {
		if _, ok := expansions[r.Key()]; ok {
			continue
		}
		found := false
		for _, q := range required {
			if q.Equal(r) {
				continue
			}
			if !r.HasFactor(q) {
				continue
			}
			rq, ok := monomial.Divide(r, q)
			if !ok {
				continue
			}
			rqExp, ok1 := expansions[rq.Key()]
			qExp, ok2 := expansions[q.Key()]
			if ok1 && ok2 {
				expansions[r.Key()] = setProduct(rqExp, qExp)
				basis[r.Key()] = r
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: no expansion could be derived for required monomial %s",
				gf2err.ErrInvariantViolation, r)
		}
	}
	return nil
}
