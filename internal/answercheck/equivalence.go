package answercheck

import "sort"

// probeSet is the fixed sample set used for variable equivalence.
// Small and fixed on purpose: sampling is a documented probabilistic
// heuristic, not a proof, and a fixed set keeps verdicts
// reproducible.
var probeSet = []float64{-2, -1, 0, 0.5, 1, 2, 3, 10}

// minAgreeingProbes is the minimum number of probes at which both
// expressions must be evaluable before sampling agreement counts as
// equivalence.
const minAgreeingProbes = 2

// Equivalent reports whether two expressions are mathematically
// equivalent. Three tiers, cheapest first:
//
//  1. canonical-form identity after normalization,
//  2. both evaluate variable-free to numbers that agree within
//     SmartTolerance,
//  3. both have the same set of free variables: sample at the fixed
//     probe set and require agreement at every probe where either
//     side is evaluable.
//
// Tier 3 can in principle be fooled by a pair that coincides at all
// probes without being equivalent; that is an accepted risk.
func Equivalent(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	va, okA := Evaluate(na)
	vb, okB := Evaluate(nb)
	if okA && okB {
		return withinTolerance(va, vb, 0)
	}

	varsA, okA := freeVariables(na)
	varsB, okB := freeVariables(nb)
	if !okA || !okB || len(varsA) == 0 || len(varsA) != len(varsB) {
		return false
	}
	names := make([]string, 0, len(varsA))
	for v := range varsA {
		if _, shared := varsB[v]; !shared {
			return false
		}
		names = append(names, v)
	}
	sort.Strings(names)

	agreed := 0
	for i := range probeSet {
		// Stride the probe set across variables so distinct
		// variables get distinct values at most probes; binding
		// them all to the same value would equate x+y with 2x.
		bind := make(map[string]float64, len(names))
		for j, name := range names {
			bind[name] = probeSet[(i+3*j)%len(probeSet)]
		}
		ya, okA := EvaluateWith(na, bind)
		yb, okB := EvaluateWith(nb, bind)
		if okA != okB {
			// Domains differ at this probe: not equivalent.
			return false
		}
		if !okA {
			continue
		}
		if !withinTolerance(ya, yb, 0) {
			return false
		}
		agreed++
	}
	return agreed >= minAgreeingProbes
}
