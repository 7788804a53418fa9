// Package permute enumerates core-phrase insertions over ordered field
// permutations. The enumeration order is part of the contract: subset lengths
// ascending, combinations in source order, permutations in lexical order over
// source positions, insertion positions ascending. Downstream first-occurrence
// grouping and preview sampling depend on it.
package permute

import "strings"

// Min is a convenience constructor for the optional minFields argument.
func Min(k int) *int { return &k }

// Each streams every phrase formed by inserting core at every position within
// every ordered arrangement of every admissible subset of fields. With a nil
// minFields only the full field set is used; otherwise subset lengths run from
// min(*minFields, len(fields)) up to len(fields). minFields of zero admits the
// empty subset, which degenerates to the core phrase alone.
//
// Output size for the default case is n!*(n+1); the only lever against the
// combinatorial blow-up is minFields. Each stops early when yield returns
// false and reports whether the enumeration ran to completion.
func Each(core string, fields []string, minFields *int, yield func(string) bool) bool {
	n := len(fields)
	if n == 0 {
		return true
	}

	start := n
	if minFields != nil {
		start = *minFields
		if start < 0 {
			start = 0
		}
		if start > n {
			start = n
		}
	}

	for length := start; length <= n; length++ {
		ok := eachCombination(fields, length, func(combo []string) bool {
			return eachPermutation(combo, func(perm []string) bool {
				for pos := 0; pos <= len(perm); pos++ {
					if !yield(insert(perm, core, pos)) {
						return false
					}
				}
				return true
			})
		})
		if !ok {
			return false
		}
	}
	return true
}

// Generate materializes Each into a slice.
func Generate(core string, fields []string, minFields *int) []string {
	count := Count(len(fields), minFields)
	out := make([]string, 0, count)
	Each(core, fields, minFields, func(phrase string) bool {
		out = append(out, phrase)
		return true
	})
	return out
}

// Count predicts the number of phrases Each will produce for n fields:
// sum over admissible lengths L of C(n,L) * L! * (L+1).
func Count(n int, minFields *int) int {
	if n == 0 {
		return 0
	}
	start := n
	if minFields != nil {
		start = *minFields
		if start < 0 {
			start = 0
		}
		if start > n {
			start = n
		}
	}
	total := 0
	for length := start; length <= n; length++ {
		// C(n, length) * length! == n! / (n-length)!
		arrangements := 1
		for i := 0; i < length; i++ {
			arrangements *= n - i
		}
		total += arrangements * (length + 1)
	}
	return total
}

// eachCombination visits every size-length subset of fields, preserving the
// source ordering within each subset.
func eachCombination(fields []string, length int, yield func([]string) bool) bool {
	combo := make([]string, 0, length)
	var walk func(next int) bool
	walk = func(next int) bool {
		if len(combo) == length {
			return yield(combo)
		}
		remaining := length - len(combo)
		for i := next; i <= len(fields)-remaining; i++ {
			combo = append(combo, fields[i])
			if !walk(i + 1) {
				return false
			}
			combo = combo[:len(combo)-1]
		}
		return true
	}
	return walk(0)
}

// eachPermutation visits every ordering of items in lexical order over the
// input positions.
func eachPermutation(items []string, yield func([]string) bool) bool {
	n := len(items)
	if n == 0 {
		return yield(nil)
	}
	perm := make([]string, 0, n)
	used := make([]bool, n)
	var walk func() bool
	walk = func() bool {
		if len(perm) == n {
			return yield(perm)
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, items[i])
			if !walk() {
				return false
			}
			perm = perm[:len(perm)-1]
			used[i] = false
		}
		return true
	}
	return walk()
}

func insert(perm []string, core string, pos int) string {
	var b strings.Builder
	for i := 0; i < pos; i++ {
		b.WriteString(perm[i])
		b.WriteByte(' ')
	}
	b.WriteString(core)
	for i := pos; i < len(perm); i++ {
		b.WriteByte(' ')
		b.WriteString(perm[i])
	}
	return b.String()
}
