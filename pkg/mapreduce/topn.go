package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

// rank sorts counts by value, descending, breaking ties by key so repeated
// runs print identically.
func rank(counts map[string]int, n int) []kv {
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	if n >= 0 && n < len(ss) {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N keywords from aggregated counts as formatted strings.
// Each string is formatted as "keyword:count" (e.g., "battery:12").
func TopKeywords(counts map[string]int, n int) []string {
	ranked := rank(counts, n)

	keywords := make([]string, len(ranked))
	for i, e := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", e.Key, e.Value)
	}
	return keywords
}

// FprintTopKeywords writes the top N keywords to w as a numbered list.
func FprintTopKeywords(w io.Writer, counts map[string]int, n int) {
	for i, e := range rank(counts, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Key, e.Value)
	}
}
