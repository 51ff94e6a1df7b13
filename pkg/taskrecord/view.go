package taskrecord

import "sort"

// Pure read-only views over a record sequence. None of these mutate the
// input; ties always keep the input's relative order.

// SortByDateDesc returns a copy ordered by date descending. ISO date
// strings compare lexicographically the same as chronologically.
func SortByDateDesc(in []Record) []Record {
	out := make([]Record, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// GroupByDate partitions records into buckets keyed by exact date string
// and returns the keys sorted descending for display. Each bucket keeps
// its members in input order.
func GroupByDate(in []Record) (map[string][]Record, []string) {
	groups := make(map[string][]Record)
	var keys []string
	for _, r := range in {
		if _, ok := groups[r.Date]; !ok {
			keys = append(keys, r.Date)
		}
		groups[r.Date] = append(groups[r.Date], r)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return groups, keys
}

// FilterByType returns the input unchanged for an empty selector,
// otherwise only records of exactly that kind.
func FilterByType(in []Record, t Type) []Record {
	if t == "" {
		return in
	}
	var out []Record
	for _, r := range in {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDate returns records whose date equals d, exact string match.
func FilterByDate(in []Record, d string) []Record {
	var out []Record
	for _, r := range in {
		if r.Date == d {
			out = append(out, r)
		}
	}
	return out
}
