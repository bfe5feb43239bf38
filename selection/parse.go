package selection

import (
	"strings"

	"housing-trends/common"
)

// Selection is the ordered list of region labels a caller wants charted
type Selection []string

// Parse rebuilds "City, ST" labels from a comma-joined query value.
//
// The value is split on every comma and the tokens are re-paired by position
// (0 with 1, 2 with 3, ...), each pair joined back with a single comma. Labels
// must therefore contain exactly one internal comma. A trailing unpaired token
// is dropped silently, so "A,B,C" parses to ["A,B"]. Tokens are not trimmed.
func Parse(raw string) (Selection, error) {
	if raw == "" {
		return nil, common.ErrMissingParameter
	}

	tokens := strings.Split(raw, ",")
	labels := make(Selection, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		labels = append(labels, tokens[i]+","+tokens[i+1])
	}
	return labels, nil
}

// Join is the client-side inverse of Parse for well-formed labels
func Join(labels []string) string {
	return strings.Join(labels, ",")
}
