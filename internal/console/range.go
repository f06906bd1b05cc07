package console

import (
	"strconv"
	"strings"
)

// ExpandRange parses a compact job-identifier expression into an ordered
// sequence of non-negative integers with duplicates removed (first
// occurrence wins). Accepted tokens are single integers and two-sided
// inclusive spans, comma separated: "1,3-5,7" expands to [1 3 4 5 7].
//
// An empty expression expands to an empty sequence; callers must treat
// that as "nothing matched", not success. Any bad token fails the whole
// expression with MalformedRangeError.
func ExpandRange(expr string) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	var ids []int
	seen := make(map[int]bool)

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)

		start, end, isSpan := strings.Cut(token, "-")
		if !isSpan {
			end = start
		}

		lo, err := parseID(start)
		if err != nil {
			return nil, MalformedRangeError{Token: token}
		}
		hi, err := parseID(end)
		if err != nil || hi < lo {
			return nil, MalformedRangeError{Token: token}
		}

		for id := lo; id <= hi; id++ {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// parseID parses a single non-negative integer identifier. A leading sign
// is rejected so "-1" and "+1" are malformed tokens, not identifiers.
func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}
