package dsl_test

import (
	aison "github.com/gidapataki/aison-sub000"
)

// hasIssue reports whether the set contains an issue with the given code.
func hasIssue(iss aison.Issues, code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// issueAt returns the first issue with the given code, if any.
func issueAt(iss aison.Issues, code string) (aison.Issue, bool) {
	for _, it := range iss {
		if it.Code == code {
			return it, true
		}
	}
	return aison.Issue{}, false
}
