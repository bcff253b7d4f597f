package views

import "strings"

// StatusAll is the sentinel filter value that matches every item.
const StatusAll = "all"

// MatchesStatus compares a status against a filter value, case-insensitively.
func MatchesStatus(status, filter string) bool {
	if filter == "" || strings.EqualFold(filter, StatusAll) {
		return true
	}
	return strings.EqualFold(status, filter)
}

// FilterStatus keeps the items whose status matches filter. The sentinel
// "all" (or empty) returns the input unchanged.
func FilterStatus[T any](items []T, filter string, statusOf func(T) string) []T {
	if filter == "" || strings.EqualFold(filter, StatusAll) {
		return items
	}
	var out []T
	for _, item := range items {
		if strings.EqualFold(statusOf(item), filter) {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps the items where any field contains term as a case-insensitive
// substring. An empty term returns the input unchanged.
func Search[T any](items []T, term string, fieldsOf func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	var out []T
	for _, item := range items {
		for _, field := range fieldsOf(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// CountByStatus tallies items by lowercased status in a single pass.
func CountByStatus[T any](items []T, statusOf func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[strings.ToLower(statusOf(item))]++
	}
	return counts
}
