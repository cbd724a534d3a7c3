package dashboard

import "sort"

// TriggeredSymbol finds the button whose click counter changed between
// previous and current. With no positive counter nothing was clicked.
// Symbols are checked in sorted order so the result is stable when more
// than one counter moved.
func TriggeredSymbol(previous, current map[string]int) (string, bool) {
	symbols := make([]string, 0, len(current))
	for s := range current {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	for _, s := range symbols {
		n := current[s]
		if n > 0 && n != previous[s] {
			return s, true
		}
	}
	return "", false
}
