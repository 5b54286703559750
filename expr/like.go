package expr

// likeItem is one compiled element of a LIKE pattern.
type likeItem struct {
	kind likeItemKind
	r    rune
}

type likeItemKind int

const (
	likeLiteral likeItemKind = iota // match exactly one specific rune
	likeAnyOne                      // _ matches exactly one rune
	likeAnySeq                      // % matches any run of runes, empty included
)

// compileLike turns a pattern string into a sequence of match items. A
// doubled wildcard (%% or __) is an escaped literal; there is no other
// escape syntax.
func compileLike(pattern string) []likeItem {
	runes := []rune(pattern)
	items := make([]likeItem, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '%':
			if i+1 < len(runes) && runes[i+1] == '%' {
				items = append(items, likeItem{kind: likeLiteral, r: '%'})
				i++
			} else {
				items = append(items, likeItem{kind: likeAnySeq})
			}
		case '_':
			if i+1 < len(runes) && runes[i+1] == '_' {
				items = append(items, likeItem{kind: likeLiteral, r: '_'})
				i++
			} else {
				items = append(items, likeItem{kind: likeAnyOne})
			}
		default:
			items = append(items, likeItem{kind: likeLiteral, r: runes[i]})
		}
	}
	return items
}

// Like reports whether text matches the LIKE pattern. Matching is
// case-sensitive, anchored at both ends, and operates on runes, so a _
// matches one full multi-byte character. The match runs in O(len(text) *
// len(pattern)) via dynamic programming regardless of how many % wildcards
// the pattern contains.
func Like(text, pattern string) bool {
	items := compileLike(pattern)
	runes := []rune(text)
	m, n := len(runes), len(items)

	// dp[i][j]: does runes[i:] match items[j:]?
	dp := make([][]bool, m+1)
	for i := range dp {
		dp[i] = make([]bool, n+1)
	}
	dp[m][n] = true

	for i := m; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			switch items[j].kind {
			case likeAnySeq:
				dp[i][j] = dp[i][j+1] || (i < m && dp[i+1][j])
			case likeAnyOne:
				dp[i][j] = i < m && dp[i+1][j+1]
			case likeLiteral:
				dp[i][j] = i < m && runes[i] == items[j].r && dp[i+1][j+1]
			}
		}
	}
	return dp[0][0]
}
