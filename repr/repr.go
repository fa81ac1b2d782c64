// Package repr renders synthetic nodes that have no source text.
package repr

const (
	QuotePrefix = "‹"
	QuoteSuffix = "›"
)

// Quote wraps s in angle quotes, so it cannot be mistaken for source text.
func Quote(s string) string {
	return QuotePrefix + s + QuoteSuffix
}
