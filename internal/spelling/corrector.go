// Package spelling offers best-effort correction of common misspellings
// in normalized text. Correction is opt-in per analysis call because
// dictionary replacement is the most expensive stage of the pipeline.
package spelling

import (
	"strings"

	"github.com/client9/misspell"
)

// Corrector rewrites commonly misspelled English words. The underlying
// replacer is compiled once and is safe for concurrent use.
type Corrector struct {
	replacer *misspell.Replacer
}

func NewCorrector() *Corrector {
	r := misspell.New()
	r.Compile()

	return &Corrector{replacer: r}
}

// Correct returns text with known misspellings fixed. Tokens the
// dictionary does not recognize pass through unchanged; the result is
// never empty for non-empty input.
func (c *Corrector) Correct(text string) string {
	if text == "" {
		return ""
	}

	corrected, _ := c.replacer.Replace(text)
	if strings.TrimSpace(corrected) == "" {
		return text
	}

	return corrected
}
