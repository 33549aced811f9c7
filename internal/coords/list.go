package coords

import "strings"

// Warner receives a warning for every token ParseList drops.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Warner interface {
	Warn(msg any, keyvals ...any)
}

// ParseList splits text on ',' and parses every token with Parse.
//
// Tokens that fail to parse are reported to w and skipped; the remaining
// tokens keep their original order. Commas cannot be escaped. An empty
// text yields nil without any warning. A nil w discards warnings.
func ParseList(text string, w Warner) []Coordinate {
	if text == "" {
		return nil
	}

	tokens := strings.Split(text, ",")
	refs := make([]Coordinate, 0, len(tokens))
	for _, token := range tokens {
		ref, err := Parse(token)
		if err != nil {
			if w != nil {
				w.Warn("Skipping invalid coordinate", "token", token, "err", err)
			}
			continue
		}
		refs = append(refs, ref)
	}

	return refs
}
