package catalog

import "strings"

// Suggest proposes a corrected item number for an invalid one, or "" when no
// suggestion applies. CONN items missing their gender suffix get "-F"
// appended; otherwise the first reference item sharing the same family prefix
// is offered.
func (c *Catalog) Suggest(itemNumber string) string {
	prefix := prefixOf(itemNumber)

	if prefix == "CONN" && !strings.HasSuffix(itemNumber, "-M") && !strings.HasSuffix(itemNumber, "-F") {
		return itemNumber + "-F"
	}

	if prefix == "" {
		return ""
	}

	// Deterministic pick: the lexicographically smallest matching reference item.
	best := ""
	for ref := range c.reference {
		if !strings.HasPrefix(ref, prefix+"-") {
			continue
		}
		if best == "" || ref < best {
			best = ref
		}
	}
	return best
}
