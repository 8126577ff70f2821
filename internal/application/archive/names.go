package archive

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SafeName lowercases name and collapses non-alphanumeric runs to "_". Edge underscores are
// trimmed; an empty result becomes item_<index+1>.
func SafeName(name string, index int) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "item_" + strconv.Itoa(index+1)
	}
	return s
}

// nameSet hands out unique names, suffixing repeats with _2, _3 and so on.
type nameSet map[string]int

func (n nameSet) unique(base string) string {
	count := n[base]
	n[base] = count + 1
	if count == 0 {
		return base
	}
	for i := count + 1; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		if _, taken := n[candidate]; !taken {
			n[candidate] = 1
			return candidate
		}
	}
}
