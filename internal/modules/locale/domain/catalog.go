package domain

import (
	"fmt"
	"sort"
)

const (
	English  = "en"
	Spanish  = "es"
	Fallback = Spanish
)

// Catalog maps dotted keys such as "contact.form.send" to text.
type Catalog map[string]string

// Flatten turns a nested YAML tree into a catalog. Non-string leaves are
// formatted with %v.
func Flatten(tree map[string]any) Catalog {
	out := Catalog{}
	flatten("", tree, out)
	return out
}

func flatten(prefix string, node map[string]any, out Catalog) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
