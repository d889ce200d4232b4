package typebuilder

import (
	"sort"

	j "github.com/goccy/go-json"
)

// MergeJSON seeds the accumulator from a JSON object, applying each decoded
// key through the configured field set. Keys outside the set follow the
// factory's UnknownPolicy: strict reports them as unknown_key issues (after
// applying every known key), strip drops them silently. Issue order is
// deterministic (sorted by key).
func (a *Accumulator) MergeJSON(data []byte) error {
	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var iss Issues
	for _, k := range keys {
		if !a.cfg.Has(k) {
			if a.cfg.unknown == UnknownStrict {
				iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeUnknownKey, Message: "unknown key"})
			}
			continue
		}
		a.partial[k] = m[k]
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// MergeJSON seeds the accumulator from a JSON object; see Accumulator.MergeJSON.
func (a *AsyncAccumulator) MergeJSON(data []byte) error {
	return a.inner.MergeJSON(data)
}
