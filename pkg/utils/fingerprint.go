package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const FingerprintSeparator = "|"

func formatKV(w io.Writer, key string, value string) (int, error) {
	return fmt.Fprintf(w, "%s=%s", key, value)
}

func printSep(w io.Writer) (int, error) {
	return fmt.Fprintf(w, "%s", FingerprintSeparator)
}

// Fingerprint identifies a derived-data computation by kind plus a set
// of input labels (time range, output budget, data version). Equal
// inputs always canonicalize to the same string, which makes the
// canonical form usable as a cache key.
type Fingerprint struct {
	Kind   string
	Labels map[string]string
}

// Canonical renders the fingerprint as sorted k=v pairs joined with
// the separator. Label insertion order never affects the result.
func (f Fingerprint) Canonical() string {
	keys := make([]string, 0, len(f.Labels)+1)
	for k := range f.Labels {
		keys = append(keys, k)
	}
	keys = append(keys, "kind")

	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			printSep(&b)
		}
		if k == "kind" {
			formatKV(&b, k, f.Kind)
			continue
		}
		formatKV(&b, k, f.Labels[k])
	}

	return b.String()
}

// ParseFingerprint recovers a Fingerprint from its canonical form.
// Malformed segments are skipped.
func ParseFingerprint(str string) Fingerprint {
	f := Fingerprint{
		Kind:   "",
		Labels: make(map[string]string),
	}

	if str == "" {
		return f
	}

	labels := strings.SplitSeq(str, FingerprintSeparator)
	for label := range labels {
		kv := strings.Split(label, "=")
		if len(kv) < 2 {
			continue
		}
		if kv[0] == "kind" {
			f.Kind = kv[1]
			continue
		}
		f.Labels[kv[0]] = kv[1]
	}
	return f
}
