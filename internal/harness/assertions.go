package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/numeric/internal/num"
)

var orderingNames = map[string]num.Ordering{
	"less":      num.Less,
	"-1":        num.Less,
	"equal":     num.Equal,
	"0":         num.Equal,
	"greater":   num.Greater,
	"1":         num.Greater,
	"unordered": num.Unordered,
	"nil":       num.Unordered,
}

// checkExpect returns one message per unmet expectation.
func checkExpect(r *resolver, e *Expect, out *outcome) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	wantErr := e.Error != "" || e.Message != ""
	switch {
	case wantErr && out.err == nil:
		fail("expected error %s, got none", describeErr(e))
	case !wantErr && out.err != nil:
		fail("unexpected error: %v", out.err)
	case wantErr:
		if got := string(num.CodeOf(out.err)); e.Error != "" && got != e.Error {
			fail("expected error %s, got %s (%v)", e.Error, orNone(got), out.err)
		}
		if e.Message != "" && !strings.Contains(out.err.Error(), e.Message) {
			fail("expected message containing %q, got %q", e.Message, out.err.Error())
		}
	}

	if e.Value != nil && out.err == nil {
		want := canonical(r, *e.Value)
		if !out.hasValue {
			fail("expected value %s, got no value", want)
		} else if out.value != want {
			fail("expected value %s, got %s", want, out.value)
		}
	}

	if e.Ordering != "" {
		want := orderingNames[e.Ordering]
		switch {
		case out.ordering == nil:
			fail("expected ordering %s, got no ordering", e.Ordering)
		case *out.ordering != want:
			fail("expected ordering %s, got %s", want, *out.ordering)
		}
	}

	if e.Bool != nil && out.err == nil {
		switch {
		case out.boolean == nil:
			fail("expected %t, got %s", *e.Bool, out.value)
		case *out.boolean != *e.Bool:
			fail("expected %t, got %t", *e.Bool, *out.boolean)
		}
	}

	if e.Size != "" {
		switch {
		case out.size == nil:
			fail("expected size %s, got no size", e.Size)
		case isInfiniteName(e.Size):
			if !out.size.IsInfinite() {
				fail("expected infinite size, got %s", out.size)
			}
		case out.size.String() != e.Size:
			fail("expected size %s, got %s", e.Size, out.size)
		}
	}

	if len(e.Values) > 0 {
		want := make([]string, len(e.Values))
		for i, lit := range e.Values {
			want[i] = canonical(r, lit)
		}
		if !slices.Equal(want, out.values) {
			fail("expected values [%s], got [%s]", strings.Join(want, ", "), strings.Join(out.values, ", "))
		}
	}

	return failures
}

// canonical renders an expected literal the way outcomes are rendered, so
// "1.50" matches 1.5. Text that is not a literal (debug forms like
// "#<Money 1.00>" or "[3, 0.5]") is compared verbatim.
func canonical(r *resolver, lit string) string {
	if strings.HasPrefix(lit, "#<") {
		return lit
	}
	v, err := r.resolve(lit)
	if err != nil {
		return lit
	}
	return r.d.Inspect(v)
}

func isInfiniteName(s string) bool {
	switch strings.ToLower(s) {
	case "infinite", "infinity":
		return true
	}
	return false
}

func describeErr(e *Expect) string {
	if e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("containing %q", e.Message)
}

func orNone(code string) string {
	if code == "" {
		return "untyped error"
	}
	return code
}
