package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"parentheses", "Nail Clippers (Small)", "nail-clippers-small"},
		{"padding and punctuation", "  Power Bank!! ", "power-bank"},
		{"existing hyphen", "Water Bottle (Full - under 100ml)", "water-bottle-full-under-100ml"},
		{"tabs and newlines", "Baby\tFormula\n Powder", "baby-formula-powder"},
		{"all punctuation", "!!!", ""},
		{"empty", "", ""},
		{"only hyphens", "---", ""},
		{"non ascii dropped", "Crème Brûlée", "crme-brle"},
		{"slash removed", "Lighter/Matches", "lightermatches"},
		{"uppercase digits", "USB-C 65W Charger", "usb-c-65w-charger"},
		{"vertical tab", "a\vb", "a-b"},
		{"no-break space", "a\u00a0b", "a-b"},
		{"padded no-break spaces", " \u00a0non-breaking\u00a0space ", "non-breaking-space"},
		{"ideographic and narrow spaces", "Hand\u3000Sanitizer\u202fGel", "hand-sanitizer-gel"},
		{"line separator and bom", "\ufeffHair\u2028Dryer", "hair-dryer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyInvariants(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{
		"Nail Clippers (Small)",
		"  Power Bank!! ",
		"-- leading and trailing --",
		"a - - b",
		"Alcohol (Liquor/Wine)",
		"Ünïcödé  ＆ full-width ＡＢＣ",
		"   non-breaking space ",
		"🔋 Lithium Batteries 🔋",
		"x",
	}

	for _, in := range inputs {
		got := Slugify(in)
		assert.Regexp(t, valid, got, "input %q", in)
		assert.False(t, strings.HasPrefix(got, "-"), "leading hyphen for %q", in)
		assert.False(t, strings.HasSuffix(got, "-"), "trailing hyphen for %q", in)
		assert.NotContains(t, got, "--", "double hyphen for %q", in)
		assert.Equal(t, got, Slugify(got), "not idempotent for %q", in)
	}
}
