package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no wrappers", raw: `TODO`, want: `TODO`},
		{name: "both wrappers", raw: `{{open:\*\*}}(.*?){{close:\*\*}}`, want: `\*\*(.*?)\*\*`},
		{name: "open only", raw: `{{open:==}}(\w+)`, want: `==(\w+)`},
		{name: "close only", raw: `(\w+){{close:;;}}`, want: `(\w+);;`},
		{name: "empty wrapper body", raw: `{{open:}}x`, want: `x`},
		{
			name: "only first of each wrapper replaced",
			raw:  `{{open:a}}{{open:b}}{{close:c}}{{close:d}}`,
			want: `a{{open:b}}c{{close:d}}`,
		},
		{name: "close before open", raw: `{{close:]}}x{{open:[}}`, want: `]x[`},
		{name: "empty", raw: ``, want: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestIsUnsafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{`[^x]`, true},
		{`a[^b]+c`, true},
		{`[^\n]+`, false},
		{`[^x\n]+`, false},
		{`[^\nx]`, false},
		{`[a-z]+`, false},
		{`\^`, false},
		{`TODO`, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUnsafe(tt.raw), "IsUnsafe(%q)", tt.raw)
	}
}

func TestHasWrappers(t *testing.T) {
	t.Parallel()

	assert.True(t, HasWrappers(`{{open:x}}(a)`))
	assert.True(t, HasWrappers(`(a){{close:x}}`))
	assert.False(t, HasWrappers(`(a)`))
}
