package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/tidy/pkg/tidy/processor"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "spaces and tab", in: []string{"  a ", "b\t"}, want: []string{"a", "b"}},
		{name: "empty", in: []string{}, want: []string{}},
		{name: "nil", in: nil, want: []string{}},
		{name: "already clean", in: []string{"x", "y z"}, want: []string{"x", "y z"}},
		{name: "inner whitespace kept", in: []string{"  a  b  "}, want: []string{"a  b"}},
		{name: "newlines and carriage return", in: []string{"\r\nline\r\n", "\n"}, want: []string{"line", ""}},
		{name: "unicode whitespace", in: []string{" café "}, want: []string{"café"}},
		{name: "whitespace only", in: []string{" \t\v\f "}, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := processor.New(tt.in).Clean()
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.in))
		})
	}
}

func TestCleanDoesNotMutate(t *testing.T) {
	in := []string{" a ", " b "}
	p := processor.New(in)

	_ = p.Clean()
	assert.Equal(t, []string{" a ", " b "}, in)
	assert.Equal(t, []string{" a ", " b "}, p.Data())
}

func TestNewCopiesInput(t *testing.T) {
	in := []string{" a "}
	p := processor.New(in)
	in[0] = "changed"

	assert.Equal(t, []string{"a"}, p.Clean())

	data := p.Data()
	data[0] = "changed"
	assert.Equal(t, []string{" a "}, p.Data())
	assert.Equal(t, 1, p.Len())
}

func TestCleanShorthand(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, processor.Clean([]string{"  a ", "b\t"}))
}
