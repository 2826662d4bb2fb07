package getopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalBase64String(t *testing.T) {
	input := []byte("SGVsbG8sIHdvcmxkIQ==")
	var output Base64String
	err := (&output).UnmarshalText(input)
	require.Nil(t, err)
	assert.Equal(t, "Hello, world!", string(output))
	assert.Equal(t, "SGVsbG8sIHdvcmxkIQ==", output.String())
}

func TestBase64StringOption(t *testing.T) {
	set := New().LongValue("key ", NewValue[Base64String](), "secret key")
	r, err := set.ParseArgs([]string{"prog", "--key", "aGk="})
	require.NoError(t, err)

	h, err := r.LookupLong("key")
	require.NoError(t, err)
	key, err := Get[Base64String](h)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(key))

	_, err = set.ParseArgs([]string{"prog", "--key", "!!"})
	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "getopt.Base64String", ce.Type)
}

func TestSplitValues(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"1", []string{"1"}},
		{"1,2,3", []string{"1", "2", "3"}},
		{"1,", []string{"1"}},
		{"1,,2", []string{"1", "", "2"}},
		{",", []string{""}},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, splitValues(c.in), "input %q", c.in)
	}
}
