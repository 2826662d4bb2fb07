package getopt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSet() *Set {
	return New().LongValue("count=", NewValue(5).Limit(3), "how many")
}

func TestParseEqualSignValues(t *testing.T) {
	r, err := countSet().ParseArgs([]string{"prog", "--count=1,2,3"})
	require.NoError(t, err)

	h, err := r.LookupLong("count")
	require.NoError(t, err)
	assert.True(t, h.Used())
	counts, err := GetSlice[int](h)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, counts)
}

func TestParseKeepsDefaultsWhenUnused(t *testing.T) {
	r, err := countSet().ParseArgs([]string{"prog"})
	require.NoError(t, err)

	h, err := r.LookupLong("count")
	require.NoError(t, err)
	assert.False(t, h.Used())
	n, err := Get[int](h)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestParseClampsToLimit(t *testing.T) {
	r, err := countSet().ParseArgs([]string{"prog", "--count=1,2,3,4", "--count=5"})
	require.NoError(t, err)

	h, err := r.LookupLong("count=")
	require.NoError(t, err)
	counts, err := GetSlice[int](h)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, counts)
}

func TestParseFlags(t *testing.T) {
	set := New().Short("f", "force").Long("verbose", "log more")

	r, err := set.ParseArgs([]string{"prog", "-f"})
	require.NoError(t, err)
	f, err := r.LookupShort("f")
	require.NoError(t, err)
	assert.True(t, f.Used())
	v, err := r.LookupLong("verbose")
	require.NoError(t, err)
	assert.False(t, v.Used())
	assert.Empty(t, r.Leftovers())

	r, err = set.ParseArgs([]string{"prog", "-f", "extra", "--verbose"})
	require.NoError(t, err)
	f, _ = r.LookupShort("f")
	v, _ = r.LookupLong("verbose")
	assert.True(t, f.Used())
	assert.True(t, v.Used())
	assert.Equal(t, []string{"extra"}, r.Leftovers())
}

func TestParseNextArgValues(t *testing.T) {
	set := New().
		ShortValue("n", NewValue[int](), "").
		LongValue("name", NewValue[string](), "").
		LongValue("tag ", NewValue[string]().Unlimited(), "")

	r, err := set.ParseArgs([]string{"prog", "a", "-n", "3", "--name", "x y", "b", "--tag", "t1", "--tag", "t2", "--name=z"})
	require.NoError(t, err)

	n, _ := r.LookupShort("n")
	nv, err := Get[int](n)
	require.NoError(t, err)
	assert.Equal(t, 3, nv)

	name, _ := r.LookupLong("name")
	names, err := GetSlice[string](name)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, names)

	tag, _ := r.LookupLong("tag")
	tags, err := GetSlice[string](tag)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, tags)

	assert.Equal(t, []string{"a", "b"}, r.Leftovers())
}

func TestParseConversionError(t *testing.T) {
	set := New().LongValue("port", NewValue[int](), "")
	r, err := set.ParseArgs([]string{"prog", "--port", "abc"})
	assert.Nil(t, r)

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "--port", ce.Option)
	assert.Equal(t, "abc", ce.Token)
	assert.Equal(t, "int", ce.Type)
	assert.Contains(t, err.Error(), "--port")
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "int")
}

func TestParseConstraintError(t *testing.T) {
	below10 := func(x int) bool { return x < 10 }
	cases := []struct {
		name  string
		set   *Set
		args  []string
		opt   string
		value string
	}{
		{"equal sign", New().LongValue("n", NewValue(1).Constraint(positive), ""), []string{"--n=-4"}, "--n", "-4"},
		{"second of several", New().LongValue("n=", NewValue[int]().Unlimited().Constraint(below10), ""), []string{"--n=1,12"}, "--n", "12"},
		{"next argument", New().LongValue("n ", NewValue[int]().Constraint(below10), ""), []string{"--n", "11"}, "--n", "11"},
		{"short option", New().ShortValue("n", NewValue[int]().Constraint(below10), ""), []string{"-n", "11"}, "-n", "11"},
	}
	for _, c := range cases {
		r, err := c.set.ParseArgs(append([]string{"prog"}, c.args...))
		assert.Nil(t, r, c.name)
		var ce *ConstraintError
		if assert.ErrorAs(t, err, &ce, c.name) {
			assert.Equal(t, c.opt, ce.Option, c.name)
			assert.Equal(t, c.value, ce.Value, c.name)
		}
	}
}

func TestParseUsageErrors(t *testing.T) {
	set := New().
		Short("f", "").
		Short("a", "").
		Short("b", "").
		ShortValue("n", NewValue[int](), "").
		Long("verbose", "").
		LongValue("x ", NewValue[int](), "").
		LongValue("y=", NewValue[int](), "").
		LongValue("port", NewValue[int](), "")

	cases := []struct {
		name   string
		args   []string
		reason string
		token  string
	}{
		{"unknown short", []string{"-z"}, "unrecognized option", "-z"},
		{"unknown long", []string{"--zzz"}, "unrecognized option", "--zzz"},
		{"bundled shorts", []string{"-ab"}, "unrecognized option", "-ab"},
		{"abbreviated long", []string{"--verb"}, "unrecognized option", "--verb"},
		{"value for flag", []string{"--verbose=1"}, "unrecognized option", "--verbose=1"},
		{"equal sign on next-only", []string{"--x=1"}, "unrecognized option", "--x=1"},
		{"next arg on equal-only", []string{"--y", "1"}, "unrecognized option", "--y"},
		{"missing short argument", []string{"-n"}, "option requires an argument", "-n"},
		{"missing long argument", []string{"--port"}, "option requires an argument", "--port"},
		{"option as argument", []string{"--port", "-f"}, "option requires an argument", "--port"},
		{"long option as argument", []string{"-n", "--verbose"}, "option requires an argument", "-n"},
		{"empty after equal sign", []string{"--port="}, "missing value after =", "--port="},
	}
	for _, c := range cases {
		r, err := set.ParseArgs(append([]string{"prog"}, c.args...))
		assert.Nil(t, r, c.name)
		var ue *UsageError
		if assert.ErrorAs(t, err, &ue, c.name) {
			assert.Equal(t, c.reason, ue.Reason, c.name)
			assert.Equal(t, c.token, ue.Token, c.name)
		}
	}
}

func TestParseNonOptionTokens(t *testing.T) {
	set := New().Short("f", "")
	r, err := set.ParseArgs([]string{"prog", "-", "--", "---x", "plain", "-f"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "--", "---x", "plain"}, r.Leftovers())
	f, _ := r.LookupShort("f")
	assert.True(t, f.Used())
}

func TestParseFlagAndValueShareName(t *testing.T) {
	set := New().
		Long("color", "enable color").
		LongValue("color=", NewValue("auto"), "color scheme")

	r, err := set.ParseArgs([]string{"prog", "--color"})
	require.NoError(t, err)
	flag, err := r.LookupLong("color")
	require.NoError(t, err)
	assert.True(t, flag.Used())
	scheme, err := r.LookupLong("color=")
	require.NoError(t, err)
	assert.False(t, scheme.Used())

	r, err = set.ParseArgs([]string{"prog", "--color=dark"})
	require.NoError(t, err)
	flag, _ = r.LookupLong("color")
	assert.False(t, flag.Used())
	scheme, _ = r.LookupLong("color=")
	s, err := Get[string](scheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", s)
}

func TestParseIsIndependentAcrossCalls(t *testing.T) {
	set := countSet().Short("f", "")

	r1, err := set.ParseArgs([]string{"prog", "--count=7", "-f", "one"})
	require.NoError(t, err)
	r2, err := set.ParseArgs([]string{"prog", "two"})
	require.NoError(t, err)

	c1, _ := r1.LookupLong("count")
	c2, _ := r2.LookupLong("count")
	v1, _ := GetSlice[int](c1)
	v2, _ := GetSlice[int](c2)
	assert.Equal(t, []int{7}, v1)
	assert.Equal(t, []int{5}, v2)
	assert.True(t, c1.Used())
	assert.False(t, c2.Used())

	f2, _ := r2.LookupShort("f")
	assert.False(t, f2.Used())
	assert.Equal(t, []string{"one"}, r1.Leftovers())
	assert.Equal(t, []string{"two"}, r2.Leftovers())

	tmpl, _ := set.Registry().LookupLong("count")
	assert.False(t, tmpl.Used())
}

func TestParseReturnsRegistrationError(t *testing.T) {
	set := New().Short("ok", "").Long("bad=name", "").Short("later", "")
	_, err := set.ParseArgs([]string{"prog"})
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, set.Err(), err)
	assert.Len(t, set.Registry().Options(), 1)

	assert.Panics(t, func() { set.MustParseArgs([]string{"prog"}) })
}

func TestParseEmptyArgs(t *testing.T) {
	r, err := New().Short("f", "").ParseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Leftovers())
}

func TestParseLogsTokens(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	set := New(WithLogger(logger)).Short("f", "")

	_, err := set.ParseArgs([]string{"prog", "-f", "rest"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parsing short option")
	assert.Contains(t, buf.String(), "token=rest")
}
