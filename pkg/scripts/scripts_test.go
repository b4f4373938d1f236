package scripts_test

import (
	"bytes"
	"testing"

	"recscope/pkg/ast"
	"recscope/pkg/codegen"
	"recscope/pkg/interpreter"
	"recscope/pkg/scripts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string, opts ...interpreter.Option) (*interpreter.Interpreter, *bytes.Buffer) {
	t.Helper()
	s, ok := scripts.Lookup(name)
	require.True(t, ok, "script %s", name)

	pb, errs := codegen.Generate(s.Program())
	require.Empty(t, errs)

	var out bytes.Buffer
	it := interpreter.NewInterpreter(pb, append([]interpreter.Option{interpreter.WithWriter(&out)}, opts...)...)
	require.NoError(t, it.Run())
	return it, &out
}

func TestOutputs(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"in23", "a = 20\nb = 51\nresult = 58\n"},
		{"in23_literal", "a = 23\nb = 60\nresult = 64\n"},
		{"rectest2", "sum_natural(10) = 55\n"},
		{"rectest4", "gcd(48, 18) = 6\n"},
		{"rectest5", "2 raised to the power of 3 is 8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := load(t, tt.name)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"in23", "in23_literal", "rectest2", "rectest4", "rectest5"}, scripts.Names())
	assert.Len(t, scripts.All(), len(scripts.Names()))

	_, ok := scripts.Lookup("rectest9")
	assert.False(t, ok)

	for _, s := range scripts.All() {
		assert.NotEmpty(t, s.Description, s.Name)
		assert.Equal(t, s.Name, s.Program().Name)
	}
}

func TestInternalScopeGlobals(t *testing.T) {
	it, _ := load(t, "in23")

	want := map[string]int64{"a": 20, "b": 51, "c": 9, "val": 13, "tmp": 58}
	for name, v := range want {
		got, ok := it.Global(name)
		require.True(t, ok, name)
		assert.Equal(t, interpreter.NewInt(v), got, name)
	}
	_, ok := it.Global("x")
	assert.False(t, ok, "parameter x must not leak into globals")
}

func TestEvaluateKeepsGlobals(t *testing.T) {
	it, _ := load(t, "in23")

	for x := int64(-50); x <= 50; x++ {
		got, err := it.CallInt("evaluate", x)
		require.NoError(t, err)
		assert.Equal(t, 2*x+18, got)

		a, _ := it.Global("a")
		b, _ := it.Global("b")
		assert.Equal(t, interpreter.NewInt(20), a)
		assert.Equal(t, interpreter.NewInt(51), b)
	}
}

func TestSumNatural(t *testing.T) {
	it, _ := load(t, "rectest2")

	for n, want := range map[int64]int64{0: 0, 1: 1, 2: 3, 10: 55, 100: 5050} {
		got, err := it.CallInt("sum_natural", n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sum_natural(%d)", n)
	}
}

func TestGCD(t *testing.T) {
	it, _ := load(t, "rectest4")

	got, err := it.CallInt("gcd", 48, 18)
	require.NoError(t, err)
	assert.EqualValues(t, 6, got)

	for n := int64(0); n <= 40; n++ {
		got, err := it.CallInt("gcd", n, 0)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	got, err = it.CallInt("gcd", 18, 48)
	require.NoError(t, err)
	assert.EqualValues(t, 6, got)
}

func TestPower(t *testing.T) {
	it, _ := load(t, "rectest5")

	for b := int64(-10); b <= 10; b++ {
		got, err := it.CallInt("power", b, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got)
	}

	got, err := it.CallInt("power", 3, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 81, got)
}

func TestPowerOverflow(t *testing.T) {
	it, _ := load(t, "rectest5")

	got, err := it.CallInt("power", 2, 62)
	require.NoError(t, err)
	assert.EqualValues(t, int64(1)<<62, got)

	for _, e := range []int64{63, 64} {
		_, err := it.CallInt("power", 2, e)
		assert.ErrorIs(t, err, interpreter.ErrIntegerOverflow, "power(2, %d)", e)
		assert.Equal(t, 0, it.Depth())
	}
}

func TestPowerNegativeExponent(t *testing.T) {
	it, _ := load(t, "rectest5", interpreter.WithMaxDepth(200))

	_, err := it.CallInt("power", 2, -1)
	assert.ErrorIs(t, err, interpreter.ErrMaxDepthExceeded)
	assert.Equal(t, 0, it.Depth())

	got, err := it.CallInt("power", 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1024, got)
}

func TestRerunIsIdentical(t *testing.T) {
	for _, s := range scripts.All() {
		t.Run(s.Name, func(t *testing.T) {
			it, out := load(t, s.Name)
			first := out.String()

			out.Reset()
			it.Reset()
			require.NoError(t, it.Run())
			assert.Equal(t, first, out.String())
		})
	}
}

func TestSource(t *testing.T) {
	s, _ := scripts.Lookup("rectest4")

	want := `def gcd(a, b):
    if b == 0:
        return a
    else:
        return gcd(b, a % b)

a = 48
b = 18
result = gcd(a, b)
print("gcd(48, 18) =", result)
`
	assert.Equal(t, want, ast.Format(s.Program()))
}
