package strategy_test

import (
	"testing"

	"github.com/katalvlaran/gopatterns/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariants_Apply pins each algorithm's transformation.
func TestVariants_Apply(t *testing.T) {
	cases := []struct {
		s    strategy.Strategy
		in   string
		want string
	}{
		{strategy.UpperCase{}, "Hello", "HELLO"},
		{strategy.LowerCase{}, "Hello", "hello"},
		{strategy.Reverse{}, "héllo", "olléh"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.s.Apply(tc.in), "variant %q", tc.s.Name())
	}
}

// TestContext_RunDelegates verifies Run uses exactly the algorithm the
// context was constructed with.
func TestContext_RunDelegates(t *testing.T) {
	ctx, err := strategy.NewContext(strategy.UpperCase{})
	require.NoError(t, err)

	assert.Equal(t, "HELLO", ctx.Run("hello"))
	assert.Equal(t, "upper", ctx.StrategyName())
}

// TestContext_SwapAffectsSubsequentCallsOnly swaps A for B and checks B
// governs later calls while A's earlier result is unaffected.
func TestContext_SwapAffectsSubsequentCallsOnly(t *testing.T) {
	ctx, err := strategy.NewContext(strategy.UpperCase{})
	require.NoError(t, err)

	before := ctx.Run("Hello")
	require.NoError(t, ctx.SetStrategy(strategy.Reverse{}))
	after := ctx.Run("Hello")

	assert.Equal(t, "HELLO", before, "result produced under A stays A's")
	assert.Equal(t, "olleH", after, "subsequent calls use B")
	assert.Equal(t, "reverse", ctx.StrategyName())
}

// TestContext_NilStrategy covers the defensive nil checks on construction
// and swap.
func TestContext_NilStrategy(t *testing.T) {
	ctx, err := strategy.NewContext(nil)
	assert.ErrorIs(t, err, strategy.ErrNilStrategy)
	assert.Nil(t, ctx)

	ctx, err = strategy.NewContext(strategy.LowerCase{})
	require.NoError(t, err)
	assert.ErrorIs(t, ctx.SetStrategy(nil), strategy.ErrNilStrategy)
	assert.Equal(t, "lower", ctx.StrategyName(), "failed swap leaves the current strategy in place")
}
