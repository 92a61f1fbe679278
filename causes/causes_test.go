package causes

import (
	stderrors "errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sqlfault/errors"
)

// linked is a test error with a settable cause, used to build cycles.
type linked struct {
	name  string
	cause error
}

func (l *linked) Error() string { return l.name }
func (l *linked) Unwrap() error { return l.cause }

func TestOf(t *testing.T) {
	root := stderrors.New("root")
	mid := fmt.Errorf("mid: %w", root)
	top := fmt.Errorf("top: %w", mid)

	tests := []struct {
		name string
		err  error
		want []error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no cause", err: root, want: []error{root}},
		{name: "depth two", err: top, want: []error{top, mid, root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, slices.Collect(Of(tt.err)))
		})
	}
}

func TestOf_DepthN(t *testing.T) {
	var err error = stderrors.New("root")
	for i := 0; i < 10; i++ {
		err = fmt.Errorf("level %d: %w", i, err)
	}
	require.Len(t, slices.Collect(Of(err)), 11)
}

func TestOf_StopsEarly(t *testing.T) {
	err := fmt.Errorf("a: %w", fmt.Errorf("b: %w", stderrors.New("c")))

	var visited int
	for range Of(err) {
		visited++
		if visited == 2 {
			break
		}
	}
	require.Equal(t, 2, visited)
}

func TestOf_JoinedErrorIsLeaf(t *testing.T) {
	joined := stderrors.Join(stderrors.New("a"), stderrors.New("b"))
	top := fmt.Errorf("top: %w", joined)

	require.Equal(t, []error{top, joined}, slices.Collect(Of(top)))
}

func TestOf_SelfCycle(t *testing.T) {
	self := &linked{name: "self"}
	self.cause = self

	require.Equal(t, []error{self}, slices.Collect(Of(self)))
}

func TestChain(t *testing.T) {
	root := stderrors.New("root")
	top := fmt.Errorf("top: %w", root)

	chain, err := Chain(top)
	require.NoError(t, err)
	require.Equal(t, []error{top, root}, chain)

	chain, err = Chain(nil)
	require.NoError(t, err)
	require.Empty(t, chain)
}

func TestChain_MutualCycle(t *testing.T) {
	a := &linked{name: "a"}
	b := &linked{name: "b", cause: a}
	a.cause = fmt.Errorf("wrapped: %w", b)

	chain, err := Chain(a)
	require.Error(t, err)
	require.Equal(t, errors.CodeMalformedChain, errors.GetCode(err))
	require.Len(t, chain, 3)

	var f errors.PlatformError
	require.True(t, errors.As(err, &f))
	require.Equal(t, 3, f.Context()["depth"])
}

func TestChain_DepthBound(t *testing.T) {
	var err error = stderrors.New("root")
	for i := 0; i < MaxDepth+5; i++ {
		err = fmt.Errorf("%d: %w", i, err)
	}

	chain, walkErr := Chain(err)
	require.Error(t, walkErr)
	require.Len(t, chain, MaxDepth)
}

func TestRoot(t *testing.T) {
	root := stderrors.New("root")
	require.Equal(t, root, Root(fmt.Errorf("a: %w", fmt.Errorf("b: %w", root))))
	require.Nil(t, Root(nil))
}
