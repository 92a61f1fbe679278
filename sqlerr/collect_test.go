package sqlerr

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type vendorError struct {
	code int
	msg  string
}

func (v *vendorError) Error() string { return v.msg }

func adaptVendor(err error) (*Error, bool) {
	v, ok := err.(*vendorError)
	if !ok {
		return nil, false
	}
	return &Error{Code: v.code, Message: v.msg, Dialect: "test"}, true
}

func TestCollect_SiblingsInsideChain(t *testing.T) {
	first := &Error{Code: 1, State: "23000", Message: "first"}
	second := &Error{Code: 2, State: "23000", Message: "second"}
	third := &Error{Code: 3, State: "23000", Message: "third"}
	Chain(first, second, third)

	// four nodes: generic -> sql (with siblings) -> generic -> generic
	first.Cause = fmt.Errorf("driver: %w", stderrors.New("socket closed"))
	top := fmt.Errorf("command failed: %w", first)

	got := Collect(top)
	require.Equal(t, []*Error{first, second, third}, got)
}

func TestCollect_MultipleChainPositions(t *testing.T) {
	inner := &Error{Code: 10, Message: "inner"}
	outer := &Error{Code: 20, Message: "outer", Cause: fmt.Errorf("x: %w", inner)}
	sibling := &Error{Code: 21, Message: "outer sibling"}
	outer.Next = sibling

	require.Equal(t, []*Error{outer, sibling, inner}, Collect(outer))
}

func TestCollect_NoSQLErrors(t *testing.T) {
	require.Nil(t, Collect(fmt.Errorf("a: %w", stderrors.New("connection refused"))))
	require.Nil(t, Collect(nil))
}

func TestCollect_Adapters(t *testing.T) {
	vendor := &vendorError{code: 1062, msg: "Duplicate entry"}
	err := fmt.Errorf("insert: %w", vendor)

	require.Nil(t, Collect(err))

	got := Collect(err, adaptVendor)
	require.Len(t, got, 1)
	require.Equal(t, 1062, got[0].Code)
	require.Equal(t, "test", got[0].Dialect)
}

func TestCollect_SiblingCycle(t *testing.T) {
	a := &Error{Message: "a"}
	b := &Error{Message: "b"}
	a.Next = b
	b.Next = a

	require.Equal(t, []*Error{a, b}, Collect(a))
}

func TestError_Message(t *testing.T) {
	require.Equal(t, "boom", (&Error{Message: "boom"}).Error())
	require.Equal(t, `sql error 1 (state "23000")`, (&Error{Code: 1, State: "23000"}).Error())
}

func TestChain_Empty(t *testing.T) {
	require.Nil(t, Chain())
}
