package terrors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestWrappedSentinels(t *testing.T) {
	err := errors.Wrapf(ErrKeyNotExists, "load port %s", "p0")
	require.True(t, IsKeyNotExistsErr(err))
	require.True(t, IsNoSuchObjectErr(err))
	require.False(t, IsKeyBadVersionErr(err))
}

func TestBadVersion(t *testing.T) {
	err := errors.Wrap(ErrKeyBadVersion, "apply")
	require.True(t, IsKeyBadVersionErr(err))
	require.False(t, IsKeyNotExistsErr(err))
}
