package terrors

import "github.com/cockroachdb/errors"

// IsKeyNotExistsErr .
func IsKeyNotExistsErr(err error) bool {
	return errors.Is(err, ErrKeyNotExists)
}

// IsKeyExistsErr .
func IsKeyExistsErr(err error) bool {
	return errors.Is(err, ErrKeyExists)
}

// IsKeyBadVersionErr .
func IsKeyBadVersionErr(err error) bool {
	return errors.Is(err, ErrKeyBadVersion)
}

// IsNoSuchObjectErr .
func IsNoSuchObjectErr(err error) bool {
	return errors.Is(err, ErrNoSuchObject) || errors.Is(err, ErrKeyNotExists)
}

// IsETCDServerTimedOutErr .
func IsETCDServerTimedOutErr(err error) bool {
	return err != nil && err.Error() == "etcdserver: request timed out"
}
