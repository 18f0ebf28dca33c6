package terrors

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidValue indicates the value is invalid.
	ErrInvalidValue = errors.New("invalid value")

	// ErrKeyExists .
	ErrKeyExists = errors.New("key exists")
	// ErrKeyNotExists .
	ErrKeyNotExists = errors.New("key not exists")
	// ErrKeyBadVersion .
	ErrKeyBadVersion = errors.New("bad version")

	// ErrBatchOperate .
	ErrBatchOperate = errors.New("batch operate error")

	// ErrNoSuchDescriptor .
	ErrNoSuchDescriptor = errors.New("no such port descriptor")
	// ErrNoSuchObject .
	ErrNoSuchObject = errors.New("no such topology object")
	// ErrUnknownPortKind .
	ErrUnknownPortKind = errors.New("unknown port kind")
	// ErrUnknownOperation .
	ErrUnknownOperation = errors.New("unknown operation kind")

	// ErrIPv4IsNetworkNumber .
	ErrIPv4IsNetworkNumber = errors.New("IPv4 is a network number")
	// ErrIPv4IsBroadcastAddr .
	ErrIPv4IsBroadcastAddr = errors.New("IPv4 is a broadcast addr")

	// ErrInvalidTask .
	ErrInvalidTask = errors.New("invalid task")
)
