package models

import (
	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// New allocates an empty object of the given class, ready to be
// decoded into.
func New(class meta.Class) (meta.Object, error) {
	switch class {
	case meta.ClassDescriptor:
		return NewDescriptor(), nil
	case meta.ClassPort:
		return NewPort(), nil
	case meta.ClassChain:
		return NewChain(), nil
	case meta.ClassRule:
		return NewRule(), nil
	case meta.ClassAddrGroup:
		return NewAddrGroup(), nil
	case meta.ClassSubnet:
		return NewSubnet(), nil
	case meta.ClassRouter:
		return NewRouter(), nil
	case meta.ClassRoute:
		return NewRoute(), nil
	case meta.ClassFloatingIP:
		return NewFloatingIP(), nil
	case meta.ClassNetwork:
		return NewNetwork(), nil
	default:
		return nil, errors.Wrapf(terrors.ErrInvalidValue, "unknown class: %s", class)
	}
}
