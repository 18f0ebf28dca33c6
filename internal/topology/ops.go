package topology

import (
	"fmt"

	"github.com/overlaynet/overlayd/internal/meta"
)

// OpKind .
type OpKind string

const (
	// OpCreate .
	OpCreate OpKind = "create"
	// OpUpdate .
	OpUpdate OpKind = "update"
	// OpDelete .
	OpDelete OpKind = "delete"
	// OpCreateRaw creates a raw path-style entry outside the object model.
	OpCreateRaw OpKind = "create-raw"
	// OpDeleteRaw .
	OpDeleteRaw OpKind = "delete-raw"
)

// Validator merges apply-time stored state into the desired object
// before an update is written, for fields the producer does not own.
type Validator func(stored, desired meta.Object) error

// Operation is one element of the ordered list handed to the apply
// layer. Exactly the fields for its kind are set.
type Operation struct {
	Kind OpKind

	Object    meta.Object // create, update
	Validator Validator   // update only

	Class meta.Class // delete
	ID    string     // delete
	Ver   int64      // delete guard; 0 means unguarded

	Path  string // raw entries
	Value string // create-raw
}

// String .
func (op Operation) String() string {
	switch op.Kind {
	case OpCreate, OpUpdate:
		return fmt.Sprintf("%s %s/%s", op.Kind, op.Object.Class(), op.Object.GetID())
	case OpDelete:
		return fmt.Sprintf("%s %s/%s", op.Kind, op.Class, op.ID)
	default:
		return fmt.Sprintf("%s %s", op.Kind, op.Path)
	}
}

// OpList is the ordered operation sequence produced by one
// translation. Dependent objects (chains) always precede objects that
// reference them (ports); all-or-none groups are emitted together.
type OpList []Operation

// AddCreate .
func (l *OpList) AddCreate(obj meta.Object) {
	*l = append(*l, Operation{Kind: OpCreate, Object: obj})
}

// AddUpdate .
func (l *OpList) AddUpdate(obj meta.Object, v Validator) {
	*l = append(*l, Operation{Kind: OpUpdate, Object: obj, Validator: v})
}

// AddDelete .
func (l *OpList) AddDelete(class meta.Class, id string) {
	*l = append(*l, Operation{Kind: OpDelete, Class: class, ID: id})
}

// AddDeleteObj deletes an object that was read during this
// translation, guarding on the version it was read at.
func (l *OpList) AddDeleteObj(obj meta.Object) {
	*l = append(*l, Operation{Kind: OpDelete, Class: obj.Class(), ID: obj.GetID(), Ver: obj.GetVer()})
}

// AddRawCreate .
func (l *OpList) AddRawCreate(path, value string) {
	*l = append(*l, Operation{Kind: OpCreateRaw, Path: path, Value: value})
}

// AddRawDelete .
func (l *OpList) AddRawDelete(path string) {
	*l = append(*l, Operation{Kind: OpDeleteRaw, Path: path})
}

// Append .
func (l *OpList) Append(other OpList) {
	*l = append(*l, other...)
}
