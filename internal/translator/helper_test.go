package translator

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/test/assert"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// fakeState holds a flat in-memory topology, keyed exactly like the
// store, plus the raw table entries.
type fakeState struct {
	objs map[string]meta.Object
	raws map[string]string
}

func newFakeState() *fakeState {
	return &fakeState{
		objs: map[string]meta.Object{},
		raws: map[string]string{},
	}
}

func (st *fakeState) put(t *testing.T, obj meta.Object) {
	cp := cloneObject(t, obj)
	cp.SetVer(1)
	st.objs[obj.MetaKey()] = cp
}

func (st *fakeState) get(t *testing.T, class meta.Class, id string) meta.Object {
	obj, ok := st.objs[meta.ClassKey(class, id)]
	assert.True(t, ok, "missing %s %s", class, id)
	return obj
}

func (st *fakeState) encode(t *testing.T) map[string]string {
	out := map[string]string{}
	for key, obj := range st.objs {
		buf, err := utils.JSONEncode(obj)
		assert.NilErr(t, err)
		out[key] = string(buf)
	}
	for path, value := range st.raws {
		out[path] = "raw:" + value
	}
	return out
}

// apply plays an operation list against the state the way the real
// transactional layer would, failing the test on a create of an
// already existing key.
func (st *fakeState) apply(t *testing.T, l topology.OpList) {
	for _, op := range l {
		switch op.Kind {
		case topology.OpCreate:
			key := op.Object.MetaKey()
			_, exists := st.objs[key]
			assert.False(t, exists, "create of existing %s", key)
			st.put(t, op.Object)
		case topology.OpUpdate:
			st.put(t, op.Object)
		case topology.OpDelete:
			delete(st.objs, meta.ClassKey(op.Class, op.ID))
		case topology.OpCreateRaw:
			st.raws[op.Path] = op.Value
		case topology.OpDeleteRaw:
			delete(st.raws, op.Path)
		default:
			assert.Fail(t, "unexpected op kind %s", op.Kind)
		}
	}
}

func cloneObject(t *testing.T, obj meta.Object) meta.Object {
	cp, err := models.New(obj.Class())
	assert.NilErr(t, err)

	buf, err := utils.JSONEncode(obj)
	assert.NilErr(t, err)
	assert.NilErr(t, utils.JSONDecode(buf, cp))

	cp.SetVer(obj.GetVer())
	return cp
}

// fakeReader reads fresh copies out of a fakeState.
type fakeReader struct {
	t  *testing.T
	st *fakeState
}

func (r *fakeReader) Get(_ context.Context, class meta.Class, id string) (meta.Object, error) {
	obj, ok := r.st.objs[meta.ClassKey(class, id)]
	if !ok {
		return nil, errors.Wrapf(terrors.ErrKeyNotExists, "%s %s", class, id)
	}
	return cloneObject(r.t, obj), nil
}

func (r *fakeReader) GetAll(ctx context.Context, class meta.Class, ids []string) ([]meta.Object, error) {
	objs := make([]meta.Object, 0, len(ids))
	for _, id := range ids {
		obj, err := r.Get(ctx, class, id)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

func (r *fakeReader) Exists(_ context.Context, class meta.Class, id string) (bool, error) {
	_, ok := r.st.objs[meta.ClassKey(class, id)]
	return ok, nil
}

type fakeKeys struct {
	next uint32
}

func (k *fakeKeys) NextKey(context.Context, string) (uint32, error) {
	k.next++
	return k.next, nil
}

func newTranslator(t *testing.T, st *fakeState) *Translator {
	return New(&fakeReader{t: t, st: st}, &fakeKeys{})
}

func testVIFDescriptor() *models.Descriptor {
	d := models.NewDescriptor()
	d.ID = "port-1"
	d.NetworkID = "net-1"
	d.AdminStateUp = true
	d.MAC = "aa:bb:cc:dd:ee:01"
	d.Kind = models.KindVIF
	d.PortSecurityEnabled = true
	d.FixedIPs = []models.FixedIP{{Address: "10.0.0.5", SubnetID: "subnet-1"}}
	return d
}

func testSubnet(id, cidr string) *models.Subnet {
	sub := models.NewSubnet()
	sub.ID = id
	sub.NetworkID = "net-1"
	sub.CIDR = cidr
	sub.Enabled = true
	return sub
}

func testGroup(id string) *models.AddrGroup {
	g := models.NewAddrGroup()
	g.ID = id
	g.Name = "group-" + id
	g.IngressChainID = "chain-in-" + id
	g.EgressChainID = "chain-out-" + id
	return g
}
