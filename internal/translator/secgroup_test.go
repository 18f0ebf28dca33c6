package translator

import (
	"context"
	"testing"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestDiffGroups(t *testing.T) {
	diff := DiffGroups(
		[]string{"A", "B"},
		[]string{"B", "C"},
		[]string{"ip1"},
		[]string{"ip1", "ip2"},
	)

	assert.Equal(t, []string{"C"}, diff.Added)
	assert.Equal(t, []string{"A"}, diff.Removed)
	assert.Equal(t, []string{"B"}, diff.Kept)
	assert.Equal(t, []string{"ip2"}, diff.AddedAddrs)
	assert.Len(t, diff.RemovedAddrs, 0)
}

func TestGroupOpsTouchOnlyChangedMemberships(t *testing.T) {
	st := newFakeState()

	a := testGroup("A")
	a.AddMember("ip1", "port-1")
	a.AddMember("ip1", "port-9")
	b := testGroup("B")
	b.AddMember("ip1", "port-1")
	c := testGroup("C")
	st.put(t, a)
	st.put(t, b)
	st.put(t, c)

	tr := newTranslator(t, st)
	diff := DiffGroups([]string{"A", "B"}, []string{"B", "C"}, []string{"ip1"}, []string{"ip1", "ip2"})

	ops, err := tr.groupOps(context.Background(), "port-1", diff)
	assert.NilErr(t, err)
	assert.Len(t, ops, 3)
	st.apply(t, ops)

	got := st.get(t, meta.ClassAddrGroup, "A").(*models.AddrGroup)
	assert.False(t, got.HasMember("ip1", "port-1"))
	assert.True(t, got.HasMember("ip1", "port-9"))

	got = st.get(t, meta.ClassAddrGroup, "B").(*models.AddrGroup)
	assert.True(t, got.HasMember("ip1", "port-1"))
	assert.True(t, got.HasMember("ip2", "port-1"))

	got = st.get(t, meta.ClassAddrGroup, "C").(*models.AddrGroup)
	assert.True(t, got.HasMember("ip1", "port-1"))
	assert.True(t, got.HasMember("ip2", "port-1"))
}

func TestGroupOpsNoChangesEmitNothing(t *testing.T) {
	st := newFakeState()

	b := testGroup("B")
	b.AddMember("ip1", "port-1")
	st.put(t, b)

	tr := newTranslator(t, st)
	diff := DiffGroups([]string{"B"}, []string{"B"}, []string{"ip1"}, []string{"ip1"})

	ops, err := tr.groupOps(context.Background(), "port-1", diff)
	assert.NilErr(t, err)
	assert.Len(t, ops, 0)
}

func TestGroupOpsToleratesRemovedGroupGone(t *testing.T) {
	st := newFakeState()

	tr := newTranslator(t, st)
	diff := DiffGroups([]string{"A"}, nil, []string{"ip1"}, nil)

	ops, err := tr.groupOps(context.Background(), "port-1", diff)
	assert.NilErr(t, err)
	assert.Len(t, ops, 0)
}
