package translator

import (
	"testing"

	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestTableOpsNeedBoundAddress(t *testing.T) {
	d := testVIFDescriptor()
	d.FixedIPs = nil

	assert.Len(t, tableCreateOps(d), 0)
	assert.Len(t, tableDeleteOps(d), 0)
}

func TestTableCreateDeleteMirror(t *testing.T) {
	d := testVIFDescriptor()

	created := tableCreateOps(d)
	deleted := tableDeleteOps(d)
	assert.Len(t, created, 2)
	assert.Len(t, deleted, 2)

	for i := range created {
		assert.Equal(t, topology.OpCreateRaw, created[i].Kind)
		assert.Equal(t, topology.OpDeleteRaw, deleted[i].Kind)
		assert.Equal(t, created[i].Path, deleted[i].Path)
	}
}

func TestTableUpdateUnchangedEmitsNothing(t *testing.T) {
	old := testVIFDescriptor()
	new := testVIFDescriptor()
	new.AdminStateUp = false

	assert.Len(t, tableUpdateOps(old, new), 0)
}

func TestTableUpdateAddressChange(t *testing.T) {
	old := testVIFDescriptor()
	new := testVIFDescriptor()
	new.FixedIPs = []models.FixedIP{{Address: "10.0.0.6", SubnetID: "subnet-1"}}

	ops := tableUpdateOps(old, new)
	assert.Len(t, ops, 2)
	assert.Equal(t, topology.OpDeleteRaw, ops[0].Kind)
	assert.Equal(t, topology.OpCreateRaw, ops[1].Kind)
}

func TestTableUpdateMACChange(t *testing.T) {
	old := testVIFDescriptor()
	new := testVIFDescriptor()
	new.MAC = "aa:bb:cc:dd:ee:02"

	ops := tableUpdateOps(old, new)
	assert.Len(t, ops, 4)
}

func TestTableUpdateNormalizedMACIsNotAChange(t *testing.T) {
	old := testVIFDescriptor()
	new := testVIFDescriptor()
	new.MAC = "AA:BB:CC:DD:EE:01"

	assert.Len(t, tableUpdateOps(old, new), 0)
}
