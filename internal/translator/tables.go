package translator

import (
	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// Only the first bound address is tracked in the MAC and
// address-resolution tables; multi-address ports are a known
// limitation carried over from the original behavior.

func firstBoundAddr(d *models.Descriptor) string {
	fip, ok := d.FirstFixedIP()
	if !ok {
		return ""
	}
	return fip.Address
}

// tableCreateOps emits the raw MAC-table and address-resolution-table
// entries for a port with at least one bound address.
func tableCreateOps(d *models.Descriptor) topology.OpList {
	var l topology.OpList

	addr := firstBoundAddr(d)
	if addr == "" {
		return l
	}

	l.AddRawCreate(meta.MacEntryKey(d.NetworkID, d.MAC, d.ID), "")
	l.AddRawCreate(meta.ArpEntryKey(d.NetworkID, addr, d.MAC), "")

	return l
}

// tableDeleteOps .
func tableDeleteOps(d *models.Descriptor) topology.OpList {
	var l topology.OpList

	addr := firstBoundAddr(d)
	if addr == "" {
		return l
	}

	l.AddRawDelete(meta.MacEntryKey(d.NetworkID, d.MAC, d.ID))
	l.AddRawDelete(meta.ArpEntryKey(d.NetworkID, addr, d.MAC))

	return l
}

// tableUpdateOps emits entry operations only when the bound MAC or the
// first bound address actually changed; an unchanged port yields none.
// An entry is always removed in the same list that re-adds its
// replacement, so no address ever has two live entries.
func tableUpdateOps(old, new *models.Descriptor) topology.OpList {
	var l topology.OpList

	oldAddr, newAddr := firstBoundAddr(old), firstBoundAddr(new)
	macChanged := utils.NormalizeMAC(old.MAC) != utils.NormalizeMAC(new.MAC)

	switch {
	case oldAddr == "" && newAddr == "":
		return l
	case oldAddr == "":
		return tableCreateOps(new)
	case newAddr == "":
		return tableDeleteOps(old)
	}

	if macChanged {
		l.AddRawDelete(meta.MacEntryKey(old.NetworkID, old.MAC, old.ID))
		l.AddRawCreate(meta.MacEntryKey(new.NetworkID, new.MAC, new.ID), "")
	}
	if macChanged || oldAddr != newAddr {
		l.AddRawDelete(meta.ArpEntryKey(old.NetworkID, oldAddr, old.MAC))
		l.AddRawCreate(meta.ArpEntryKey(new.NetworkID, newAddr, new.MAC), "")
	}

	return l
}
