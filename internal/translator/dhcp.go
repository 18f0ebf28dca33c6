package translator

import (
	"context"

	"github.com/samber/lo"

	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// dhcpHostOps registers the port's MAC-to-address bindings in every
// bound subnet's DHCP configuration.
func (t *Translator) dhcpHostOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	for _, sid := range d.SubnetIDs() {
		sub, err := t.subnet(ctx, sid)
		if err != nil {
			return nil, err
		}

		changed := false
		for _, fip := range d.FixedIPs {
			if fip.SubnetID != sid {
				continue
			}
			changed = sub.AddHost(d.MAC, fip.Address) || changed
		}
		if changed {
			l.AddUpdate(sub, nil)
		}
	}

	return l, nil
}

// dhcpHostRemoveOps reverses the port's host bindings. A subnet
// configuration already deleted leaves nothing to reverse.
func (t *Translator) dhcpHostRemoveOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.dhcpHostRemoveOps")

	for _, sid := range d.SubnetIDs() {
		sub, err := t.subnet(ctx, sid)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			logger.Debugf(ctx, "subnet %s already gone, skip host removal", sid)
			continue
		case err != nil:
			return nil, err
		}

		changed := false
		for _, fip := range d.FixedIPs {
			if fip.SubnetID != sid {
				continue
			}
			changed = sub.RemoveHost(d.MAC, fip.Address) || changed
		}
		if changed {
			l.AddUpdate(sub, nil)
		}
	}

	return l, nil
}

// dhcpRebindOps rebinds hosts across an update: old bindings out, new
// bindings in, one update per touched subnet. A subnet the new state
// no longer binds may already be gone.
func (t *Translator) dhcpRebindOps(ctx context.Context, old, new *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	stillBound := map[string]bool{}
	for _, sid := range new.SubnetIDs() {
		stillBound[sid] = true
	}

	for _, sid := range lo.Uniq(append(old.SubnetIDs(), new.SubnetIDs()...)) {
		sub, err := t.subnet(ctx, sid)
		switch {
		case terrors.IsKeyNotExistsErr(err) && !stillBound[sid]:
			continue
		case err != nil:
			return nil, err
		}

		changed := false
		for _, fip := range old.FixedIPs {
			if fip.SubnetID != sid {
				continue
			}
			changed = sub.RemoveHost(old.MAC, fip.Address) || changed
		}
		for _, fip := range new.FixedIPs {
			if fip.SubnetID != sid {
				continue
			}
			changed = sub.AddHost(new.MAC, fip.Address) || changed
		}
		if changed {
			l.AddUpdate(sub, nil)
		}
	}

	return l, nil
}

// dhcpServerCreateOps records the serving address and the option-121
// metadata route in the first bound address's subnet.
func (t *Translator) dhcpServerCreateOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	fip, ok := d.FirstFixedIP()
	if !ok {
		return l, nil
	}

	sub, err := t.subnet(ctx, fip.SubnetID)
	if err != nil {
		return nil, err
	}

	changed := false
	if sub.ServerAddress != fip.Address {
		sub.ServerAddress = fip.Address
		changed = true
	}
	changed = sub.AddOpt121(MetadataCIDR, fip.Address) || changed
	if changed {
		l.AddUpdate(sub, nil)
	}

	return l, nil
}

// dhcpServerDeleteOps reverses the server entry, tolerating a subnet
// configuration that was already removed.
func (t *Translator) dhcpServerDeleteOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.dhcpServerDeleteOps")

	fip, ok := d.FirstFixedIP()
	if !ok {
		return l, nil
	}

	sub, err := t.subnet(ctx, fip.SubnetID)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		logger.Debugf(ctx, "subnet %s already gone, skip server removal", fip.SubnetID)
		return l, nil
	case err != nil:
		return nil, err
	}

	changed := false
	if sub.ServerAddress == fip.Address {
		sub.ServerAddress = ""
		changed = true
	}
	changed = sub.RemoveOpt121(MetadataCIDR, fip.Address) || changed
	if changed {
		l.AddUpdate(sub, nil)
	}

	return l, nil
}

// dhcpServerRebindOps moves the server entry when the serving address
// changed. Same-subnet moves coalesce into one subnet update.
func (t *Translator) dhcpServerRebindOps(ctx context.Context, old, new *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	oldFip, hadOld := old.FirstFixedIP()
	newFip, hasNew := new.FirstFixedIP()
	if hadOld == hasNew && oldFip == newFip {
		return l, nil
	}

	if hadOld && hasNew && oldFip.SubnetID == newFip.SubnetID {
		sub, err := t.subnet(ctx, newFip.SubnetID)
		if err != nil {
			return nil, err
		}

		changed := sub.RemoveOpt121(MetadataCIDR, oldFip.Address)
		if sub.ServerAddress != newFip.Address {
			sub.ServerAddress = newFip.Address
			changed = true
		}
		changed = sub.AddOpt121(MetadataCIDR, newFip.Address) || changed
		if changed {
			l.AddUpdate(sub, nil)
		}
		return l, nil
	}

	if hadOld {
		ops, err := t.dhcpServerDeleteOps(ctx, old)
		if err != nil {
			return nil, err
		}
		l.Append(ops)
	}
	if hasNew {
		ops, err := t.dhcpServerCreateOps(ctx, new)
		if err != nil {
			return nil, err
		}
		l.Append(ops)
	}

	return l, nil
}
