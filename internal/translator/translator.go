// Package translator compiles declarative port descriptors into
// ordered topology operation lists. It only reads prior state; every
// write goes through the operation list handed back to the caller.
package translator

import (
	"context"

	"github.com/samber/lo"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/internal/tunnel"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// Translator turns one descriptor change into one operation list. It
// holds no cross-invocation state; allocate a fresh Reader per
// invocation so all reads within it agree.
type Translator struct {
	reader topology.Reader
	keys   tunnel.KeyAllocator
}

// New .
func New(reader topology.Reader, keys tunnel.KeyAllocator) *Translator {
	return &Translator{reader: reader, keys: keys}
}

// Create compiles the operation list materializing a new descriptor.
// Floating, VIP and uplink-attached descriptors materialize nothing.
func (t *Translator) Create(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.Create")

	if !d.NeedsTopologyPort() {
		logger.Debugf(ctx, "descriptor %s (kind %s, uplink %v) materializes no port", d.ID, d.Kind, d.Uplink)
		return l, nil
	}

	l.Append(tableCreateOps(d))

	port := models.NewPort()
	port.ID = d.ID
	port.NetworkID = d.NetworkID
	port.AdminStateUp = d.AdminStateUp
	port.MAC = d.MAC
	port.Binding = bindingOf(d)

	key, err := t.keys.NextKey(ctx, d.NetworkID)
	if err != nil {
		return nil, err
	}
	port.TunnelKey = key

	if d.IsVIF() {
		hostOps, err := t.dhcpHostOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(hostOps)

		if d.PortSecurityEnabled {
			groups, err := t.addrGroups(ctx, effectiveGroups(d))
			if err != nil {
				return nil, err
			}

			pol := compilePolicy(d, groups)
			l.Append(policyCreateOps(pol))

			memberOps, err := t.groupOps(ctx, d.ID, DiffGroups(nil, effectiveGroups(d), nil, d.Addresses()))
			if err != nil {
				return nil, err
			}
			l.Append(memberOps)

			port.IngressChainID = pol.ingress.ID
			port.EgressChainID = pol.egress.ID
		}
	}

	if d.Kind == models.KindDHCP {
		serverOps, err := t.dhcpServerCreateOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(serverOps)

		routeOps, err := t.metadataRouteCreateOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(routeOps)
	}

	// The port goes last so it never references a chain that does not
	// yet exist in the sequence.
	l.AddCreate(port)

	logger.Debugf(ctx, "descriptor %s compiled to %d operations", d.ID, len(l))

	return l, nil
}

// Update compiles the operation list reconciling an updated
// descriptor. No-ops when the descriptor never materialized a port.
func (t *Translator) Update(ctx context.Context, old, new *models.Descriptor) (topology.OpList, error) { //nolint:gocognit
	var l topology.OpList
	var logger = log.WithFunc("translator.Update")

	port, err := t.port(ctx, new.ID)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		logger.Debugf(ctx, "descriptor %s has no port, nothing to update", new.ID)
		return l, nil
	case err != nil:
		return nil, err
	}

	if new.IsVIF() {
		rebindOps, err := t.dhcpRebindOps(ctx, old, new)
		if err != nil {
			return nil, err
		}
		l.Append(rebindOps)

		switch {
		case new.PortSecurityEnabled:
			groups, err := t.addrGroups(ctx, effectiveGroups(new))
			if err != nil {
				return nil, err
			}

			rebuildOps, err := t.policyRebuildOps(ctx, compilePolicy(new, groups))
			if err != nil {
				return nil, err
			}
			l.Append(rebuildOps)

		case old.PortSecurityEnabled:
			teardownOps, err := t.policyDeleteOps(ctx, new.ID)
			if err != nil {
				return nil, err
			}
			l.Append(teardownOps)
		}

		memberOps, err := t.groupOps(ctx, new.ID,
			DiffGroups(effectiveGroups(old), effectiveGroups(new), old.Addresses(), new.Addresses()))
		if err != nil {
			return nil, err
		}
		l.Append(memberOps)
	}

	if new.Kind == models.KindDHCP {
		serverOps, err := t.dhcpServerRebindOps(ctx, old, new)
		if err != nil {
			return nil, err
		}
		l.Append(serverOps)

		routeOps, err := t.metadataRouteRebindOps(ctx, new)
		if err != nil {
			return nil, err
		}
		l.Append(routeOps)
	}

	changed := old.AdminStateUp != new.AdminStateUp
	if new.Kind == models.KindRouterInterface && !old.Binding.Equal(new.Binding) {
		port.Binding = bindingOf(new)
		changed = true
	}
	if new.IsVIF() && old.PortSecurityEnabled != new.PortSecurityEnabled {
		if new.PortSecurityEnabled {
			port.IngressChainID = ChainID(new.ID, RoleIngress)
			port.EgressChainID = ChainID(new.ID, RoleEgress)
		} else {
			port.IngressChainID = ""
			port.EgressChainID = ""
		}
		changed = true
	}
	if changed {
		port.AdminStateUp = new.AdminStateUp
		l.AddUpdate(port, nil)
	}

	l.Append(tableUpdateOps(old, new))

	return l, nil
}

// Delete reads the prior descriptor and compiles the operation list
// tearing down everything it materialized.
func (t *Translator) Delete(ctx context.Context, id string) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.Delete")

	d, err := t.descriptor(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case d.Kind == models.KindFloating || d.Kind == models.KindVIP:
		return l, nil
	case d.Uplink:
		if d.Kind == models.KindRouterInterface {
			l.AddDelete(meta.ClassPort, PeerPortID(id))
		}
		return l, nil
	}

	l.Append(tableDeleteOps(d))

	port, err := t.port(ctx, id)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		logger.Debugf(ctx, "port %s already gone", id)
	case err != nil:
		return nil, err
	default:
		l.AddDeleteObj(port)
	}

	if d.Kind == models.KindRouterInterface || d.Kind == models.KindGateway {
		peerID := PeerPortID(id)
		l.AddDelete(meta.ClassPort, peerID)

		snatOps, err := t.snatDeleteOps(ctx, peerID)
		if err != nil {
			return nil, err
		}
		l.Append(snatOps)
	}

	if d.IsVIF() {
		hostOps, err := t.dhcpHostRemoveOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(hostOps)

		chainOps, err := t.policyDeleteOps(ctx, id)
		if err != nil {
			return nil, err
		}
		l.Append(chainOps)

		memberOps, err := t.groupOps(ctx, id, DiffGroups(lo.Uniq(d.SecurityGroups), nil, d.Addresses(), nil))
		if err != nil {
			return nil, err
		}
		l.Append(memberOps)

		arpOps, err := t.floatingArpDeleteOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(arpOps)
	}

	if d.Kind == models.KindDHCP {
		serverOps, err := t.dhcpServerDeleteOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(serverOps)

		routeOps, err := t.metadataRouteDeleteOps(ctx, d)
		if err != nil {
			return nil, err
		}
		l.Append(routeOps)
	}

	return l, nil
}

// snatDeleteOps deletes the SNAT rule quadruple attached to a router
// port. The four rules exist all-or-none; a partially present group
// indicates prior state corruption and is logged, then skipped.
func (t *Translator) snatDeleteOps(ctx context.Context, routerPortID string) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.snatDeleteOps")

	ids := SNATRuleIDs(routerPortID)

	present := 0
	for _, rid := range ids {
		ok, err := t.reader.Exists(ctx, meta.ClassRule, rid)
		if err != nil {
			return nil, err
		}
		if ok {
			present++
		}
	}

	switch {
	case present == 0:
		return l, nil
	case present < len(ids):
		logger.Warnf(ctx, "snat rules of router port %s partially present (%d of %d), skip", routerPortID, present, len(ids))
		return l, nil
	}

	for _, rid := range ids {
		l.AddDelete(meta.ClassRule, rid)
	}

	return l, nil
}

// floatingArpDeleteOps removes the address-resolution entries of the
// port's floating addresses, resolved by walking floating address to
// router to gateway port. Any link already gone ends the walk for that
// address.
func (t *Translator) floatingArpDeleteOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	for _, fid := range d.FloatingIPIDs {
		fip, err := t.floatingIP(ctx, fid)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			continue
		case err != nil:
			return nil, err
		}
		if len(fip.RouterID) < 1 {
			continue
		}

		router, err := t.router(ctx, fip.RouterID)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			continue
		case err != nil:
			return nil, err
		}
		if len(router.GatewayPortID) < 1 {
			continue
		}

		gwPort, err := t.port(ctx, router.GatewayPortID)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			continue
		case err != nil:
			return nil, err
		}

		l.AddRawDelete(meta.ArpEntryKey(gwPort.NetworkID, fip.Address, gwPort.MAC))
	}

	return l, nil
}

func bindingOf(d *models.Descriptor) *models.Binding {
	if d.Binding == nil || len(d.Binding.HostID) < 1 || len(d.Binding.InterfaceName) < 1 {
		return nil
	}
	return &models.Binding{HostID: d.Binding.HostID, InterfaceName: d.Binding.InterfaceName}
}
