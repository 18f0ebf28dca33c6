package translator

import (
	"context"

	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/netx"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// MetadataCIDR is the well-known metadata service destination.
const MetadataCIDR = "169.254.169.254/32"

// gateway is the derived next-hop of a DHCP-serving port: the
// router-interface port of its first bound address's subnet.
type gateway struct {
	portID    string
	nextHop   string
	srcSubnet string
}

// gatewayOf derives the gateway from the first bound address. Returns
// nil when the port has no bound address, the subnet configuration is
// gone, or the subnet has no router-interface port attached.
func (t *Translator) gatewayOf(ctx context.Context, d *models.Descriptor) (*gateway, error) {
	fip, ok := d.FirstFixedIP()
	if !ok {
		return nil, nil
	}

	sub, err := t.subnet(ctx, fip.SubnetID)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		return nil, nil
	case err != nil:
		return nil, err
	}

	if len(sub.RouterIfPortID) < 1 {
		return nil, nil
	}
	if !netx.InSubnet(fip.Address, sub.CIDR) {
		log.WithFunc("translator.gatewayOf").Warnf(ctx, "address %s outside subnet %s, skip gateway", fip.Address, sub.CIDR)
		return nil, nil
	}

	return &gateway{
		portID:    sub.RouterIfPortID,
		nextHop:   fip.Address,
		srcSubnet: sub.CIDR,
	}, nil
}

// metadataRouteCreateOps installs the metadata route on the gateway
// port when a gateway exists; no gateway means no route.
func (t *Translator) metadataRouteCreateOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	gw, err := t.gatewayOf(ctx, d)
	if err != nil || gw == nil {
		return l, err
	}

	gwPort, err := t.port(ctx, gw.portID)
	if err != nil {
		return nil, err
	}

	route := models.NewRoute()
	route.ID = MetadataRouteID(d.ID)
	route.NextHopPortID = gw.portID
	route.SrcSubnet = gw.srcSubnet
	route.DstSubnet = MetadataCIDR
	route.NextHop = gw.nextHop

	l.AddCreate(route)
	if gwPort.AddRoute(route.ID) {
		l.AddUpdate(gwPort, nil)
	}

	return l, nil
}

// metadataRouteDeleteOps deletes the port's metadata route by its
// derived identifier and detaches it from whichever port carries it,
// so a stale next hop cannot defeat cleanup. A route or carrier port
// already gone is already-absent, not an error.
func (t *Translator) metadataRouteDeleteOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.metadataRouteDeleteOps")

	route, err := t.route(ctx, MetadataRouteID(d.ID))
	switch {
	case terrors.IsKeyNotExistsErr(err):
		return l, nil
	case err != nil:
		return nil, err
	}

	l.AddDeleteObj(route)

	gwPort, err := t.port(ctx, route.NextHopPortID)
	switch {
	case terrors.IsKeyNotExistsErr(err):
		logger.Debugf(ctx, "gateway port %s already gone, skip route detach", route.NextHopPortID)
		return l, nil
	case err != nil:
		return nil, err
	}
	if gwPort.RemoveRoute(route.ID) {
		l.AddUpdate(gwPort, nil)
	}

	return l, nil
}

// metadataRouteRebindOps re-derives the metadata route after a
// descriptor update. The route keeps its identifier, so an address
// move is an in-place update, plus a re-attachment when the gateway
// port changed.
func (t *Translator) metadataRouteRebindOps(ctx context.Context, d *models.Descriptor) (topology.OpList, error) {
	var l topology.OpList

	gw, err := t.gatewayOf(ctx, d)
	if err != nil {
		return nil, err
	}

	route, err := t.route(ctx, MetadataRouteID(d.ID))
	switch {
	case terrors.IsKeyNotExistsErr(err):
		if gw == nil {
			return l, nil
		}
		return t.metadataRouteCreateOps(ctx, d)
	case err != nil:
		return nil, err
	}

	if gw == nil {
		return t.metadataRouteDeleteOps(ctx, d)
	}

	if route.NextHop == gw.nextHop && route.SrcSubnet == gw.srcSubnet && route.NextHopPortID == gw.portID {
		return l, nil
	}

	prevPortID := route.NextHopPortID
	route.NextHopPortID = gw.portID
	route.SrcSubnet = gw.srcSubnet
	route.NextHop = gw.nextHop
	l.AddUpdate(route, nil)

	if prevPortID != gw.portID {
		prev, err := t.port(ctx, prevPortID)
		switch {
		case terrors.IsKeyNotExistsErr(err):
		case err != nil:
			return nil, err
		default:
			if prev.RemoveRoute(route.ID) {
				l.AddUpdate(prev, nil)
			}
		}

		gwPort, err := t.port(ctx, gw.portID)
		if err != nil {
			return nil, err
		}
		if gwPort.AddRoute(route.ID) {
			l.AddUpdate(gwPort, nil)
		}
	}

	return l, nil
}
