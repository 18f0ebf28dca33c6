package models

import "github.com/overlaynet/overlayd/internal/meta"

// Port is the low-level topology port. Its identifier always equals
// the originating descriptor's.
type Port struct {
	ID           string   `json:"id"`
	NetworkID    string   `json:"network_id,omitempty"`
	RouterID     string   `json:"router_id,omitempty"`
	AdminStateUp bool     `json:"admin_state_up"`
	MAC          string   `json:"mac,omitempty"`
	TunnelKey    uint32   `json:"tunnel_key,omitempty"`
	PeerID       string   `json:"peer_id,omitempty"`
	Binding      *Binding `json:"binding,omitempty"`

	// IngressChainID/EgressChainID are set iff port security applies.
	IngressChainID string `json:"ingress_chain_id,omitempty"`
	EgressChainID  string `json:"egress_chain_id,omitempty"`

	// RouteIDs indexes the routes whose next hop is this port.
	RouteIDs []string `json:"route_ids,omitempty"`

	*meta.Ver `json:"-"`
}

// NewPort .
func NewPort() *Port {
	return &Port{Ver: meta.NewVer()}
}

// Class .
func (p *Port) Class() meta.Class {
	return meta.ClassPort
}

// GetID .
func (p *Port) GetID() string {
	return p.ID
}

// MetaKey .
func (p *Port) MetaKey() string {
	return meta.PortKey(p.ID)
}

// AddRoute .
func (p *Port) AddRoute(routeID string) bool {
	for _, id := range p.RouteIDs {
		if id == routeID {
			return false
		}
	}
	p.RouteIDs = append(p.RouteIDs, routeID)
	return true
}

// RemoveRoute .
func (p *Port) RemoveRoute(routeID string) bool {
	for i, id := range p.RouteIDs {
		if id == routeID {
			p.RouteIDs = append(p.RouteIDs[:i], p.RouteIDs[i+1:]...)
			return true
		}
	}
	return false
}
