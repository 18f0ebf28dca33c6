package models

import "github.com/overlaynet/overlayd/internal/meta"

// Router .
type Router struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	InboundChainID string `json:"inbound_chain_id,omitempty"`
	OutboundChain  string `json:"outbound_chain_id,omitempty"`
	GatewayPortID  string `json:"gateway_port_id,omitempty"`

	*meta.Ver `json:"-"`
}

// NewRouter .
func NewRouter() *Router {
	return &Router{Ver: meta.NewVer()}
}

// Class .
func (r *Router) Class() meta.Class {
	return meta.ClassRouter
}

// GetID .
func (r *Router) GetID() string {
	return r.ID
}

// MetaKey .
func (r *Router) MetaKey() string {
	return meta.RouterKey(r.ID)
}

// Route points traffic for DstSubnet at NextHop via NextHopPortID.
type Route struct {
	ID            string `json:"id"`
	NextHopPortID string `json:"next_hop_port_id"`
	SrcSubnet     string `json:"src_subnet,omitempty"`
	DstSubnet     string `json:"dst_subnet"`
	NextHop       string `json:"next_hop,omitempty"`

	*meta.Ver `json:"-"`
}

// NewRoute .
func NewRoute() *Route {
	return &Route{Ver: meta.NewVer()}
}

// Class .
func (r *Route) Class() meta.Class {
	return meta.ClassRoute
}

// GetID .
func (r *Route) GetID() string {
	return r.ID
}

// MetaKey .
func (r *Route) MetaKey() string {
	return meta.RouteKey(r.ID)
}

// FloatingIP associates a floating address with a fixed port through a
// router.
type FloatingIP struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	PortID   string `json:"port_id,omitempty"`
	RouterID string `json:"router_id,omitempty"`

	*meta.Ver `json:"-"`
}

// NewFloatingIP .
func NewFloatingIP() *FloatingIP {
	return &FloatingIP{Ver: meta.NewVer()}
}

// Class .
func (f *FloatingIP) Class() meta.Class {
	return meta.ClassFloatingIP
}

// GetID .
func (f *FloatingIP) GetID() string {
	return f.ID
}

// MetaKey .
func (f *FloatingIP) MetaKey() string {
	return meta.FloatingIPKey(f.ID)
}
