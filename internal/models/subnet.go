package models

import "github.com/overlaynet/overlayd/internal/meta"

// Host is a DHCP MAC-to-address binding.
type Host struct {
	MAC     string `json:"mac"`
	Address string `json:"address"`
}

// Opt121Route is a classless-static-route (option 121) entry.
type Opt121Route struct {
	Destination string `json:"destination"`
	NextHop     string `json:"next_hop"`
}

// Subnet is the per-subnet DHCP configuration.
type Subnet struct {
	ID        string `json:"id"`
	NetworkID string `json:"network_id"`
	CIDR      string `json:"cidr"`
	GatewayIP string `json:"gateway_ip,omitempty"`
	Enabled   bool   `json:"enabled"`

	Hosts         []Host        `json:"hosts,omitempty"`
	ServerAddress string        `json:"server_address,omitempty"`
	Opt121Routes  []Opt121Route `json:"opt121_routes,omitempty"`

	// RouterIfPortID refers to the router-interface port attached to
	// this subnet; empty means the subnet has no gateway.
	RouterIfPortID string `json:"router_if_port_id,omitempty"`

	*meta.Ver `json:"-"`
}

// NewSubnet .
func NewSubnet() *Subnet {
	return &Subnet{Ver: meta.NewVer()}
}

// Class .
func (s *Subnet) Class() meta.Class {
	return meta.ClassSubnet
}

// GetID .
func (s *Subnet) GetID() string {
	return s.ID
}

// MetaKey .
func (s *Subnet) MetaKey() string {
	return meta.SubnetKey(s.ID)
}

// AddHost .
func (s *Subnet) AddHost(mac, addr string) bool {
	for _, h := range s.Hosts {
		if h.MAC == mac && h.Address == addr {
			return false
		}
	}
	s.Hosts = append(s.Hosts, Host{MAC: mac, Address: addr})
	return true
}

// RemoveHost .
func (s *Subnet) RemoveHost(mac, addr string) bool {
	for i, h := range s.Hosts {
		if h.MAC == mac && h.Address == addr {
			s.Hosts = append(s.Hosts[:i], s.Hosts[i+1:]...)
			return true
		}
	}
	return false
}

// AddOpt121 .
func (s *Subnet) AddOpt121(dst, nextHop string) bool {
	for _, r := range s.Opt121Routes {
		if r.Destination == dst && r.NextHop == nextHop {
			return false
		}
	}
	s.Opt121Routes = append(s.Opt121Routes, Opt121Route{Destination: dst, NextHop: nextHop})
	return true
}

// RemoveOpt121 .
func (s *Subnet) RemoveOpt121(dst, nextHop string) bool {
	for i, r := range s.Opt121Routes {
		if r.Destination == dst && r.NextHop == nextHop {
			s.Opt121Routes = append(s.Opt121Routes[:i], s.Opt121Routes[i+1:]...)
			return true
		}
	}
	return false
}
