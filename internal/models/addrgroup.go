package models

import "github.com/overlaynet/overlayd/internal/meta"

// Member associates an address with the ports bearing it.
type Member struct {
	Address string   `json:"address"`
	PortIDs []string `json:"port_ids"`
}

// AddrGroup is a security group's membership table plus its chain
// references. The table never references a port that is not currently
// a member.
type AddrGroup struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	IngressChainID string   `json:"ingress_chain_id"`
	EgressChainID  string   `json:"egress_chain_id"`
	Members        []Member `json:"members,omitempty"`

	*meta.Ver `json:"-"`
}

// NewAddrGroup .
func NewAddrGroup() *AddrGroup {
	return &AddrGroup{Ver: meta.NewVer()}
}

// Class .
func (g *AddrGroup) Class() meta.Class {
	return meta.ClassAddrGroup
}

// GetID .
func (g *AddrGroup) GetID() string {
	return g.ID
}

// MetaKey .
func (g *AddrGroup) MetaKey() string {
	return meta.AddrGroupKey(g.ID)
}

// AddMember registers portID under addr; reports whether anything
// changed so callers can skip redundant writes.
func (g *AddrGroup) AddMember(addr, portID string) bool {
	for i := range g.Members {
		if g.Members[i].Address != addr {
			continue
		}
		for _, pid := range g.Members[i].PortIDs {
			if pid == portID {
				return false
			}
		}
		g.Members[i].PortIDs = append(g.Members[i].PortIDs, portID)
		return true
	}

	g.Members = append(g.Members, Member{Address: addr, PortIDs: []string{portID}})
	return true
}

// RemoveMember unregisters portID from addr, dropping the address
// entry entirely once no port bears it.
func (g *AddrGroup) RemoveMember(addr, portID string) bool {
	for i := range g.Members {
		if g.Members[i].Address != addr {
			continue
		}
		for j, pid := range g.Members[i].PortIDs {
			if pid != portID {
				continue
			}
			g.Members[i].PortIDs = append(g.Members[i].PortIDs[:j], g.Members[i].PortIDs[j+1:]...)
			if len(g.Members[i].PortIDs) < 1 {
				g.Members = append(g.Members[:i], g.Members[i+1:]...)
			}
			return true
		}
		return false
	}
	return false
}

// HasMember .
func (g *AddrGroup) HasMember(addr, portID string) bool {
	for i := range g.Members {
		if g.Members[i].Address != addr {
			continue
		}
		for _, pid := range g.Members[i].PortIDs {
			if pid == portID {
				return true
			}
		}
	}
	return false
}
