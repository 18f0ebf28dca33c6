package models

import "github.com/overlaynet/overlayd/internal/meta"

// Network .
type Network struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Uplink bool   `json:"uplink,omitempty"`

	*meta.Ver `json:"-"`
}

// NewNetwork .
func NewNetwork() *Network {
	return &Network{Ver: meta.NewVer()}
}

// Class .
func (n *Network) Class() meta.Class {
	return meta.ClassNetwork
}

// GetID .
func (n *Network) GetID() string {
	return n.ID
}

// MetaKey .
func (n *Network) MetaKey() string {
	return meta.NetworkKey(n.ID)
}
