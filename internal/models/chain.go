package models

import "github.com/overlaynet/overlayd/internal/meta"

// Chain is a named, ordered rule container. RuleIDs order is the
// evaluation order.
type Chain struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	RuleIDs []string `json:"rule_ids,omitempty"`

	*meta.Ver `json:"-"`
}

// NewChain .
func NewChain() *Chain {
	return &Chain{Ver: meta.NewVer()}
}

// Class .
func (c *Chain) Class() meta.Class {
	return meta.ClassChain
}

// GetID .
func (c *Chain) GetID() string {
	return c.ID
}

// MetaKey .
func (c *Chain) MetaKey() string {
	return meta.ChainKey(c.ID)
}

// RuleAction .
type RuleAction string

const (
	// ActionAccept .
	ActionAccept RuleAction = "accept"
	// ActionDrop .
	ActionDrop RuleAction = "drop"
	// ActionReturn .
	ActionReturn RuleAction = "return"
	// ActionJump .
	ActionJump RuleAction = "jump"
)

// Match is a rule's condition. Zero value matches everything.
type Match struct {
	EtherType       string `json:"ether_type,omitempty"` // "arp" | "ipv4"
	InvertEtherType bool   `json:"invert_ether_type,omitempty"`
	SrcAddress      string `json:"src_address,omitempty"`
	SrcMAC          string `json:"src_mac,omitempty"`
	Proto           string `json:"proto,omitempty"`
	SrcPort         int    `json:"src_port,omitempty"`
	DstPort         int    `json:"dst_port,omitempty"`

	// ARPSenderAddress matches address-resolution traffic whose source
	// protocol address equals the value.
	ARPSenderAddress string `json:"arp_sender_address,omitempty"`

	// ReturnFlow matches packets of already-established connections.
	ReturnFlow bool `json:"return_flow,omitempty"`
}

// Rule is a match condition plus an action; its evaluation position is
// given by the owning chain's RuleIDs order.
type Rule struct {
	ID       string     `json:"id"`
	ChainID  string     `json:"chain_id"`
	Position int        `json:"position"`
	Action   RuleAction `json:"action"`
	JumpTo   string     `json:"jump_to,omitempty"`
	Match    Match      `json:"match"`

	*meta.Ver `json:"-"`
}

// NewRule .
func NewRule() *Rule {
	return &Rule{Ver: meta.NewVer()}
}

// Class .
func (r *Rule) Class() meta.Class {
	return meta.ClassRule
}

// GetID .
func (r *Rule) GetID() string {
	return r.ID
}

// MetaKey .
func (r *Rule) MetaKey() string {
	return meta.RuleKey(r.ID)
}
