package translator

import (
	"context"
	"fmt"

	"github.com/overlaynet/overlayd/internal/meta"
	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

const (
	dhcpClientPort = 68
	dhcpServerPort = 67
)

// policy is the fully derived rule set of one secured port: the three
// chains plus every rule, in evaluation order per chain.
type policy struct {
	ingress *models.Chain
	egress  *models.Chain
	spoof   *models.Chain
	rules   []*models.Rule
}

// chains .
func (p *policy) chains() []*models.Chain {
	return []*models.Chain{p.ingress, p.egress, p.spoof}
}

// chainRules returns the rules owned by chainID, in chain order.
func (p *policy) chainRules(chainID string) []*models.Rule {
	var out []*models.Rule
	for _, r := range p.rules {
		if r.ChainID == chainID {
			out = append(out, r)
		}
	}
	return out
}

func newChain(portID string, role ChainRole) *models.Chain {
	c := models.NewChain()
	c.ID = ChainID(portID, role)
	c.Name = fmt.Sprintf("port-%s-%s", portID, role)
	return c
}

func addRule(p *policy, c *models.Chain, tag string, action models.RuleAction, jumpTo string, match models.Match) {
	r := models.NewRule()
	r.ID = RuleID(c.ID, tag)
	r.ChainID = c.ID
	r.Action = action
	r.JumpTo = jumpTo
	r.Match = match
	r.Position = len(c.RuleIDs) + 1
	c.RuleIDs = append(c.RuleIDs, r.ID)
	p.rules = append(p.rules, r)
}

// spoofPairs lists the (address, MAC) pairs a secured port may send
// from: every bound address under the port's own MAC, then every
// allowed pair, in input order, duplicates dropped.
func spoofPairs(d *models.Descriptor) []models.AddressPair {
	var pairs []models.AddressPair
	var seen = map[string]bool{}

	add := func(addr, mac string) {
		key := addr + "/" + mac
		if seen[key] {
			return
		}
		seen[key] = true
		pairs = append(pairs, models.AddressPair{Address: addr, MAC: mac})
	}

	for _, fip := range d.FixedIPs {
		add(fip.Address, d.MAC)
	}
	for _, ap := range d.AllowedPairs {
		add(ap.Address, ap.MAC)
	}

	return pairs
}

// compilePolicy derives the complete security policy of one port. Pure
// over its inputs; two calls with the same descriptor and groups yield
// identical chains and rules, identifiers included.
//
// The anti-spoof chain order is fixed: DHCP exemption first, then per
// pair one address-resolution exemption and one source address+MAC
// exemption, then an unconditional drop. The ingress chain jumps to
// the anti-spoof chain before anything else; both ingress and egress
// then pass established return flows, jump into each group's chain,
// and drop whatever non-address-resolution traffic remains.
func compilePolicy(d *models.Descriptor, groups []*models.AddrGroup) *policy {
	p := &policy{
		ingress: newChain(d.ID, RoleIngress),
		egress:  newChain(d.ID, RoleEgress),
		spoof:   newChain(d.ID, RoleAntiSpoof),
	}

	addRule(p, p.ingress, "jump-antispoof", models.ActionJump, p.spoof.ID, models.Match{})

	addRule(p, p.spoof, "dhcp", models.ActionReturn, "", models.Match{
		Proto:   "udp",
		SrcPort: dhcpClientPort,
		DstPort: dhcpServerPort,
	})
	for _, pair := range spoofPairs(d) {
		addRule(p, p.spoof, "arp:"+pair.Address, models.ActionReturn, "", models.Match{
			EtherType:        "arp",
			ARPSenderAddress: pair.Address,
		})
		addRule(p, p.spoof, fmt.Sprintf("pair:%s:%s", pair.Address, pair.MAC), models.ActionReturn, "", models.Match{
			EtherType:  "ipv4",
			SrcAddress: pair.Address,
			SrcMAC:     pair.MAC,
		})
	}
	addRule(p, p.spoof, "drop", models.ActionDrop, "", models.Match{})

	for _, c := range []*models.Chain{p.ingress, p.egress} {
		addRule(p, c, "return-flow", models.ActionAccept, "", models.Match{ReturnFlow: true})
	}
	for _, g := range groups {
		addRule(p, p.ingress, "group:"+g.ID, models.ActionJump, g.IngressChainID, models.Match{})
		addRule(p, p.egress, "group:"+g.ID, models.ActionJump, g.EgressChainID, models.Match{})
	}
	for _, c := range []*models.Chain{p.ingress, p.egress} {
		addRule(p, c, "drop", models.ActionDrop, "", models.Match{
			EtherType:       "arp",
			InvertEtherType: true,
		})
	}

	return p
}

// policyCreateOps emits the policy as creations, chains before the
// rules that reference them.
func policyCreateOps(p *policy) topology.OpList {
	var l topology.OpList
	for _, c := range p.chains() {
		l.AddCreate(c)
	}
	for _, r := range p.rules {
		l.AddCreate(r)
	}
	return l
}

// policyDeleteOps tears down whatever remains of a port's three
// chains. A chain already gone is skipped, not an error.
func (t *Translator) policyDeleteOps(ctx context.Context, portID string) (topology.OpList, error) {
	var l topology.OpList

	for _, role := range []ChainRole{RoleIngress, RoleEgress, RoleAntiSpoof} {
		chain, err := t.chain(ctx, ChainID(portID, role))
		switch {
		case terrors.IsKeyNotExistsErr(err):
			continue
		case err != nil:
			return nil, err
		}

		for _, rid := range chain.RuleIDs {
			l.AddDelete(meta.ClassRule, rid)
		}
		l.AddDeleteObj(chain)
	}

	return l, nil
}

// policyRebuildOps re-derives the full policy and reconciles it
// against the stored chains: stale rules are deleted, surviving rule
// identifiers are overwritten in place, new ones created. Rule-level
// content diffing is deliberately absent; chains are small and
// bounded.
func (t *Translator) policyRebuildOps(ctx context.Context, p *policy) (topology.OpList, error) {
	var l topology.OpList

	for _, fresh := range p.chains() {
		rules := p.chainRules(fresh.ID)

		stored, err := t.chain(ctx, fresh.ID)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			l.AddCreate(fresh)
			for _, r := range rules {
				l.AddCreate(r)
			}
			continue
		case err != nil:
			return nil, err
		}

		keep := map[string]bool{}
		for _, rid := range fresh.RuleIDs {
			keep[rid] = true
		}
		for _, rid := range stored.RuleIDs {
			if !keep[rid] {
				l.AddDelete(meta.ClassRule, rid)
			}
		}

		fresh.SetVer(stored.GetVer())
		l.AddUpdate(fresh, nil)
		for _, r := range rules {
			l.AddUpdate(r, nil)
		}
	}

	return l, nil
}
