package translator

import (
	"context"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"

	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/internal/topology"
	"github.com/overlaynet/overlayd/pkg/log"
	"github.com/overlaynet/overlayd/pkg/terrors"
)

// GroupDiff captures how a port's security-group membership changes
// between two descriptor states.
type GroupDiff struct {
	Added   []string
	Removed []string
	Kept    []string

	OldAddrs     []string
	NewAddrs     []string
	AddedAddrs   []string
	RemovedAddrs []string
}

func sortedSlice(s mapset.Set[string]) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}

// DiffGroups computes added, removed and kept groups plus added and
// removed addresses. Kept groups are later touched only for the
// addresses that changed, so concurrent updates from other ports
// sharing a group do not conflict needlessly.
func DiffGroups(oldGroups, newGroups, oldAddrs, newAddrs []string) GroupDiff {
	og := mapset.NewSet(oldGroups...)
	ng := mapset.NewSet(newGroups...)
	oa := mapset.NewSet(oldAddrs...)
	na := mapset.NewSet(newAddrs...)

	return GroupDiff{
		Added:   sortedSlice(ng.Difference(og)),
		Removed: sortedSlice(og.Difference(ng)),
		Kept:    sortedSlice(ng.Intersect(og)),

		OldAddrs:     lo.Uniq(oldAddrs),
		NewAddrs:     lo.Uniq(newAddrs),
		AddedAddrs:   sortedSlice(na.Difference(oa)),
		RemovedAddrs: sortedSlice(oa.Difference(na)),
	}
}

// effectiveGroups returns the groups a descriptor is effectively a
// member of; with port security off, group policy does not apply.
func effectiveGroups(d *models.Descriptor) []string {
	if d == nil || !d.PortSecurityEnabled {
		return nil
	}
	return lo.Uniq(d.SecurityGroups)
}

// groupOps updates the membership tables of every affected group. A
// removed group that no longer exists is treated as already cleaned
// up; added and kept groups must exist.
func (t *Translator) groupOps(ctx context.Context, portID string, diff GroupDiff) (topology.OpList, error) {
	var l topology.OpList
	var logger = log.WithFunc("translator.groupOps")

	for _, gid := range diff.Removed {
		group, err := t.addrGroup(ctx, gid)
		switch {
		case terrors.IsKeyNotExistsErr(err):
			logger.Debugf(ctx, "group %s already gone, skip membership removal", gid)
			continue
		case err != nil:
			return nil, err
		}

		changed := false
		for _, addr := range diff.OldAddrs {
			changed = group.RemoveMember(addr, portID) || changed
		}
		if changed {
			l.AddUpdate(group, nil)
		}
	}

	for _, gid := range diff.Added {
		group, err := t.addrGroup(ctx, gid)
		if err != nil {
			return nil, err
		}

		changed := false
		for _, addr := range diff.NewAddrs {
			changed = group.AddMember(addr, portID) || changed
		}
		if changed {
			l.AddUpdate(group, nil)
		}
	}

	for _, gid := range diff.Kept {
		group, err := t.addrGroup(ctx, gid)
		if err != nil {
			return nil, err
		}

		changed := false
		for _, addr := range diff.AddedAddrs {
			changed = group.AddMember(addr, portID) || changed
		}
		for _, addr := range diff.RemovedAddrs {
			changed = group.RemoveMember(addr, portID) || changed
		}
		if changed {
			l.AddUpdate(group, nil)
		}
	}

	return l, nil
}
