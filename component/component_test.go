package component

import (
	"testing"

	"github.com/lixenwraith/sandfall/core"
)

func TestClusterRemoveCompact(t *testing.T) {
	c := ClusterComponent{Members: []MemberEntry{{Entity: 1}, {Entity: 2}, {Entity: 3}}}

	if !c.Remove(2) {
		t.Fatal("Expected member 2 removed")
	}
	if c.Remove(2) {
		t.Error("Expected second remove to report absent")
	}
	if c.Live() != 2 {
		t.Errorf("Expected 2 live members, got %d", c.Live())
	}
	if len(c.Members) != 3 {
		t.Errorf("Expected tombstone kept until compaction, got %d entries", len(c.Members))
	}

	c.Compact()
	if len(c.Members) != 2 || c.Dirty {
		t.Errorf("Expected 2 compacted members, got %d (dirty=%v)", len(c.Members), c.Dirty)
	}
	if c.Members[0].Entity != 1 || c.Members[1].Entity != 3 {
		t.Errorf("Expected order preserved, got %+v", c.Members)
	}
	for _, m := range c.Members {
		if m.Entity == core.NoEntity {
			t.Error("Expected no tombstones after compaction")
		}
	}
}

func TestParryActive(t *testing.T) {
	p := ParryComponent{}
	if p.Active() {
		t.Error("Expected idle parry")
	}
	p.Remaining = 0.05
	if !p.Active() {
		t.Error("Expected active parry")
	}
}
