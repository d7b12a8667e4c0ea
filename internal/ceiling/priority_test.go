package ceiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHerePriority_Unassessed(t *testing.T) {
	got := StartHerePriority(Assessments{})
	require.Len(t, got, 275)

	top := got[0]
	assert.Equal(t, interoception, top.SkillID)
	assert.Equal(t, 750, top.Priority)
	assert.Equal(t, ReasonHighInfluence, top.Reason)
	assert.Equal(t, 241, top.DownstreamCount)
	assert.Equal(t, 5, top.DirectDownstream)
	assert.True(t, top.DomainUnassessed)
	assert.False(t, top.IsJunction)
	assert.False(t, top.HeavilyConstrained)

	assert.Equal(t, "d2-sa1-sg1-s1", got[1].SkillID)
	assert.Equal(t, 708, got[1].Priority)
	assert.True(t, got[1].IsJunction)
	assert.True(t, got[1].HeavilyConstrained)

	last := got[len(got)-1]
	assert.Equal(t, -1, last.Priority)
	assert.Equal(t, 5, last.Tier)
}

func TestStartHerePriority_FoundationFirst(t *testing.T) {
	got := StartHerePriority(Assessments{})
	sum := 0
	for _, p := range got[:20] {
		sum += p.Tier
	}
	if avg := float64(sum) / 20; avg > 2 {
		t.Errorf("top 20 average tier %.2f, want at most 2", avg)
	}
}

func TestStartHerePriority_ExcludesAssessed(t *testing.T) {
	got := StartHerePriority(Assessments{interoception: Developing})
	require.Len(t, got, 274)
	for _, p := range got {
		if p.SkillID == interoception {
			t.Fatal("assessed skill listed")
		}
		if p.DomainID == "d1" && p.DomainUnassessed {
			t.Errorf("%s: domain d1 has an assessment", p.SkillID)
		}
	}
	assert.Equal(t, "d2-sa1-sg1-s1", got[0].SkillID)
	assert.Equal(t, 716, got[0].Priority)
}

func TestStartHerePriority_Ordering(t *testing.T) {
	got := StartHerePriority(Assessments{"d3-sa1-sg1-s1": NeedsWork})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		switch {
		case prev.Priority > cur.Priority:
		case prev.Priority == cur.Priority && prev.Tier < cur.Tier:
		case prev.Priority == cur.Priority && prev.Tier == cur.Tier && prev.SkillID < cur.SkillID:
		default:
			t.Fatalf("entries %d and %d out of order: %+v, %+v", i-1, i, prev, cur)
		}
	}
}

func TestPriorityReason(t *testing.T) {
	tests := []struct {
		name                                 string
		downstream, tier                     int
		isPrereq, domainUnassessed, junction bool
		want                                 string
	}{
		{"many downstream", 5, 4, true, true, true, ReasonHighInfluence},
		{"low tier prerequisite", 2, 2, true, true, true, ReasonFoundation},
		{"empty domain", 0, 3, false, true, false, ReasonFirstInDomain},
		{"junction", 2, 3, true, false, true, ReasonJunction},
		{"prerequisite", 1, 4, true, false, false, ReasonPrerequisite},
		{"low tier leaf", 0, 1, false, false, false, ReasonFoundationTier},
		{"leaf", 0, 5, false, false, false, ReasonCoverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := priorityReason(tt.downstream, tt.tier, tt.isPrereq, tt.domainUnassessed, tt.junction)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
