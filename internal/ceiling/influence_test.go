package ceiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interoception = "d1-sa1-sg1-s1"

func TestSkillInfluence_Unassessed(t *testing.T) {
	inf := SkillInfluence(Assessments{})
	if len(inf) != 201 {
		t.Errorf("got %d entries, want 201", len(inf))
	}

	got, ok := inf[interoception]
	require.True(t, ok)
	want := Influence{
		Score:                 4.23,
		DirectDownstream:      5,
		TransitiveDownstream:  241,
		ConstrainedDownstream: 0,
		AffectedDomains:       []string{"d1", "d2", "d7"},
	}
	assert.Equal(t, want, got)
}

func TestSkillInfluence_SolidHasNoHeadroom(t *testing.T) {
	got := SkillInfluence(Assessments{interoception: Solid})[interoception]
	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.AffectedDomains)
	assert.Equal(t, 5, got.DirectDownstream)
}

func TestSkillInfluence_ConstrainedDownstream(t *testing.T) {
	a := Assessments{interoception: NotPresent, namingFeelings: Developing}
	got := SkillInfluence(a)[interoception]
	assert.Equal(t, 1, got.ConstrainedDownstream)
}

func TestSkillInfluence_LeavesExcluded(t *testing.T) {
	inf := SkillInfluence(Assessments{})
	for id := range inf {
		if len(Default().Dependents(id)) == 0 {
			t.Errorf("%s has no dependents but has an influence entry", id)
		}
	}
}

func TestDependents(t *testing.T) {
	want := []string{"d1-sa1-sg1-s2", "d2-sa1-sg1-s1", "d2-sa1-sg2-s1", "d2-sa2-sg1-s1", "d7-sa2-sg1-s1"}
	got := Default().Dependents(interoception)
	assert.Equal(t, want, got)

	got[0] = "mutated"
	assert.Equal(t, want, Default().Dependents(interoception))
}

func TestDownstreamCount(t *testing.T) {
	e := Default()
	assert.Equal(t, 241, e.DownstreamCount(interoception))
	assert.Equal(t, 0, e.DownstreamCount("nope"))
	for _, s := range e.Taxonomy().Skills() {
		if direct := len(e.Dependents(s.ID)); e.DownstreamCount(s.ID) < direct {
			t.Errorf("%s: transitive %d < direct %d", s.ID, e.DownstreamCount(s.ID), direct)
		}
	}
}
