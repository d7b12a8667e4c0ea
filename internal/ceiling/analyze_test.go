package ceiling

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Assessments {
	return Assessments{
		interoception:   NotPresent,
		namingFeelings:  Developing,
		"d3-sa1-sg1-s1": Solid,
		"d5-sa1-sg1-s1": NeedsWork,
		"unknown-skill": Solid,
	}
}

func TestAnalyze(t *testing.T) {
	r := Default().Analyze(sampleSnapshot())

	assert.Equal(t, "v1.0.0", r.TaxonomyVersion)
	assert.Equal(t, 4, r.Assessed)
	assert.Len(t, r.Ceilings, 271)
	assert.Len(t, r.StartHere, 271)
	assert.Equal(t, 275, r.Coverage.TotalSkills)
	require.Len(t, r.Constrained, 2)
	assert.Equal(t, "d3-sa1-sg1-s1", r.Constrained[0].SkillID)
	assert.Equal(t, 2, r.Constrained[0].Gap)
	assert.Equal(t, namingFeelings, r.Constrained[1].SkillID)
}

func TestAnalyze_DoesNotMutateSnapshot(t *testing.T) {
	a := sampleSnapshot()
	Default().Analyze(a)
	assert.Equal(t, sampleSnapshot(), a)
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := Default()
	assert.Equal(t, e.Analyze(sampleSnapshot()), e.Analyze(sampleSnapshot()))
}

func TestEngine_ConcurrentQueries(t *testing.T) {
	e := Default()
	want := e.Analyze(sampleSnapshot())

	var wg sync.WaitGroup
	results := make([]Report, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Analyze(sampleSnapshot())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestDefault_Memoised(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same engine")
	}
}
