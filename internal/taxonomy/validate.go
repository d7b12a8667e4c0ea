package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// validateSource performs all structural checks on a decoded dataset.
// Returns a *ValidationError describing every problem found, or nil.
func validateSource(src source) error {
	var errs []string

	domainSet := make(map[string]bool, len(src.domains))
	for _, d := range src.domains {
		if domainSet[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate domain ID: %q", d.ID))
		}
		domainSet[d.ID] = true
	}

	subAreaDomain := make(map[string]string, len(src.subAreas))
	groupSet := make(map[string]bool)
	for _, sa := range src.subAreas {
		if _, dup := subAreaDomain[sa.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate sub-area ID: %q", sa.ID))
		}
		subAreaDomain[sa.ID] = sa.DomainID
		for _, sg := range sa.SubGroups {
			if groupSet[sg.ID] {
				errs = append(errs, fmt.Sprintf("duplicate sub-group ID: %q", sg.ID))
			}
			groupSet[sg.ID] = true
		}
	}

	// Structural edges are cross-domain; same-domain progression is implicit.
	for _, sa := range src.subAreas {
		for _, pre := range sa.Prerequisites {
			preDomain, ok := subAreaDomain[pre]
			switch {
			case !ok:
				errs = append(errs, fmt.Sprintf("sub-area %q references nonexistent prerequisite sub-area %q", sa.ID, pre))
			case preDomain == sa.DomainID:
				errs = append(errs, fmt.Sprintf("sub-area %q lists same-domain prerequisite sub-area %q", sa.ID, pre))
			}
		}
	}

	idSet := make(map[string]bool, len(src.skills))
	for _, s := range src.skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range src.skills {
		seen := make(map[string]bool, len(s.Prerequisites))
		for _, prereqID := range s.Prerequisites {
			switch {
			case prereqID == s.ID:
				errs = append(errs, fmt.Sprintf("skill %q lists itself as a prerequisite", s.ID))
			case !idSet[prereqID]:
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			case seen[prereqID]:
				errs = append(errs, fmt.Sprintf("skill %q lists prerequisite %q more than once", s.ID, prereqID))
			}
			seen[prereqID] = true
		}
	}

	pairs := make([][2]string, 0, len(src.relations))
	for pair := range src.relations {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	for _, pair := range pairs {
		for _, id := range pair {
			if !domainSet[id] {
				errs = append(errs, fmt.Sprintf("relation %s->%s references nonexistent domain %q", pair[0], pair[1], id))
			}
		}
		if pair[0] == pair[1] {
			errs = append(errs, fmt.Sprintf("relation %s->%s: same-domain edges are always requires", pair[0], pair[1]))
		}
	}

	edges := make(map[edgeKey]bool)
	for _, s := range src.skills {
		for _, prereqID := range s.Prerequisites {
			edges[edgeKey{s.ID, prereqID}] = true
		}
	}
	overridden := make(map[edgeKey]bool, len(src.overrides))
	for _, o := range src.overrides {
		k := edgeKey{o.Dependent, o.Prerequisite}
		if !edges[k] {
			errs = append(errs, fmt.Sprintf("override %s<-%s does not match a prerequisite edge", o.Dependent, o.Prerequisite))
		}
		if overridden[k] {
			errs = append(errs, fmt.Sprintf("duplicate override %s<-%s", o.Dependent, o.Prerequisite))
		}
		overridden[k] = true
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(src.skills))
	adjList := make(map[string][]string)
	for _, s := range src.skills {
		inDegree[s.ID] = len(s.Prerequisites)
		for _, prereqID := range s.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range src.skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(src.skills) {
		var cycleNodes []string
		for _, s := range src.skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, s := range src.skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
