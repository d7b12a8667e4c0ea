package ceiling

import (
	"sort"

	"github.com/abhisek/devmap/internal/taxonomy"
)

// reach is the reverse prerequisite index plus memoised transitive
// downstream counts. Built once per engine and never mutated afterwards.
type reach struct {
	dependents map[string][]string
	closure    map[string]int
}

func buildReach(skills []taxonomy.Skill) *reach {
	r := &reach{
		dependents: make(map[string][]string),
		closure:    make(map[string]int),
	}
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			r.dependents[prereqID] = append(r.dependents[prereqID], s.ID)
		}
	}
	for id := range r.dependents {
		sort.Strings(r.dependents[id])
	}
	for id := range r.dependents {
		r.closure[id] = r.walk(id)
	}
	return r
}

// walk counts every skill reachable downstream of id. The work-list carries
// its own visited set so a malformed cyclic graph still terminates.
func (r *reach) walk(id string) int {
	visited := map[string]bool{id: true}
	stack := []string{id}
	count := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dep := range r.dependents[cur] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			count++
			stack = append(stack, dep)
		}
	}
	return count
}

// direct returns the direct dependents of id. Callers must not modify it.
func (r *reach) direct(id string) []string {
	return r.dependents[id]
}

// transitive returns the number of skills downstream of id.
func (r *reach) transitive(id string) int {
	return r.closure[id]
}
