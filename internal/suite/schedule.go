package suite

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// schedule expands the selection with everything it requires and returns
// the experiments in a deterministic topological order: requirements
// first, registration order as the tie-breaker.
func (s *Suite) schedule(names []string) ([]Experiment, error) {
	if len(names) == 0 {
		names = s.registry.Names()
	}

	selected, err := s.requireClosure(names)
	if err != nil {
		return nil, err
	}

	store := newOrderedStore[string, string]()
	dag := graph.NewWithStore(graph.StringHash, graph.Store[string, string](store), graph.Directed())

	rank := make(map[string]int, len(s.registry.order))
	for i, name := range s.registry.order {
		rank[name] = i
	}

	// Vertices in registration order keeps the sort stable.
	for _, name := range s.registry.order {
		if _, ok := selected[name]; !ok {
			continue
		}
		if err := dag.AddVertex(name); err != nil {
			return nil, errors.Wrapf(err, "unable to add experiment %s", name)
		}
	}

	for name := range selected {
		exp, _ := s.registry.Get(name)
		for _, req := range exp.Requires {
			cycle, err := store.createsCycle(req, name)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to check requirement %s -> %s", name, req)
			}
			if cycle {
				return nil, errors.Wrapf(ErrDependencyCycle, "%s -> %s", name, req)
			}
			if err := dag.AddEdge(req, name); err != nil {
				return nil, errors.Wrapf(err, "unable to add requirement %s -> %s", name, req)
			}
		}
	}

	order, err := graph.StableTopologicalSort(dag, func(a, b string) bool {
		return rank[a] < rank[b]
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to order experiments")
	}

	scheduled := make([]Experiment, 0, len(order))
	for _, name := range order {
		exp, _ := s.registry.Get(name)
		scheduled = append(scheduled, exp)
	}

	return scheduled, nil
}

// requireClosure resolves names against the registry and pulls in required
// experiments transitively.
func (s *Suite) requireClosure(names []string) (map[string]struct{}, error) {
	selected := make(map[string]struct{})

	var visit func(name string) error
	visit = func(name string) error {
		if _, ok := selected[name]; ok {
			return nil
		}

		exp, ok := s.registry.Get(name)
		if !ok {
			return errors.Wrap(ErrUnknownExperiment, name)
		}
		selected[name] = struct{}{}

		for _, req := range exp.Requires {
			if err := visit(req); err != nil {
				return errors.Wrapf(err, "required by %s", name)
			}
		}

		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return selected, nil
}
