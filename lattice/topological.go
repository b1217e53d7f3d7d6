package lattice

// Visitation states of the depth-first walk.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// sorter holds the state of one depth-first topological sort.
type sorter struct {
	cover *Cover
	state []int
	order []int
}

// LinearExtension returns every concept in an order compatible with the
// lattice: each concept appears before all of its sub-concepts, so the top
// comes first and the bottom last.
//
// It runs a depth-first search along Children edges from every concept
// without parents (then from any concept left unvisited) and reverses the
// post-order.
// Errors: ErrCoverNil; ErrCycleDetected if the relation is not acyclic.
// Complexity: O(n + edges) time, O(n) memory.
func LinearExtension(cover *Cover) ([]int, error) {
	if cover == nil {
		return nil, ErrCoverNil
	}
	n := cover.Len()
	s := &sorter{
		cover: cover,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for pass := 0; pass < 2; pass++ {
		for c := 0; c < n; c++ {
			if s.state[c] != white || (pass == 0 && len(cover.Parents[c]) > 0) {
				continue
			}
			if err := s.visit(c); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *sorter) visit(c int) error {
	switch s.state[c] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	s.state[c] = gray
	for _, child := range s.cover.Children[c] {
		if err := s.visit(child); err != nil {
			return err
		}
	}
	s.state[c] = black
	s.order = append(s.order, c)

	return nil
}
