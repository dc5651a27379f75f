package priceindicator

// State holds the visual handles of one axis' indicator.
type State struct {
	Group Group
	Label Label
	Box   Shape
	Line  Shape
}

// StateStore keeps at most one State per axis, keyed by axis identity.
// Entries are never evicted. It is not safe for concurrent use; hosts
// serialize lifecycle events.
type StateStore struct {
	states map[Axis]*State
}

func NewStateStore() *StateStore {
	return &StateStore{
		states: make(map[Axis]*State),
	}
}

func (s *StateStore) Get(axis Axis) (*State, bool) {
	state, ok := s.states[axis]
	return state, ok
}

func (s *StateStore) Put(axis Axis, state *State) {
	s.states[axis] = state
}

func (s *StateStore) Len() int {
	return len(s.states)
}
