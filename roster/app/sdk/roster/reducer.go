package roster

import "slices"

// Reducer computes the next state from the current state and an action.
type Reducer struct {
	rand Random
}

// NewReducer constructs a reducer that draws random increments from rnd.
func NewReducer(rnd Random) Reducer {
	return Reducer{
		rand: rnd,
	}
}

// Reduce returns the state that results from applying action to state. The
// input state is never modified. Unknown kinds and ids that cannot be found
// return state unchanged.
func (r Reducer) Reduce(state State, action Action) State {
	switch action.Kind {
	case KindAddUser:
		state.Users = appendClone(state.Users, action.User)
		return state

	case KindRemoveUser:
		from, to, ok := move(state.Users, state.RemovedUsers, action.ID)
		if !ok {
			return state
		}
		state.Users, state.RemovedUsers = from, to
		return state

	case KindRestoreUser:
		from, to, ok := move(state.RemovedUsers, state.Users, action.ID)
		if !ok {
			return state
		}
		state.RemovedUsers, state.Users = from, to
		return state

	case KindSetFilteredUsers:
		state.FilteredUsers = slices.Clone(action.Users)
		return state

	case KindIncrementRandom:
		state.Count += RandomBetween(r.rand, 1, 10)
		return state

	case KindIncrementNearestOdd:
		state.Count = NextOdd(state.Count)
		return state

	case KindDecrementCount:
		state.Count = max(0, state.Count-action.Amount)
		return state

	case KindResetCount:
		state.Count = 0
		return state

	case KindSetSearchText:
		state.SearchText = action.Text
		return state
	}

	return state
}

// =============================================================================

// move takes the first user with id out of from and appends it to to. Every
// entry in from carrying that id is dropped, so colliding ids leave together.
func move(from []User, to []User, id string) ([]User, []User, bool) {
	idx := slices.IndexFunc(from, func(u User) bool {
		return u.ID == id
	})
	if idx == -1 {
		return from, to, false
	}

	usr := from[idx]

	rest := make([]User, 0, len(from)-1)
	for _, u := range from {
		if u.ID != id {
			rest = append(rest, u)
		}
	}

	return rest, appendClone(to, usr), true
}

// appendClone appends to a copy of users so the backing array of a prior
// state is never shared with the next one.
func appendClone(users []User, usr User) []User {
	out := make([]User, len(users), len(users)+1)
	copy(out, users)

	return append(out, usr)
}
