package roster

// Kind identifies the transition an Action requests.
type Kind int

// Set of action kinds understood by the Reducer.
const (
	KindUnknown Kind = iota
	KindAddUser
	KindRemoveUser
	KindRestoreUser
	KindSetFilteredUsers
	KindIncrementRandom
	KindIncrementNearestOdd
	KindDecrementCount
	KindResetCount
	KindSetSearchText
)

var kindNames = map[Kind]string{
	KindAddUser:             "ADD_USER",
	KindRemoveUser:          "REMOVE_USER",
	KindRestoreUser:         "RESTORE_USER",
	KindSetFilteredUsers:    "SET_FILTERED_USERS",
	KindIncrementRandom:     "INCREMENT_RANDOM",
	KindIncrementNearestOdd: "INCREMENT_NEAREST_ODD",
	KindDecrementCount:      "DECREMENT_COUNT",
	KindResetCount:          "RESET_COUNT",
	KindSetSearchText:       "SET_SEARCH_TEXT",
}

func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "UNKNOWN"
}

// Action is a request to transition state. Only the payload field that
// matches Kind is read.
type Action struct {
	Kind   Kind
	User   User
	ID     string
	Users  []User
	Amount int
	Text   string
}

// AddUser appends u to the roster.
func AddUser(u User) Action {
	return Action{Kind: KindAddUser, User: u}
}

// RemoveUser moves the user with id from the roster to the removed pool.
func RemoveUser(id string) Action {
	return Action{Kind: KindRemoveUser, ID: id}
}

// RestoreUser moves the user with id from the removed pool to the roster.
func RestoreUser(id string) Action {
	return Action{Kind: KindRestoreUser, ID: id}
}

// SetFilteredUsers overwrites the FilteredUsers field.
func SetFilteredUsers(users []User) Action {
	return Action{Kind: KindSetFilteredUsers, Users: users}
}

// IncrementRandom adds a random value in [1,10] to the counter.
func IncrementRandom() Action {
	return Action{Kind: KindIncrementRandom}
}

// IncrementNearestOdd moves the counter to the next odd number.
func IncrementNearestOdd() Action {
	return Action{Kind: KindIncrementNearestOdd}
}

// DecrementCount subtracts n from the counter, flooring at zero.
func DecrementCount(n int) Action {
	return Action{Kind: KindDecrementCount, Amount: n}
}

// ResetCount sets the counter to zero.
func ResetCount() Action {
	return Action{Kind: KindResetCount}
}

// SetSearchText records the search query. The caller lower-cases text.
func SetSearchText(text string) Action {
	return Action{Kind: KindSetSearchText, Text: text}
}
