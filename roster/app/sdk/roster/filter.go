package roster

import "strings"

// Visible returns the roster entries whose lower-cased username contains
// the search text, in roster order. An empty search text matches everyone.
func Visible(state State) []User {
	users := make([]User, 0, len(state.Users))
	for _, u := range state.Users {
		if strings.Contains(strings.ToLower(u.Username), state.SearchText) {
			users = append(users, u)
		}
	}

	return users
}
