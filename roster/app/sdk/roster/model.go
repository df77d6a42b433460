package roster

// Address is the postal address of a user. Only Street is rendered.
type Address struct {
	Street string `json:"street" yaml:"street"`
	Suite  string `json:"suite" yaml:"suite"`
	City   string `json:"city" yaml:"city"`
}

// Company is the employer of a raw record.
type Company struct {
	Name string `json:"name" yaml:"name"`
}

// Record is the raw shape of a user as supplied by a record source.
type Record struct {
	Username string  `json:"username" yaml:"username"`
	Address  Address `json:"address" yaml:"address"`
	Age      int     `json:"age" yaml:"age"`
	Company  Company `json:"company" yaml:"company"`
}

// User represents one roster entry.
type User struct {
	ID          string
	Username    string
	Address     Address
	Age         int
	CompanyName string
}

// State is the single aggregate owned by a Store.
type State struct {
	Users        []User
	RemovedUsers []User

	// FilteredUsers is only ever written by SetFilteredUsers. Nothing in the
	// client reads it; the visible list comes from Visible.
	FilteredUsers []User

	Count      int
	SearchText string
}
