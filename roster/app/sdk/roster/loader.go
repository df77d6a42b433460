package roster

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MinAge is the youngest age admitted into the roster.
const MinAge = 18

// Transform filters out records younger than MinAge, maps the rest to users
// with fresh identifiers and orders them by age, then by company name using
// English collation.
func Transform(records []Record, rnd Random) []User {
	users := make([]User, 0, len(records))
	for _, rec := range records {
		if rec.Age < MinAge {
			continue
		}

		users = append(users, User{
			ID:          NewID(rnd),
			Username:    rec.Username,
			Address:     rec.Address,
			Age:         rec.Age,
			CompanyName: rec.Company.Name,
		})
	}

	col := collate.New(language.English)

	slices.SortStableFunc(users, func(a, b User) int {
		if a.Age == b.Age {
			return col.CompareString(a.CompanyName, b.CompanyName)
		}
		return cmp.Compare(a.Age, b.Age)
	})

	return users
}
