package dbfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/roster/roster/api/frontends/client/storage/dbfile"
	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	db := dbfile.NewEmbedded()
	assert.Equal(t, "embedded", db.Name())

	records, err := db.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 10)

	assert.Equal(t, "Bret", records[0].Username)
	assert.Equal(t, "Kulas Light", records[0].Address.Street)
	assert.Equal(t, 32, records[0].Age)
	assert.Equal(t, "Romaguera-Crona", records[0].Company.Name)
}

func TestJSONFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "users.json")

	data := `[{"username":"alice","address":{"street":"Main","suite":"1","city":"X"},"age":30,"company":{"name":"Acme"}}]`
	require.NoError(t, os.WriteFile(fileName, []byte(data), 0644))

	db, err := dbfile.NewDB(fileName)
	require.NoError(t, err)

	records, err := db.Records(context.Background())
	require.NoError(t, err)

	exp := []roster.Record{
		{
			Username: "alice",
			Address:  roster.Address{Street: "Main", Suite: "1", City: "X"},
			Age:      30,
			Company:  roster.Company{Name: "Acme"},
		},
	}
	assert.Equal(t, exp, records)
}

func TestYAMLFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "users.yaml")

	data := `
- username: bob
  address:
    street: Elm
    suite: Apt. 2
    city: Y
  age: 17
  company:
    name: Initech
`
	require.NoError(t, os.WriteFile(fileName, []byte(data), 0644))

	db, err := dbfile.NewDB(fileName)
	require.NoError(t, err)

	records, err := db.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "bob", records[0].Username)
	assert.Equal(t, "Apt. 2", records[0].Address.Suite)
	assert.Equal(t, 17, records[0].Age)
	assert.Equal(t, "Initech", records[0].Company.Name)
}

func TestMissingFile(t *testing.T) {
	_, err := dbfile.NewDB(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBadJSON(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(fileName, []byte("{not json"), 0644))

	db, err := dbfile.NewDB(fileName)
	require.NoError(t, err)

	_, err = db.Records(context.Background())
	assert.Error(t, err)
}
