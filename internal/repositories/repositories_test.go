package repositories

import (
	"context"
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"peopledir/internal/database"
	"peopledir/internal/models"
	"peopledir/internal/query"
)

// startTestPool brings up a throwaway Postgres container with the schema
// applied. Tests that need it are skipped in -short runs.
func startTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("peopledir_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool, zerolog.Nop()))

	return pool
}

func listParams(t *testing.T, e *query.Entity, rawQuery string) query.Params {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	params, err := query.ParseParams(e, values, query.Limits{})
	require.NoError(t, err)
	return params
}

func mustCreatePerson(t *testing.T, repo *PersonRepository, name string, age int) *models.Person {
	t.Helper()
	person := &models.Person{Name: name, Age: age}
	require.NoError(t, repo.Create(context.Background(), person))
	return person
}

func TestPersonRepository(t *testing.T) {
	pool := startTestPool(t)
	repo := NewPersonRepository(pool)
	ctx := context.Background()

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		person := mustCreatePerson(t, repo, "Ann Lee", 30)

		assert.Positive(t, person.ID)
		assert.False(t, person.CreatedAt.IsZero())
		assert.NotNil(t, person.Addresses)
		assert.NotNil(t, person.Phones)
	})

	t.Run("get returns the row with empty children", func(t *testing.T) {
		created := mustCreatePerson(t, repo, "Bob Stone", 42)

		person, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, "Bob Stone", person.Name)
		assert.Equal(t, 42, person.Age)
		assert.Empty(t, person.Addresses)
		assert.NotNil(t, person.Addresses)
		assert.Empty(t, person.Phones)
		assert.NotNil(t, person.Phones)
	})

	t.Run("get missing returns nil without error", func(t *testing.T) {
		person, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, person)
	})

	t.Run("identical creates produce distinct rows", func(t *testing.T) {
		first := mustCreatePerson(t, repo, "Gus Hart", 40)
		second := mustCreatePerson(t, repo, "Gus Hart", 40)

		assert.NotEqual(t, first.ID, second.ID)

		got, err := repo.GetByID(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Gus Hart", got.Name)
	})

	t.Run("update persists changed fields", func(t *testing.T) {
		person := mustCreatePerson(t, repo, "Carla Reyes", 25)

		person.Name = "Carla Ortiz"
		person.Age = 26
		require.NoError(t, repo.Update(ctx, person))

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Carla Ortiz", got.Name)
		assert.Equal(t, 26, got.Age)
	})

	t.Run("exists", func(t *testing.T) {
		person := mustCreatePerson(t, repo, "Dana Hill", 51)

		exists, err := repo.Exists(ctx, person.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete reports whether a row matched", func(t *testing.T) {
		person := mustCreatePerson(t, repo, "Eve Moss", 33)

		deleted, err := repo.Delete(ctx, person.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, person.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete removes children", func(t *testing.T) {
		person := mustCreatePerson(t, repo, "Finn Ward", 29)

		addressRepo := NewAddressRepository(pool)
		address := &models.Address{Street: "12 Main St", City: "Berlin", PersonID: person.ID}
		require.NoError(t, addressRepo.Create(ctx, address))

		phoneRepo := NewPhoneRepository(pool)
		phone := &models.Phone{Number: "+4930123", Type: "Home", PersonID: person.ID}
		require.NoError(t, phoneRepo.Create(ctx, phone))

		deleted, err := repo.Delete(ctx, person.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gotAddress, err := addressRepo.GetByID(ctx, address.ID)
		require.NoError(t, err)
		assert.Nil(t, gotAddress)

		gotPhone, err := phoneRepo.GetByID(ctx, phone.ID)
		require.NoError(t, err)
		assert.Nil(t, gotPhone)
	})
}

func TestPersonRepositoryList(t *testing.T) {
	pool := startTestPool(t)
	repo := NewPersonRepository(pool)
	addressRepo := NewAddressRepository(pool)
	phoneRepo := NewPhoneRepository(pool)
	ctx := context.Background()

	ann := mustCreatePerson(t, repo, "Ann Lee", 30)
	bob := mustCreatePerson(t, repo, "Bob Stone", 42)
	mustCreatePerson(t, repo, "Carol Ann Smith", 30)

	require.NoError(t, addressRepo.Create(ctx, &models.Address{Street: "12 Main St", City: "Berlin", PersonID: ann.ID}))
	require.NoError(t, addressRepo.Create(ctx, &models.Address{Street: "9 High Rd", City: "Paris", PersonID: bob.ID}))
	require.NoError(t, phoneRepo.Create(ctx, &models.Phone{Number: "+4930123", Type: "Home", PersonID: ann.ID}))
	require.NoError(t, phoneRepo.Create(ctx, &models.Phone{Number: "+3317777", Type: "Work", PersonID: bob.ID}))

	names := func(persons []models.Person) []string {
		out := make([]string, len(persons))
		for i, p := range persons {
			out[i] = p.Name
		}
		return out
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, ""))
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, persons, 3)
	})

	t.Run("list hydrates children", func(t *testing.T) {
		persons, _, err := repo.List(ctx, listParams(t, models.PersonEntity, "sort=name"))
		require.NoError(t, err)
		require.Len(t, persons, 3)

		assert.Len(t, persons[0].Addresses, 1) // Ann
		assert.Len(t, persons[0].Phones, 1)
		assert.Equal(t, "Berlin", persons[0].Addresses[0].City)

		assert.Empty(t, persons[2].Addresses) // Carol
		assert.NotNil(t, persons[2].Addresses)
	})

	t.Run("int filter matches exactly", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "age=30&sort=name"))
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, []string{"Ann Lee", "Carol Ann Smith"}, names(persons))
	})

	t.Run("text filter matches substring case-insensitively", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "name=ann&sort=name"))
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, []string{"Ann Lee", "Carol Ann Smith"}, names(persons))
	})

	t.Run("search spans text fields", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "search=stone"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Bob Stone"}, names(persons))
	})

	t.Run("relationship filter through addresses", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "addresses__city=berlin"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Ann Lee"}, names(persons))
	})

	t.Run("relationship filter through phones", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "phones__type=work"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{"Bob Stone"}, names(persons))
	})

	t.Run("unknown filter is ignored", func(t *testing.T) {
		_, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "hobby=chess"))
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
	})

	t.Run("uncoercible value matches nothing", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "age=abc"))
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, persons)
	})

	t.Run("sort descending", func(t *testing.T) {
		persons, _, err := repo.List(ctx, listParams(t, models.PersonEntity, "sort=-age,name"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Bob Stone", "Ann Lee", "Carol Ann Smith"}, names(persons))
	})

	t.Run("pagination windows the rows but counts all", func(t *testing.T) {
		persons, total, err := repo.List(ctx, listParams(t, models.PersonEntity, "sort=name&per_page=2&page=2"))
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Equal(t, []string{"Carol Ann Smith"}, names(persons))
	})
}

func TestAddressRepository(t *testing.T) {
	pool := startTestPool(t)
	repo := NewAddressRepository(pool)
	personRepo := NewPersonRepository(pool)
	ctx := context.Background()

	ann := mustCreatePerson(t, personRepo, "Ann Lee", 30)
	bob := mustCreatePerson(t, personRepo, "Bob Stone", 42)

	t.Run("create and get", func(t *testing.T) {
		address := &models.Address{Street: "12 Main St", City: "Berlin", PersonID: ann.ID}
		require.NoError(t, repo.Create(ctx, address))
		assert.Positive(t, address.ID)

		got, err := repo.GetByID(ctx, address.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Berlin", got.City)
		assert.Equal(t, ann.ID, got.PersonID)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list filters by own fields", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Address{Street: "9 High Rd", City: "Paris", PersonID: bob.ID}))

		addresses, total, err := repo.List(ctx, listParams(t, models.AddressEntity, "city=paris"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, addresses, 1)
		assert.Equal(t, "9 High Rd", addresses[0].Street)
	})

	t.Run("list filters through parent", func(t *testing.T) {
		addresses, total, err := repo.List(ctx, listParams(t, models.AddressEntity, "person__name=bob"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, addresses, 1)
		assert.Equal(t, bob.ID, addresses[0].PersonID)
	})

	t.Run("update and delete", func(t *testing.T) {
		address := &models.Address{Street: "3 Low Ln", City: "Oslo", PersonID: ann.ID}
		require.NoError(t, repo.Create(ctx, address))

		address.City = "Bergen"
		require.NoError(t, repo.Update(ctx, address))

		got, err := repo.GetByID(ctx, address.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bergen", got.City)

		deleted, err := repo.Delete(ctx, address.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, address.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestPhoneRepository(t *testing.T) {
	pool := startTestPool(t)
	repo := NewPhoneRepository(pool)
	personRepo := NewPersonRepository(pool)
	ctx := context.Background()

	ann := mustCreatePerson(t, personRepo, "Ann Lee", 30)

	t.Run("create get update delete", func(t *testing.T) {
		phone := &models.Phone{Number: "+4930123", Type: "Home", PersonID: ann.ID}
		require.NoError(t, repo.Create(ctx, phone))
		assert.Positive(t, phone.ID)

		got, err := repo.GetByID(ctx, phone.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Home", got.Type)

		phone.Type = "Mobile"
		require.NoError(t, repo.Update(ctx, phone))

		got, err = repo.GetByID(ctx, phone.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Mobile", got.Type)

		deleted, err := repo.Delete(ctx, phone.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("list filters by type", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Phone{Number: "+111", Type: "Home", PersonID: ann.ID}))
		require.NoError(t, repo.Create(ctx, &models.Phone{Number: "+222", Type: "Work", PersonID: ann.ID}))

		phones, total, err := repo.List(ctx, listParams(t, models.PhoneEntity, "type=work"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, phones, 1)
		assert.Equal(t, "+222", phones[0].Number)
	})
}
