package listing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var baseTime = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&user.User{}, &location.Province{}, &location.City{}, &DogListing{}))

	locations := location.NewGORMRepository(db)
	_, err = locations.InsertProvinces(context.Background(), location.ReferenceProvinces())
	require.NoError(t, err)
	_, err = locations.InsertCities(context.Background(), location.ReferenceCities())
	require.NoError(t, err)
	return db
}

// newListing returns a valid active listing in Madrid; mutate it before inserting.
func newListing(dogName string, minutesAfterBase int) *DogListing {
	at := baseTime.Add(time.Duration(minutesAfterBase) * time.Minute)
	return &DogListing{
		ID:           uuid.New(),
		Title:        dogName + " busca familia",
		Description:  "Perro cariñoso y tranquilo",
		DogName:      dogName,
		Age:          24,
		Size:         SizeMedium,
		Gender:       GenderMale,
		ContactEmail: "refugio@example.es",
		ContactName:  "Refugio Centro",
		ProvinceID:   "madrid",
		CityID:       "madrid-city",
		ImageURLs:    StringList{},
		ListingType:  TypeAdoption,
		Status:       StatusActive,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func insert(t *testing.T, repo Repository, listings ...*DogListing) {
	t.Helper()
	for _, l := range listings {
		require.NoError(t, repo.Create(context.Background(), l))
	}
}

func dogNames(listings []DogListing) []string {
	names := make([]string, 0, len(listings))
	for _, l := range listings {
		names = append(names, l.DogName)
	}
	return names
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	l := newListing("Luna", 0)
	l.ImageURLs = StringList{"https://cdn.example.es/luna-1.jpg", "https://cdn.example.es/luna-2.jpg"}
	insert(t, repo, l)

	got, err := repo.FindByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna", got.DogName)
	assert.Equal(t, StringList{"https://cdn.example.es/luna-1.jpg", "https://cdn.example.es/luna-2.jpg"}, got.ImageURLs)
	require.NotNil(t, got.Province)
	require.NotNil(t, got.City)
	assert.Equal(t, "Madrid", got.Province.Name)
	assert.Equal(t, "Madrid", got.City.Name)
	assert.Nil(t, got.Breed)
}

func TestRepository_FindByIDNotFound(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, common.IsNotFound(err))
}

func TestRepository_FindActive_Filters(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))

	madridSmall := newListing("Toby", 0)
	madridSmall.Size = SizeSmall
	madridSmall.Gender = GenderFemale

	barcelona := newListing("Nala", 1)
	barcelona.ProvinceID, barcelona.CityID = "barcelona", "barcelona-city"

	urgent := newListing("Bruno", 2)
	urgent.IsUrgent = true
	urgent.Size = SizeLarge

	adopted := newListing("Coco", 3)
	adopted.Status = StatusAdopted

	insert(t, repo, madridSmall, barcelona, urgent, adopted)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ListingFilter
		want   []string
	}{
		{"no filter returns only active", ListingFilter{}, []string{"Bruno", "Nala", "Toby"}},
		{"province", ListingFilter{ProvinceID: "barcelona"}, []string{"Nala"}},
		{"city", ListingFilter{CityID: "madrid-city"}, []string{"Bruno", "Toby"}},
		{"size", ListingFilter{Size: SizeSmall}, []string{"Toby"}},
		{"gender", ListingFilter{Gender: GenderMale}, []string{"Bruno", "Nala"}},
		{"urgent only", ListingFilter{UrgentOnly: true}, []string{"Bruno"}},
		{"filters are ANDed", ListingFilter{ProvinceID: "madrid", Size: SizeLarge, Gender: GenderFemale}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindActive(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dogNames(got))
			for _, l := range got {
				assert.Equal(t, StatusActive, l.Status)
			}
		})
	}
}

func TestRepository_FindActive_UrgentFirstThenNewest(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))

	oldUrgent := newListing("Viejo", 0)
	oldUrgent.IsUrgent = true
	newUrgent := newListing("Reciente", 10)
	newUrgent.IsUrgent = true
	newest := newListing("Nuevo", 20)
	oldest := newListing("Antiguo", -20)

	insert(t, repo, oldest, oldUrgent, newest, newUrgent)

	got, err := repo.FindActive(context.Background(), ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Reciente", "Viejo", "Nuevo", "Antiguo"}, dogNames(got))
}

func TestRepository_FindActive_TextSearch(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))

	maximo := newListing("Maximo", 0)
	rocky := newListing("Rocky", 1)
	rocky.Description = "Muy juguetón"
	byBreed := newListing("Kira", 2)
	breed := "Malinois MAXI"
	byBreed.Breed = &breed
	byDescription := newListing("Lola", 3)
	byDescription.Description = "Se lleva bien con su amigo max"
	percent := newListing("Cien", 4)
	percent.Description = "100% cariñosa"

	insert(t, repo, maximo, rocky, byBreed, byDescription, percent)
	ctx := context.Background()

	got, err := repo.FindActive(ctx, ListingFilter{Query: "max"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Maximo", "Kira", "Lola"}, dogNames(got))

	got, err = repo.FindActive(ctx, ListingFilter{Query: "MAX"})
	require.NoError(t, err)
	assert.NotContains(t, dogNames(got), "Rocky")
	assert.Len(t, got, 3)

	got, err = repo.FindActive(ctx, ListingFilter{Query: "0%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cien"}, dogNames(got), "wildcards in the query are literals")

	got, err = repo.FindActive(ctx, ListingFilter{Query: "_"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTextSearchClause(t *testing.T) {
	expr, pattern := textSearchClause("postgres", "Ñi_co")
	assert.Contains(t, expr, "dog_name ILIKE ?")
	assert.NotContains(t, expr, "LOWER(")
	assert.Equal(t, `%Ñi\_co%`, pattern)

	expr, pattern = textSearchClause("sqlite", "Ñi_co")
	assert.Contains(t, expr, "LOWER(dog_name) LIKE ?")
	assert.Equal(t, `%ñi\_co%`, pattern)
}

func TestRepository_FindActive_Limit(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	for i := 0; i < 5; i++ {
		insert(t, repo, newListing(fmt.Sprintf("Perro%d", i), i))
	}

	got, err := repo.FindActive(context.Background(), ListingFilter{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"Perro4", "Perro3", "Perro2"}, dogNames(got))
}

func TestRepository_Update(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	l := newListing("Simba", 0)
	insert(t, repo, l)
	ctx := context.Background()

	later := baseTime.Add(time.Hour)
	err := repo.Update(ctx, l.ID, map[string]interface{}{
		"is_urgent":  true,
		"image_urls": StringList{"a.jpg"},
		"updated_at": later,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, got.IsUrgent)
	assert.Equal(t, "Simba", got.DogName)
	assert.Equal(t, StringList{"a.jpg"}, got.ImageURLs)
	assert.True(t, got.UpdatedAt.Equal(later))
	assert.True(t, got.CreatedAt.Equal(baseTime))

	err = repo.Update(ctx, uuid.New(), map[string]interface{}{"is_urgent": true})
	assert.True(t, common.IsNotFound(err))
}

func TestRepository_Delete(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	l := newListing("Thor", 0)
	insert(t, repo, l)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, l.ID))
	_, err := repo.FindByID(ctx, l.ID)
	assert.True(t, common.IsNotFound(err))

	assert.True(t, common.IsNotFound(repo.Delete(ctx, l.ID)), "deleting twice is reported")
}

func TestRepository_CountsAndProvinceNames(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))

	a := newListing("A", 0)
	b := newListing("B", 1)
	b.IsUrgent = true
	c := newListing("C", 2)
	c.ProvinceID, c.CityID = "barcelona", "barcelona-city"
	d := newListing("D", 3)
	d.Status = StatusInactive
	d.IsUrgent = true
	insert(t, repo, a, b, c, d)
	ctx := context.Background()

	total, err := repo.CountActive(ctx, false)
	require.NoError(t, err)
	urgent, err := repo.CountActive(ctx, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.EqualValues(t, 1, urgent)

	names, err := repo.FindActiveProvinceNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Madrid", "Madrid", "Barcelona"}, names)
}

func TestRepository_FindAllForSync_Pages(t *testing.T) {
	repo := NewGORMRepository(newTestDB(t))
	for i := 0; i < 5; i++ {
		insert(t, repo, newListing(fmt.Sprintf("S%d", i), i))
	}
	hidden := newListing("Hidden", 10)
	hidden.Status = StatusAdopted
	insert(t, repo, hidden)
	ctx := context.Background()

	first, err := repo.FindAllForSync(ctx, 0, 2)
	require.NoError(t, err)
	second, err := repo.FindAllForSync(ctx, 2, 2)
	require.NoError(t, err)
	third, err := repo.FindAllForSync(ctx, 4, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"S0", "S1"}, dogNames(first))
	assert.Equal(t, []string{"S2", "S3"}, dogNames(second))
	assert.Equal(t, []string{"S4"}, dogNames(third))
	require.NotNil(t, first[0].Province)
}
