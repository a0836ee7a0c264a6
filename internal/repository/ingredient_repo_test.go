package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func TestIngredientRepository_FindOrCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewIngredientRepository(db)
	existing := testutil.TestIngredient(t, db, "마늘")

	ings, err := repo.FindOrCreate([]string{"양파", "마늘", "양파", ""})
	require.NoError(t, err)
	require.Len(t, ings, 2)
	assert.Equal(t, "양파", ings[0].Name)
	assert.NotZero(t, ings[0].ID)
	assert.Equal(t, existing.ID, ings[1].ID)

	var count int64
	db.Model(&model.Ingredient{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestIngredientRepository_FindOrCreate_Cached(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewIngredientRepository(db)

	first, err := repo.FindOrCreate([]string{"두부"})
	require.NoError(t, err)

	// 캐시에서 나온 값도 같은 ID, 호출자가 바꿔도 캐시는 그대로
	first[0].Name = "changed"
	second, err := repo.FindOrCreate([]string{"두부"})
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "두부", second[0].Name)
}

func TestIngredientRepository_GetByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewIngredientRepository(db)
	testutil.TestIngredient(t, db, "감자")

	found, err := repo.GetByName("감자")
	require.NoError(t, err)
	assert.Equal(t, "감자", found.Name)

	_, err = repo.GetByName("없는재료")
	assert.Error(t, err)
}

func TestIngredientRepository_ListNames(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewIngredientRepository(db)
	for _, n := range []string{"양파", "감자", "마늘"} {
		testutil.TestIngredient(t, db, n)
	}

	names, err := repo.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"감자", "마늘", "양파"}, names)
}
