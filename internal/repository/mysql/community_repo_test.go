package mysql

import (
	"testing"

	"Tech_Circulo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityCreateCreatorBecomesAdmin(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}

	creator := seedUser(t, db, "alice")

	community, err := repo.Create(&model.Community{
		Name:      "gophers",
		CreatorID: creator.ID,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, community.MemberCount)
	assert.EqualValues(t, 1, storedMemberCount(t, db, community.ID))

	var m model.Membership
	require.NoError(t, db.Where("user_id = ? AND community_id = ?", creator.ID, community.ID).
		First(&m).Error)
	assert.Equal(t, model.RoleAdmin, m.Role)
}

func TestCommunityFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}

func TestCommunitySearchByName(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}

	seedCommunity(t, db, "go beginners", 1)
	seedCommunity(t, db, "go advanced", 1)
	seedCommunity(t, db, "rustaceans", 1)

	list, err := repo.SearchByName("go")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.SearchByName("nothing")
	require.NoError(t, err)
	assert.Empty(t, list)
}
