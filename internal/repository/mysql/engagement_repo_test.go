package mysql

import (
	"context"
	"testing"

	"Tech_Circulo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, 1, user.ID, "hello")

	liked, count, err := repo.ToggleLike(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)
	assert.EqualValues(t, 1, storedLikesCount(t, db, post.ID))

	// 第二次 toggle 回到原状态和原计数
	liked, count, err = repo.ToggleLike(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
	assert.EqualValues(t, 0, storedLikesCount(t, db, post.ID))
}

func TestToggleLikeTwoUsersScenario(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	userX := seedUser(t, db, "userx")
	userY := seedUser(t, db, "usery")
	post := seedPost(t, db, 1, userX.ID, "hello")

	liked, count, err := repo.ToggleLike(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)

	liked, count, err = repo.ToggleLike(ctx, post.ID, userY.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 2, count)

	liked, count, err = repo.ToggleLike(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 1, count)
}

func TestLikesCountMatchesRowsAfterEveryToggle(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	post := seedPost(t, db, 1, 1, "hello")
	users := []*model.User{
		seedUser(t, db, "u1"),
		seedUser(t, db, "u2"),
		seedUser(t, db, "u3"),
	}

	checkInvariant := func() {
		var rows int64
		require.NoError(t, db.Model(&model.PostLike{}).
			Where("post_id = ?", post.ID).Count(&rows).Error)
		assert.Equal(t, rows, storedLikesCount(t, db, post.ID))
	}

	for _, u := range users {
		_, _, err := repo.ToggleLike(ctx, post.ID, u.ID)
		require.NoError(t, err)
		checkInvariant()
	}
	// 再各取消一次
	for _, u := range users {
		_, _, err := repo.ToggleLike(ctx, post.ID, u.ID)
		require.NoError(t, err)
		checkInvariant()
	}
}

func TestToggleLikePostNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}

	user := seedUser(t, db, "alice")

	_, _, err := repo.ToggleLike(context.Background(), 9999, user.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleBookmarkOnDemandCount(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	userX := seedUser(t, db, "userx")
	userY := seedUser(t, db, "usery")
	post := seedPost(t, db, 1, userX.ID, "hello")

	bookmarked, count, err := repo.ToggleBookmark(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)
	assert.EqualValues(t, 1, count)

	_, count, err = repo.ToggleBookmark(ctx, post.ID, userY.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	bookmarked, count, err = repo.ToggleBookmark(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
	assert.EqualValues(t, 1, count)

	// 收藏不落在帖子行上，点赞计数不受影响
	assert.EqualValues(t, 0, storedLikesCount(t, db, post.ID))
}

func TestReportDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	userX := seedUser(t, db, "userx")
	userY := seedUser(t, db, "usery")
	post := seedPost(t, db, 1, userX.ID, "hello")

	require.NoError(t, repo.Report(ctx, post.ID, userX.ID, "spam"))

	err := repo.Report(ctx, post.ID, userX.ID, "spam")
	assert.ErrorIs(t, err, ErrAlreadyReported)

	// 不同用户举报同一帖子可以成功，此时存在两条举报
	require.NoError(t, repo.Report(ctx, post.ID, userY.ID, "spam"))

	var rows int64
	require.NoError(t, db.Model(&model.PostReport{}).
		Where("post_id = ?", post.ID).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)

	var report model.PostReport
	require.NoError(t, db.Where("post_id = ? AND user_id = ?", post.ID, userX.ID).
		First(&report).Error)
	assert.Equal(t, model.ReportPending, report.Status)
	assert.Equal(t, "spam", report.Reason)
}

func TestStatsSnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	userX := seedUser(t, db, "userx")
	userY := seedUser(t, db, "usery")
	post := seedPost(t, db, 1, userX.ID, "hello")

	_, _, err := repo.ToggleLike(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(ctx, post.ID, userY.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleBookmark(ctx, post.ID, userX.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Report(ctx, post.ID, userY.ID, "spam"))

	stats, err := repo.Stats(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.LikesCount)
	assert.EqualValues(t, 1, stats.BookmarksCount)
	assert.EqualValues(t, 1, stats.ReportsCount)
}

func TestStatsPostNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}

	_, err := repo.Stats(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListBookmarked(t *testing.T) {
	db := newTestDB(t)
	repo := &EngagementRepository{DB: db}
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	first := seedPost(t, db, 1, user.ID, "first")
	second := seedPost(t, db, 1, user.ID, "second")

	_, _, err := repo.ToggleBookmark(ctx, first.ID, user.ID)
	require.NoError(t, err)
	_, _, err = repo.ToggleBookmark(ctx, second.ID, user.ID)
	require.NoError(t, err)

	list, err := repo.ListBookmarked(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// 软删除的帖子不出现在收藏列表里
	require.NoError(t, db.Model(&model.Post{}).
		Where("id = ?", first.ID).Update("status", 1).Error)
	list, err = repo.ListBookmarked(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}
