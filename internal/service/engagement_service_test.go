package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.PostLike{},
		&model.PostBookmark{},
		&model.PostReport{},
		&model.Comment{},
	))
	mysql.DB = db
	return db
}

func TestEngagementStatsIncludesComments(t *testing.T) {
	db := setupDB(t)
	svc := NewEngagementService()
	commentSvc := NewCommentService()
	ctx := context.Background()

	user := &model.User{Username: "alice", Password: "x", Email: "alice@test.local"}
	require.NoError(t, db.Create(user).Error)
	post := &model.Post{CommunityID: 1, AuthorID: user.ID, Title: "hello"}
	require.NoError(t, db.Create(post).Error)

	_, _, err := svc.ToggleLike(ctx, post.ID, user.ID)
	require.NoError(t, err)
	_, _, err = svc.ToggleBookmark(ctx, post.ID, user.ID)
	require.NoError(t, err)
	_, err = commentSvc.CreateComment(ctx, user.ID, post.ID, "nice post")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.LikesCount)
	assert.EqualValues(t, 1, stats.BookmarksCount)
	assert.EqualValues(t, 0, stats.ReportsCount)
	assert.EqualValues(t, 1, stats.CommentsCount)
}

func TestEngagementRejectsZeroIDs(t *testing.T) {
	setupDB(t)
	svc := NewEngagementService()
	ctx := context.Background()

	_, _, err := svc.ToggleLike(ctx, 0, 1)
	assert.Error(t, err)
	_, _, err = svc.ToggleBookmark(ctx, 1, 0)
	assert.Error(t, err)
	assert.Error(t, svc.Report(ctx, 0, 0, "spam"))
}

func TestEngagementReportValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewEngagementService()
	ctx := context.Background()

	post := &model.Post{CommunityID: 1, AuthorID: 1, Title: "hello"}
	require.NoError(t, db.Create(post).Error)

	assert.Error(t, svc.Report(ctx, post.ID, 1, "   "))
	require.NoError(t, svc.Report(ctx, post.ID, 1, "spam"))
	assert.ErrorIs(t, svc.Report(ctx, post.ID, 1, "spam"), mysql.ErrAlreadyReported)
}

func TestMembershipServicePassesThroughLedgerErrors(t *testing.T) {
	db := setupDB(t)
	svc := NewMembershipService()
	ctx := context.Background()

	user := &model.User{Username: "alice", Password: "x", Email: "alice@test.local"}
	require.NoError(t, db.Create(user).Error)
	community := &model.Community{Name: "gophers", CreatorID: user.ID}
	require.NoError(t, db.Create(community).Error)

	count, err := svc.Join(ctx, user.ID, community.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = svc.Join(ctx, user.ID, community.ID)
	assert.ErrorIs(t, err, mysql.ErrAlreadyMember)

	_, err = svc.Leave(ctx, user.ID+1, community.ID)
	assert.ErrorIs(t, err, mysql.ErrNotMember)

	_, err = svc.Join(ctx, user.ID, 9999)
	assert.ErrorIs(t, err, mysql.ErrCommunityNotFound)
}
