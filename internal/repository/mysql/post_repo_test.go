package mysql

import (
	"context"
	"testing"
	"time"

	"Tech_Circulo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCursorPagination(t *testing.T) {
	db := newTestDB(t)
	repo := &PostRepository{DB: db}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := &model.Post{
			CommunityID: 1,
			AuthorID:    1,
			Title:       "post",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(p).Error)
	}

	// 第一页
	page1, err := repo.ListByCommunityCursor(1, 0, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.True(t, page1[0].CreatedAt.After(page1[1].CreatedAt))

	// 用第一页末尾做游标取第二页，不得与第一页重叠
	last := page1[len(page1)-1]
	page2, err := repo.ListByCommunityCursor(1, last.ID, last.CreatedAt, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	for _, p := range page2 {
		assert.NotEqual(t, page1[0].ID, p.ID)
		assert.NotEqual(t, page1[1].ID, p.ID)
		assert.True(t, p.CreatedAt.Before(last.CreatedAt))
	}
}

func TestPostSoftDeleteHidden(t *testing.T) {
	db := newTestDB(t)
	repo := &PostRepository{DB: db}

	post := seedPost(t, db, 1, 1, "hello")

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.FindByID(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	list, err := repo.ListByCommunity(1, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCommentCreateAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := &CommentRepository{DB: db}
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, 1, user.ID, "hello")

	require.NoError(t, repo.Create(ctx, &model.Comment{
		PostID: post.ID, AuthorID: user.ID, Content: "first",
	}))
	require.NoError(t, repo.Create(ctx, &model.Comment{
		PostID: post.ID, AuthorID: user.ID, Content: "second",
	}))

	count, err := repo.CountByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	list, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
}

func TestCommentOnMissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := &CommentRepository{DB: db}

	err := repo.Create(context.Background(), &model.Comment{
		PostID: 9999, AuthorID: 1, Content: "hello",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}
