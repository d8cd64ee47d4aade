package mysql

import (
	"fmt"
	"testing"

	"Tech_Circulo/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err = db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.PostLike{},
		&model.PostBookmark{},
		&model.PostReport{},
		&model.Comment{},
		&model.Announcement{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Password: "x",
		Email:    username + "@test.local",
		Nickname: username,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCommunity(t *testing.T, db *gorm.DB, name string, creatorID uint64) *model.Community {
	t.Helper()
	c := &model.Community{Name: name, CreatorID: creatorID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	return c
}

func seedPost(t *testing.T, db *gorm.DB, communityID, authorID uint64, title string) *model.Post {
	t.Helper()
	p := &model.Post{CommunityID: communityID, AuthorID: authorID, Title: title}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func storedMemberCount(t *testing.T, db *gorm.DB, communityID uint64) int64 {
	t.Helper()
	var c model.Community
	if err := db.First(&c, communityID).Error; err != nil {
		t.Fatalf("load community: %v", err)
	}
	return c.MemberCount
}

func storedLikesCount(t *testing.T, db *gorm.DB, postID uint64) int64 {
	t.Helper()
	var p model.Post
	if err := db.First(&p, postID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	return p.LikesCount
}
