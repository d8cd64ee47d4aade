package mysql

import (
	"testing"

	"Tech_Circulo/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newDryRunMySQL 不真正连库，只用来检查各仓储生成的SQL
func newDryRunMySQL(t *testing.T) *gorm.DB {
	t.Helper()

	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(gmysql.New(gmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// 写事务的正确性依赖入口处的锁定读：先锁实体行再查重、写入、重算，
// 否则 REPEATABLE READ 下并发写各自快照 COUNT，后提交者会用旧值覆盖计数
func TestForUpdateEmitsLockingReadOnMySQL(t *testing.T) {
	db := newDryRunMySQL(t)

	stmt := forUpdate(db).First(&model.Community{}, 1).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")

	stmt = forUpdate(db).First(&model.Post{}, "id = ? AND status = 0", 1).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

// sqlite 没有 FOR UPDATE 语法，辅助函数必须原样放行
func TestForUpdateNoopOnSQLite(t *testing.T) {
	db := newTestDB(t).Session(&gorm.Session{DryRun: true})

	stmt := forUpdate(db).First(&model.Community{}, 1).Statement
	assert.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
