package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	errs "sdk-server/pkg/common/errors"
	"sdk-server/pkg/core/account/model"
)

func openTestDB(t *testing.T, file string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(file), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return db
}

func TestCreateAndLookup(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	repo := NewAccountRepository(openTestDB(t, file))
	ctx := context.Background()

	account := &model.Account{
		Token:    "token-a",
		Username: "player_one",
		Password: "hash-a",
	}
	require.NoError(t, repo.Create(ctx, account))
	// 插入后回填自增uid
	assert.NotZero(t, account.Uid)

	byName, err := repo.GetByName(ctx, "player_one")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, account.Uid, byName.Uid)
	assert.Equal(t, "token-a", byName.Token)
	assert.Equal(t, "hash-a", byName.Password)

	byUid, err := repo.GetByUid(ctx, account.Uid)
	require.NoError(t, err)
	require.NotNil(t, byUid)
	assert.Equal(t, "player_one", byUid.Username)
}

func TestLookupMissingReturnsNil(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	repo := NewAccountRepository(openTestDB(t, file))
	ctx := context.Background()

	byName, err := repo.GetByName(ctx, "nobody_here")
	require.NoError(t, err)
	assert.Nil(t, byName)

	byUid, err := repo.GetByUid(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, byUid)
}

func TestCreateDuplicateUsername(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	db := openTestDB(t, file)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	first := &model.Account{Token: "token-a", Username: "player_one", Password: "hash-a"}
	require.NoError(t, repo.Create(ctx, first))

	// 唯一索引兜底：即使调用方漏掉了查重，重复插入也会被拒绝
	second := &model.Account{Token: "token-b", Username: "player_one", Password: "hash-b"}
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, errs.ErrDuplicateEntry)

	var count int64
	require.NoError(t, db.Model(&model.Account{}).Where("username = ?", "player_one").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUidAutoIncrement(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")
	repo := NewAccountRepository(openTestDB(t, file))
	ctx := context.Background()

	a := &model.Account{Token: "ta", Username: "player_one", Password: "ha"}
	b := &model.Account{Token: "tb", Username: "player_two", Password: "hb"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.Greater(t, b.Uid, a.Uid)
}

func TestMigrateIsIdempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.db")

	db := openTestDB(t, file)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &model.Account{Token: "token-a", Username: "player_one", Password: "hash-a"}
	require.NoError(t, repo.Create(ctx, account))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// 对同一文件再次建表，schema不变、已有数据保留
	db2 := openTestDB(t, file)
	repo2 := NewAccountRepository(db2)

	byName, err := repo2.GetByName(ctx, "player_one")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, account.Uid, byName.Uid)

	// 表名检查，没有生成重复的表
	var tableCount int64
	require.NoError(t, db2.Raw(
		"SELECT count(*) FROM sqlite_master WHERE type='table' AND name LIKE 't_sdk_account%'").
		Scan(&tableCount).Error)
	assert.EqualValues(t, 1, tableCount)
}

func TestStoredTokenShapeUnconstrained(t *testing.T) {
	// dao层不关心token内容，由服务层保证格式，这里只验证原样存取
	file := filepath.Join(t.TempDir(), "test.db")
	repo := NewAccountRepository(openTestDB(t, file))
	ctx := context.Background()

	token := "AbC123" // 任意文本
	require.NoError(t, repo.Create(ctx, &model.Account{Token: token, Username: "player_one", Password: "h"}))

	got, err := repo.GetByName(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, token, got.Token)
}
