package dao

import (
	"context"

	"sdk-server/pkg/core/account/model"
)

type AccountRepository interface {
	// GetByName 按用户名精确查询，不存在时返回 (nil, nil)
	GetByName(ctx context.Context, username string) (*model.Account, error)
	// GetByUid 按uid精确查询，不存在时返回 (nil, nil)
	GetByUid(ctx context.Context, uid int64) (*model.Account, error)
	// Create 插入新账号并回填自增uid，用户名冲突时返回 ErrDuplicateEntry
	Create(ctx context.Context, account *model.Account) error
}
