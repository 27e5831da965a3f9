package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "sdk-server/pkg/common/errors"
	"sdk-server/pkg/core/account/model"
	"sdk-server/pkg/core/account/repository/dao"
)

type GormAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) dao.AccountRepository {
	return &GormAccountRepository{db: db}
}

// GetByName 按用户名查询，未命中返回 (nil, nil) 而不是错误
func (r *GormAccountRepository) GetByName(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%w: account lookup failed", errs.WrapGormError(err))
	default:
		return &account, nil
	}
}

// GetByUid 按uid查询，未命中返回 (nil, nil)
func (r *GormAccountRepository) GetByUid(ctx context.Context, uid int64) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&account).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%w: account lookup failed", errs.WrapGormError(err))
	default:
		return &account, nil
	}
}

// Create 插入新账号。username列有唯一索引，并发下先查后插撞车时
// 由约束冲突兜底，统一映射为 ErrDuplicateEntry。
func (r *GormAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return errs.ErrDuplicateEntry
		}
		return fmt.Errorf("%w: account creation failed", errs.WrapGormError(err))
	}
	return nil
}
