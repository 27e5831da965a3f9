package service

import (
	"context"
	"fmt"

	errs "sdk-server/pkg/common/errors"
	"sdk-server/pkg/common/random"
	"sdk-server/pkg/core/account/model"
	"sdk-server/pkg/core/account/repository/dao"
)

// 注册时签发的长期令牌长度
const tokenLength = 64

type AccountService interface {
	// CreateAccount 创建账号，用户名已占用时返回 ErrDuplicateEntry
	CreateAccount(ctx context.Context, username model.Username, password model.Password) (*model.Account, error)
	GetAccountByName(ctx context.Context, username string) (*model.Account, error)
	GetAccountByUid(ctx context.Context, uid int64) (*model.Account, error)
}

type accountService struct {
	repo dao.AccountRepository
}

func NewAccountService(repo dao.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

// CreateAccount 先查重再插入。查重只是为了给出友好的占用提示，
// 真正的并发兜底在username唯一索引上，插入冲突同样返回 ErrDuplicateEntry。
func (s *accountService) CreateAccount(ctx context.Context, username model.Username, password model.Password) (*model.Account, error) {
	existing, err := s.repo.GetByName(ctx, username.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateEntry
	}

	token, err := random.AlphanumericString(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account token: %w", err)
	}

	account := &model.Account{
		Token:    token,
		Username: username.String(),
		Password: password.HashString(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByName(ctx context.Context, username string) (*model.Account, error) {
	return s.repo.GetByName(ctx, username)
}

func (s *accountService) GetAccountByUid(ctx context.Context, uid int64) (*model.Account, error) {
	return s.repo.GetByUid(ctx, uid)
}
