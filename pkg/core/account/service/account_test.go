package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"

	errs "sdk-server/pkg/common/errors"
	"sdk-server/pkg/core/account/model"
)

// fakeRepo 内存版AccountRepository，行为与SQLite实现对齐：
// 未命中返回 (nil, nil)，用户名冲突返回 ErrDuplicateEntry。
type fakeRepo struct {
	nextUid  int64
	accounts map[string]*model.Account
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextUid: 1, accounts: make(map[string]*model.Account)}
}

func (r *fakeRepo) GetByName(_ context.Context, username string) (*model.Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if account, ok := r.accounts[username]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetByUid(_ context.Context, uid int64) (*model.Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, account := range r.accounts {
		if account.Uid == uid {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Create(_ context.Context, account *model.Account) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.accounts[account.Username]; ok {
		return errs.ErrDuplicateEntry
	}
	account.Uid = r.nextUid
	r.nextUid++
	copied := *account
	r.accounts[account.Username] = &copied
	return nil
}

type AccountServiceSuite struct {
	suite.Suite
	repo    *fakeRepo
	service AccountService
	ctx     context.Context
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.repo = newFakeRepo()
	s.service = NewAccountService(s.repo)
	s.ctx = context.Background()
}

func (s *AccountServiceSuite) mustCredentials(name, plain string) (model.Username, model.Password) {
	username, ok := model.ParseUsername(name)
	s.Require().True(ok)
	password, err := model.NewPassword(plain, plain)
	s.Require().NoError(err)
	return username, password
}

var tokenPattern = regexp.MustCompile(`^[a-zA-Z0-9]{64}$`)

func (s *AccountServiceSuite) TestCreateAccountSucceeds() {
	username, password := s.mustCredentials("player_one", "secret123")

	account, err := s.service.CreateAccount(s.ctx, username, password)
	s.Require().NoError(err)

	s.NotZero(account.Uid)
	s.Equal("player_one", account.Username)
	s.Equal(password.HashString(), account.Password)
	// 64位字母数字令牌
	s.Regexp(tokenPattern, account.Token)
}

func (s *AccountServiceSuite) TestCreateAccountPersists() {
	username, password := s.mustCredentials("player_one", "secret123")

	created, err := s.service.CreateAccount(s.ctx, username, password)
	s.Require().NoError(err)

	loaded, err := s.service.GetAccountByName(s.ctx, "player_one")
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal(created.Uid, loaded.Uid)

	byUid, err := s.service.GetAccountByUid(s.ctx, created.Uid)
	s.Require().NoError(err)
	s.Require().NotNil(byUid)
	s.Equal("player_one", byUid.Username)
}

func (s *AccountServiceSuite) TestCreateAccountDuplicate() {
	username, password := s.mustCredentials("player_one", "secret123")

	_, err := s.service.CreateAccount(s.ctx, username, password)
	s.Require().NoError(err)

	_, err = s.service.CreateAccount(s.ctx, username, password)
	s.Require().ErrorIs(err, errs.ErrDuplicateEntry)

	// 第二次调用没有新增记录
	s.Len(s.repo.accounts, 1)
}

func (s *AccountServiceSuite) TestTokensAreUnpredictable() {
	u1, p1 := s.mustCredentials("player_one", "secret123")
	u2, p2 := s.mustCredentials("player_two", "secret123")

	a1, err := s.service.CreateAccount(s.ctx, u1, p1)
	s.Require().NoError(err)
	a2, err := s.service.CreateAccount(s.ctx, u2, p2)
	s.Require().NoError(err)

	s.NotEqual(a1.Token, a2.Token)
}

func (s *AccountServiceSuite) TestStorageErrorsPropagate() {
	username, password := s.mustCredentials("player_one", "secret123")
	s.repo.failWith = errs.ErrDatabaseInternal

	_, err := s.service.CreateAccount(s.ctx, username, password)
	s.Require().ErrorIs(err, errs.ErrDatabaseInternal)

	_, err = s.service.GetAccountByUid(s.ctx, 1)
	s.Require().ErrorIs(err, errs.ErrDatabaseInternal)
}

func (s *AccountServiceSuite) TestGetMissingAccountReturnsNil() {
	account, err := s.service.GetAccountByName(s.ctx, "nobody_here")
	s.Require().NoError(err)
	s.Nil(account)

	account, err = s.service.GetAccountByUid(s.ctx, 999)
	s.Require().NoError(err)
	s.Nil(account)
}
