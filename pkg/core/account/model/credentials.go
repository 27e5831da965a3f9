package model

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// 用户名规则：6-25位，仅允许字母、数字和 ._@-
var allowedUsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._@-]{6,25}$`)

// Username 只能通过 ParseUsername 构造，构造成功即保证格式合法
type Username struct {
	value string
}

// ParseUsername 校验原始输入，不合法时 ok 为 false
func ParseUsername(raw string) (Username, bool) {
	if !allowedUsernameRegex.MatchString(raw) {
		return Username{}, false
	}
	return Username{value: raw}, true
}

func (u Username) String() string {
	return u.value
}

var (
	ErrPasswordPairMismatch = errors.New("password pair mismatch")
	ErrPasswordRequirements = errors.New("password does not meet requirements")
	ErrPasswordHash         = errors.New("failed to generate password hash")
)

// Password 内部只保存bcrypt哈希串，明文在构造后立即丢弃
type Password struct {
	hash string
}

// NewPassword 依次校验两次输入一致、长度在半开区间 [8,30) 内，
// 然后生成自描述的bcrypt哈希（盐和cost都编码在哈希串里）。
func NewPassword(plain, confirm string) (Password, error) {
	if plain != confirm {
		return Password{}, ErrPasswordPairMismatch
	}

	// 上界30不包含，有效长度为8-29，与线上行为保持一致
	if len(plain) < 8 || len(plain) >= 30 {
		return Password{}, ErrPasswordRequirements
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, fmt.Errorf("%w: %v", ErrPasswordHash, err)
	}
	return Password{hash: string(hash)}, nil
}

// PasswordFromHash 从已持久化的哈希串还原Password，用于校验场景
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Verify 校验候选明文，哈希串损坏时返回false而不是报错
func (p Password) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(candidate)) == nil
}

// HashString 返回用于持久化的哈希串
func (p Password) HashString() string {
	return p.hash
}
