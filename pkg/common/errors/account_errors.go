package errors

import (
	"errors"
)

// 业务层可识别的存储结果
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateEntry   = errors.New("username already registered")
	ErrDatabaseInternal = errors.New("database internal error")
)
