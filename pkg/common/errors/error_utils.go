package errors

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// WrapGormError 将底层数据库错误转变为业务可识别错误
func WrapGormError(rawErr error) error {
	if rawErr == nil {
		return nil
	}

	// 处理预定义的GORM错误
	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return ErrAccountNotFound
	case errors.Is(rawErr, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	}

	// 处理SQLite驱动错误
	var sqliteErr sqlite3.Error
	if errors.As(rawErr, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicateEntry
		}
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return fmt.Errorf("%w: %s", ErrDatabaseInternal, sqliteErr.Error())
		}
	}

	if errors.Is(rawErr, gorm.ErrInvalidDB) ||
		errors.Is(rawErr, gorm.ErrInvalidTransaction) {
		return ErrDatabaseInternal
	}

	// 兜底处理：附加原始错误信息
	return fmt.Errorf("%w: %v", ErrDatabaseInternal, rawErr)
}

// IsDuplicateError 判断是否为重复记录错误
func IsDuplicateError(err error) bool {
	if errors.Is(err, ErrDuplicateEntry) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
