package model

import (
	"gorm.io/gorm"
)

// Account 对应游戏SDK账号表的一行记录
type Account struct {
	Uid      int64  `gorm:"column:uid;primaryKey;autoIncrement"`
	Token    string `gorm:"column:token;type:text;not null"`
	Username string `gorm:"column:username;type:text;uniqueIndex;not null"`
	Password string `gorm:"column:password;type:text;not null"` // bcrypt哈希，永不存明文
}

// TableName 定义映射表名
func (Account) TableName() string {
	return "t_sdk_account"
}

// AutoMigrate 建表（幂等，启动时每次调用都安全）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Account{})
}
