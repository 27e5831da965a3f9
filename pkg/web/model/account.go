package model

// 请求数据结构
type (
	RegisterReq struct {
		Username   string `form:"username" json:"username"`
		Password   string `form:"password" json:"password"`
		PasswordV2 string `form:"password_v2" json:"password_v2"`
	}
)
