package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
)

// SdkApiHandler 游戏客户端的风控打点等接口，只需回固定应答
type SdkApiHandler struct{}

func NewSdkApiHandler() *SdkApiHandler {
	return &SdkApiHandler{}
}

// RiskyApiCheck 客户端风控检查，游戏客户端依赖这个原样应答
func (h *SdkApiHandler) RiskyApiCheck(ctx context.Context, c *app.RequestContext) {
	c.Data(200, "application/json", []byte(`{"data":{},message:"OK",retcode:0}`))
}
