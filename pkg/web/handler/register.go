package handler

import (
	"context"
	_ "embed"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	errs "sdk-server/pkg/common/errors"
	"sdk-server/pkg/core/account/model"
	"sdk-server/pkg/core/account/service"
	webmodel "sdk-server/pkg/web/model"
)

//go:embed html/register.html
var registerPage []byte

//go:embed html/result.html
var resultPage string

type AccountHandler struct {
	Service service.AccountService
}

func NewAccountHandler(svc service.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// RegisterPage 返回注册表单页面
func (h *AccountHandler) RegisterPage(ctx context.Context, c *app.RequestContext) {
	c.Data(200, "text/html; charset=utf-8", registerPage)
}

// ProcessRegister 处理注册表单提交
func (h *AccountHandler) ProcessRegister(ctx context.Context, c *app.RequestContext) {
	var req webmodel.RegisterReq
	if err := c.Bind(&req); err != nil {
		renderResult(c, resultFailure, "参数校验失败")
		return
	}

	username, ok := model.ParseUsername(req.Username)
	if !ok {
		renderResult(c, resultFailure, "无效的用户名格式；应包含[A-Za-z0-9._@-]字符且长度为6到25个字符。")
		return
	}

	password, err := model.NewPassword(req.Password, req.PasswordV2)
	switch {
	case errors.Is(err, model.ErrPasswordPairMismatch):
		renderResult(c, resultFailure, "两次输入的密码不匹配")
		return
	case errors.Is(err, model.ErrPasswordRequirements):
		renderResult(c, resultFailure, "密码长度应在8到30个字符之间")
		return
	case err != nil:
		// 哈希失败属于服务端故障，只在这里落一次日志
		hlog.CtxErrorf(ctx, "密码哈希失败, 错误: %v", err)
		renderResult(c, resultFailure, "服务器内部错误")
		return
	}

	account, err := h.Service.CreateAccount(ctx, username, password)
	switch {
	case errors.Is(err, errs.ErrDuplicateEntry):
		renderResult(c, resultFailure, "该用户名已被注册")
	case err != nil:
		hlog.CtxErrorf(ctx, "数据库操作错误: %v", err)
		renderResult(c, resultFailure, "服务器内部错误")
	default:
		hlog.CtxInfof(ctx, "账号注册成功 uid=%d username=%s", account.Uid, account.Username)
		renderResult(c, resultSuccess, "账号注册成功，现在您可以使用游戏内登录")
	}
}

type resultStatus string

const (
	resultFailure resultStatus = "error"
	resultSuccess resultStatus = "success"
)

func renderResult(c *app.RequestContext, status resultStatus, message string) {
	page := strings.ReplaceAll(resultPage, "%RESULT%", string(status))
	page = strings.ReplaceAll(page, "%MESSAGE%", message)
	c.Data(200, "text/html; charset=utf-8", []byte(page))
}
