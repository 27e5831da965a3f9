package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/cors"

	"sdk-server/pkg/common/config"
)

// LoggerMiddleware 结构化的请求日志记录
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		hlog.CtxTracef(c, "| %3d | %13v | %15s | %-7s | %s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
		)
	}
}

// RecoveryMiddleware 异常捕获，生产环境不回显堆栈
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())
				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(500, utils.H{
						"code":    500,
						"message": "internal server error",
					})
				} else { // 开发环境显示详细错误
					ctx.AbortWithStatusJSON(500, utils.H{
						"code":  500,
						"error": fmt.Sprintf("%v", err),
						"stack": strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 跨域配置
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
		},
	)
}

// TimeoutMiddleware 请求级超时，超时后向下游处理器传递已取消的上下文
func TimeoutMiddleware(seconds int) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		timeoutCtx, cancel := context.WithTimeout(c, time.Duration(seconds)*time.Second)
		defer cancel()

		done := make(chan struct{})
		var panicErr interface{}

		go func() {
			defer func() {
				if r := recover(); r != nil {
					panicErr = r
				}
				close(done)
			}()
			ctx.Next(timeoutCtx)
		}()

		select {
		case <-timeoutCtx.Done():
			ctx.AbortWithStatusJSON(503, utils.H{
				"code":    503000,
				"message": "service unavailable",
			})
			hlog.CtxWarnf(timeoutCtx, "request timeout path=%s", ctx.Path())
		case <-done:
			if panicErr != nil {
				panic(panicErr) // 交给全局recovery处理
			}
		}
	}
}

// RateLimitMiddleware 令牌桶算法限流
func RateLimitMiddleware(rate int, interval time.Duration) app.HandlerFunc {
	limiter := NewTokenBucket(rate, interval)

	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			hlog.CtxInfof(c, "[RATE LIMIT] path=%s", ctx.Path())
			ctx.AbortWithStatusJSON(429, utils.H{
				"code":    429001,
				"message": "too many requests",
			})
			return
		}
		ctx.Next(c)
	}
}

// TokenBucket 令牌桶实现
type TokenBucket struct {
	tokens chan struct{}
	rate   time.Duration
}

func NewTokenBucket(rate int, interval time.Duration) *TokenBucket {
	tb := &TokenBucket{
		tokens: make(chan struct{}, rate),
		rate:   interval,
	}

	// 预填满，再由定时器按速率补充
	for i := 0; i < rate; i++ {
		tb.tokens <- struct{}{}
	}
	go func() {
		ticker := time.NewTicker(tb.rate)
		for range ticker.C {
			for i := 0; i < rate; i++ {
				select {
				case tb.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()
	return tb
}

func (tb *TokenBucket) Allow() bool {
	select {
	case <-tb.tokens:
		return true
	default:
		return false
	}
}

// SecurityCheckMiddleware 全局安全校验中间件
func SecurityCheckMiddleware(security config.SecurityConfig) app.HandlerFunc {
	allowed := make(map[string]bool, len(security.AllowedMethods))
	for _, m := range security.AllowedMethods {
		allowed[m] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		// 防护机制1：请求体大小限制
		if int64(ctx.Request.Header.ContentLength()) > security.MaxBodySize {
			securityResponse(ctx, 413001, "request body exceeds max size", 413)
			return
		}

		// 防护机制2：HTTP方法白名单
		if !allowed[string(ctx.Method())] && string(ctx.Method()) != "OPTIONS" {
			securityResponse(ctx, 405001, "method not allowed", 405)
			return
		}

		ctx.Next(c)
	}
}

// 安全响应统一处理
func securityResponse(ctx *app.RequestContext, code int, msg string, status int) {
	hlog.Warnf("SecurityAlert[code=%d]: %s", code, msg)
	ctx.AbortWithStatusJSON(status, utils.H{
		"code":    code,
		"message": msg,
	})
}
