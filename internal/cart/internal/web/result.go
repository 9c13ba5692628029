package web

import (
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: 502001,
		Msg:  "系统错误",
	}
	invalidQuantityResult = ginx.Result{
		Code: 502002,
		Msg:  "商品数量非法",
	}
)
