package web

import (
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: 503001,
		Msg:  "系统错误",
	}
)
