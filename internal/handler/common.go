package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/utils"
)

// respondErr 业务错误统一出口：带稳定错误码的错误原样透出，
// 其余一律视为内部错误，不向调用方泄露细节
func respondErr(c *gin.Context, err error) {
	var bizErr constant.Error
	if errors.As(err, &bizErr) {
		resp := utils.CustomError(bizErr.Code(), bizErr.Message())
		resp.Data = bizErr.Data()
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusOK, utils.Error(constant.CodeInternalError))
}
