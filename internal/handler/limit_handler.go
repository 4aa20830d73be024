package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/service"
	"wht-deposit-api/internal/utils"
)

type LimitHandler struct{ svc *service.LimitService }

func NewLimitHandler() *LimitHandler {
	return &LimitHandler{svc: service.NewLimitService()}
}

// List 限额规则列表
func (h *LimitHandler) List(c *gin.Context) {
	rules, err := h.svc.ListRules()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(rules))
}

// Create 新建限额规则
func (h *LimitHandler) Create(c *gin.Context) {
	var req dto.SaveLimitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	if err := h.svc.SaveRule(0, req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// Update 更新限额规则
func (h *LimitHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	var req dto.SaveLimitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	if err := h.svc.SaveRule(id, req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// Delete 删除限额规则
func (h *LimitHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	if err := h.svc.DeleteRule(id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
