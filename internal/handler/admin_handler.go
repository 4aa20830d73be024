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

type AdminHandler struct {
	orderSvc *service.DepositOrderService
	auditSvc *service.AuditService
	statsSvc *service.StatsService
	sweepSvc *service.SweepService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		orderSvc: service.NewDepositOrderService(),
		auditSvc: service.NewAuditService(),
		statsSvc: service.NewStatsService(),
		sweepSvc: service.NewSweepService(),
	}
}

// ListOrders 订单列表
func (h *AdminHandler) ListOrders(c *gin.Context) {
	uid, _ := strconv.ParseUint(c.Query("uid"), 10, 64)
	var status *int8
	if s := c.Query("status"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
			return
		}
		sv := int8(v)
		status = &sv
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	items, total, err := h.orderSvc.List(uid, status, page, pageSize)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"total": total, "items": items}))
}

// ManualConfirm 管理员手工确认到账
func (h *AdminHandler) ManualConfirm(c *gin.Context) {
	orderNo, err := strconv.ParseUint(c.Param("orderNo"), 10, 64)
	if err != nil || orderNo == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	var req dto.ManualConfirmReq
	_ = c.ShouldBindJSON(&req)

	resp, err := h.orderSvc.ManualConfirm(orderNo, c.GetString("operator_id"), utils.GetRealClientIP(c), req.Remark)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// CancelOrder 管理员取消订单
func (h *AdminHandler) CancelOrder(c *gin.Context) {
	orderNo, err := strconv.ParseUint(c.Param("orderNo"), 10, 64)
	if err != nil || orderNo == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	var req dto.CancelDepositReq
	_ = c.ShouldBindJSON(&req)

	if err := h.orderSvc.Cancel(orderNo, constant.AuditSourceAdmin,
		c.GetString("operator_id"), utils.GetRealClientIP(c), req.Remark); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// ListAuditLogs 审计日志查询
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var filter dto.AuditLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	page, err := h.auditSvc.List(filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(page))
}

// Stats 区间统计
func (h *AdminHandler) Stats(c *gin.Context) {
	var req dto.StatsQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.statsSvc.Query(req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// SweepPending 各网络待归集金额
func (h *AdminHandler) SweepPending(c *gin.Context) {
	out, err := h.sweepSvc.PendingByNetwork()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(out))
}

// SweepConfirm 归集完成回报
func (h *AdminHandler) SweepConfirm(c *gin.Context) {
	var req dto.SweepConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	if err := h.sweepSvc.Confirm(req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
