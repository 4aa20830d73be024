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

type DepositHandler struct{ svc *service.DepositOrderService }

func NewDepositHandler() *DepositHandler {
	return &DepositHandler{svc: service.NewDepositOrderService()}
}

// Create 充值下单
func (h *DepositHandler) Create(c *gin.Context) {
	var req dto.CreateDepositReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.svc.Create(req, utils.GetRealClientIP(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// Get 订单查询
func (h *DepositHandler) Get(c *gin.Context) {
	orderNo, err := strconv.ParseUint(c.Param("orderNo"), 10, 64)
	if err != nil || orderNo == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.svc.Get(orderNo)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// Cancel 用户取消订单
func (h *DepositHandler) Cancel(c *gin.Context) {
	orderNo, err := strconv.ParseUint(c.Param("orderNo"), 10, 64)
	if err != nil || orderNo == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	var req dto.CancelDepositReq
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.Cancel(orderNo, constant.AuditSourceUser, "", utils.GetRealClientIP(c), req.Remark); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
