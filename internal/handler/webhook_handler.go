package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/service"
	"wht-deposit-api/internal/utils"
)

type WebhookHandler struct{ svc *service.DepositOrderService }

func NewWebhookHandler() *WebhookHandler {
	return &WebhookHandler{svc: service.NewDepositOrderService()}
}

// HandleDeposit 链上观察器/支付渠道回调入口
// status: 0001=确认中, 0000=到账完成, 0005=失败
func (h *WebhookHandler) HandleDeposit(c *gin.Context) {
	var msg dto.DepositWebhookMsg
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	orderNo, err := strconv.ParseUint(msg.OrderNo, 10, 64)
	if err != nil || orderNo == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	log.Printf("收到充值回调: order=%s status=%s hash=%s", msg.OrderNo, msg.Status, msg.TxHash)

	switch msg.Status {
	case "0001":
		err = h.svc.MarkConfirming(orderNo, msg.TxHash, msg.Remark)
	case "0000":
		_, err = h.svc.AutomatedComplete(orderNo, msg.TxHash, msg.Remark)
	case "0005":
		err = h.svc.Fail(orderNo, msg.Remark, constant.AuditSourceWebhook)
	default:
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// ExpireDue 调度器触发的批量过期
func (h *WebhookHandler) ExpireDue(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	expired, err := h.svc.ExpireDue(limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"expired": expired}))
}
