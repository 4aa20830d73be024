package service

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"wht-deposit-api/internal/config"
	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dao"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/event"
	"wht-deposit-api/internal/idgen"
	"wht-deposit-api/internal/logger"
	ordermodel "wht-deposit-api/internal/model/order"
	"wht-deposit-api/internal/notify"
	rediskey "wht-deposit-api/internal/types/redis-key"
	"wht-deposit-api/internal/utils"
)

type DepositOrderService struct {
	orderDao   *dao.DepositOrderDao
	ledgerDao  *dao.LedgerDao
	addressDao *dao.AddressDao
	limitSvc   *LimitService
	auditSvc   *AuditService
}

func NewDepositOrderService() *DepositOrderService {
	return &DepositOrderService{
		orderDao:   dao.NewDepositOrderDao(),
		ledgerDao:  &dao.LedgerDao{},
		addressDao: &dao.AddressDao{},
		limitSvc:   NewLimitService(),
		auditSvc:   NewAuditService(),
	}
}

// Create 充值下单：限额评估通过后落 PENDING 订单
func (s *DepositOrderService) Create(req dto.CreateDepositReq, ip string) (dto.CreateDepositResp, error) {
	var resp dto.CreateDepositResp

	// 1) 参数与方式校验
	if !constant.ValidMethod(req.Method) {
		return resp, constant.NewError(constant.CodeOrderMethodInvalid)
	}
	var network *string
	if req.Method == constant.MethodCrypto {
		if !constant.ValidNetwork(req.Network) {
			return resp, constant.NewError(constant.CodeOrderNetworkInvalid)
		}
		network = utils.PtrString(req.Network)
	} else if req.Network != "" {
		return resp, constant.NewError(constant.CodeOrderNetworkInvalid)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return resp, constant.NewError(constant.CodeOrderAmountInvalid)
	}
	fee := decimal.Zero
	if req.Fee != "" {
		if fee, err = decimal.NewFromString(req.Fee); err != nil || fee.IsNegative() {
			return resp, constant.NewError(constant.CodeOrderFeeInvalid)
		}
	}
	// 实际入账金额下单时一次性算死，后续任何路径不再重算
	netAmount := amount.Sub(fee)
	if !netAmount.IsPositive() {
		return resp, constant.NewError(constant.CodeOrderFeeInvalid)
	}

	// 2) 限额评估（下单前置，从严命中所有匹配规则）
	violations, err := s.limitSvc.Check(dto.LimitCheckReq{
		UID:      req.UID,
		VipLevel: req.VipLevel,
		Method:   req.Method,
		Network:  req.Network,
		Amount:   amount,
	})
	if err != nil {
		logger.Deposit.Errorf("限额评估失败: uid=%d, err=%v", req.UID, err)
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	if len(violations) > 0 {
		top := violations[0]
		return resp, constant.NewErrorWithMessage(top.Code, top.Message).WithData(violations)
	}

	// 3) 链上充值校验收款地址
	var address string
	if req.Method == constant.MethodCrypto {
		addr, err := s.addressDao.GetActive(req.UID, req.Network)
		if err != nil {
			return resp, constant.NewError(constant.CodeDatabaseError)
		}
		if addr == nil {
			return resp, constant.NewError(constant.CodeAddressNotFound)
		}
		address = addr.Address
	}

	// 4) 生成全局订单号并落库
	now := time.Now()
	expireAt := now.Add(time.Duration(config.C.Deposit.ExpiryMinutes) * time.Minute)
	m := ordermodel.DepositOrder{
		OrderNo:    idgen.NewOrderNo(),
		UID:        req.UID,
		Method:     req.Method,
		Network:    network,
		Amount:     amount,
		Fee:        fee,
		NetAmount:  netAmount,
		Status:     constant.DepositStatusPending,
		VipLevel:   req.VipLevel,
		ExpireAt:   &expireAt,
		CreateTime: now,
		UpdateTime: now,
	}
	if err := s.orderDao.Insert(&m); err != nil {
		logger.Deposit.Errorf("充值订单落库失败: uid=%d, err=%v", req.UID, err)
		return resp, constant.NewError(constant.CodeDatabaseError)
	}

	// 5) 缓存到 redis（短期）
	s.cacheOrder(&m)

	// 6) 记录下单审计
	entry := ordermodel.DepositAuditLog{
		OrderNo:    m.OrderNo,
		UID:        m.UID,
		Action:     constant.AuditActionCreated,
		Method:     m.Method,
		Amount:     m.Amount,
		PrevStatus: constant.DepositStatusPending,
		NewStatus:  constant.DepositStatusPending,
		Source:     constant.AuditSourceUser,
		IP:         ip,
		CreateTime: now,
	}
	if network != nil {
		entry.Network = *network
	}
	s.auditSvc.Record(entry)

	resp = dto.CreateDepositResp{
		OrderNo:   strconv.FormatUint(m.OrderNo, 10),
		Status:    constant.DepositStatusText(m.Status),
		Amount:    amount.String(),
		Fee:       fee.String(),
		NetAmount: netAmount.String(),
		Address:   address,
		ExpireAt:  expireAt.Format(time.RFC3339),
	}
	return resp, nil
}

// Get 订单查询，redis 优先
func (s *DepositOrderService) Get(orderNo uint64) (dto.DepositOrderResp, error) {
	var resp dto.DepositOrderResp

	cacheKey := rediskey.DepositOrderKey(orderNo)
	if sjson, err := dal.RedisClient.Get(dal.RedisCtx, cacheKey).Result(); err == nil {
		var m ordermodel.DepositOrder
		if json.Unmarshal([]byte(sjson), &m) == nil && m.OrderNo == orderNo {
			return toOrderResp(&m), nil
		}
	}

	m, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	if m == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}
	s.cacheOrder(m)
	return toOrderResp(m), nil
}

// List 运营后台订单列表
func (s *DepositOrderService) List(uid uint64, status *int8, page, pageSize int) ([]dto.DepositOrderResp, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	rows, total, err := s.orderDao.List(uid, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, constant.NewError(constant.CodeDatabaseError)
	}
	out := make([]dto.DepositOrderResp, 0, len(rows))
	for i := range rows {
		out = append(out, toOrderResp(&rows[i]))
	}
	return out, total, nil
}

// MarkConfirming 观察器上报确认中（PENDING -> CONFIRMING），回填链上hash
func (s *DepositOrderService) MarkConfirming(orderNo uint64, txHash, remark string) error {
	now := time.Now()
	vo := dto.UpdateDepositOrderVo{
		Status:       constant.DepositStatusConfirming,
		StatusRemark: remark,
		ConfirmedAt:  &now,
		UpdateTime:   now,
	}
	if txHash != "" {
		vo.TxHash = &txHash
	}
	affected, err := s.orderDao.UpdateStatusIf(orderNo,
		constant.TransitionSources(constant.DepositStatusConfirming), vo)
	if err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	if affected == 0 {
		return s.conflictError(orderNo)
	}

	s.dropCache(orderNo)
	s.recordTransition(orderNo, constant.DepositStatusPending, constant.DepositStatusConfirming,
		constant.AuditSourceWebhook, "", "", remark)
	return nil
}

// ManualConfirm 管理员手工确认完结订单
func (s *DepositOrderService) ManualConfirm(orderNo uint64, adminID, ip, remark string) (dto.DepositOrderResp, error) {
	return s.complete(orderNo, completeParams{
		action:     constant.AuditActionManualConfirm,
		source:     constant.AuditSourceAdmin,
		operatorID: adminID,
		ip:         ip,
		remark:     manualConfirmRemark(remark),
	})
}

// manualConfirmRemark 管理员未填备注时落默认备注
func manualConfirmRemark(remark string) string {
	if remark == "" {
		return "Manually confirmed by admin"
	}
	return remark
}

// AutomatedComplete 观察器/回调确认到账完结订单
func (s *DepositOrderService) AutomatedComplete(orderNo uint64, txHash, remark string) (dto.DepositOrderResp, error) {
	return s.complete(orderNo, completeParams{
		action: constant.AuditActionWebhookConfirm,
		source: constant.AuditSourceWebhook,
		txHash: txHash,
		remark: remark,
	})
}

type completeParams struct {
	action     string
	source     string
	operatorID string
	ip         string
	txHash     string
	remark     string
}

// complete 完结订单：入账事务 + post-commit 审计/缓存/事件
func (s *DepositOrderService) complete(orderNo uint64, p completeParams) (dto.DepositOrderResp, error) {
	var resp dto.DepositOrderResp

	order, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	if order == nil {
		return resp, constant.NewError(constant.CodeOrderNotFound)
	}
	prevStatus := order.Status

	req := dto.CreditRequest{
		OrderNo:     orderNo,
		UID:         order.UID,
		Method:      order.Method,
		NetAmount:   order.NetAmount,
		Fee:         order.Fee,
		Remark:      p.remark,
		CompletedAt: time.Now(),
	}
	if order.Network != nil {
		req.Network = *order.Network
	}
	if p.txHash != "" {
		req.TxHash = &p.txHash
	}

	if err := s.ledgerDao.CreditDeposit(req); err != nil {
		return resp, s.mapCreditError(order, err, p)
	}

	// ---- 以下均为 post-commit 动作，失败不影响已入账事实 ----
	completed, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil || completed == nil {
		completed = order
		completed.Status = constant.DepositStatusCompleted
		completed.CompletedAt = utils.PtrTime(req.CompletedAt)
	}
	s.cacheOrder(completed)

	s.auditSvc.RecordCompletion(completed, prevStatus, p.action, p.source, p.operatorID, p.ip, p.remark)

	network := ""
	if completed.Network != nil {
		network = *completed.Network
	}
	event.PublishDepositSuccess(&dto.DepositSuccessMsg{
		OrderNo:     strconv.FormatUint(orderNo, 10),
		UID:         completed.UID,
		Method:      completed.Method,
		Network:     network,
		Amount:      completed.Amount.String(),
		NetAmount:   completed.NetAmount.String(),
		CompletedAt: req.CompletedAt,
	})
	event.PublishDepositStat(&dto.DepositStatMsg{
		OrderNo:     strconv.FormatUint(orderNo, 10),
		UID:         completed.UID,
		Method:      completed.Method,
		Network:     network,
		Amount:      completed.Amount.String(),
		Fee:         completed.Fee.String(),
		Status:      constant.DepositStatusCompleted,
		CompletedAt: req.CompletedAt,
	})

	logger.Ledger.Infof("✅ 充值入账完成: order=%d uid=%d net=%s source=%s",
		orderNo, completed.UID, completed.NetAmount.String(), p.source)
	return toOrderResp(completed), nil
}

// mapCreditError 入账事务错误到业务错误码的映射
func (s *DepositOrderService) mapCreditError(order *ordermodel.DepositOrder, err error, p completeParams) error {
	switch {
	case errors.Is(err, dao.ErrOrderNotFound):
		return constant.NewError(constant.CodeOrderNotFound)
	case errors.Is(err, dao.ErrAlreadyCredited):
		// 并发完结的败者：余额只会被加过一次
		return constant.NewError(constant.CodeOrderAlreadyCompleted)
	case errors.Is(err, dao.ErrOrderNotCreditable):
		if p.source == constant.AuditSourceAdmin {
			return constant.NewError(constant.CodeOrderNotConfirmable)
		}
		return constant.NewError(constant.CodeOrderStatusInvalid)
	case errors.Is(err, dao.ErrAddressNotFound):
		return constant.NewError(constant.CodeAddressNotFound)
	default:
		logger.Ledger.Errorf("❌ 充值入账失败，已整体回滚: order=%d err=%v", order.OrderNo, err)
		notify.NotifyDepositAlert("ERROR", "充值入账失败", map[string]string{
			"orderNo": strconv.FormatUint(order.OrderNo, 10),
			"uid":     strconv.FormatUint(order.UID, 10),
			"method":  order.Method,
			"amount":  order.Amount.String(),
			"error":   err.Error(),
		})
		return constant.NewError(constant.CodeCreditFailed)
	}
}

// Fail 订单失败（webhook 上报确认失败等）
func (s *DepositOrderService) Fail(orderNo uint64, remark, source string) error {
	return s.terminate(orderNo, constant.DepositStatusFailed,
		constant.AuditActionFailed, source, "", "", remark)
}

// Cancel 取消订单（用户或管理员）
func (s *DepositOrderService) Cancel(orderNo uint64, source, operatorID, ip, remark string) error {
	return s.terminate(orderNo, constant.DepositStatusCancelled,
		constant.AuditActionCancelled, source, operatorID, ip, remark)
}

// Expire 订单过期，只允许从 PENDING 过期，调度器任何时候调用都必须被接受
func (s *DepositOrderService) Expire(orderNo uint64) error {
	return s.terminate(orderNo, constant.DepositStatusExpired,
		constant.AuditActionExpired, constant.AuditSourceSystem, "", "", "expired by scheduler")
}

// ExpireDue 批量过期到点订单（调度器入口）
func (s *DepositOrderService) ExpireDue(limit int) (int, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.orderDao.ListExpirable(time.Now(), limit)
	if err != nil {
		return 0, constant.NewError(constant.CodeDatabaseError)
	}
	expired := 0
	for i := range rows {
		if err := s.Expire(rows[i].OrderNo); err != nil {
			// 与完结竞争失败属正常，继续处理下一单
			log.Printf("过期竞争跳过: order=%d err=%v", rows[i].OrderNo, err)
			continue
		}
		expired++
	}
	return expired, nil
}

// terminate 进入终态的公共路径，前置状态白名单由状态机迁移表给出
func (s *DepositOrderService) terminate(orderNo uint64, to int8, action, source, operatorID, ip, remark string) error {
	before, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	if before == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}

	vo := dto.UpdateDepositOrderVo{
		Status:       to,
		StatusRemark: remark,
		UpdateTime:   time.Now(),
	}
	affected, err := s.orderDao.UpdateStatusIf(orderNo, constant.TransitionSources(to), vo)
	if err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	if affected == 0 {
		return s.conflictError(orderNo)
	}

	s.dropCache(orderNo)
	s.recordTransitionFull(before, before.Status, to, action, source, operatorID, ip, remark)
	return nil
}

// conflictError 条件更新零行时区分 NotFound 与状态冲突
func (s *DepositOrderService) conflictError(orderNo uint64) error {
	cur, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	if cur == nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}
	if !constant.IsTerminalStatus(cur.Status) {
		// 非终态间的非法迁移，如 CONFIRMING 订单不允许过期
		return constant.NewError(constant.CodeOrderStatusInvalid)
	}
	switch cur.Status {
	case constant.DepositStatusCompleted:
		return constant.NewError(constant.CodeOrderAlreadyCompleted)
	case constant.DepositStatusExpired:
		return constant.NewError(constant.CodeOrderExpired)
	default:
		return constant.NewError(constant.CodeOrderStatusInvalid)
	}
}

func (s *DepositOrderService) recordTransition(orderNo uint64, prev, next int8, source, operatorID, ip, remark string) {
	order, err := s.orderDao.GetByOrderNo(orderNo)
	if err != nil || order == nil {
		return
	}
	s.recordTransitionFull(order, prev, next, constant.AuditActionStatusChange, source, operatorID, ip, remark)
}

func (s *DepositOrderService) recordTransitionFull(order *ordermodel.DepositOrder, prev, next int8, action, source, operatorID, ip, remark string) {
	entry := ordermodel.DepositAuditLog{
		OrderNo:    order.OrderNo,
		UID:        order.UID,
		Action:     action,
		Method:     order.Method,
		Amount:     order.Amount,
		PrevStatus: prev,
		NewStatus:  next,
		Details:    remark,
		Source:     source,
		OperatorID: operatorID,
		IP:         ip,
	}
	if order.Network != nil {
		entry.Network = *order.Network
	}
	s.auditSvc.Record(entry)
}

func (s *DepositOrderService) cacheOrder(m *ordermodel.DepositOrder) {
	if dal.RedisClient == nil {
		return
	}
	_ = dal.RedisClient.Set(dal.RedisCtx, rediskey.DepositOrderKey(m.OrderNo), utils.MapToJSON(m), 10*time.Minute).Err()
}

func (s *DepositOrderService) dropCache(orderNo uint64) {
	if dal.RedisClient == nil {
		return
	}
	_ = dal.RedisClient.Del(dal.RedisCtx, rediskey.DepositOrderKey(orderNo)).Err()
}

func toOrderResp(m *ordermodel.DepositOrder) dto.DepositOrderResp {
	resp := dto.DepositOrderResp{
		OrderNo:      strconv.FormatUint(m.OrderNo, 10),
		UID:          m.UID,
		Method:       m.Method,
		Amount:       m.Amount.String(),
		Fee:          m.Fee.String(),
		NetAmount:    m.NetAmount.String(),
		Status:       constant.DepositStatusText(m.Status),
		StatusRemark: m.StatusRemark,
		ConfirmedAt:  m.ConfirmedAt,
		CompletedAt:  m.CompletedAt,
		CreateTime:   m.CreateTime,
	}
	if m.Network != nil {
		resp.Network = *m.Network
	}
	if m.TxHash != nil {
		resp.TxHash = *m.TxHash
	}
	return resp
}
