package service

import (
	"log"
	"strconv"
	"time"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dao"
	"wht-deposit-api/internal/dto"
	ordermodel "wht-deposit-api/internal/model/order"
)

type AuditService struct {
	auditDao *dao.AuditDao
}

func NewAuditService() *AuditService {
	return &AuditService{auditDao: dao.NewAuditDao()}
}

// Record 异步追加一条审计日志。审计失败只记日志不回滚，
// 观测性永远不能阻塞资金动作，但也绝不记录未发生的变更——
// 本方法只在对应动作成功之后被调用
func (s *AuditService) Record(entry ordermodel.DepositAuditLog) {
	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	go func(e ordermodel.DepositAuditLog) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[AuditService] goroutine panic: order_no=%d, err=%v", e.OrderNo, r)
			}
		}()
		if err := s.auditDao.Insert(&e); err != nil {
			log.Printf("[AuditService] ⚠️ 审计写入失败: order_no=%d, action=%s, err=%v", e.OrderNo, e.Action, err)
		}
	}(entry)
}

// RecordCompletion 入账提交后的三连审计：确认动作 + 状态变更 + 余额入账
func (s *AuditService) RecordCompletion(o *ordermodel.DepositOrder, prevStatus int8, action, source, operatorID, ip, details string) {
	now := time.Now()
	base := ordermodel.DepositAuditLog{
		OrderNo:    o.OrderNo,
		UID:        o.UID,
		Method:     o.Method,
		Amount:     o.Amount,
		Source:     source,
		OperatorID: operatorID,
		IP:         ip,
		CreateTime: now,
	}
	if o.Network != nil {
		base.Network = *o.Network
	}

	confirm := base
	confirm.Action = action
	confirm.PrevStatus = prevStatus
	confirm.NewStatus = prevStatus
	confirm.Details = details
	s.Record(confirm)

	change := base
	change.Action = constant.AuditActionStatusChange
	change.PrevStatus = prevStatus
	change.NewStatus = constant.DepositStatusCompleted
	s.Record(change)

	credited := base
	credited.Action = constant.AuditActionBalanceCredit
	credited.PrevStatus = constant.DepositStatusCompleted
	credited.NewStatus = constant.DepositStatusCompleted
	credited.Amount = o.NetAmount
	credited.Details = "wallet credited " + o.NetAmount.String()
	s.Record(credited)
}

// List 审计日志分页查询，未传区间时默认回看三个月
func (s *AuditService) List(filter dto.AuditLogFilter) (dto.AuditLogPage, error) {
	now := time.Now()
	from := now.AddDate(0, -3, 0)
	to := now
	if filter.DateFrom != nil {
		from = *filter.DateFrom
	}
	if filter.DateTo != nil {
		// 含当日
		to = filter.DateTo.AddDate(0, 0, 1).Add(-time.Second)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}

	rows, total, err := s.auditDao.List(filter.OrderNo, filter.Action, from, to, page, pageSize)
	if err != nil {
		return dto.AuditLogPage{}, constant.NewError(constant.CodeDatabaseError)
	}

	items := make([]dto.AuditLogItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.AuditLogItem{
			ID:         r.ID,
			OrderNo:    strconv.FormatUint(r.OrderNo, 10),
			UID:        r.UID,
			Action:     r.Action,
			Method:     r.Method,
			Network:    r.Network,
			Amount:     r.Amount.String(),
			PrevStatus: constant.DepositStatusText(r.PrevStatus),
			NewStatus:  constant.DepositStatusText(r.NewStatus),
			Details:    r.Details,
			Source:     r.Source,
			OperatorID: r.OperatorID,
			IP:         r.IP,
			CreateTime: r.CreateTime,
		})
	}
	return dto.AuditLogPage{Total: total, Page: page, Items: items}, nil
}
