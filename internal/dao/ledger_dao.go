package dao

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/idgen"
	mainmodel "wht-deposit-api/internal/model/main"
	ordermodel "wht-deposit-api/internal/model/order"
)

// 入账事务的竞争/校验结果，由 service 层映射为业务错误码
var (
	ErrOrderNotFound       = errors.New("deposit order not found")
	ErrAlreadyCredited     = errors.New("deposit order already credited")
	ErrOrderNotCreditable  = errors.New("deposit order not in creditable status")
	ErrAddressNotFound     = errors.New("deposit address not found or inactive")
	ErrSweepExceedsReceive = errors.New("sweep amount exceeds received")
)

type LedgerDao struct{}

// CreditDeposit 充值入账事务：订单完结 + 钱包加款 + 地址累计 + 账变流水，
// 全部动作在同一事务内提交，任一步失败整体回滚
func (r *LedgerDao) CreditDeposit(req dto.CreditRequest) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		// 1. 条件更新做幂等闸门：可完结状态由状态机迁移表给出，
		//    受影响行数为 0 说明并发方已处理或状态非法
		completedAt := req.CompletedAt
		if completedAt.IsZero() {
			completedAt = time.Now()
		}
		updates := map[string]interface{}{
			"status":        constant.DepositStatusCompleted,
			"status_remark": req.Remark,
			"completed_at":  completedAt,
			// PENDING 直达完结时确认时间与完成时间取同一时刻，已确认的不覆盖
			"confirmed_at": gorm.Expr("COALESCE(confirmed_at, ?)", completedAt),
			"update_time":  time.Now(),
		}
		if req.TxHash != nil && *req.TxHash != "" {
			updates["tx_hash"] = *req.TxHash
		}
		res := tx.Model(&ordermodel.DepositOrder{}).
			Where("order_no = ? AND status IN ?", req.OrderNo,
				constant.TransitionSources(constant.DepositStatusCompleted)).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("complete order failed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var cur ordermodel.DepositOrder
			err := tx.Where("order_no = ?", req.OrderNo).First(&cur).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			if err != nil {
				return fmt.Errorf("recheck order failed: %w", err)
			}
			if cur.Status == constant.DepositStatusCompleted {
				return ErrAlreadyCredited
			}
			return ErrOrderNotCreditable
		}

		// 2. 钱包余额原子加款，不做读-改-写
		walletRes := tx.Model(&mainmodel.Wallet{}).
			Where("uid = ?", req.UID).
			Updates(map[string]interface{}{
				"balance":     gorm.Expr("balance + ?", req.NetAmount),
				"update_time": time.Now(),
			})
		if walletRes.Error != nil {
			return fmt.Errorf("credit wallet failed: %w", walletRes.Error)
		}
		if walletRes.RowsAffected == 0 {
			// 首次充值自动开户
			w := mainmodel.Wallet{
				UID:        req.UID,
				Balance:    req.NetAmount,
				CreateTime: time.Now(),
				UpdateTime: time.Now(),
			}
			if err := tx.Create(&w).Error; err != nil {
				return fmt.Errorf("create wallet failed: %w", err)
			}
		}

		// 3. 链上充值更新地址累计，口径与钱包一致按净额累加
		if req.Method == constant.MethodCrypto && req.Network != "" {
			addrRes := tx.Model(&mainmodel.DepositAddress{}).
				Where("uid = ? AND network = ? AND is_active = 1", req.UID, req.Network).
				Updates(map[string]interface{}{
					"total_received":     gorm.Expr("total_received + ?", req.NetAmount),
					"total_transactions": gorm.Expr("total_transactions + 1"),
					"last_received_at":   completedAt,
					"update_time":        time.Now(),
				})
			if addrRes.Error != nil {
				return fmt.Errorf("update deposit address failed: %w", addrRes.Error)
			}
			if addrRes.RowsAffected == 0 {
				return ErrAddressNotFound
			}
		}

		// 4. 写入账变流水，(related_id, type) 唯一索引兜底幂等
		txn := mainmodel.Transaction{
			ID:          idgen.NewTxnID(),
			UID:         req.UID,
			Type:        constant.TransactionTypeDeposit,
			Amount:      req.NetAmount,
			Fee:         req.Fee,
			Status:      1,
			RelatedID:   req.OrderNo,
			CompletedAt: &completedAt,
			CreateTime:  time.Now(),
		}
		if err := tx.Create(&txn).Error; err != nil {
			return fmt.Errorf("create transaction record failed: %w", err)
		}
		return nil
	})
}

// ConfirmSweep 热钱包归集确认：total_swept 只增且不得超过 total_received
func (r *LedgerDao) ConfirmSweep(network, address string, amount decimal.Decimal) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&mainmodel.DepositAddress{}).
			Where("address = ? AND network = ? AND is_active = 1", address, network).
			Where("total_swept + ? <= total_received", amount).
			Updates(map[string]interface{}{
				"total_swept": gorm.Expr("total_swept + ?", amount),
				"update_time": time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("confirm sweep failed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var cur mainmodel.DepositAddress
			err := tx.Where("address = ? AND network = ?", address, network).First(&cur).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			if err != nil {
				return fmt.Errorf("recheck address failed: %w", err)
			}
			if cur.IsActive != 1 {
				return ErrAddressNotFound
			}
			return ErrSweepExceedsReceive
		}
		return nil
	})
}
