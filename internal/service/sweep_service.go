package service

import (
	"github.com/shopspring/decimal"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dao"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/logger"
)

type SweepService struct {
	addressDao *dao.AddressDao
	ledgerDao  *dao.LedgerDao
}

func NewSweepService() *SweepService {
	return &SweepService{
		addressDao: &dao.AddressDao{},
		ledgerDao:  &dao.LedgerDao{},
	}
}

// PendingByNetwork 各网络待归集金额汇总（只读）
func (s *SweepService) PendingByNetwork() ([]dto.NetworkPendingSweep, error) {
	out, err := s.addressDao.PendingSweepByNetwork()
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	return out, nil
}

// Confirm 归集执行方回报归集完成，累加 total_swept
func (s *SweepService) Confirm(req dto.SweepConfirmReq) error {
	if !constant.ValidNetwork(req.Network) {
		return constant.NewError(constant.CodeSweepAddressInvalid)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return constant.NewError(constant.CodeInvalidParams)
	}

	if err := s.ledgerDao.ConfirmSweep(req.Network, req.Address, amount); err != nil {
		switch err {
		case dao.ErrAddressNotFound:
			return constant.NewError(constant.CodeSweepAddressInvalid)
		case dao.ErrSweepExceedsReceive:
			return constant.NewError(constant.CodeSweepExceedsReceived)
		default:
			logger.Ledger.Errorf("归集确认失败: network=%s address=%s err=%v", req.Network, req.Address, err)
			return constant.NewError(constant.CodeDatabaseError)
		}
	}

	logger.Ledger.Infof("✅ 归集确认: network=%s address=%s amount=%s", req.Network, req.Address, amount.String())
	return nil
}
