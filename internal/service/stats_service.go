package service

import (
	"time"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dao"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/utils/timeutil"
)

type StatsService struct {
	statsDao *dao.StatsDao
}

func NewStatsService() *StatsService {
	return &StatsService{statsDao: &dao.StatsDao{}}
}

// Query 区间统计：只读快照，与写入并发安全（最终一致）
func (s *StatsService) Query(req dto.StatsQueryReq) (dto.DepositStatsResp, error) {
	var resp dto.DepositStatsResp

	from, err := timeutil.ParseDate(req.DateFrom)
	if err != nil {
		return resp, constant.NewError(constant.CodeInvalidParams)
	}
	to, err := timeutil.ParseDate(req.DateTo)
	if err != nil || to.Before(from) {
		return resp, constant.NewError(constant.CodeInvalidParams)
	}
	// 右边界含当日
	to = to.AddDate(0, 0, 1).Add(-time.Second)

	resp, err = s.statsDao.Totals(from, to)
	if err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	if resp.ByMethod, err = s.statsDao.ByMethod(from, to); err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}

	statusRows, err := s.statsDao.ByStatus(from, to)
	if err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	resp.ByStatus = make([]dto.StatusStat, 0, len(statusRows))
	for _, row := range statusRows {
		resp.ByStatus = append(resp.ByStatus, dto.StatusStat{
			Status: constant.DepositStatusText(row.Status),
			Count:  row.Count,
		})
	}

	if resp.Daily, err = s.statsDao.Daily(from, to); err != nil {
		return resp, constant.NewError(constant.CodeDatabaseError)
	}
	return resp, nil
}
