package dto

// StatsQueryReq 统计查询条件
type StatsQueryReq struct {
	DateFrom string `form:"dateFrom" binding:"required"`
	DateTo   string `form:"dateTo" binding:"required"`
}

// MethodStat 按充值方式的统计
type MethodStat struct {
	Method          string `json:"method"`
	OrderCount      int64  `json:"orderCount"`
	CompletedCount  int64  `json:"completedCount"`
	CompletedAmount string `json:"completedAmount"`
}

// StatusStat 按状态的统计
type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DailyStat 按日的统计
type DailyStat struct {
	Date            string `json:"date"`
	OrderCount      int64  `json:"orderCount"`
	CompletedCount  int64  `json:"completedCount"`
	CompletedAmount string `json:"completedAmount"`
}

// DepositStatsResp 区间统计响应
type DepositStatsResp struct {
	TotalOrders     int64        `json:"totalOrders"`
	CompletedOrders int64        `json:"completedOrders"`
	TotalAmount     string       `json:"totalAmount"` // 已完成订单金额合计
	TotalFee        string       `json:"totalFee"`    // 已完成订单手续费合计
	ByMethod        []MethodStat `json:"byMethod"`
	ByStatus        []StatusStat `json:"byStatus"`
	Daily           []DailyStat  `json:"daily"`
}
