package dto

// NetworkPendingSweep 单网络待归集汇总
type NetworkPendingSweep struct {
	Network      string `json:"network"`
	AddressCount int64  `json:"addressCount"`
	PendingSweep string `json:"pendingSweep"` // Σ(total_received - total_swept)
}

// SweepConfirmReq 归集完成回报（归集执行方调用）
type SweepConfirmReq struct {
	Network string `json:"network" binding:"required"`
	Address string `json:"address" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}
