package constant

import "sort"

// 充值订单状态
const (
	DepositStatusPending    int8 = 0 // 待支付/待上链
	DepositStatusConfirming int8 = 1 // 确认中（链上已见首个确认）
	DepositStatusCompleted  int8 = 2 // 已完成入账
	DepositStatusFailed     int8 = 3 // 失败
	DepositStatusCancelled  int8 = 4 // 已取消
	DepositStatusExpired    int8 = 5 // 已过期
)

// 充值方式
const (
	MethodCrypto = "CRYPTO"
	MethodCard   = "CARD"
	MethodPaypal = "PAYPAL"
)

// 链网络（仅 CRYPTO 订单使用）
const (
	NetworkTRC20 = "TRC20"
	NetworkERC20 = "ERC20"
	NetworkBEP20 = "BEP20"
)

// 限额规则作用域
const (
	LimitScopeGlobal   = "GLOBAL"
	LimitScopeUser     = "USER"
	LimitScopeVipLevel = "VIP_LEVEL"
)

// 审计事件动作
const (
	AuditActionCreated        = "DEPOSIT_CREATED"
	AuditActionManualConfirm  = "MANUAL_CONFIRM"
	AuditActionWebhookConfirm = "WEBHOOK_CONFIRM"
	AuditActionStatusChange   = "STATUS_CHANGE"
	AuditActionBalanceCredit  = "BALANCE_CREDITED"
	AuditActionFailed         = "DEPOSIT_FAILED"
	AuditActionCancelled      = "DEPOSIT_CANCELLED"
	AuditActionExpired        = "DEPOSIT_EXPIRED"
)

// 审计事件来源
const (
	AuditSourceAdmin   = "admin"
	AuditSourceWebhook = "webhook"
	AuditSourceSystem  = "system"
	AuditSourceUser    = "user"
)

// 交易流水类型
const (
	TransactionTypeDeposit = "DEPOSIT"
)

// depositTransitions 状态机前向迁移表，终态无出边
var depositTransitions = map[int8][]int8{
	DepositStatusPending:    {DepositStatusConfirming, DepositStatusCompleted, DepositStatusFailed, DepositStatusCancelled, DepositStatusExpired},
	DepositStatusConfirming: {DepositStatusCompleted, DepositStatusFailed, DepositStatusCancelled},
}

// CanTransit 判断状态迁移是否合法
func CanTransit(from, to int8) bool {
	for _, next := range depositTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionSources 返回允许迁移到目标状态的全部前置状态，
// 条件更新的状态白名单统一从这里取，避免散落的硬编码状态列表
func TransitionSources(to int8) []int8 {
	var out []int8
	for from := range depositTransitions {
		if CanTransit(from, to) {
			out = append(out, from)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsTerminalStatus 判断是否终态
func IsTerminalStatus(status int8) bool {
	switch status {
	case DepositStatusCompleted, DepositStatusFailed, DepositStatusCancelled, DepositStatusExpired:
		return true
	}
	return false
}

// DepositStatusText 状态展示值
func DepositStatusText(status int8) string {
	switch status {
	case DepositStatusPending:
		return "PENDING"
	case DepositStatusConfirming:
		return "CONFIRMING"
	case DepositStatusCompleted:
		return "COMPLETED"
	case DepositStatusFailed:
		return "FAILED"
	case DepositStatusCancelled:
		return "CANCELLED"
	case DepositStatusExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// ValidMethod 校验充值方式
func ValidMethod(method string) bool {
	switch method {
	case MethodCrypto, MethodCard, MethodPaypal:
		return true
	}
	return false
}

// ValidNetwork 校验链网络
func ValidNetwork(network string) bool {
	switch network {
	case NetworkTRC20, NetworkERC20, NetworkBEP20:
		return true
	}
	return false
}

// ValidLimitScope 校验限额作用域
func ValidLimitScope(scope string) bool {
	switch scope {
	case LimitScopeGlobal, LimitScopeUser, LimitScopeVipLevel:
		return true
	}
	return false
}
