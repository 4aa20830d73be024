package constant

// 业务级错误码 (2xxx)

// 充值订单相关错误码
const (
	CodeOrderNotFound         = 2100 // 充值订单不存在，请检查订单号是否正确
	CodeOrderAlreadyCompleted = 2101 // 订单已完成入账，请勿重复确认
	CodeOrderNotConfirmable   = 2102 // 订单处于终态，无法人工确认
	CodeOrderStatusInvalid    = 2103 // 订单状态无效，无法进行当前操作
	CodeOrderAmountInvalid    = 2104 // 订单金额无效，请检查金额格式和范围
	CodeOrderFeeInvalid       = 2105 // 手续费无效，手续费不能大于等于订单金额
	CodeOrderExpired          = 2106 // 订单已过期，请重新创建订单
	CodeOrderAlreadyExist     = 2107 // 订单已存在，请勿重复提交
	CodeOrderMethodInvalid    = 2108 // 充值方式无效，请选择支持的充值方式
	CodeOrderNetworkInvalid   = 2109 // 充值网络无效，请选择支持的链网络
)

// 限额相关错误码
const (
	CodeLimitBelowMin     = 2400 // 充值金额低于单笔最低限额
	CodeLimitAboveMax     = 2401 // 充值金额超过单笔最高限额
	CodeLimitDailyAmount  = 2402 // 超过当日充值限额
	CodeLimitWeeklyAmount = 2403 // 超过本周充值限额
	CodeLimitMonthAmount  = 2404 // 超过本月充值限额
	CodeLimitDailyCount   = 2405 // 超过当日充值笔数限制
	CodeLimitWeeklyCount  = 2406 // 超过本周充值笔数限制
	CodeLimitMonthCount   = 2407 // 超过本月充值笔数限制
	CodeLimitRuleNotFound = 2408 // 限额规则不存在
	CodeLimitRuleInvalid  = 2409 // 限额规则配置无效
)

// 钱包与充值地址相关错误码
const (
	CodeWalletNotFound  = 2500 // 用户钱包不存在
	CodeAddressNotFound = 2501 // 未找到可用充值地址，请先分配地址
	CodeAddressInactive = 2502 // 充值地址已停用
	CodeCreditFailed    = 2503 // 入账失败，余额未发生变动，请重试
)

// 归集相关错误码
const (
	CodeSweepExceedsReceived = 2600 // 归集金额超过地址累计入账金额
	CodeSweepAddressInvalid  = 2601 // 归集地址无效或已停用
)

// 通知相关错误码
const (
	CodeNotifyFailed = 2700 // 充值成功通知发送失败
)
