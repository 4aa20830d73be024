package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},
	CodeRedisError:    {"缓存服务错误", "Cache error"},
	CodeInternalError: {"内部服务错误", "Internal error"},
	CodeMQError:       {"消息队列异常", "Message queue error"},

	// 参数错误
	CodeInvalidParams:     {"参数格式错误", "Invalid parameters"},
	CodeMissingParams:     {"缺少必要参数", "Missing parameters"},
	CodeParamsFormatError: {"参数格式错误", "Parameter format error"},
	CodeParamsTypeError:   {"参数类型错误", "Parameter type error"},
	CodeParamsRangeError:  {"参数范围错误", "Parameter out of range"},

	// 认证授权
	CodeUnauthorized:     {"未授权访问", "Unauthorized"},
	CodeSignatureError:   {"签名验证失败", "Bad signature"},
	CodeAccessDenied:     {"访问权限不足", "Access denied"},
	CodeIPNotWhitelisted: {"IP不在白名单内", "IP not whitelisted"},
	CodeAdminTokenError:  {"管理令牌无效", "Invalid admin token"},

	// 充值订单
	CodeOrderNotFound:         {"充值订单不存在", "Deposit order not found"},
	CodeOrderAlreadyCompleted: {"订单已完成入账", "Order already completed"},
	CodeOrderNotConfirmable:   {"订单处于终态，无法人工确认", "Order cannot be manually confirmed"},
	CodeOrderStatusInvalid:    {"订单状态无效", "Order status invalid"},
	CodeOrderAmountInvalid:    {"订单金额无效", "Order amount invalid"},
	CodeOrderFeeInvalid:       {"手续费无效", "Order fee invalid"},
	CodeOrderExpired:          {"订单已过期", "Order expired"},
	CodeOrderAlreadyExist:     {"订单已存在", "Order already exists"},
	CodeOrderMethodInvalid:    {"充值方式无效", "Deposit method invalid"},
	CodeOrderNetworkInvalid:   {"充值网络无效", "Deposit network invalid"},

	// 限额
	CodeLimitBelowMin:     {"充值金额低于单笔最低限额", "Amount below minimum"},
	CodeLimitAboveMax:     {"充值金额超过单笔最高限额", "Amount above maximum"},
	CodeLimitDailyAmount:  {"超过当日充值限额", "Daily deposit limit exceeded"},
	CodeLimitWeeklyAmount: {"超过本周充值限额", "Weekly deposit limit exceeded"},
	CodeLimitMonthAmount:  {"超过本月充值限额", "Monthly deposit limit exceeded"},
	CodeLimitDailyCount:   {"超过当日充值笔数限制", "Daily deposit count exceeded"},
	CodeLimitWeeklyCount:  {"超过本周充值笔数限制", "Weekly deposit count exceeded"},
	CodeLimitMonthCount:   {"超过本月充值笔数限制", "Monthly deposit count exceeded"},
	CodeLimitRuleNotFound: {"限额规则不存在", "Limit rule not found"},
	CodeLimitRuleInvalid:  {"限额规则配置无效", "Limit rule invalid"},

	// 钱包与地址
	CodeWalletNotFound:  {"用户钱包不存在", "Wallet not found"},
	CodeAddressNotFound: {"未找到可用充值地址", "Deposit address not found"},
	CodeAddressInactive: {"充值地址已停用", "Deposit address inactive"},
	CodeCreditFailed:    {"入账失败，余额未发生变动", "Credit failed, balance unchanged"},

	// 归集
	CodeSweepExceedsReceived: {"归集金额超过地址累计入账金额", "Sweep exceeds received total"},
	CodeSweepAddressInvalid:  {"归集地址无效或已停用", "Sweep address invalid"},

	// 通知
	CodeNotifyFailed: {"充值成功通知发送失败", "Deposit notification failed"},
}
