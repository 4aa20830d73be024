package constant

// 系统级错误码 (1xxx)

const (
	CodeSuccess       = 0    // 操作成功
	CodeSystemError   = 1000 // 系统内部错误
	CodeDatabaseError = 1001 // 数据库操作失败，包括连接失败、查询错误、事务异常等
	CodeRedisError    = 1002 // Redis缓存服务错误
	CodeInternalError = 1003 // 内部服务错误，业务逻辑处理过程中出现的未预期异常
	CodeMQError       = 1004 // 消息队列发布或消费异常
)

// 参数错误码
const (
	CodeInvalidParams     = 1100 // 参数格式错误，请求参数不符合预期格式或规范
	CodeMissingParams     = 1101 // 缺少必要参数
	CodeParamsFormatError = 1102 // 参数格式错误（如金额格式、日期格式等）
	CodeParamsTypeError   = 1103 // 参数类型错误
	CodeParamsRangeError  = 1104 // 参数范围错误，参数值超出允许的范围
)

// 认证授权错误码
const (
	CodeUnauthorized     = 1200 // 未授权访问，请求缺少有效的身份认证信息
	CodeSignatureError   = 1203 // 签名验证失败
	CodeAccessDenied     = 1204 // 访问权限不足
	CodeIPNotWhitelisted = 1205 // IP不在白名单内
	CodeAdminTokenError  = 1206 // 管理后台令牌无效
)
