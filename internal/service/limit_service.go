package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dao"
	"wht-deposit-api/internal/dto"
	mainmodel "wht-deposit-api/internal/model/main"
	"wht-deposit-api/internal/utils/timeutil"
)

type LimitService struct {
	limitDao *dao.LimitDao
}

func NewLimitService() *LimitService {
	return &LimitService{limitDao: &dao.LimitDao{}}
}

// Check 充值限额评估：拉取匹配规则与用户三周期用量后交给纯函数判定。
// 评估发生在下单前，评估与落单之间的窗口按 best-effort 处理，不加锁
func (s *LimitService) Check(req dto.LimitCheckReq) ([]dto.LimitViolation, error) {
	var network *string
	if req.Network != "" {
		network = &req.Network
	}
	rules, err := s.limitDao.ListMatching(req.Method, network)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	now := time.Now()
	usage, err := s.loadUsage(req.UID, now)
	if err != nil {
		return nil, err
	}

	return EvaluateLimits(rules, usage, req), nil
}

func (s *LimitService) loadUsage(uid uint64, now time.Time) (dto.LimitUsage, error) {
	var usage dto.LimitUsage
	var err error
	if usage.Daily, err = s.limitDao.PeriodUsage(uid, timeutil.StartOfDay(now)); err != nil {
		return usage, err
	}
	if usage.Weekly, err = s.limitDao.PeriodUsage(uid, timeutil.StartOfWeek(now)); err != nil {
		return usage, err
	}
	if usage.Monthly, err = s.limitDao.PeriodUsage(uid, timeutil.StartOfMonth(now)); err != nil {
		return usage, err
	}
	return usage, nil
}

// EvaluateLimits 纯函数限额判定：所有匹配规则同时生效（从严），
// priority 只决定违规条目的报告顺序。额度/笔数为 0 表示该维度不限
func EvaluateLimits(rules []mainmodel.DepositLimit, usage dto.LimitUsage, req dto.LimitCheckReq) []dto.LimitViolation {
	var violations []dto.LimitViolation

	for _, rule := range rules {
		if !scopeMatches(rule, req) {
			continue
		}

		if rule.MinAmount.IsPositive() && req.Amount.LessThan(rule.MinAmount) {
			violations = append(violations, newViolation(rule, constant.CodeLimitBelowMin,
				fmt.Sprintf("单笔金额低于最低限额 %s", rule.MinAmount.String())))
		}
		if rule.MaxAmount.IsPositive() && req.Amount.GreaterThan(rule.MaxAmount) {
			violations = append(violations, newViolation(rule, constant.CodeLimitAboveMax,
				fmt.Sprintf("单笔金额超过最高限额 %s", rule.MaxAmount.String())))
		}

		violations = appendPeriodViolations(violations, rule, req.Amount,
			usage.Daily, rule.DailyLimit, rule.DailyCount,
			constant.CodeLimitDailyAmount, constant.CodeLimitDailyCount, "当日")
		violations = appendPeriodViolations(violations, rule, req.Amount,
			usage.Weekly, rule.WeeklyLimit, rule.WeeklyCount,
			constant.CodeLimitWeeklyAmount, constant.CodeLimitWeeklyCount, "本周")
		violations = appendPeriodViolations(violations, rule, req.Amount,
			usage.Monthly, rule.MonthlyLimit, rule.MonthlyCount,
			constant.CodeLimitMonthAmount, constant.CodeLimitMonthCount, "本月")
	}

	// 规则冲突时按 priority 报告，便于对用户提示最高优先级的那条
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Priority > violations[j].Priority
	})
	return violations
}

func appendPeriodViolations(violations []dto.LimitViolation, rule mainmodel.DepositLimit,
	amount decimal.Decimal, used dto.PeriodUsage, amountLimit decimal.Decimal, countLimit int,
	amountCode, countCode int, label string) []dto.LimitViolation {

	if amountLimit.IsPositive() && used.Amount.Add(amount).GreaterThan(amountLimit) {
		violations = append(violations, newViolation(rule, amountCode,
			fmt.Sprintf("%s累计充值将超过限额 %s", label, amountLimit.String())))
	}
	if countLimit > 0 && used.Count+1 > int64(countLimit) {
		violations = append(violations, newViolation(rule, countCode,
			fmt.Sprintf("%s充值笔数将超过限制 %d 笔", label, countLimit)))
	}
	return violations
}

func scopeMatches(rule mainmodel.DepositLimit, req dto.LimitCheckReq) bool {
	switch rule.Scope {
	case constant.LimitScopeGlobal:
		return true
	case constant.LimitScopeUser:
		return rule.ScopeValue != nil && *rule.ScopeValue == strconv.FormatUint(req.UID, 10)
	case constant.LimitScopeVipLevel:
		return rule.ScopeValue != nil && *rule.ScopeValue == req.VipLevel
	default:
		return false
	}
}

func newViolation(rule mainmodel.DepositLimit, code int, msg string) dto.LimitViolation {
	return dto.LimitViolation{
		RuleID:   rule.ID,
		Scope:    rule.Scope,
		Code:     code,
		Message:  msg,
		Priority: rule.Priority,
	}
}

// ListRules 运营后台限额规则列表
func (s *LimitService) ListRules() ([]dto.LimitRuleResp, error) {
	rules, err := s.limitDao.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LimitRuleResp, 0, len(rules))
	for _, rule := range rules {
		var item dto.LimitRuleResp
		_ = copier.Copy(&item, &rule)
		item.MinAmount = rule.MinAmount.String()
		item.MaxAmount = rule.MaxAmount.String()
		item.DailyLimit = rule.DailyLimit.String()
		item.WeeklyLimit = rule.WeeklyLimit.String()
		item.MonthlyLimit = rule.MonthlyLimit.String()
		out = append(out, item)
	}
	return out, nil
}

// SaveRule 创建或更新限额规则
func (s *LimitService) SaveRule(id uint64, req dto.SaveLimitReq) error {
	if !constant.ValidLimitScope(req.Scope) {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	if req.Scope != constant.LimitScopeGlobal && (req.ScopeValue == nil || *req.ScopeValue == "") {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}

	m := &mainmodel.DepositLimit{}
	if id > 0 {
		existing, err := s.limitDao.GetByID(id)
		if err != nil {
			return constant.NewError(constant.CodeDatabaseError)
		}
		if existing == nil {
			return constant.NewError(constant.CodeLimitRuleNotFound)
		}
		m = existing
	}

	m.Method = req.Method
	m.Network = req.Network
	m.Scope = req.Scope
	m.ScopeValue = req.ScopeValue
	var err error
	if m.MinAmount, err = parseAmountOrZero(req.MinAmount); err != nil {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	if m.MaxAmount, err = parseAmountOrZero(req.MaxAmount); err != nil {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	if m.DailyLimit, err = parseAmountOrZero(req.DailyLimit); err != nil {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	if m.WeeklyLimit, err = parseAmountOrZero(req.WeeklyLimit); err != nil {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	if m.MonthlyLimit, err = parseAmountOrZero(req.MonthlyLimit); err != nil {
		return constant.NewError(constant.CodeLimitRuleInvalid)
	}
	m.DailyCount = req.DailyCount
	m.WeeklyCount = req.WeeklyCount
	m.MonthlyCount = req.MonthlyCount
	if req.IsEnabled != nil {
		m.IsEnabled = *req.IsEnabled
	} else if id == 0 {
		m.IsEnabled = 1
	}
	m.Priority = req.Priority

	if err := s.limitDao.Save(m); err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	return nil
}

// DeleteRule 删除限额规则
func (s *LimitService) DeleteRule(id uint64) error {
	existing, err := s.limitDao.GetByID(id)
	if err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	if existing == nil {
		return constant.NewError(constant.CodeLimitRuleNotFound)
	}
	if err := s.limitDao.Delete(id); err != nil {
		return constant.NewError(constant.CodeDatabaseError)
	}
	return nil
}

func parseAmountOrZero(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", s)
	}
	return d, nil
}
