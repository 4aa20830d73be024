package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dto"
	mainmodel "wht-deposit-api/internal/model/main"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func strPtr(s string) *string { return &s }

func baseReq(amount string) dto.LimitCheckReq {
	return dto.LimitCheckReq{
		UID:      10086,
		VipLevel: "V2",
		Method:   constant.MethodCrypto,
		Network:  constant.NetworkTRC20,
		Amount:   d(amount),
	}
}

func TestEvaluateLimits_NoRules(t *testing.T) {
	got := EvaluateLimits(nil, dto.LimitUsage{}, baseReq("100"))
	if len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestEvaluateLimits_MinMax(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal, MinAmount: d("10"), MaxAmount: d("1000")},
	}

	if v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("5")); len(v) != 1 || v[0].Code != constant.CodeLimitBelowMin {
		t.Errorf("expected below-min violation, got %v", v)
	}
	if v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("5000")); len(v) != 1 || v[0].Code != constant.CodeLimitAboveMax {
		t.Errorf("expected above-max violation, got %v", v)
	}
	if v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("500")); len(v) != 0 {
		t.Errorf("expected pass, got %v", v)
	}
	// 边界值本身不违规
	if v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("10")); len(v) != 0 {
		t.Errorf("min boundary should pass, got %v", v)
	}
	if v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("1000")); len(v) != 0 {
		t.Errorf("max boundary should pass, got %v", v)
	}
}

func TestEvaluateLimits_ZeroMeansUnlimited(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal},
	}
	usage := dto.LimitUsage{
		Daily:   dto.PeriodUsage{Amount: d("999999"), Count: 9999},
		Weekly:  dto.PeriodUsage{Amount: d("999999"), Count: 9999},
		Monthly: dto.PeriodUsage{Amount: d("999999"), Count: 9999},
	}
	if v := EvaluateLimits(rules, usage, baseReq("888888")); len(v) != 0 {
		t.Errorf("all-zero rule should be unlimited, got %v", v)
	}
}

func TestEvaluateLimits_PeriodAmount(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal, DailyLimit: d("1000"), WeeklyLimit: d("5000"), MonthlyLimit: d("20000")},
	}
	usage := dto.LimitUsage{
		Daily:   dto.PeriodUsage{Amount: d("900"), Count: 3},
		Weekly:  dto.PeriodUsage{Amount: d("3000"), Count: 10},
		Monthly: dto.PeriodUsage{Amount: d("10000"), Count: 30},
	}

	// 900 + 100 = 1000 恰好不超
	if v := EvaluateLimits(rules, usage, baseReq("100")); len(v) != 0 {
		t.Errorf("exact daily limit should pass, got %v", v)
	}
	// 900 + 101 超日限
	v := EvaluateLimits(rules, usage, baseReq("101"))
	if len(v) != 1 || v[0].Code != constant.CodeLimitDailyAmount {
		t.Errorf("expected daily amount violation, got %v", v)
	}
	// 大额同时打穿日/周/月
	v = EvaluateLimits(rules, usage, baseReq("15000"))
	codes := map[int]bool{}
	for _, item := range v {
		codes[item.Code] = true
	}
	if !codes[constant.CodeLimitDailyAmount] || !codes[constant.CodeLimitWeeklyAmount] || !codes[constant.CodeLimitMonthAmount] {
		t.Errorf("expected daily+weekly+monthly violations, got %v", v)
	}
}

func TestEvaluateLimits_PeriodCount(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal, DailyCount: 3},
	}
	usage := dto.LimitUsage{Daily: dto.PeriodUsage{Amount: d("100"), Count: 2}}
	if v := EvaluateLimits(rules, usage, baseReq("10")); len(v) != 0 {
		t.Errorf("third order of the day should pass, got %v", v)
	}

	usage.Daily.Count = 3
	v := EvaluateLimits(rules, usage, baseReq("10"))
	if len(v) != 1 || v[0].Code != constant.CodeLimitDailyCount {
		t.Errorf("expected daily count violation, got %v", v)
	}
}

func TestEvaluateLimits_ScopeMatching(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeUser, ScopeValue: strPtr("10086"), MaxAmount: d("100")},
		{ID: 2, Scope: constant.LimitScopeUser, ScopeValue: strPtr("99999"), MaxAmount: d("1")},
		{ID: 3, Scope: constant.LimitScopeVipLevel, ScopeValue: strPtr("V2"), MaxAmount: d("200")},
		{ID: 4, Scope: constant.LimitScopeVipLevel, ScopeValue: strPtr("V9"), MaxAmount: d("1")},
	}

	// 命中用户规则(1)与VIP规则(3)，未命中他人规则(2)(4)
	v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("500"))
	if len(v) != 2 {
		t.Fatalf("expected 2 violations, got %v", v)
	}
	for _, item := range v {
		if item.RuleID != 1 && item.RuleID != 3 {
			t.Errorf("unexpected rule hit: %v", item)
		}
	}
}

func TestEvaluateLimits_AllMatchingRulesEnforced(t *testing.T) {
	// 全局宽松 + 用户严格：从严生效
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal, MaxAmount: d("10000")},
		{ID: 2, Scope: constant.LimitScopeUser, ScopeValue: strPtr("10086"), MaxAmount: d("100")},
	}
	v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("500"))
	if len(v) != 1 || v[0].RuleID != 2 {
		t.Errorf("strict user rule should still reject, got %v", v)
	}
}

func TestEvaluateLimits_PriorityOrdersReporting(t *testing.T) {
	rules := []mainmodel.DepositLimit{
		{ID: 1, Scope: constant.LimitScopeGlobal, MaxAmount: d("100"), Priority: 1},
		{ID: 2, Scope: constant.LimitScopeVipLevel, ScopeValue: strPtr("V2"), MaxAmount: d("50"), Priority: 9},
	}
	v := EvaluateLimits(rules, dto.LimitUsage{}, baseReq("500"))
	if len(v) != 2 {
		t.Fatalf("expected 2 violations, got %v", v)
	}
	if v[0].RuleID != 2 {
		t.Errorf("higher priority rule should be reported first, got %v", v)
	}
}
