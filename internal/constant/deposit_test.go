package constant

import "testing"

func TestCanTransit(t *testing.T) {
	cases := []struct {
		from, to int8
		want     bool
	}{
		{DepositStatusPending, DepositStatusConfirming, true},
		{DepositStatusPending, DepositStatusCompleted, true},
		{DepositStatusPending, DepositStatusFailed, true},
		{DepositStatusPending, DepositStatusCancelled, true},
		{DepositStatusPending, DepositStatusExpired, true},
		{DepositStatusConfirming, DepositStatusCompleted, true},
		{DepositStatusConfirming, DepositStatusFailed, true},
		{DepositStatusConfirming, DepositStatusCancelled, true},
		// 确认中的订单不允许再过期
		{DepositStatusConfirming, DepositStatusExpired, false},
		// 终态不可再迁移
		{DepositStatusCompleted, DepositStatusFailed, false},
		{DepositStatusCompleted, DepositStatusPending, false},
		{DepositStatusFailed, DepositStatusCompleted, false},
		{DepositStatusCancelled, DepositStatusCompleted, false},
		{DepositStatusExpired, DepositStatusCompleted, false},
		// 不允许回退
		{DepositStatusConfirming, DepositStatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransit(c.from, c.to); got != c.want {
			t.Errorf("CanTransit(%d, %d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTransitionSources(t *testing.T) {
	cases := []struct {
		to   int8
		want []int8
	}{
		{DepositStatusConfirming, []int8{DepositStatusPending}},
		{DepositStatusCompleted, []int8{DepositStatusPending, DepositStatusConfirming}},
		{DepositStatusFailed, []int8{DepositStatusPending, DepositStatusConfirming}},
		{DepositStatusCancelled, []int8{DepositStatusPending, DepositStatusConfirming}},
		// 只有未上链的订单可以过期
		{DepositStatusExpired, []int8{DepositStatusPending}},
		// PENDING 是初始态，没有入边
		{DepositStatusPending, nil},
	}
	for _, c := range cases {
		got := TransitionSources(c.to)
		if len(got) != len(c.want) {
			t.Errorf("TransitionSources(%d) = %v, want %v", c.to, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("TransitionSources(%d) = %v, want %v", c.to, got, c.want)
				break
			}
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	terminals := []int8{DepositStatusCompleted, DepositStatusFailed, DepositStatusCancelled, DepositStatusExpired}
	for _, s := range terminals {
		if !IsTerminalStatus(s) {
			t.Errorf("status %d should be terminal", s)
		}
	}
	for _, s := range []int8{DepositStatusPending, DepositStatusConfirming} {
		if IsTerminalStatus(s) {
			t.Errorf("status %d should not be terminal", s)
		}
	}
}

func TestDepositStatusText(t *testing.T) {
	if DepositStatusText(DepositStatusCompleted) != "COMPLETED" {
		t.Errorf("unexpected text: %s", DepositStatusText(DepositStatusCompleted))
	}
	if DepositStatusText(99) == "" {
		t.Error("unknown status should still render")
	}
}

func TestValidMethodAndNetwork(t *testing.T) {
	if !ValidMethod(MethodCrypto) || !ValidMethod(MethodCard) || !ValidMethod(MethodPaypal) {
		t.Error("known methods should be valid")
	}
	if ValidMethod("WIRE") {
		t.Error("unknown method should be invalid")
	}
	if !ValidNetwork(NetworkTRC20) || ValidNetwork("SOL") {
		t.Error("network validation broken")
	}
}
