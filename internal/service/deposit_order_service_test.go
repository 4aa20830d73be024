package service

import "testing"

func TestManualConfirmRemark(t *testing.T) {
	if got := manualConfirmRemark(""); got != "Manually confirmed by admin" {
		t.Errorf("空备注默认值 = %q, want %q", got, "Manually confirmed by admin")
	}
	if got := manualConfirmRemark("verified bank receipt"); got != "verified bank receipt" {
		t.Errorf("管理员备注被覆盖: %q", got)
	}
}
