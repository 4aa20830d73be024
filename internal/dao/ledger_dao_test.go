package dao

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wht-deposit-api/internal/constant"
	"wht-deposit-api/internal/dal"
	"wht-deposit-api/internal/dto"
	"wht-deposit-api/internal/idgen"
	mainmodel "wht-deposit-api/internal/model/main"
	ordermodel "wht-deposit-api/internal/model/order"
)

func init() {
	// 流水号节点，避免入账事务生成 ID 时 panic
	_ = idgen.InitNode(idgen.NodeTxn, 1)
}

// newLedgerTestDB 使用 SQLite 内存库承接入账事务，返回还原函数
func newLedgerTestDB(t *testing.T) func() {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	err = db.AutoMigrate(
		&ordermodel.DepositOrder{},
		&mainmodel.Wallet{},
		&mainmodel.DepositAddress{},
		&mainmodel.Transaction{},
	)
	if err != nil {
		t.Fatalf("migrate test db failed: %v", err)
	}
	prev := dal.MainDB
	dal.MainDB = db
	return func() { dal.MainDB = prev }
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}

func seedCryptoOrder(t *testing.T, orderNo uint64, status int8) {
	t.Helper()
	network := constant.NetworkTRC20
	m := ordermodel.DepositOrder{
		OrderNo:   orderNo,
		UID:       10086,
		Method:    constant.MethodCrypto,
		Network:   &network,
		Amount:    dec(t, "100"),
		Fee:       dec(t, "1"),
		NetAmount: dec(t, "99"),
		Status:    status,
		VipLevel:  "V2",
	}
	if err := dal.MainDB.Create(&m).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
}

func seedWallet(t *testing.T, uid uint64, balance string) {
	t.Helper()
	w := mainmodel.Wallet{
		UID:        uid,
		Balance:    dec(t, balance),
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}
	if err := dal.MainDB.Create(&w).Error; err != nil {
		t.Fatalf("seed wallet failed: %v", err)
	}
}

func seedAddress(t *testing.T, uid uint64, received, swept string, active int8) {
	t.Helper()
	a := mainmodel.DepositAddress{
		UID:           uid,
		Network:       constant.NetworkTRC20,
		Address:       "TTestAddr10086",
		TotalReceived: dec(t, received),
		TotalSwept:    dec(t, swept),
		IsActive:      active,
		CreateTime:    time.Now(),
		UpdateTime:    time.Now(),
	}
	if err := dal.MainDB.Create(&a).Error; err != nil {
		t.Fatalf("seed address failed: %v", err)
	}
}

func creditReq(orderNo uint64) dto.CreditRequest {
	return dto.CreditRequest{
		OrderNo:   orderNo,
		UID:       10086,
		Method:    constant.MethodCrypto,
		Network:   constant.NetworkTRC20,
		NetAmount: decimal.NewFromInt(99),
		Fee:       decimal.NewFromInt(1),
		Remark:    "confirmed on chain",
	}
}

func TestCreditDepositCompletesOrder(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2001, constant.DepositStatusPending)
	seedWallet(t, 10086, "50")
	seedAddress(t, 10086, "500", "0", 1)

	ledger := &LedgerDao{}
	if err := ledger.CreditDeposit(creditReq(2001)); err != nil {
		t.Fatalf("CreditDeposit() error = %v", err)
	}

	var order ordermodel.DepositOrder
	if err := dal.MainDB.Where("order_no = ?", uint64(2001)).First(&order).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if order.Status != constant.DepositStatusCompleted {
		t.Errorf("order status = %d, want %d", order.Status, constant.DepositStatusCompleted)
	}
	if order.StatusRemark != "confirmed on chain" {
		t.Errorf("status remark = %q", order.StatusRemark)
	}
	if order.CompletedAt == nil {
		t.Error("completed_at 未落库")
	}
	if order.ConfirmedAt == nil {
		t.Error("PENDING 直达完结后 confirmed_at 应与 completed_at 同步落库")
	}

	var wallet mainmodel.Wallet
	if err := dal.MainDB.Where("uid = ?", uint64(10086)).First(&wallet).Error; err != nil {
		t.Fatalf("reload wallet failed: %v", err)
	}
	if !wallet.Balance.Equal(dec(t, "149")) {
		t.Errorf("wallet balance = %s, want 149", wallet.Balance)
	}

	var addr mainmodel.DepositAddress
	if err := dal.MainDB.Where("uid = ? AND network = ?", uint64(10086), constant.NetworkTRC20).First(&addr).Error; err != nil {
		t.Fatalf("reload address failed: %v", err)
	}
	if !addr.TotalReceived.Equal(dec(t, "599")) {
		t.Errorf("total_received = %s, want 599 (按净额累加)", addr.TotalReceived)
	}
	if addr.TotalTransactions != 1 {
		t.Errorf("total_transactions = %d, want 1", addr.TotalTransactions)
	}
	if addr.LastReceivedAt == nil {
		t.Error("last_received_at 未更新")
	}

	var txn mainmodel.Transaction
	if err := dal.MainDB.Where("related_id = ? AND type = ?", uint64(2001), constant.TransactionTypeDeposit).First(&txn).Error; err != nil {
		t.Fatalf("reload transaction failed: %v", err)
	}
	if !txn.Amount.Equal(dec(t, "99")) || !txn.Fee.Equal(dec(t, "1")) {
		t.Errorf("transaction amount/fee = %s/%s, want 99/1", txn.Amount, txn.Fee)
	}
}

func TestCreditDepositExactlyOnce(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2002, constant.DepositStatusPending)
	seedWallet(t, 10086, "50")
	seedAddress(t, 10086, "500", "0", 1)

	ledger := &LedgerDao{}
	if err := ledger.CreditDeposit(creditReq(2002)); err != nil {
		t.Fatalf("first CreditDeposit() error = %v", err)
	}
	err := ledger.CreditDeposit(creditReq(2002))
	if !errors.Is(err, ErrAlreadyCredited) {
		t.Fatalf("second CreditDeposit() error = %v, want ErrAlreadyCredited", err)
	}

	var wallet mainmodel.Wallet
	dal.MainDB.Where("uid = ?", uint64(10086)).First(&wallet)
	if !wallet.Balance.Equal(dec(t, "149")) {
		t.Errorf("重复入账后余额 = %s, want 149", wallet.Balance)
	}
	var addr mainmodel.DepositAddress
	dal.MainDB.Where("uid = ?", uint64(10086)).First(&addr)
	if !addr.TotalReceived.Equal(dec(t, "599")) {
		t.Errorf("重复入账后 total_received = %s, want 599", addr.TotalReceived)
	}
	var count int64
	dal.MainDB.Model(&mainmodel.Transaction{}).Where("related_id = ?", uint64(2002)).Count(&count)
	if count != 1 {
		t.Errorf("流水条数 = %d, want 1", count)
	}
}

func TestCreditDepositKeepsExistingConfirmedAt(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2003, constant.DepositStatusConfirming)
	seedAddress(t, 10086, "0", "0", 1)

	confirmedAt := time.Now().Add(-10 * time.Minute).Truncate(time.Second)
	if err := dal.MainDB.Model(&ordermodel.DepositOrder{}).
		Where("order_no = ?", uint64(2003)).
		Update("confirmed_at", confirmedAt).Error; err != nil {
		t.Fatalf("seed confirmed_at failed: %v", err)
	}

	ledger := &LedgerDao{}
	if err := ledger.CreditDeposit(creditReq(2003)); err != nil {
		t.Fatalf("CreditDeposit() error = %v", err)
	}

	var order ordermodel.DepositOrder
	dal.MainDB.Where("order_no = ?", uint64(2003)).First(&order)
	if order.ConfirmedAt == nil {
		t.Fatal("confirmed_at 不应被清空")
	}
	if !order.ConfirmedAt.Truncate(time.Second).Equal(confirmedAt) {
		t.Errorf("confirmed_at = %v, want 保留首次确认时间 %v", order.ConfirmedAt, confirmedAt)
	}
}

func TestCreditDepositFirstDepositCreatesWallet(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2004, constant.DepositStatusPending)
	seedAddress(t, 10086, "0", "0", 1)

	ledger := &LedgerDao{}
	if err := ledger.CreditDeposit(creditReq(2004)); err != nil {
		t.Fatalf("CreditDeposit() error = %v", err)
	}

	var wallet mainmodel.Wallet
	if err := dal.MainDB.Where("uid = ?", uint64(10086)).First(&wallet).Error; err != nil {
		t.Fatalf("首充未自动开户: %v", err)
	}
	if !wallet.Balance.Equal(dec(t, "99")) {
		t.Errorf("首充余额 = %s, want 99", wallet.Balance)
	}
}

func TestCreditDepositRejectsTerminalOrder(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2005, constant.DepositStatusCancelled)

	ledger := &LedgerDao{}
	err := ledger.CreditDeposit(creditReq(2005))
	if !errors.Is(err, ErrOrderNotCreditable) {
		t.Errorf("CreditDeposit() error = %v, want ErrOrderNotCreditable", err)
	}
}

func TestCreditDepositMissingOrder(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()

	ledger := &LedgerDao{}
	err := ledger.CreditDeposit(creditReq(9999))
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("CreditDeposit() error = %v, want ErrOrderNotFound", err)
	}
}

func TestCreditDepositInactiveAddressRollsBack(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedCryptoOrder(t, 2006, constant.DepositStatusPending)
	seedWallet(t, 10086, "50")
	seedAddress(t, 10086, "0", "0", 0)

	ledger := &LedgerDao{}
	err := ledger.CreditDeposit(creditReq(2006))
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("CreditDeposit() error = %v, want ErrAddressNotFound", err)
	}

	// 地址失效时整个事务回滚，订单与钱包不得留下半截状态
	var order ordermodel.DepositOrder
	dal.MainDB.Where("order_no = ?", uint64(2006)).First(&order)
	if order.Status != constant.DepositStatusPending {
		t.Errorf("回滚后订单状态 = %d, want %d", order.Status, constant.DepositStatusPending)
	}
	var wallet mainmodel.Wallet
	dal.MainDB.Where("uid = ?", uint64(10086)).First(&wallet)
	if !wallet.Balance.Equal(dec(t, "50")) {
		t.Errorf("回滚后余额 = %s, want 50", wallet.Balance)
	}
}

func TestConfirmSweep(t *testing.T) {
	restore := newLedgerTestDB(t)
	defer restore()
	seedAddress(t, 10086, "599", "0", 1)

	ledger := &LedgerDao{}
	if err := ledger.ConfirmSweep(constant.NetworkTRC20, "TTestAddr10086", dec(t, "100")); err != nil {
		t.Fatalf("ConfirmSweep() error = %v", err)
	}
	var addr mainmodel.DepositAddress
	dal.MainDB.Where("address = ?", "TTestAddr10086").First(&addr)
	if !addr.TotalSwept.Equal(dec(t, "100")) {
		t.Errorf("total_swept = %s, want 100", addr.TotalSwept)
	}

	err := ledger.ConfirmSweep(constant.NetworkTRC20, "TTestAddr10086", dec(t, "600"))
	if !errors.Is(err, ErrSweepExceedsReceive) {
		t.Errorf("超额归集 error = %v, want ErrSweepExceedsReceive", err)
	}

	err = ledger.ConfirmSweep(constant.NetworkTRC20, "TUnknownAddr", dec(t, "1"))
	if !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("未知地址 error = %v, want ErrAddressNotFound", err)
	}
}
