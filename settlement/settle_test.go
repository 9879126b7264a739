package settlement

import (
	"errors"
	"testing"

	"matka/database"
	"matka/ledger"
	"matka/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createPlayer(t *testing.T, db *gorm.DB, code string, balance int64) *models.User {
	t.Helper()

	user := models.User{UserCode: code, Name: code, Role: models.RolePlayer, Balance: balance, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	return &user
}

func createMarket(t *testing.T, db *gorm.DB, kind, status, result string, odds datatypes.JSON) *models.Market {
	t.Helper()

	m := models.Market{Name: "test market", Kind: kind, Status: status, Result: result, Odds: odds}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("Failed to create market: %v", err)
	}
	return &m
}

func createBet(t *testing.T, db *gorm.DB, userID, marketID uint, mode, prediction string, stake int64) *models.Bet {
	t.Helper()

	b := models.Bet{
		UserID:     userID,
		MarketID:   marketID,
		Mode:       mode,
		Prediction: prediction,
		Stake:      stake,
		Result:     models.BetPending,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("Failed to create bet: %v", err)
	}
	return &b
}

func reloadBet(t *testing.T, db *gorm.DB, id uint) *models.Bet {
	t.Helper()

	var b models.Bet
	if err := db.First(&b, id).Error; err != nil {
		t.Fatalf("Failed to reload bet %d: %v", id, err)
	}
	return &b
}

func TestSettleMarketJodi(t *testing.T) {
	db := setupTestDB(t)

	winner := createPlayer(t, db, "p000001", 0)
	loser := createPlayer(t, db, "p000002", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42",
		datatypes.JSON(`{"jodi": 900000}`))

	winBet := createBet(t, db, winner.ID, m.ID, "jodi", "42", 10000)
	loseBet := createBet(t, db, loser.ID, m.ID, "jodi", "17", 10000)

	summary, err := SettleMarket(db, m.ID, "42")
	if err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}

	if summary.Processed != 2 || summary.Won != 1 {
		t.Errorf("summary = %+v, want processed=2 won=1", summary)
	}
	if summary.PaidOut != 900000 {
		t.Errorf("paid out = %d, want 900000", summary.PaidOut)
	}

	w := reloadBet(t, db, winBet.ID)
	if w.Result != models.BetWin || w.Payout != 900000 {
		t.Errorf("winning bet = %s/%d, want win/900000", w.Result, w.Payout)
	}
	l := reloadBet(t, db, loseBet.ID)
	if l.Result != models.BetLoss || l.Payout != 0 {
		t.Errorf("losing bet = %s/%d, want loss/0", l.Result, l.Payout)
	}

	var winnerRow models.User
	if err := db.First(&winnerRow, winner.ID).Error; err != nil {
		t.Fatalf("Failed to reload winner: %v", err)
	}
	if winnerRow.Balance != 900000 {
		t.Errorf("winner balance = %d, want 900000", winnerRow.Balance)
	}

	// The payout left an audit row linked to the bet.
	var txn models.Transaction
	if err := db.Where("bet_id = ?", winBet.ID).First(&txn).Error; err != nil {
		t.Fatalf("Missing payout transaction: %v", err)
	}
	if txn.Amount != 900000 || txn.BalanceAfter != 900000 {
		t.Errorf("payout txn = %d/%d, want 900000/900000", txn.Amount, txn.BalanceAfter)
	}
}

func TestSettleMarketIdempotent(t *testing.T) {
	db := setupTestDB(t)

	winner := createPlayer(t, db, "p000001", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42", nil)
	createBet(t, db, winner.ID, m.ID, "jodi", "42", 10000)

	first, err := SettleMarket(db, m.ID, "42")
	if err != nil {
		t.Fatalf("first SettleMarket failed: %v", err)
	}
	if first.Processed != 1 || first.Won != 1 {
		t.Fatalf("first summary = %+v, want processed=1 won=1", first)
	}

	second, err := SettleMarket(db, m.ID, "42")
	if err != nil {
		t.Fatalf("second SettleMarket failed: %v", err)
	}
	if second.Processed != 0 || second.Won != 0 || second.PaidOut != 0 {
		t.Errorf("second summary = %+v, want all zero", second)
	}

	// Exactly one payout, exactly one ledger row.
	var n int64
	if err := db.Model(&models.Transaction{}).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}
	if n != 1 {
		t.Errorf("transaction count = %d, want 1", n)
	}
}

func TestSettleFailClosedUnknownMode(t *testing.T) {
	db := setupTestDB(t)

	player := createPlayer(t, db, "p000001", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42", nil)
	b := createBet(t, db, player.ID, m.ID, "roulette", "42", 10000)

	summary, err := SettleMarket(db, m.ID, "42")
	if err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}
	if summary.Processed != 1 || summary.Won != 0 {
		t.Errorf("summary = %+v, want processed=1 won=0", summary)
	}

	got := reloadBet(t, db, b.ID)
	if got.Result != models.BetLoss || got.Payout != 0 {
		t.Errorf("bet = %s/%d, want loss/0 (fail closed, never pending)", got.Result, got.Payout)
	}
}

func TestSettleFailClosedMalformedPrediction(t *testing.T) {
	db := setupTestDB(t)

	player := createPlayer(t, db, "p000001", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42", nil)
	b := createBet(t, db, player.ID, m.ID, "crossing", "banana", 10000)

	if _, err := SettleMarket(db, m.ID, "42"); err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}

	got := reloadBet(t, db, b.ID)
	if got.Result != models.BetLoss {
		t.Errorf("bet result = %s, want loss", got.Result)
	}
}

func TestSettleRequiresResultedMarket(t *testing.T) {
	db := setupTestDB(t)

	m := createMarket(t, db, models.KindNumbers, models.MarketOpen, "", nil)

	if _, err := SettleMarket(db, m.ID, "42"); !errors.Is(err, ledger.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestSettleResultMismatchRejected(t *testing.T) {
	db := setupTestDB(t)

	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42", nil)

	if _, err := SettleMarket(db, m.ID, "24"); !errors.Is(err, ledger.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestSettleUsesStoredResult(t *testing.T) {
	db := setupTestDB(t)

	player := createPlayer(t, db, "p000001", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "57", nil)
	b := createBet(t, db, player.ID, m.ID, "odd_even", "odd", 10000)

	// The sweeper path: empty declared result means use the stored one.
	summary, err := SettleMarket(db, m.ID, "")
	if err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}
	if summary.Won != 1 {
		t.Errorf("won = %d, want 1", summary.Won)
	}

	got := reloadBet(t, db, b.ID)
	if got.Result != models.BetWin || got.Payout != 19000 {
		t.Errorf("bet = %s/%d, want win/19000 (default 1.9x)", got.Result, got.Payout)
	}
}

func TestSettleOddEvenLoss(t *testing.T) {
	db := setupTestDB(t)

	player := createPlayer(t, db, "p000001", 0)
	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "57", nil)
	b := createBet(t, db, player.ID, m.ID, "odd_even", "even", 10000)

	if _, err := SettleMarket(db, m.ID, "57"); err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}

	got := reloadBet(t, db, b.ID)
	if got.Result != models.BetLoss || got.Payout != 0 {
		t.Errorf("bet = %s/%d, want loss/0", got.Result, got.Payout)
	}
}

func TestSettleTossMarket(t *testing.T) {
	db := setupTestDB(t)

	winner := createPlayer(t, db, "p000001", 0)
	loser := createPlayer(t, db, "p000002", 0)
	m := createMarket(t, db, models.KindToss, models.MarketResulted, "team_a",
		datatypes.JSON(`{"toss": 19500}`))

	winBet := createBet(t, db, winner.ID, m.ID, "team_a", "team_a", 10000)
	loseBet := createBet(t, db, loser.ID, m.ID, "team_b", "team_b", 10000)

	summary, err := SettleMarket(db, m.ID, "team_a")
	if err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}
	if summary.Processed != 2 || summary.Won != 1 {
		t.Errorf("summary = %+v, want processed=2 won=1", summary)
	}

	w := reloadBet(t, db, winBet.ID)
	if w.Result != models.BetWin || w.Payout != 19500 {
		t.Errorf("winning toss bet = %s/%d, want win/19500", w.Result, w.Payout)
	}
	l := reloadBet(t, db, loseBet.ID)
	if l.Result != models.BetLoss {
		t.Errorf("losing toss bet = %s, want loss", l.Result)
	}
}

func TestSettleEmptyMarketIsNoop(t *testing.T) {
	db := setupTestDB(t)

	m := createMarket(t, db, models.KindNumbers, models.MarketResulted, "42", nil)

	summary, err := SettleMarket(db, m.ID, "42")
	if err != nil {
		t.Fatalf("SettleMarket failed: %v", err)
	}
	if summary.Processed != 0 || summary.Won != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
}

func TestMultiplierFor(t *testing.T) {
	m := &models.Market{Odds: datatypes.JSON(`{"jodi": 850000}`)}

	if got := MultiplierFor(m, ModeJodi); got != 850000 {
		t.Errorf("configured multiplier = %d, want 850000", got)
	}
	if got := MultiplierFor(m, ModeHarf); got != 9*OddsScale {
		t.Errorf("default harf multiplier = %d, want %d", got, 9*OddsScale)
	}
	if got := MultiplierFor(nil, ModeOddEven); got != 19000 {
		t.Errorf("default odd_even multiplier = %d, want 19000", got)
	}
	if got := MultiplierFor(m, ModeUnknown); got != fallbackOdds {
		t.Errorf("unknown mode multiplier = %d, want %d", got, fallbackOdds)
	}

	broken := &models.Market{Odds: datatypes.JSON(`not json`)}
	if got := MultiplierFor(broken, ModeJodi); got != 90*OddsScale {
		t.Errorf("broken odds multiplier = %d, want default %d", got, 90*OddsScale)
	}
}
