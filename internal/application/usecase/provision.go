package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

const (
	piggyBankName = "My Piggy Bank"
	goalFundName  = "New Bike Fund"

	piggyHistoryCount = 25
	goalHistoryCount  = 3

	historyWindowDays = 90
	goalDurationDays  = 10
)

var (
	piggySeedBalance = decimal.New(33510, -2) // 335.10
	goalSeedBalance  = decimal.New(1530, -2)  // 15.30
	goalSeedAmount   = decimal.New(2000, -2)  // 20.00
)

var purchaseDescriptions = []string{
	"Toy store",
	"Snacks",
	"Book fair",
	"Arcade",
	"Stickers",
	"Ice cream",
}

// Provisioner один раз наполняет аккаунт нового пользователя демо-данными:
// профиль, два счета и правдоподобная история транзакций, чтобы главный
// экран не был пустым.
type Provisioner struct {
	users    UserStore
	accounts AccountStore
	txs      TransactionStore

	seedRand func() *rand.Rand
	now      func() time.Time
}

func NewProvisioner(users UserStore, accounts AccountStore, txs TransactionStore) *Provisioner {
	return &Provisioner{
		users:    users,
		accounts: accounts,
		txs:      txs,
		seedRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// EnsureUser доводит пользователя до рабочего состояния и безопасен
// для повторного вызова: наличие любого счета отключает посев счетов,
// наличие любой транзакции по счету — посев его истории.
func (p *Provisioner) EnsureUser(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	user := &domain.User{
		UID:        identity.UID,
		Name:       identity.Name,
		Email:      identity.Email,
		Balance:    decimal.Zero,
		ParentLink: "",
		Role:       "child",
	}
	if err := p.users.CreateIfAbsent(ctx, user); err != nil {
		return nil, err
	}

	accounts, err := p.accounts.ListByChild(ctx, identity.UID)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		accounts, err = p.seedAccounts(ctx, identity.UID)
		if err != nil {
			return nil, err
		}
	}

	if err := p.seedHistory(ctx, accounts); err != nil {
		return nil, err
	}

	return user, nil
}

func (p *Provisioner) seedAccounts(ctx context.Context, uid string) ([]domain.Account, error) {
	now := p.now()
	goalEnd := now.Add(goalDurationDays * 24 * time.Hour)

	goalAmount := goalSeedAmount
	seeded := []domain.Account{
		{
			ChildID: uid,
			Name:    piggyBankName,
			Balance: piggySeedBalance,
		},
		{
			ChildID:     uid,
			Name:        goalFundName,
			Balance:     goalSeedBalance,
			GoalAmount:  &goalAmount,
			GoalEndDate: &goalEnd,
		},
	}

	for i := range seeded {
		if err := p.accounts.Create(ctx, &seeded[i]); err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

func (p *Provisioner) seedHistory(ctx context.Context, accounts []domain.Account) error {
	rng := p.seedRand()
	now := p.now()

	if piggy := findAccount(accounts, piggyBankName); piggy != nil {
		count, err := p.txs.CountByAccount(ctx, piggy.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			batch := synthesizePiggyHistory(piggy.ID, rng, now)
			if err := p.txs.CreateBatch(ctx, batch); err != nil {
				return err
			}
		}
	}

	if fund := findAccount(accounts, goalFundName); fund != nil {
		count, err := p.txs.CountByAccount(ctx, fund.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			batch := synthesizeGoalHistory(fund.ID, rng, now)
			if err := p.txs.CreateBatch(ctx, batch); err != nil {
				return err
			}
		}
	}

	return nil
}

func findAccount(accounts []domain.Account, name string) *domain.Account {
	for i := range accounts {
		if accounts[i].Name == name {
			return &accounts[i]
		}
	}
	if len(accounts) > 0 {
		return &accounts[0]
	}
	return nil
}

// synthesizePiggyHistory: 25 транзакций за последние 3 месяца, каждая пятая —
// перевод от родителя, остальные покупки (80% списаний). Замыкающая
// корректировка сводит подписанную сумму ровно к стартовому балансу.
func synthesizePiggyHistory(id uuid.UUID, rng *rand.Rand, now time.Time) []domain.Transaction {
	txs := make([]domain.Transaction, 0, piggyHistoryCount+1)
	net := decimal.Zero

	for i := 1; i <= piggyHistoryCount; i++ {
		ts := randomTimestamp(rng, now)

		if i%5 == 0 {
			// 5.00 .. 20.00
			amount := centsBetween(rng, 500, 2000)
			txs = append(txs, creditTx(id, amount, domain.TxTypeTransfer, "Weekly allowance", ts))
			net = net.Add(amount)
			continue
		}

		// 1.00 .. 25.00
		amount := centsBetween(rng, 100, 2500)
		desc := purchaseDescriptions[rng.Intn(len(purchaseDescriptions))]
		txs = append(txs, debitTx(id, amount, domain.TxTypePurchase, desc, ts))
		net = net.Sub(amount)
	}

	txs = append(txs, balancingTx(id, piggySeedBalance.Sub(net), now))
	return txs
}

func synthesizeGoalHistory(id uuid.UUID, rng *rand.Rand, now time.Time) []domain.Transaction {
	txs := make([]domain.Transaction, 0, goalHistoryCount+1)
	net := decimal.Zero

	for i := 0; i < goalHistoryCount; i++ {
		// 1.00 .. 7.00
		amount := centsBetween(rng, 100, 700)
		txs = append(txs, creditTx(id, amount, domain.TxTypeTransfer, "Pocket money", randomTimestamp(rng, now)))
		net = net.Add(amount)
	}

	txs = append(txs, balancingTx(id, goalSeedBalance.Sub(net), now))
	return txs
}

// balancingTx датируется началом окна истории, чтобы корректировка
// не попадала в недельный кэшфлоу.
func balancingTx(id uuid.UUID, diff decimal.Decimal, now time.Time) domain.Transaction {
	ts := now.Add(-historyWindowDays * 24 * time.Hour)
	if diff.IsNegative() {
		return debitTx(id, diff.Abs(), domain.TxTypeAdjustment, "Opening balance adjustment", ts)
	}
	return creditTx(id, diff, domain.TxTypeAdjustment, "Opening balance adjustment", ts)
}

func randomTimestamp(rng *rand.Rand, now time.Time) time.Time {
	return now.Add(-time.Duration(rng.Intn(historyWindowDays*24)) * time.Hour)
}

func centsBetween(rng *rand.Rand, min, max int) decimal.Decimal {
	return decimal.New(int64(min+rng.Intn(max-min+1)), -2)
}

func creditTx(to uuid.UUID, amount decimal.Decimal, txType, desc string, ts time.Time) domain.Transaction {
	return domain.Transaction{
		ToAccount:       &to,
		Amount:          amount,
		TransactionType: txType,
		Status:          domain.TxStatusCompleted,
		Timestamp:       ts,
		Description:     desc,
	}
}

func debitTx(from uuid.UUID, amount decimal.Decimal, txType, desc string, ts time.Time) domain.Transaction {
	return domain.Transaction{
		FromAccount:     &from,
		Amount:          amount,
		TransactionType: txType,
		Status:          domain.TxStatusCompleted,
		Timestamp:       ts,
		Description:     desc,
	}
}
