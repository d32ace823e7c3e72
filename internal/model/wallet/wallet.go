package wallet

type Wallet struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Earned  int64  `json:"earned"`
	Spent   int64  `json:"spent"`
	Expired int64  `json:"expired"`
}

// Delta is an increment applied to a wallet in a single store statement.
type Delta struct {
	Balance int64
	Earned  int64
	Spent   int64
	Expired int64
}

func Earn(points int64) Delta {
	return Delta{Balance: points, Earned: points}
}

func Spend(points int64) Delta {
	return Delta{Balance: -points, Spent: points}
}

func Expire(points int64) Delta {
	return Delta{Balance: -points, Expired: points}
}

func (w *Wallet) Apply(d Delta) {
	w.Balance += d.Balance
	w.Earned += d.Earned
	w.Spent += d.Spent
	w.Expired += d.Expired
}

// Consistent reports whether the running balance matches the totals.
func (w *Wallet) Consistent() bool {
	return w.Balance == w.Earned-w.Spent-w.Expired
}
