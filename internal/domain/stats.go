package domain

import "time"

// UserRacingStats holds a user's lifetime wagering aggregates. Counters are
// monotonically increasing; win_rate and streaks are derived during the
// settlement transaction that updates them.
type UserRacingStats struct {
	UserID            int64     `json:"user_id"`
	TotalWagers       int64     `json:"total_wagers"`
	WagersWon         int64     `json:"wagers_won"`
	TotalWagered      int64     `json:"total_wagered"` // minor currency units
	TotalWon          int64     `json:"total_won"`
	BiggestWin        int64     `json:"biggest_win"`
	WinRate           float64   `json:"win_rate"` // wagers_won / total_wagers
	RacesParticipated int64     `json:"races_participated"`
	CurrentStreak     int64     `json:"current_streak"`
	BestStreak        int64     `json:"best_streak"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NetProfit is total winnings minus total staked
func (s UserRacingStats) NetProfit() int64 {
	return s.TotalWon - s.TotalWagered
}
