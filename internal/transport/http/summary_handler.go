package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsushman/Project-Vealth/internal/application/usecase"
)

type SummaryHandler struct {
	summary *usecase.SummaryUseCase
}

func NewSummaryHandler(summary *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

type accountResp struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Balance     string     `json:"balance"`
	GoalAmount  *string    `json:"goal_amount,omitempty"`
	GoalEndDate *time.Time `json:"goal_end_date,omitempty"`
	Progress    float64    `json:"progress"`
	HasGoal     bool       `json:"has_goal"`
}

// GET /api/v1/summary
// Внутри все деньги считаются точно, округление до двух знаков
// происходит только здесь, на выдаче.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	uid := c.GetString("userId") // Из AuthMiddleware

	overview := h.summary.Overview(c, uid)

	accounts := make([]accountResp, 0, len(overview.Accounts))
	for _, s := range overview.Accounts {
		resp := accountResp{
			ID:          s.Account.ID.String(),
			Name:        s.Account.Name,
			Balance:     s.Account.Balance.StringFixed(2),
			GoalEndDate: s.Account.GoalEndDate,
			Progress:    s.Progress,
			HasGoal:     s.HasGoal,
		}
		if s.Account.GoalAmount != nil {
			goal := s.Account.GoalAmount.StringFixed(2)
			resp.GoalAmount = &goal
		}
		accounts = append(accounts, resp)
	}

	direction := "up"
	if overview.WeeklyCashFlow.IsNegative() {
		direction = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"accounts":            accounts,
		"total_balance":       overview.TotalBalance.StringFixed(2),
		"weekly_cash_flow":    overview.WeeklyCashFlow.StringFixed(2),
		"cash_flow_direction": direction,
	})
}
