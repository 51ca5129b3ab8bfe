package dto

type CreateIdeaRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Icon        string  `json:"icon" binding:"required"`
	BgColor     *string `json:"bg_color"`
	Category    *string `json:"category"`
	IdeaType    *string `json:"idea_type"`
	Chain       *string `json:"chain"`
	Tags        *string `json:"tags"`
}

type UpdateIdeaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	BgColor     *string `json:"bg_color"`
	Category    *string `json:"category"`
	IdeaType    *string `json:"idea_type"`
	Chain       *string `json:"chain"`
}

type UpdateLaunchRequest struct {
	PriceEth        *float64 `json:"price_eth"`
	FundingGoalEth  *float64 `json:"funding_goal_eth"`
	RevenueSharePct *float64 `json:"revenue_share_pct"`
	Twitter         *string  `json:"twitter"`
	Discord         *string  `json:"discord"`
	Telegram        *string  `json:"telegram"`
}

type ListIdeasQuery struct {
	Category *string `form:"category"`
	Chain    *string `form:"chain"`
	IdeaType *string `form:"idea_type"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}
