package dto

import "encoding/json"

type InsightResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data,omitempty"`
	Priority    string          `json:"priority"`
	IsRead      bool            `json:"isRead"`
	CreatedAt   string          `json:"createdAt"`
}

type GenerateInsightsResponse struct {
	Generated int               `json:"generated"`
	Insights  []InsightResponse `json:"insights"`
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"userId"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	IsRead    bool    `json:"isRead"`
	CreatedAt string  `json:"createdAt"`
}
