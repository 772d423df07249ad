package domain

import "time"

type NotificationType string

const (
	NotificationSuccess     NotificationType = "success"
	NotificationCelebration NotificationType = "celebration"
	NotificationMessage     NotificationType = "message"
	NotificationInfo        NotificationType = "info"
)

type Notification struct {
	ID      int64            `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	// 仅 celebration 类型携带，用于庆祝页展示公司名
	CompanyName string    `json:"companyName,omitempty"`
	From        string    `json:"from,omitempty"`
	Recipient   string    `json:"recipient,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"timestamp"`
}
