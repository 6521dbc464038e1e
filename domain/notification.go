package domain

import "time"

type NotificationType string

const (
	NotifyLike    NotificationType = "like"
	NotifyComment NotificationType = "comment"
	NotifyFollow  NotificationType = "follow"
	NotifyMention NotificationType = "mention"
)

type Notification struct {
	ID          int64
	SenderName  string
	SenderImage string
	Type        NotificationType
	Message     string
	EntityID    int64
	CreatedAt   time.Time
	Read        bool
}
