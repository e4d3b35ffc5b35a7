// internal/services/notifier.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"adproof/internal/models"
)

// notificationCap bounds the retained feed. Older entries fall off.
const notificationCap = 50

// Notifier collects operator-facing notices from background work, mainly
// export failures. The feed is in memory only and newest-first.
type Notifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) push(level models.NotificationLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	item := models.Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
		At:      time.Now().UTC(),
	}
	n.items = append([]models.Notification{item}, n.items...)
	if len(n.items) > notificationCap {
		n.items = n.items[:notificationCap]
	}
}

func (n *Notifier) Error(message string) {
	n.push(models.NotificationError, message)
}

func (n *Notifier) Info(message string) {
	n.push(models.NotificationInfo, message)
}

// Recent returns the feed newest-first.
func (n *Notifier) Recent() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]models.Notification, len(n.items))
	copy(out, n.items)
	return out
}
