package controller

import (
	"fmt"
	"slices"
	"time"

	"github.com/joshuasellers/fantasy-football-tracker/model"
)

// notificationsFromTransactions turns the combined transaction list from all
// leagues into display-ready notifications: only complete and pending
// transactions qualify, newest first, capped at limit.
func notificationsFromTransactions(transactions []model.Transaction, limit int, now time.Time) []model.Notification {
	qualifying := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Status == model.TransactionComplete || t.Status == model.TransactionPending {
			qualifying = append(qualifying, t)
		}
	}

	// A missing creation time is the zero value and sorts to the end.
	slices.SortStableFunc(qualifying, func(a, b model.Transaction) int {
		return b.Created.Compare(a.Created)
	})

	if len(qualifying) > limit {
		qualifying = qualifying[:limit]
	}

	notifications := make([]model.Notification, 0, len(qualifying))
	for _, t := range qualifying {
		title := t.Type.Title()
		notifications = append(notifications, model.Notification{
			ID:         t.ID,
			Type:       t.Type,
			Title:      title,
			Message:    fmt.Sprintf("%s in %s", title, t.LeagueName),
			Time:       formatTimeAgo(t.Created, now),
			Read:       false,
			LeagueID:   t.LeagueID,
			LeagueName: t.LeagueName,
		})
	}
	return notifications
}

// formatTimeAgo buckets the elapsed time into a coarse relative string. Days
// is the largest unit; anything older just becomes a bigger day count.
func formatTimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	default:
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
}
