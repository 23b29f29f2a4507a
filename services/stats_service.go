package services

import (
	"context"

	"github.com/qpost/go-qpost-server/repository"
)

// CollectionStats is a derived read-only view over the whole collection.
type CollectionStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

type StatsService struct {
	mailRepo repository.MailRepository
}

func NewStatsService(mailRepo repository.MailRepository) *StatsService {
	if mailRepo == nil {
		panic("mailRepo cannot be nil")
	}
	return &StatsService{mailRepo: mailRepo}
}

// Stats counts all mails and the unread subset across every recipient.
func (ss *StatsService) Stats(ctx context.Context) (*CollectionStats, error) {
	mails, err := ss.mailRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &CollectionStats{Total: len(mails)}
	for _, m := range mails {
		if !m.IsRead {
			stats.Unread++
		}
	}
	return stats, nil
}
