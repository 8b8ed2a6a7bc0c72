package mock

import (
	"context"

	"github.com/fwojciec/healthpulse"
)

var _ healthpulse.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of healthpulse.FeedService.
type FeedService struct {
	CreateFeedFn   func(ctx context.Context, feed *healthpulse.Feed) error
	FindFeedByIDFn func(ctx context.Context, id string) (*healthpulse.Feed, error)
	FindFeedsFn    func(ctx context.Context, filter healthpulse.FeedFilter) ([]*healthpulse.Feed, error)
	UpdateFeedFn   func(ctx context.Context, id string, upd healthpulse.FeedUpdate) (*healthpulse.Feed, error)
	DeleteFeedFn   func(ctx context.Context, id string) error
}

func (s *FeedService) CreateFeed(ctx context.Context, feed *healthpulse.Feed) error {
	return s.CreateFeedFn(ctx, feed)
}

func (s *FeedService) FindFeedByID(ctx context.Context, id string) (*healthpulse.Feed, error) {
	return s.FindFeedByIDFn(ctx, id)
}

func (s *FeedService) FindFeeds(ctx context.Context, filter healthpulse.FeedFilter) ([]*healthpulse.Feed, error) {
	return s.FindFeedsFn(ctx, filter)
}

func (s *FeedService) UpdateFeed(ctx context.Context, id string, upd healthpulse.FeedUpdate) (*healthpulse.Feed, error) {
	return s.UpdateFeedFn(ctx, id, upd)
}

func (s *FeedService) DeleteFeed(ctx context.Context, id string) error {
	return s.DeleteFeedFn(ctx, id)
}
