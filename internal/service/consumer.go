package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"goodfood-shop/internal/domain"
)

// Consumer feeds the coupon ledger from the sponsorship topics and keeps
// embedded user snapshots in sync with the auth service.
type Consumer struct {
	coupons     CouponServiceInterface
	restaurants RestaurantRepository
	ledger      CouponRepository
	cache       MarkerCache
}

func NewConsumer(coupons CouponServiceInterface, restaurants RestaurantRepository, ledger CouponRepository, cache MarkerCache) *Consumer {
	return &Consumer{
		coupons:     coupons,
		restaurants: restaurants,
		ledger:      ledger,
		cache:       cache,
	}
}

// Start spawns one read loop per reader. Loops exit when ctx is cancelled.
func (c *Consumer) Start(ctx context.Context, sponsorships []*kafka.Reader, users *kafka.Reader) {
	for _, reader := range sponsorships {
		go c.run(ctx, reader, c.ProcessSponsorship)
	}
	if users != nil {
		go c.run(ctx, users, c.ProcessUserUpdate)
	}
}

func (c *Consumer) run(ctx context.Context, reader *kafka.Reader, handle func(context.Context, []byte)) {
	log.Printf("Starting consumer on topic %s", reader.Config().Topic)
	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}
		handle(ctx, message.Value)
	}
}

// ProcessSponsorship issues the coupon pair for a sponsorship event. Topic
// delivery is at-least-once, so events are deduplicated by id through a
// marker key before any coupon is created.
func (c *Consumer) ProcessSponsorship(ctx context.Context, payload []byte) {
	var event domain.Sponsorship
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("Error unmarshaling sponsorship event: %v", err)
		return
	}
	if event.ID == "" {
		log.Printf("Dropping sponsorship event without id")
		return
	}

	key := c.cache.SponsorshipKey(event.ID)
	seen, err := c.cache.Exists(ctx, key)
	if err != nil {
		// Fail open: issuing twice beats dropping the event, but the broken
		// marker cache must show up in the logs.
		log.Printf("Warning: failed to check marker for sponsorship %s: %v", event.ID, err)
	}
	if seen {
		log.Printf("Skipping already processed sponsorship %s", event.ID)
		return
	}

	if _, _, err := c.coupons.IssueSponsorshipPair(event.Sponsor, event.Sponsored); err != nil {
		log.Printf("Error issuing coupons for sponsorship %s: %v", event.ID, err)
		return
	}

	if err := c.cache.SetMarker(ctx, key); err != nil {
		log.Printf("Warning: failed to mark sponsorship %s as processed: %v", event.ID, err)
	}
	log.Printf("Issued coupon pair for sponsorship %s", event.ID)
}

// ProcessUserUpdate refreshes the user snapshots embedded in restaurants
// and coupons, same discipline as product snapshots in menus.
func (c *Consumer) ProcessUserUpdate(ctx context.Context, payload []byte) {
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		log.Printf("Error unmarshaling user event: %v", err)
		return
	}
	if user.ID == "" {
		return
	}

	if err := c.restaurants.UpdateOwnerSnapshot(user); err != nil {
		log.Printf("Error refreshing owner snapshot for user %s: %v", user.ID, err)
	}
	if err := c.ledger.UpdateHolderSnapshot(user); err != nil {
		log.Printf("Error refreshing coupon holder snapshot for user %s: %v", user.ID, err)
	}
}
