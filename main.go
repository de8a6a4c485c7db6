package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"

	"goodfood-shop/config"
	httpapi "goodfood-shop/internal/api/http"
	"goodfood-shop/internal/service"
	"goodfood-shop/internal/storage"
)

const sponsorshipMarkerTTL = 24 * 7 * time.Hour

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	orderWriter := config.NewKafkaWriter(storage.TopicOrders)
	defer orderWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, sponsorshipMarkerTTL)
	publisher := storage.NewKafkaPublisher(orderWriter)
	qrEncoder := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_URL")}

	guard := service.NewOwnershipGuard(repo)
	restaurantSvc := service.NewRestaurantService(repo, guard)
	productSvc := service.NewProductService(repo, repo, guard)
	menuSvc := service.NewMenuService(repo, repo, guard)
	orderSvc := service.NewOrderService(repo, repo, repo, repo, publisher)
	couponSvc := service.NewCouponService(repo, repo, qrEncoder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := service.NewConsumer(couponSvc, repo, repo, cache)
	consumer.Start(ctx,
		[]*kafka.Reader{
			config.NewKafkaReader(storage.TopicSponsorshipRestaurateur, "shop-svc"),
			config.NewKafkaReader(storage.TopicSponsorshipClient, "shop-svc"),
		},
		config.NewKafkaReader(storage.TopicUsers, "shop-svc"),
	)

	handler := httpapi.NewHandler(restaurantSvc, productSvc, menuSvc, orderSvc, couponSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	httpapi.StartServer(addr, router)
}
