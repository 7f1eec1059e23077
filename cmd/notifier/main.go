package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

// Worker уведомлений: читает события бронирований из Kafka и рассылает
// уведомления. Пока канал доставки один - запись в лог
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.Kafka.Enabled {
		log.Fatal("Kafka is disabled in config, notifier has nothing to consume")
	}

	log.Info("Starting booking notifier (brokers=%v, topic=%s, group=%s)",
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)

	consumer := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = consumer.Consume(ctx, func(ctx context.Context, event events.BookingEvent) error {
		notify(log, event)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Consumer stopped with error: %v", err)
	}

	log.Info("Notifier stopped gracefully")
}

// notify формирует текст уведомления по типу события
func notify(log *logger.Logger, event events.BookingEvent) {
	switch event.Type {
	case events.TypeBookingCreated:
		log.Info("Notification: %s забронировал(а) комнату %q на %s - %s",
			event.UserName, event.RoomName, event.StartTime, event.EndTime)
	case events.TypeBookingUpdated:
		log.Info("Notification: бронирование комнаты %q перенесено на %s - %s (владелец: %s)",
			event.RoomName, event.StartTime, event.EndTime, event.UserName)
	case events.TypeBookingCancelled:
		log.Info("Notification: бронирование комнаты %q на %s отменено (владелец: %s)",
			event.RoomName, event.StartTime, event.UserName)
	default:
		log.Warn("Notification: unknown event type %q for booking %s", event.Type, event.BookingID)
	}
}
