package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dbswash/config"
	"dbswash/services/booking"
	"dbswash/services/notification"

	"github.com/hibiken/asynq"
)

// InitReceiptWorker runs the receipt-delivery worker in the background. It
// drains receipt:send tasks enqueued on successful submissions and renders
// the print-format receipt toward the delivery channel. Actual delivery is a
// stub, matching the simulated payment flow.
func InitReceiptWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeReceiptSend, handleReceiptTask)

	go func() {
		log.Println("[ReceiptWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReceiptWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReceiptWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReceiptTask(ctx context.Context, task *asynq.Task) error {
	var p notification.ReceiptTaskPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReceiptWorker] invalid payload: %v", err)
		return err
	}

	rendered := booking.FormatPrintReceipt(p.Receipt)

	if p.Email == "" {
		log.Printf("[ReceiptWorker] receipt %s confirmed for walk-in pickup (no email on file)", p.Receipt.Reference)
		return nil
	}

	// Delivery channel is stubbed; log the rendered receipt instead of mailing it.
	log.Printf("[ReceiptWorker] delivering receipt %s to %s:\n%s", p.Receipt.Reference, p.Email, rendered)
	return nil
}
