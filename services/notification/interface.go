package notification

import (
	"encoding/json"
	"fmt"

	"dbswash/config"
	"dbswash/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReceiptSend = "receipt:send"

// ReceiptTaskPayload is the queued unit of work for receipt delivery.
type ReceiptTaskPayload struct {
	Receipt models.Receipt `json:"receipt"`
	Email   string         `json:"email,omitempty"`
}

// ReceiptDispatcher hands confirmed-booking receipts to the delivery queue.
type ReceiptDispatcher interface {
	EnqueueReceipt(receipt models.Receipt, email string) error
}

// AsynqReceiptDispatcher enqueues receipt:send tasks on Redis.
type AsynqReceiptDispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewAsynqReceiptDispatcher builds a dispatcher against the configured queue DB.
func NewAsynqReceiptDispatcher(logger *zap.Logger) *AsynqReceiptDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqReceiptDispatcher{client: client, logger: logger}
}

// EnqueueReceipt queues a receipt for out-of-band delivery.
func (d *AsynqReceiptDispatcher) EnqueueReceipt(receipt models.Receipt, email string) error {
	payload, err := json.Marshal(ReceiptTaskPayload{Receipt: receipt, Email: email})
	if err != nil {
		return fmt.Errorf("failed to marshal receipt task: %w", err)
	}
	if _, err := d.client.Enqueue(asynq.NewTask(TypeReceiptSend, payload)); err != nil {
		return fmt.Errorf("failed to enqueue receipt task: %w", err)
	}
	d.logger.Debug("receipt dispatch enqueued", zap.String("receipt", receipt.Reference))
	return nil
}
