package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/pkg/mail"
	"github.com/shashiranjanraj/bistro/pkg/queue"
)

// ConfirmationMailJob emails the customer after a successful payment.
// It runs on the queue workers; a send failure is logged by the queue
// and never reaches the request that recorded the payment.
type ConfirmationMailJob struct {
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Price         float64 `json:"price"`
}

// RegisterJobs registers every job type with the queue. Call once at boot.
func RegisterJobs() {
	queue.Register("services.ConfirmationMailJob", func() queue.Job { return &ConfirmationMailJob{} })
}

func (j ConfirmationMailJob) Handle() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := fmt.Sprintf(
		"<div><h2>Thank you for your order</h2><p>Your Transaction Id: <strong>%s</strong></p><p>Amount paid: $%.2f</p><p>We would like to get your feedback about the food</p></div>",
		j.TransactionID, j.Price,
	)

	return mail.To(j.Email).
		From(config.MailFrom()).
		Subject("Order Confirmation").
		Body(body).
		Send(ctx)
}
