package jobs

import (
	"context"
	"fmt"

	"github.com/nima/farsiflash/internal/mailer"
	"github.com/nima/farsiflash/internal/worker"
)

// MailQueue decouples callers from the worker pool: services enqueue
// mail, the pool delivers it.
type MailQueue interface {
	EnqueueMail(to, subject, body string) error
}

type mailJob struct {
	mailer  mailer.Mailer
	to      string
	subject string
	body    string
}

func (j mailJob) Name() string {
	return fmt.Sprintf("mail:%s", j.subject)
}

func (j mailJob) Run(ctx context.Context) error {
	return j.mailer.Send(ctx, j.to, j.subject, j.body)
}

type poolMailQueue struct {
	pool   *worker.Pool
	mailer mailer.Mailer
}

// NewMailQueue creates a MailQueue backed by the worker pool.
func NewMailQueue(pool *worker.Pool, m mailer.Mailer) MailQueue {
	return &poolMailQueue{pool: pool, mailer: m}
}

func (q *poolMailQueue) EnqueueMail(to, subject, body string) error {
	q.pool.Submit(mailJob{mailer: q.mailer, to: to, subject: subject, body: body})
	return nil
}
