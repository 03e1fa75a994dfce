package service

import (
	"context"
	"log"
	"time"

	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.FollowOutbox) error

// OutboxRelayer 周期性把待投递的关注事件交给 sender（线上是 kafka）。
// 事件与关注写入同事务落库，投递失败留在表里带重试计数
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件投递到 kafka，key 用关注方 id 保证同一用户的事件有序
func KafkaSender(producer *pkg.FollowEventProducer) Sender {
	return func(ctx context.Context, ob *model.FollowOutbox) error {
		return producer.Send(ctx, ob.UserID, []byte(ob.Payload))
	}
}

// LogSender 本地没有 kafka 时的兜底 sender
func LogSender(ctx context.Context, ob *model.FollowOutbox) error {
	log.Printf("OUTBOX SEND type=%s user=%d author=%d payload=%s", ob.EventType, ob.UserID, ob.AuthorID, ob.Payload)
	return nil
}
