package pkg

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// FollowEventProducer 把关注/取关事件写入 kafka。
// 以关注方用户 ID 做哈希分区 key，同一用户的事件落在同一分区保持顺序
type FollowEventProducer struct {
	writer *kafka.Writer
}

func NewFollowEventProducer(brokers []string, topic string) *FollowEventProducer {
	return &FollowEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func (p *FollowEventProducer) Send(ctx context.Context, userID uint64, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(userID, 10)),
		Value: payload,
	})
}

func (p *FollowEventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
