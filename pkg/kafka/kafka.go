package kafka

import (
	"context"
	"log"
	"strings"
	"time"

	k "github.com/segmentio/kafka-go"
)

type Writer struct {
	w *k.Writer
}

func NewWriter(brokers, topic string) *Writer {
	w := &k.Writer{
		Addr:         k.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &k.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: k.RequireOne,
	}
	return &Writer{w: w}
}

func (w *Writer) Close() error { return w.w.Close() }

func (w *Writer) Publish(ctx context.Context, key string, value []byte) error {
	return w.w.WriteMessages(ctx, k.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

type Handler func(ctx context.Context, topic string, key, value []byte) error

type Consumer struct {
	reader *k.Reader
	handle Handler
}

func NewConsumer(brokers, groupID, topic string, h Handler) *Consumer {
	return &Consumer{
		reader: k.NewReader(k.ReaderConfig{
			Brokers:        strings.Split(brokers, ","),
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10 << 20,
			StartOffset:    k.FirstOffset,
			CommitInterval: time.Second,
		}),
		handle: h,
	}
}

func (c *Consumer) Close() error { return c.reader.Close() }

func (c *Consumer) Run(ctx context.Context) error {
	log.Printf("[Kafka] Consumer started | group=%s | topic=%s | brokers=%v",
		c.reader.Config().GroupID, c.reader.Config().Topic, c.reader.Config().Brokers)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[Kafka] Consumer shutting down...")
				return nil
			}
			log.Printf("[Kafka] Fetch error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if c.handle != nil {
			if e := c.handle(ctx, m.Topic, m.Key, m.Value); e != nil {
				log.Printf("[Kafka] Handler error: %v", e)
			}
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("[Kafka] Commit error: %v", err)
		}
	}
}
