package changefeed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain/event"
)

const streamPrefix = "probagno:stream:"

var eventTypes = []string{
	(&event.ProductChangedEvent{}).EventType(),
	(&event.CategoryChangedEvent{}).EventType(),
}

// Handler reacts to one decoded change event.
type Handler func(ctx context.Context, e event.Event) error

type Feed interface {
	Publish(ctx context.Context, e event.Event) (string, error)
	Run(ctx context.Context, handler Handler) error
	EnsureStreamsExist(ctx context.Context) error
}

type redisFeed struct {
	redisClient *redis.Client
	groupName   string
	consumer    string
	minIdleTime time.Duration
	maxLen      int64
}

// NewRedisFeed joins a consumer group of its own, so every instance sees
// every change.
func NewRedisFeed(redisClient *redis.Client, cfg config.RedisConfig, instance string) (Feed, error) {
	f := &redisFeed{
		redisClient: redisClient,
		groupName:   cfg.ConsumerGroup + ":" + instance,
		consumer:    instance,
		minIdleTime: time.Duration(cfg.MinIdleTime) * time.Second,
		maxLen:      10000,
	}

	if err := f.EnsureStreamsExist(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure streams exist: %w", err)
	}

	return f, nil
}

func streamName(eventType string) string {
	return streamPrefix + eventType
}

func (f *redisFeed) createGroup(ctx context.Context, stream string) error {
	err := f.redisClient.XGroupCreateMkStream(ctx, stream, f.groupName, "$").Err()
	if err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP") {
		log.Debugf("Group %s already exists for stream %s", f.groupName, stream)
		return nil
	}
	return err
}

// EnsureStreamsExist creates all change streams and this instance's consumer group
func (f *redisFeed) EnsureStreamsExist(ctx context.Context) error {
	for _, eventType := range eventTypes {
		stream := streamName(eventType)
		if err := f.createGroup(ctx, stream); err != nil {
			return fmt.Errorf("failed to create consumer group for %s: %w", eventType, err)
		}
		log.Infof("✅ Stream %s and consumer group %s ready", stream, f.groupName)
	}
	return nil
}

func (f *redisFeed) Publish(ctx context.Context, e event.Event) (string, error) {
	eventType := e.EventType()
	stream := streamName(eventType)

	data, err := e.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	messageID, err := f.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: f.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", stream, err)
	}

	log.Debugf("Published %s to %s with message ID: %s", eventType, stream, messageID)
	return messageID, nil
}

// Run reads change events until ctx is done. Messages left pending by a
// previous run of this instance are reclaimed periodically.
func (f *redisFeed) Run(ctx context.Context, handler Handler) error {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		f.runAutoClaimer(ctx, handler)
	}()

	streams := make([]string, 0, len(eventTypes)*2)
	for _, eventType := range eventTypes {
		streams = append(streams, streamName(eventType))
	}
	for range eventTypes {
		streams = append(streams, ">")
	}

	log.Infof("🚀 Listening for catalog changes as %s", f.consumer)
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			log.Info("🛑 Change feed stopping")
			return nil
		default:
		}

		result, err := f.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    f.groupName,
			Consumer: f.consumer,
			Streams:  streams,
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			log.Errorf("❌ Failed to read change streams: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range result {
			for _, msg := range stream.Messages {
				f.process(ctx, stream.Stream, msg, handler)
			}
		}
	}
}

func (f *redisFeed) runAutoClaimer(ctx context.Context, handler Handler) {
	if f.minIdleTime <= 0 {
		return
	}

	ticker := time.NewTicker(f.minIdleTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, eventType := range eventTypes {
				stream := streamName(eventType)
				messages, _, err := f.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
					Stream:   stream,
					Group:    f.groupName,
					Consumer: f.consumer,
					MinIdle:  f.minIdleTime,
					Start:    "0-0",
					Count:    10,
				}).Result()
				if err != nil && !errors.Is(err, redis.Nil) {
					log.Errorf("❌ Failed to auto-claim messages from %s: %v", stream, err)
					continue
				}
				if len(messages) > 0 {
					log.Infof("🔄 Auto-claimed %d messages from %s", len(messages), stream)
				}
				for _, msg := range messages {
					f.process(ctx, stream, msg, handler)
				}
			}
		}
	}
}

func (f *redisFeed) process(ctx context.Context, stream string, msg redis.XMessage, handler Handler) {
	e, err := decodeMessage(msg)
	if err != nil {
		log.Errorf("❌ Dropping undecodable message %s: %v", msg.ID, err)
	} else if err := handler(ctx, e); err != nil {
		log.Errorf("❌ Failed to handle message %s: %v", msg.ID, err)
		return
	}

	if err := f.redisClient.XAck(ctx, stream, f.groupName, msg.ID).Err(); err != nil {
		log.Errorf("❌ Failed to ack message %s: %v", msg.ID, err)
	}
}

func decodeMessage(msg redis.XMessage) (event.Event, error) {
	eventType, ok := msg.Values["event_type"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid event type in message %s", msg.ID)
	}

	data, ok := msg.Values["event_data"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid event data in message %s", msg.ID)
	}

	switch eventType {
	case "ProductChanged":
		return event.UnmarshalEvent[*event.ProductChangedEvent]([]byte(data))
	case "CategoryChanged":
		return event.UnmarshalEvent[*event.CategoryChangedEvent]([]byte(data))
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}
