package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

// RedisNotifier fans order change events out to every instance over Redis pub/sub.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger

	mu   sync.Mutex
	subs map[*redis.PubSub]context.CancelFunc
}

var _ shared.ChangeNotifier = (*RedisNotifier)(nil)

func Channel(prefix string) string {
	return prefix + ":orders:changed"
}

// Connect parses url, pings the server and returns a notifier on the prefixed channel.
func Connect(ctx context.Context, url, prefix string, logger *slog.Logger) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	return NewRedisNotifier(client, prefix, logger), nil
}

func NewRedisNotifier(client *redis.Client, prefix string, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: Channel(prefix),
		logger:  logger,
		subs:    make(map[*redis.PubSub]context.CancelFunc),
	}
}

func (n *RedisNotifier) Publish(ctx context.Context, ev shared.ChangeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal change event")
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		return errs.Wrap(err, "failed to publish change event")
	}
	return nil
}

// Subscribe returns once the subscription is confirmed, so events published afterwards are not lost.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan shared.ChangeEvent, error) {
	subCtx, cancel := context.WithCancel(ctx)
	pubsub := n.client.Subscribe(subCtx, n.channel)

	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to change channel")
	}

	n.mu.Lock()
	n.subs[pubsub] = cancel
	n.mu.Unlock()

	events := make(chan shared.ChangeEvent, 16)
	go func() {
		defer func() {
			_ = pubsub.Close()
			close(events)

			n.mu.Lock()
			delete(n.subs, pubsub)
			n.mu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var ev shared.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					n.logger.Warn("Ignoring malformed change event",
						slog.String("channel", msg.Channel),
						slog.String("error", err.Error()))
					continue
				}

				select {
				case events <- ev:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	n.logger.Debug("Subscribed to order changes", slog.String("channel", n.channel))
	return events, nil
}

// Close ends every subscription and the client.
func (n *RedisNotifier) Close() error {
	n.mu.Lock()
	for _, cancel := range n.subs {
		cancel()
	}
	n.mu.Unlock()

	return n.client.Close()
}
