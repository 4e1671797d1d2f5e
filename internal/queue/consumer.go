package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer drains the lineup.generated and member.removed queues and
// appends one line per event to LogPath.
type Consumer struct {
    URL     string
    LogPath string
}

func NewConsumer(url string) *Consumer {
    return &Consumer{URL: url, LogPath: filepath.Join("logs", "lineup.log")}
}

// Run dials the broker and consumes until ctx is cancelled, reconnecting
// with exponential back-off (capped at 30s) whenever the connection drops.
// Messages that cannot be handled are rejected without requeue so the
// server keeps operating.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            log.Printf("lineup-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Printf("lineup-consumer: consume loop ended: %v; reconnecting", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("lineup-consumer: set QoS failed: %v", err)
    }

    generated, err := c.subscribe(ch, LineupGeneratedQueue)
    if err != nil {
        return err
    }
    removed, err := c.subscribe(ch, MemberRemovedQueue)
    if err != nil {
        return err
    }

    for {
        var (
            d  amqp.Delivery
            ok bool
        )
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok = <-generated:
        case d, ok = <-removed:
        }
        if !ok {
            return errors.New("deliveries channel closed")
        }
        line, err := FormatLine(d.RoutingKey, d.Body)
        if err == nil {
            err = c.appendLine(line)
        }
        if err != nil {
            log.Printf("lineup-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
}

func (c *Consumer) subscribe(ch *amqp.Channel, queue string) (<-chan amqp.Delivery, error) {
    if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
        return nil, fmt.Errorf("queue declare %s: %w", queue, err)
    }
    msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
    if err != nil {
        return nil, fmt.Errorf("queue consume %s: %w", queue, err)
    }
    return msgs, nil
}

func (c *Consumer) appendLine(line string) error {
    if err := os.MkdirAll(filepath.Dir(c.LogPath), 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatLine renders a delivery from queue as a single log line.
func FormatLine(queue string, body []byte) (string, error) {
    switch queue {
    case LineupGeneratedQueue:
        var ev LineupGeneratedEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return "", fmt.Errorf("unmarshal: %w", err)
        }
        locked := "[]"
        if len(ev.LockedSeats) > 0 {
            locked = "[" + strings.Join(ev.LockedSeats, ",") + "]"
        }
        return fmt.Sprintf("[%s] Lineup generated | team=%s | paddlers=%d | left=%.1f | right=%.1f | diff=%.1f | preferences=%d%% | drummer=%q | steerer=%q | locked=%s\n",
            ev.GeneratedAt, ev.TeamID, ev.TotalPaddlers, ev.LeftWeight, ev.RightWeight, ev.WeightDifference,
            ev.PreferencesSatisfied, ev.Drummer, ev.Steerer, locked), nil
    case MemberRemovedQueue:
        var ev MemberRemovedEvent
        if err := json.Unmarshal(body, &ev); err != nil {
            return "", fmt.Errorf("unmarshal: %w", err)
        }
        return fmt.Sprintf("[%s] Member removed | team=%s | member_id=%s | name=%q | was_seated=%t\n",
            ev.RemovedAt, ev.TeamID, ev.MemberID, ev.Name, ev.WasSeated), nil
    }
    return "", fmt.Errorf("unknown queue %q", queue)
}
