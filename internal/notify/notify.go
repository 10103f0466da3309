// Package notify publishes result events to an MQTT broker so line-side
// displays and PLC bridges learn about new inspection results without polling.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"pcbinspect/internal/config"
	"pcbinspect/internal/inspector"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
)

// ErrPublishTimeout is returned when the broker did not acknowledge a publish
// in time.
var ErrPublishTimeout = errors.New("mqtt publish timeout")

// Publisher is the subset of mqtt.Client used to publish messages.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// Options configure an MQTT notifier.
type Options struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
	Timeout     time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Broker:      cfg.MQTT.Broker,
		ClientID:    cfg.MQTT.ClientID,
		Username:    cfg.MQTT.Username,
		Password:    cfg.MQTT.Password,
		TopicPrefix: cfg.MQTT.TopicPrefix,
		QoS:         cfg.MQTT.QoS,
		Timeout:     cfg.MQTT.Timeout,
	}
}

// MQTT publishes each ResultEvent as JSON to <prefix>/results/<pcb_id>.
type MQTT struct {
	publisher Publisher
	prefix    string
	qos       byte
	timeout   time.Duration
	published atomic.Uint64
}

var _ inspector.Notifier = (*MQTT)(nil)

// NewMQTT wraps an existing publisher.
func NewMQTT(publisher Publisher, options Options) *MQTT {
	if options.Timeout <= 0 {
		options.Timeout = 5 * time.Second
	}

	return &MQTT{
		publisher: publisher,
		prefix:    strings.TrimSuffix(options.TopicPrefix, "/"),
		qos:       options.QoS,
		timeout:   options.Timeout,
	}
}

// Topic returns the topic events of a PCB are published on.
func (m *MQTT) Topic(id domain.PCBID) string {
	if m.prefix == "" {
		return "results/" + id.String()
	}

	return m.prefix + "/results/" + id.String()
}

// Published returns the number of events acknowledged by the broker.
func (m *MQTT) Published() uint64 { return m.published.Load() }

func (m *MQTT) PublishResults(ctx context.Context, event domain.ResultEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal result event: %w", err)
	}

	topic := m.Topic(event.PCBID)
	token := m.publisher.Publish(topic, m.qos, false, payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("could not publish result event: %w", ctx.Err())
	case <-time.After(m.timeout):
		return ErrPublishTimeout
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("could not publish result event: %w", err)
	}

	m.published.Add(1)
	logger.Debug(ctx, "result event published", zap.String("topic", topic), zap.Int("size", len(payload)))

	return nil
}

// Connect dials the broker described by options and returns a notifier plus a
// function disconnecting it. The client reconnects on its own after losing
// the connection.
func Connect(ctx context.Context, options Options) (*MQTT, func(), error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(options.Broker)
	opts.SetClientID(options.ClientID)
	if options.Username != "" {
		opts.SetUsername(options.Username)
		opts.SetPassword(options.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info(ctx, "mqtt connection established", zap.String("broker", options.Broker))
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn(ctx, "mqtt connection lost, will auto-reconnect", zap.Error(err))
	})

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, nil, fmt.Errorf("could not connect to mqtt broker %s: timeout", options.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, nil, fmt.Errorf("could not connect to mqtt broker %s: %w", options.Broker, err)
	}

	return NewMQTT(client, options), func() {
		client.Disconnect(250)
		logger.Info(ctx, "mqtt disconnected")
	}, nil
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishResults(context.Context, domain.ResultEvent) error { return nil }
