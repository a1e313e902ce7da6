package stream

import (
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	json "github.com/goccy/go-json"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/tempo"
)

// DefaultPublishTimeout bounds how long ApplyState waits for the broker to
// acknowledge one message.
const DefaultPublishTimeout = 500 * time.Millisecond

// Client is the subset of mqtt.Client used by Publisher.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Message is the JSON payload published for one object update.
type Message struct {
	Object string         `json:"object"`
	Values map[string]any `json:"values"`
}

// Publisher is a tempo.Applier that publishes every resolved state of one
// object as JSON on <topic>/<object>. Values of type colorful.Color are
// encoded as "#rrggbb".
//
// Publish failures are logged and otherwise ignored so a slow or absent
// broker never stalls the timeline.
type Publisher struct {
	client  Client
	object  string
	topic   string
	qos     byte
	retain  bool
	timeout time.Duration
	logger  *slog.Logger
	values  map[string]any
}

// NewPublisher creates a Publisher for the named object using the topic
// prefix and QoS from cfg.
func NewPublisher(client Client, cfg MQTTConfig, object string) *Publisher {
	return &Publisher{
		client:  client,
		object:  object,
		topic:   cfg.Topic + "/" + object,
		qos:     cfg.QoS,
		timeout: DefaultPublishTimeout,
		logger:  slog.New(slog.DiscardHandler),
		values:  make(map[string]any),
	}
}

// SetLogger sets the logger used for publish failures.
func (p *Publisher) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	p.logger = l
}

// SetRetained makes published messages retained by the broker, so late
// subscribers receive the most recent state.
func (p *Publisher) SetRetained(retain bool) {
	p.retain = retain
}

// SetTimeout sets how long to wait for each publish. Zero waits without
// checking for delivery.
func (p *Publisher) SetTimeout(d time.Duration) {
	p.timeout = d
}

// Topic returns the topic messages are published on.
func (p *Publisher) Topic() string {
	return p.topic
}

// ApplyState implements tempo.Applier.
func (p *Publisher) ApplyState(s tempo.State) {
	b, err := p.encode(s)
	if err != nil {
		p.logger.Error("stream: encode state", "object", p.object, "err", err)
		return
	}
	token := p.client.Publish(p.topic, p.qos, p.retain, b)
	if p.timeout <= 0 {
		return
	}
	if !token.WaitTimeout(p.timeout) {
		p.logger.Warn("stream: publish timed out", "topic", p.topic, "timeout", p.timeout)
		return
	}
	if err := token.Error(); err != nil {
		p.logger.Error("stream: publish", "topic", p.topic, "err", err)
	}
}

func (p *Publisher) encode(s tempo.State) ([]byte, error) {
	clear(p.values)
	for k, v := range s {
		if c, ok := v.(colorful.Color); ok {
			v = c.Clamped().Hex()
		}
		p.values[k] = v
	}
	return json.Marshal(Message{Object: p.object, Values: p.values})
}
