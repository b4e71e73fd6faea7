package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

const (
	qosAtLeastOnce byte = 1

	// DefaultTopicPrefix is used when no topic prefix is configured.
	DefaultTopicPrefix = "adhan"

	disconnectQuiesceMillis = 250
)

// ErrPublishTimeout is returned when the broker does not acknowledge a publish in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// Publisher is the subset of mqtt.Client used by the notifier.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// MQTTOptions configures the MQTT connection.
type MQTTOptions struct {
	Broker      string
	ClientID    string
	TopicPrefix string
	Username    string
	Password    string
}

// MQTTNotifier publishes channels and notifications to an MQTT broker so that
// remote screens can display them.
type MQTTNotifier struct {
	publisher Publisher
	prefix    string
	timeout   time.Duration
}

var _ adhan.Notifier = (*MQTTNotifier)(nil)

// NewMQTTNotifier creates a notifier over an existing publisher.
func NewMQTTNotifier(publisher Publisher, topicPrefix string, timeout time.Duration) *MQTTNotifier {
	if topicPrefix == "" {
		topicPrefix = DefaultTopicPrefix
	}

	return &MQTTNotifier{
		publisher: publisher,
		prefix:    topicPrefix,
		timeout:   timeout,
	}
}

// ConnectMQTT connects a paho client to the broker.
func ConnectMQTT(ctx context.Context, opts MQTTOptions, timeout time.Duration) (mqtt.Client, error) {
	clientOpts := mqtt.NewClientOptions()
	clientOpts.AddBroker(opts.Broker)
	clientOpts.SetClientID(opts.ClientID)
	clientOpts.SetUsername(opts.Username)
	clientOpts.SetPassword(opts.Password)
	clientOpts.SetAutoReconnect(true)
	clientOpts.SetConnectTimeout(timeout)
	clientOpts.OnConnect = func(mqtt.Client) {
		logger.InfoKV(ctx, "Connected to MQTT broker", "broker", opts.Broker)
	}
	clientOpts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.WarnKV(ctx, "MQTT connection lost", "broker", opts.Broker, "error", err)
	}

	client := mqtt.NewClient(clientOpts)

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", opts.Broker, ErrPublishTimeout)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", opts.Broker, err)
	}

	return client, nil
}

// DisconnectMQTT closes the client after in-flight messages are sent.
func DisconnectMQTT(client mqtt.Client) {
	client.Disconnect(disconnectQuiesceMillis)
}

// EnsureChannel publishes the channel as a retained message.
func (n *MQTTNotifier) EnsureChannel(_ context.Context, channel adhan.Channel) error {
	msg, err := structpb.NewStruct(map[string]any{
		"id":          channel.ID,
		"name":        channel.Name,
		"description": channel.Description,
		"importance":  importanceName(channel.Importance),
	})
	if err != nil {
		return fmt.Errorf("failed to build channel message: %w", err)
	}

	return n.publish(n.prefix+"/channels/"+channel.ID, true, msg)
}

// Show publishes the notification.
func (n *MQTTNotifier) Show(_ context.Context, notification *adhan.Notification) error {
	msg, err := structpb.NewStruct(map[string]any{
		"id":         strconv.Itoa(notification.ID),
		"channelId":  notification.ChannelID,
		"title":      notification.Title,
		"body":       notification.Body,
		"priority":   priorityName(notification.Priority),
		"tapTarget":  notification.TapTarget,
		"autoCancel": notification.AutoCancel,
		"category":   string(notification.Category),
	})
	if err != nil {
		return fmt.Errorf("failed to build notification message: %w", err)
	}

	return n.publish(n.prefix+"/notifications", false, msg)
}

func (n *MQTTNotifier) publish(topic string, retained bool, msg *structpb.Struct) error {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message for %s: %w", topic, err)
	}

	token := n.publisher.Publish(topic, qosAtLeastOnce, retained, data)

	if n.timeout > 0 {
		if !token.WaitTimeout(n.timeout) {
			return fmt.Errorf("%s: %w", topic, ErrPublishTimeout)
		}
	} else {
		token.Wait()
	}

	if err = token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	return nil
}

func importanceName(i adhan.Importance) string {
	if i == adhan.ImportanceHigh {
		return "high"
	}

	return "default"
}

func priorityName(p adhan.Priority) string {
	if p == adhan.PriorityHigh {
		return "high"
	}

	return "default"
}
