package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

const (
	notificationsName   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsNotify = notificationsName + ".Notify"

	// defaultAction is invoked by the notification server when the body is clicked.
	defaultAction = "default"

	urgencyNormal   byte = 1
	urgencyCritical byte = 2

	// expireNever keeps alarm notifications until dismissed.
	expireNever int32 = 0
)

// NotifyCall holds the arguments of org.freedesktop.Notifications.Notify.
type NotifyCall struct {
	AppName    string
	ReplacesID uint32
	Icon       string
	Summary    string
	Body       string
	Actions    []string
	Hints      map[string]dbus.Variant
	Timeout    int32
}

// Bus sends notification calls to the desktop notification server.
type Bus interface {
	// Notify shows or replaces a notification and returns its server id.
	Notify(ctx context.Context, call *NotifyCall) (uint32, error)
	// Close releases the connection.
	Close() error
}

// SessionBus is the Bus implementation using the user session bus.
type SessionBus struct {
	conn *dbus.Conn
}

// NewSessionBus connects to the session bus.
func NewSessionBus() (*SessionBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	return &SessionBus{conn: conn}, nil
}

// Notify calls org.freedesktop.Notifications.Notify.
func (b *SessionBus) Notify(ctx context.Context, call *NotifyCall) (uint32, error) {
	var id uint32

	obj := b.conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))

	err := obj.CallWithContext(ctx, notificationsNotify, 0,
		call.AppName,
		call.ReplacesID,
		call.Icon,
		call.Summary,
		call.Body,
		call.Actions,
		call.Hints,
		call.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify call failed: %w", err)
	}

	return id, nil
}

// Close closes the connection.
func (b *SessionBus) Close() error {
	return b.conn.Close()
}

// DBusNotifier shows notifications through a freedesktop notification server.
// Showing the same notification ID again replaces the previous bubble.
type DBusNotifier struct {
	bus     Bus
	appName string

	mu        sync.Mutex
	channels  map[string]adhan.Channel
	serverIDs map[int]uint32
}

var _ adhan.Notifier = (*DBusNotifier)(nil)

// NewDBusNotifier creates a notifier over bus.
func NewDBusNotifier(bus Bus, appName string) *DBusNotifier {
	return &DBusNotifier{
		bus:       bus,
		appName:   appName,
		channels:  make(map[string]adhan.Channel),
		serverIDs: make(map[int]uint32),
	}
}

// EnsureChannel records the channel. Freedesktop servers have no channel concept,
// so channel importance is mapped onto urgency when a notification is shown.
func (n *DBusNotifier) EnsureChannel(_ context.Context, channel adhan.Channel) error {
	n.mu.Lock()
	n.channels[channel.ID] = channel
	n.mu.Unlock()

	return nil
}

// Show displays the notification.
func (n *DBusNotifier) Show(ctx context.Context, notification *adhan.Notification) error {
	n.mu.Lock()
	channel, known := n.channels[notification.ChannelID]
	replaces := n.serverIDs[notification.ID]
	n.mu.Unlock()

	if !known {
		logger.DebugKV(ctx, "Showing notification on an unregistered channel", "channel", notification.ChannelID)
	}

	call := &NotifyCall{
		AppName:    n.appName,
		ReplacesID: replaces,
		Summary:    notification.Title,
		Body:       notification.Body,
		Hints:      hints(notification, channel),
		Timeout:    expireNever,
	}

	if notification.TapTarget != "" {
		call.Actions = []string{defaultAction, notification.Title}
		call.Hints["x-adhan-tap-target"] = dbus.MakeVariant(notification.TapTarget)
	}

	id, err := n.bus.Notify(ctx, call)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.serverIDs[notification.ID] = id
	n.mu.Unlock()

	return nil
}

func hints(notification *adhan.Notification, channel adhan.Channel) map[string]dbus.Variant {
	urgency := urgencyNormal
	if notification.Priority == adhan.PriorityHigh || channel.Importance == adhan.ImportanceHigh {
		urgency = urgencyCritical
	}

	result := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(urgency),
		"resident": dbus.MakeVariant(!notification.AutoCancel),
	}

	if notification.Category != "" {
		result["category"] = dbus.MakeVariant("x-adhan." + string(notification.Category))
	}

	if notification.ChannelID != "" {
		result["x-adhan-channel"] = dbus.MakeVariant(notification.ChannelID)
	}

	return result
}
