package medium

import (
	"sync"

	"chatflow/pkg/consts"
	"chatflow/utilities"
)

// PermissionPrompt asks the platform for notification permission and returns
// the resulting state. The demo wires a prompt that always grants.
type PermissionPrompt func() string

// DeliveryFunc delivers a single notification. Fire-and-forget; failures are
// not observed by callers.
type DeliveryFunc func(title, body string)

// Notifier fires local notifications gated on a three-state permission:
// granted fires immediately, default asks for permission and fires only when
// granted, denied drops the notification. Denied notifications are not queued
// and there are no retries.
type Notifier struct {
	mu         sync.Mutex
	permission string
	prompt     PermissionPrompt
	deliver    DeliveryFunc
}

func NewNotifier(permission string, prompt PermissionPrompt, deliver DeliveryFunc) *Notifier {
	if prompt == nil {
		prompt = func() string { return consts.PermissionGranted }
	}
	if deliver == nil {
		deliver = logDelivery
	}

	return &Notifier{
		permission: permission,
		prompt:     prompt,
		deliver:    deliver,
	}
}

func logDelivery(title, body string) {
	utilities.NewLoggerWithFields(
		"notifier.deliver", map[string]interface{}{
			"title": title,
		},
	).Info(body)
}

func (n *Notifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch n.permission {
	case consts.PermissionGranted:
		n.deliver(title, body)
	case consts.PermissionDenied:
		// dropped, no queueing
	default:
		n.permission = n.prompt()
		if n.permission == consts.PermissionGranted {
			n.deliver(title, body)
		}
	}
}

// Permission reports the current permission state.
func (n *Notifier) Permission() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}
