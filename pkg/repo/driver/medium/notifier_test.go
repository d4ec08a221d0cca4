package medium

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chatflow/pkg/consts"
)

func TestNotifierGranted(t *testing.T) {
	var delivered []string
	n := NewNotifier(consts.PermissionGranted, nil, func(title, body string) {
		delivered = append(delivered, title+":"+body)
	})

	n.Notify("New message", "hello")
	assert.Equal(t, []string{"New message:hello"}, delivered)
}

func TestNotifierDenied(t *testing.T) {
	var delivered []string
	n := NewNotifier(consts.PermissionDenied, nil, func(title, body string) {
		delivered = append(delivered, body)
	})

	n.Notify("New message", "hello")
	assert.Empty(t, delivered)
}

func TestNotifierDefaultPromptGranted(t *testing.T) {
	var delivered []string
	prompts := 0
	n := NewNotifier(
		consts.PermissionDefault,
		func() string { prompts++; return consts.PermissionGranted },
		func(title, body string) { delivered = append(delivered, body) },
	)

	n.Notify("New message", "first")
	n.Notify("New message", "second")

	assert.Equal(t, []string{"first", "second"}, delivered)
	// permission sticks after the first prompt
	assert.Equal(t, 1, prompts)
	assert.Equal(t, consts.PermissionGranted, n.Permission())
}

func TestNotifierDefaultPromptDenied(t *testing.T) {
	var delivered []string
	n := NewNotifier(
		consts.PermissionDefault,
		func() string { return consts.PermissionDenied },
		func(title, body string) { delivered = append(delivered, body) },
	)

	n.Notify("New message", "hello")
	n.Notify("New message", "again")

	assert.Empty(t, delivered)
	assert.Equal(t, consts.PermissionDenied, n.Permission())
}
