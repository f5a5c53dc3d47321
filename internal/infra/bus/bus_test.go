package bus

import (
	"io"
	"log/slog"
	"testing"

	"ppoth/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func newTestNotifier() service.ChangeNotifier {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotifier_TopicFilter(t *testing.T) {
	notifier := newTestNotifier()

	var directory, settings []string
	notifier.Subscribe(func(topic string) {
		directory = append(directory, topic)
	}, service.TopicDirectoryChanged)
	notifier.Subscribe(func(topic string) {
		settings = append(settings, topic)
	}, service.TopicSettingsChanged)

	notifier.Publish(service.TopicDirectoryChanged)
	notifier.Publish(service.TopicDirectoryChanged)
	notifier.Publish(service.TopicSettingsChanged)

	assert.Len(t, directory, 2)
	assert.Equal(t, []string{service.TopicSettingsChanged}, settings)
}

func TestNotifier_SubscribeAllTopics(t *testing.T) {
	notifier := newTestNotifier()

	var seen []string
	notifier.Subscribe(func(topic string) {
		seen = append(seen, topic)
	})

	notifier.Publish(service.TopicDirectoryChanged)
	notifier.Publish(service.PageChangedTopic("about"))

	assert.Equal(t, []string{
		service.TopicDirectoryChanged,
		service.PageChangedTopic("about"),
	}, seen)
}

func TestNotifier_Unsubscribe(t *testing.T) {
	notifier := newTestNotifier()

	count := 0
	unsubscribe := notifier.Subscribe(func(string) { count++ })

	notifier.Publish(service.TopicDirectoryChanged)
	unsubscribe()
	notifier.Publish(service.TopicDirectoryChanged)

	assert.Equal(t, 1, count)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestNotifier_NoSubscribers(t *testing.T) {
	notifier := newTestNotifier()

	assert.NotPanics(t, func() {
		notifier.Publish(service.TopicDirectoryChanged)
	})
}
