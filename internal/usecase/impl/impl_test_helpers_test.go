package impl

import (
	"io"
	"log/slog"
	"sync"

	"ppoth/internal/domain/repository"
	"ppoth/internal/domain/service"
	"ppoth/internal/infra/persistence/snapshot"
	"ppoth/internal/infra/persistence/store"
)

// newTestLogger returns a logger that discards everything, keeping test
// output readable.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier captures published topics for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	topics []string
}

func (n *recordingNotifier) Publish(topic string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.topics = append(n.topics, topic)
}

func (n *recordingNotifier) Subscribe(fn func(topic string), topics ...string) func() {
	return func() {}
}

func (n *recordingNotifier) published() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.topics...)
}

var _ service.ChangeNotifier = (*recordingNotifier)(nil)

// newTestStore returns a fresh in-memory snapshot store.
func newTestStore() repository.SnapshotStore {
	return snapshot.NewMemoryStore()
}

// directoryFixtures bundles a directory service wired to an in-memory
// snapshot store.
type directoryFixtures struct {
	service  *directoryService
	repo     repository.DirectoryRepository
	notifier *recordingNotifier
}

func createTestDirectoryService() directoryFixtures {
	notifier := &recordingNotifier{}
	repo := store.NewDirectoryRepository(newTestStore())
	svc := NewDirectoryService(NewDirectoryLock(), repo, notifier, newTestLogger())

	return directoryFixtures{
		service:  svc.(*directoryService),
		repo:     repo,
		notifier: notifier,
	}
}
