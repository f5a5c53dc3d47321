// Package service defines interfaces for domain collaborators whose
// implementations live in the infrastructure layer.
package service

// Change notification topics. Page changes are scoped per slug via
// PageChangedTopic.
const (
	TopicDirectoryChanged = "directory.changed"
	TopicSettingsChanged  = "settings.changed"

	pageChangedPrefix = "page.changed:"
)

// PageChangedTopic returns the per-slug topic for CMS page mutations.
func PageChangedTopic(slug string) string {
	return pageChangedPrefix + slug
}

// ChangeNotifier is the process-wide publish mechanism that signals
// interested components when a store mutates. Delivery is synchronous,
// in-process and best-effort: there is no queuing and no replay, so a
// subscriber registered after an event misses it.
type ChangeNotifier interface {
	// Publish delivers topic to every matching subscriber before returning.
	Publish(topic string)

	// Subscribe registers fn for the given topics; with no topics it
	// receives every event. The returned function unsubscribes.
	Subscribe(fn func(topic string), topics ...string) (unsubscribe func())
}
