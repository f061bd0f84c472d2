// Package runtime owns event propagation and worker supervision for the
// notification flow. It orchestrates the system without containing
// policy or domain rules.
package runtime

import (
	"context"
	"sync"

	"notify-lab/domain"
	"notify-lab/pipeline"
)

// Registry holds the ordered hook lists registered by plugins, one list
// per pipeline kind. The core reads it through contract.HookRegistry;
// only the plugin infrastructure registers and removes hooks.
//
// Hooks run in registration order. Unregistering a plugin removes all
// of its hooks while preserving the relative order of the rest.
type Registry struct {
	mu           sync.RWMutex
	posted       []pipeline.Hook[domain.Post]
	updated      []pipeline.Hook[pipeline.PostUpdate]
	slash        []pipeline.Hook[pipeline.SlashCommand]
	notification []pipeline.Hook[domain.NotificationArgs]
	received     []pipeline.Hook[domain.Post]
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) RegisterMessageWillBePosted(pluginID string, fn func(context.Context, domain.Post) pipeline.HookResult[domain.Post]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posted = append(r.posted, pipeline.Hook[domain.Post]{Name: pluginID, Fn: fn})
}

func (r *Registry) RegisterMessageWillBeUpdated(pluginID string, fn func(context.Context, pipeline.PostUpdate) pipeline.HookResult[pipeline.PostUpdate]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, pipeline.Hook[pipeline.PostUpdate]{Name: pluginID, Fn: fn})
}

func (r *Registry) RegisterSlashCommandWillBePosted(pluginID string, fn func(context.Context, pipeline.SlashCommand) pipeline.HookResult[pipeline.SlashCommand]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slash = append(r.slash, pipeline.Hook[pipeline.SlashCommand]{Name: pluginID, Fn: fn})
}

func (r *Registry) RegisterDesktopNotification(pluginID string, fn func(context.Context, domain.NotificationArgs) pipeline.HookResult[domain.NotificationArgs]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notification = append(r.notification, pipeline.Hook[domain.NotificationArgs]{Name: pluginID, Fn: fn})
}

func (r *Registry) RegisterMessageReceived(pluginID string, fn func(context.Context, domain.Post) pipeline.HookResult[domain.Post]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, pipeline.Hook[domain.Post]{Name: pluginID, Fn: fn})
}

// Unregister removes every hook the plugin registered, across all
// pipeline kinds.
func (r *Registry) Unregister(pluginID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posted = withoutPlugin(r.posted, pluginID)
	r.updated = withoutPlugin(r.updated, pluginID)
	r.slash = withoutPlugin(r.slash, pluginID)
	r.notification = withoutPlugin(r.notification, pluginID)
	r.received = withoutPlugin(r.received, pluginID)
}

func withoutPlugin[T any](hooks []pipeline.Hook[T], pluginID string) []pipeline.Hook[T] {
	var kept []pipeline.Hook[T]
	for _, h := range hooks {
		if h.Name != pluginID {
			kept = append(kept, h)
		}
	}
	return kept
}

// The getters return copies so a registry mutation cannot race a
// pipeline run already holding the slice.

func (r *Registry) MessageWillBePosted() []pipeline.Hook[domain.Post] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyHooks(r.posted)
}

func (r *Registry) MessageWillBeUpdated() []pipeline.Hook[pipeline.PostUpdate] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyHooks(r.updated)
}

func (r *Registry) SlashCommandWillBePosted() []pipeline.Hook[pipeline.SlashCommand] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyHooks(r.slash)
}

func (r *Registry) DesktopNotification() []pipeline.Hook[domain.NotificationArgs] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyHooks(r.notification)
}

func (r *Registry) MessageReceived() []pipeline.Hook[domain.Post] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyHooks(r.received)
}

func copyHooks[T any](hooks []pipeline.Hook[T]) []pipeline.Hook[T] {
	out := make([]pipeline.Hook[T], len(hooks))
	copy(out, hooks)
	return out
}
