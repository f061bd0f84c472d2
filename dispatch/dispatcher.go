package dispatch

import (
	"context"
	stderrors "errors"
	"log/slog"

	"notify-lab/contract"
	"notify-lab/domain"
	"notify-lab/errors"
	"notify-lab/pipeline"
	"notify-lab/policy"
)

// Dispatcher orchestrates one notification attempt: evaluate policy,
// build default args, run the desktop notification hooks, hand the
// final decision to the OS notifier. It never throws across the
// pipeline boundary; every outcome is a Verdict.
type Dispatcher struct {
	log      *slog.Logger
	state    contract.StateReader
	hooks    contract.HookRegistry
	notifier contract.OSNotifier
	sound    contract.SoundPlayer
}

func NewDispatcher(log *slog.Logger, state contract.StateReader,
	hooks contract.HookRegistry, notifier contract.OSNotifier,
	sound contract.SoundPlayer) *Dispatcher {
	return &Dispatcher{
		log:      log,
		state:    state,
		hooks:    hooks,
		notifier: notifier,
		sound:    sound,
	}
}

// Send runs the full decision flow for one post event and returns the
// terminal verdict. Independent calls may run concurrently; all shared
// state is read-only snapshots.
func (d *Dispatcher) Send(ctx context.Context, post domain.Post, props domain.MessageProps) domain.Verdict {
	snapshot, err := d.state.ReadSnapshot(d.state.CurrentUserID(), post.ChannelID, post.ID.String())
	if err != nil {
		d.log.Error("State snapshot read failed", "post_id", post.ID, "error", err)
		return domain.Erred(domain.ReasonStateRead, diag(err))
	}

	decision := policy.Evaluate(policy.Input{
		Post:       post,
		Props:      props,
		Channel:    snapshot.Channel,
		Membership: snapshot.Membership,
		Session:    snapshot.Session,
		Prefs:      snapshot.Prefs,
	})
	switch decision.Outcome {
	case policy.Skip:
		d.log.Debug("Notification skipped by policy", "post_id", post.ID, "reason", decision.Reason)
		return domain.NotSent(decision.Reason)
	case policy.Error:
		return domain.Erred(decision.Reason, diag(decision.Err))
	}

	args := BuildArgs(BuilderInput{
		Post:          post,
		Props:         props,
		Channel:       snapshot.Channel,
		Membership:    snapshot.Membership,
		Prefs:         snapshot.Prefs,
		Sender:        snapshot.Sender,
		Config:        snapshot.Config,
		FollowedReply: decision.FollowedReply,
	})

	args, err = pipeline.Run(ctx, d.guardedHooks(), args)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyHookArgs) {
			d.log.Error("Desktop notification hook returned empty args", "post_id", post.ID)
			return domain.Erred(domain.ReasonEmptyHookArgs, diag(err))
		}
		d.log.Error("Desktop notification hook failed", "post_id", post.ID, "error", err)
		return domain.Erred(domain.ReasonHookSuppressed, diag(err))
	}

	if !args.Notify && !decision.Forced {
		return domain.NotSent(domain.ReasonHookSuppressed)
	}

	if err := d.notifier.Show(ctx, args, snapshot.Channel.ID, snapshot.Channel.TeamID); err != nil {
		d.log.Error("OS notifier call failed", "post_id", post.ID, "error", err)
		return domain.Erred(domain.ReasonNotificationAPI, diag(err))
	}

	// Native shells own their sound playback; everywhere else the sound
	// plays independently of the OS notification call.
	if !args.Silent && args.Sound != "" && !snapshot.Config.NativeShell {
		d.sound.Play(args.Sound)
	}

	return domain.Sent(map[string]any{
		"title": args.Title,
		"body":  args.Body,
		"url":   args.URL,
	})
}

// guardedHooks wraps the registered desktop notification hooks so a
// replacement with no fields set fails the run instead of silently
// producing a blank notification.
func (d *Dispatcher) guardedHooks() []pipeline.Hook[domain.NotificationArgs] {
	registered := d.hooks.DesktopNotification()
	guarded := make([]pipeline.Hook[domain.NotificationArgs], len(registered))
	for i, hook := range registered {
		inner := hook.Fn
		guarded[i] = pipeline.Hook[domain.NotificationArgs]{
			Name: hook.Name,
			Fn: func(ctx context.Context, args domain.NotificationArgs) pipeline.HookResult[domain.NotificationArgs] {
				result := inner(ctx, args)
				if replacement, ok := result.Replacement(); ok && replacement.IsZero() {
					return pipeline.Fail[domain.NotificationArgs](errors.ErrEmptyHookArgs)
				}
				return result
			},
		}
	}
	return guarded
}

func diag(err error) map[string]any {
	if err == nil {
		return nil
	}
	return map[string]any{"error": err.Error()}
}
