package observability

import (
	"context"
	"log/slog"
)

// Guard returns an Observer that forwards to o and swallows any panic raised
// while handling an event. The panic is logged to slog.Default. A nil o
// yields NoOpObserver.
func Guard(o Observer) Observer {
	switch o.(type) {
	case nil:
		return NoOpObserver{}
	case NoOpObserver, guarded:
		return o
	}
	return guarded{o}
}

type guarded struct {
	inner Observer
}

func (g guarded) OnEvent(ctx context.Context, event Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().WarnContext(ctx, "observer panicked",
				"event", string(event.Type),
				"panic", r,
			)
		}
	}()
	g.inner.OnEvent(ctx, event)
}

// Fanout returns an Observer that delivers each event to every non-nil
// observer in order. Each delivery is guarded, so one failing observer does
// not keep the event from the rest.
func Fanout(observers ...Observer) Observer {
	targets := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			targets = append(targets, Guard(obs))
		}
	}

	switch len(targets) {
	case 0:
		return NoOpObserver{}
	case 1:
		return targets[0]
	}

	return ObserverFunc(func(ctx context.Context, event Event) {
		for _, obs := range targets {
			obs.OnEvent(ctx, event)
		}
	})
}
