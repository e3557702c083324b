package ports

import "github.com/bnema/prefbot/internal/domain"

// TransitionObserver is told about every handled trigger (a button action
// kind or a command name) and the state it ended in.
type TransitionObserver interface {
	ObserveTransition(trigger string, state domain.State)
}

type NopObserver struct{}

func (NopObserver) ObserveTransition(string, domain.State) {}
