package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/rpsls/internal/game/events"
)

// State represents a game state with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages game state transitions and history
type StateMachine struct {
	mu           sync.RWMutex
	currentPhase GamePhase
	started      bool
	states       map[GamePhase]State
	context      *GameContext
	history      []Transition
	publisher    events.Publisher
}

// NewStateMachine creates a state machine positioned at PhasePlaying.
// Start must be called before the first round.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase: PhasePlaying,
		states:       make(map[GamePhase]State),
		context:      ctx,
		publisher:    publisher,
	}

	sm.RegisterState(NewPlayingState())
	sm.RegisterState(NewFinishedState())

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// Start enters the initial phase. It is a no-op once started.
func (sm *StateMachine) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.started {
		return nil
	}

	state, ok := sm.states[sm.currentPhase]
	if !ok {
		return fmt.Errorf("no state implementation for phase %s", sm.currentPhase)
	}
	if err := state.Validate(sm.context); err != nil {
		return fmt.Errorf("initial state validation failed: %w", err)
	}
	if err := state.Enter(sm.context); err != nil {
		return fmt.Errorf("failed to enter state %s: %w", sm.currentPhase, err)
	}
	sm.started = true
	return nil
}

// CurrentPhase returns the current game phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase. The
// transition event is published after the machine lock is released.
func (sm *StateMachine) TransitionTo(targetPhase GamePhase, reason string) error {
	event, err := sm.transition(targetPhase, reason)
	if err != nil {
		return err
	}
	if sm.publisher != nil {
		sm.publisher.Publish(event)
	}
	return nil
}

func (sm *StateMachine) transition(targetPhase GamePhase, reason string) (events.Event, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return nil, fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	currentState, hasCurrentState := sm.states[sm.currentPhase]
	targetState, hasTargetState := sm.states[targetPhase]

	if !hasTargetState {
		return nil, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if sm.context.EndReason == "" && targetPhase == PhaseFinished {
		sm.context.EndReason = reason
	}

	if err := targetState.Validate(sm.context); err != nil {
		return nil, fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState && sm.started {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", sm.currentPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	previousPhase := sm.currentPhase
	sm.currentPhase = targetPhase

	if err := targetState.Enter(sm.context); err != nil {
		sm.currentPhase = previousPhase
		return nil, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.history = append(sm.history, Transition{
		From:      previousPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	sm.context.Logger.Info().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return events.NewStateTransitionEvent(
		sm.context.GameID,
		previousPhase.String(),
		targetPhase.String(),
		reason,
	), nil
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the game context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
