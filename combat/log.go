package combat

import (
	"fmt"
	"strings"
	"sync"

	"oddcalc/game"
)

// Event is one entry of a battle log.
type Event interface {
	fmt.Stringer
	isEvent()
}

type CombatStart struct {
	Attacker game.Combatant
	Defender game.Combatant
}

type AttackerRoll struct {
	Dice []int
}

type DefenderRoll struct {
	Dice []int
}

type DamageDealt struct {
	Damage game.Damage
}

type Victory struct {
	AttackerWon bool
}

func (e CombatStart) String() string {
	return fmt.Sprintf("Attacker: %s, Defender: %s", e.Attacker, e.Defender)
}

func (e AttackerRoll) String() string {
	return fmt.Sprintf("Attacker rolled: %v", e.Dice)
}

func (e DefenderRoll) String() string {
	return fmt.Sprintf("Defender rolled: %v", e.Dice)
}

// String prints the attacker's loss first, then the defender's.
func (e DamageDealt) String() string {
	return fmt.Sprintf("Attacker dealt: %d damage, Defender dealt: %d damage",
		e.Damage.AttackerLoss, e.Damage.DefenderLoss)
}

func (e Victory) String() string {
	if e.AttackerWon {
		return "Attacker wins."
	}
	return "Defender wins."
}

func (CombatStart) isEvent()  {}
func (AttackerRoll) isEvent() {}
func (DefenderRoll) isEvent() {}
func (DamageDealt) isEvent()  {}
func (Victory) isEvent()      {}

// Log is an append-only, concurrency-safe record of combat events. Entries
// from trials running in parallel may interleave.
type Log struct {
	mu     sync.Mutex
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Add(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns a snapshot of the entries in the order they were added.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	events := make([]Event, len(l.events))
	copy(events, l.events)
	return events
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// String renders one line per entry.
func (l *Log) String() string {
	var sb strings.Builder
	for _, event := range l.Events() {
		sb.WriteString(event.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
