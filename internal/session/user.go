package session

import (
	"maps"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// UserState is the learner's progress for the running process. It is
// passed into and returned from Controller operations; the Controller
// never holds on to it.
type UserState struct {
	XP     int
	Level  int
	Hearts int

	// Streak counts consecutive completed sessions.
	Streak int

	// CompletedVerbs holds IDs of verbs answered fully correctly in a
	// completed session.
	CompletedVerbs map[int]bool
}

// NewUserState returns a fresh learner at level 1 with full hearts.
func NewUserState(cfg Config) UserState {
	return UserState{
		Level:          1,
		Hearts:         cfg.MaxHearts,
		CompletedVerbs: make(map[int]bool),
	}
}

// Clone returns a copy that shares no memory with u.
func (u UserState) Clone() UserState {
	u.CompletedVerbs = maps.Clone(u.CompletedVerbs)
	if u.CompletedVerbs == nil {
		u.CompletedVerbs = make(map[int]bool)
	}
	return u
}

// CompletedIn counts how many of verbs are completed.
func (u UserState) CompletedIn(verbs []vocab.Verb) int {
	n := 0
	for _, v := range verbs {
		if u.CompletedVerbs[v.ID] {
			n++
		}
	}
	return n
}

// LevelFor returns the level reached with xp.
func LevelFor(xp, xpPerLevel int) int {
	if xpPerLevel <= 0 {
		return 1
	}
	return 1 + xp/xpPerLevel
}
