package raycekar

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// TimeModule keeps a frame clock, updated first thing every frame. Systems
// read it through Clock, which Install allocates when left nil.
type TimeModule struct {
	Clock *Time
	// Now defaults to time.Now.
	Now func() time.Time
}

func (mod *TimeModule) Install(app *App) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	if mod.Clock == nil {
		mod.Clock = &Time{}
	}
	clock := mod.Clock
	clock.Time = now()
	clock.Dt = 0
	app.UseSystem(PreUpdate, func(*App) error {
		t := now()
		clock.Dt = t.Sub(clock.Time)
		clock.Time = t
		return nil
	})
}
