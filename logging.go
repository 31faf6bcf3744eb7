package raycekar

import "github.com/raycekar/raycekar/rt/logging"

type Logger = logging.Logger

// Logger returns the app logger. Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return logging.NewNopLogger()
	}
	return logging.OrNop(app.logger)
}
