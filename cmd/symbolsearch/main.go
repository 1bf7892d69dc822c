// Command symbolsearch serves symbol suggestions from a local CSV directory.
package main

import (
	"log/slog"

	"stockquotes/internal/app"
	"stockquotes/internal/server"
	"stockquotes/internal/symbols"
	"stockquotes/internal/symbolsearch"
)

func main() {
	app.Main("symbolsearch", func(env *app.Env, r *server.Router) error {
		dir, err := symbols.Load(env.Config.Symbols.CSVPath)
		if err != nil {
			return err
		}
		env.Logger.Info("loaded symbols", slog.String("path", env.Config.Symbols.CSVPath), slog.Int("count", dir.Len()))

		symbolsearch.New(dir, env.Logger).Register(r)
		return nil
	})
}
