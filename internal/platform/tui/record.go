package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// NewPlay converts a finished catch run into a storage record.
func NewPlay(g *catch.Game) storage.Play {
	s := g.Summary()
	return storage.Play{
		GameID:        g.ID(),
		Seed:          g.Seed(),
		Score:         s.Score,
		MaxCombo:      s.MaxCombo,
		Accuracy:      s.Accuracy,
		Fruits:        s.Fruits,
		FruitMisses:   s.FruitMisses,
		Droplets:      s.Droplets,
		DropletMisses: s.DropletMisses,
		TinyDroplets:  s.TinyDroplets,
		TinyMisses:    s.TinyMisses,
		Bananas:       s.Bananas,
		Autopilot:     g.Assisted(),
		Digest:        s.Digest,
	}
}

// recordRun saves the score of a finished game, plus the full play record for
// catch games. Failures are logged; the session goes on.
func recordRun(store *storage.Store, game registry.Game, logger *log.Logger) {
	if store == nil {
		return
	}

	state := game.State()
	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			logger.Warn("could not save score", "game", game.ID(), "err", err)
		}
	}

	cg, ok := game.(*catch.Game)
	if !ok {
		return
	}
	play := NewPlay(cg)
	if _, err := store.SavePlay(play); err != nil {
		logger.Warn("could not save play", "game", game.ID(), "err", err)
		return
	}
	logger.Info("run recorded",
		"game", play.GameID,
		"seed", play.Seed,
		"score", play.Score,
		"accuracy", play.Accuracy,
		"digest", play.Digest,
	)
}
