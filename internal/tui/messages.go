package tui

import (
	"github.com/LucasPin45/FiscalizaGov/internal/score"
)

type resultsMsg struct {
	items []score.RankedItem
}

type runErrMsg struct {
	err error
}

type notifyDoneMsg struct {
	err error
}
