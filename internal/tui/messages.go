package tui

// fieldChangedMsg reports that a row committed a new value.
type fieldChangedMsg struct{}

// statusMsg carries a one-line outcome shown under the list.
type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}
