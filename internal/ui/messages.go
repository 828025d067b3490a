package ui

// DatasetReloadedMsg is sent by the people file watcher after the store
// took a new snapshot
type DatasetReloadedMsg struct {
	Version uint64
	Count   int
}

// DatasetReloadFailedMsg is sent when a changed people file could not be
// loaded
type DatasetReloadFailedMsg struct {
	Err error
}

// pagerClosedMsg is returned when the external pager exits
type pagerClosedMsg struct {
	err error
}

// clearStatusMsg clears the status line if no newer status replaced it
type clearStatusMsg struct {
	seq uint64
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
