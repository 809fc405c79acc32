package cli

import (
	"context"
	"fmt"
)

// getStatus renders the prompt decoration, e.g. "(alice online)".
func (a *App) getStatus() string {
	a.mu.Lock()
	userName, mode := a.userName, a.mode
	a.mu.Unlock()

	s := ""
	if userName != "" {
		s = userName + " "
	}
	if mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits, stdin is closed or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.logger.Info(ctx, "cat CLI started",
		"user_service", a.config.UserServiceURL, "cat_api", a.config.CatAPIURL)
	printlnFn("Welcome to the cat CLI (type 'help' for commands)")

	_ = a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
