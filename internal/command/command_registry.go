package command

import "sync"

// registryMu guards registry: the router reads it from discordgo handler
// goroutines while a reload resets and re-registers concurrently.
var (
	registryMu sync.RWMutex
	registry   = map[string]Command{}
)

// Register installs a command, optionally wrapped in middleware, under its
// name and all of its aliases.
func Register(cmd Command, mws ...Middleware) {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[cmd.Name()] = cmd
	for _, a := range cmd.Aliases() {
		registry[a] = cmd
	}
}

func Get(name string) (Command, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command once, aliases deduplicated.
func All() []Command {
	registryMu.RLock()
	defer registryMu.RUnlock()
	seen := map[string]bool{}
	var list []Command
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	return list
}

// Reset clears the registry so a reload can rebuild it.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = map[string]Command{}
}
