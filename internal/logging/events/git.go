package events

import "github.com/atomicstack/git-pick/internal/logging"

type GitTracer struct{}

var Git = GitTracer{}

func (GitTracer) Command(args []string) {
	logging.Trace("git.command", map[string]interface{}{"args": args})
}

func (GitTracer) Success(args []string) {
	logging.Trace("git.success", map[string]interface{}{"args": args})
}

// Denied records an exit status 1, the plumbing convention for "no".
func (GitTracer) Denied(args []string) {
	logging.Trace("git.denied", map[string]interface{}{"args": args})
}

func (GitTracer) Error(args []string, err error) {
	if err == nil {
		return
	}
	logging.Trace("git.error", map[string]interface{}{"args": args, "error": err.Error()})
}
