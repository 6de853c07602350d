package git

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Scope selects which ref namespaces a listing covers.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeRemote
	ScopeAll
)

func (s Scope) String() string {
	switch s {
	case ScopeRemote:
		return "remote"
	case ScopeAll:
		return "all"
	default:
		return "local"
	}
}

func (s Scope) refspecs() []string {
	switch s {
	case ScopeRemote:
		return []string{"refs/remotes"}
	case ScopeAll:
		return []string{"refs/heads", "refs/remotes"}
	default:
		return []string{"refs/heads"}
	}
}

// Ref is an immutable snapshot of one branch at listing time.
type Ref struct {
	Name        string
	Hash        string
	IsCurrent   bool
	IsRemote    bool
	CommittedAt time.Time
	Subject     string
}

const refFormat = "%(refname)\t%(refname:lstrip=2)\t%(objectname:short)\t%(committerdate:unix)\t%(contents:subject)"

// reflogWindow caps how much reflog history feeds recency ordering.
const reflogWindow = "100"

// ListRefs enumerates branches in the requested scope, most recently used
// first. Recency comes from reflog decorations; refs the reflog does not
// mention keep their for-each-ref order. Remote HEAD pointers are skipped.
// The result is a snapshot: callers never re-list within a session.
func (r *Repository) ListRefs(ctx context.Context, scope Scope) ([]Ref, error) {
	args := append([]string{"for-each-ref", "--format", refFormat}, scope.refspecs()...)
	lines, err := Lines(ctx, r.runner, args...)
	if err != nil {
		return nil, err
	}

	current, err := r.CurrentBranch(ctx)
	if err != nil && !errors.Is(err, ErrDetachedHead) {
		return nil, err
	}

	refs := make([]Ref, 0, len(lines))
	for _, line := range lines {
		ref, ok := parseRefLine(line)
		if !ok {
			continue
		}
		ref.IsCurrent = !ref.IsRemote && current != "" && ref.Name == current
		refs = append(refs, ref)
	}

	recent, err := r.recentRefNames(ctx, scope)
	if err != nil {
		// Recency is an ordering hint only; an unreadable reflog (fresh
		// clone, shallow history) falls back to listing order.
		recent = nil
	}
	return orderByRecency(refs, recent), nil
}

func parseRefLine(line string) (Ref, bool) {
	fields := strings.SplitN(line, "\t", 5)
	if len(fields) < 3 {
		return Ref{}, false
	}
	full, short, hash := fields[0], fields[1], fields[2]
	if short == "" || strings.HasSuffix(short, "/HEAD") {
		return Ref{}, false
	}
	ref := Ref{
		Name:     short,
		Hash:     hash,
		IsRemote: strings.HasPrefix(full, "refs/remotes/"),
	}
	if len(fields) > 3 {
		if unix, err := strconv.ParseInt(fields[3], 10, 64); err == nil && unix > 0 {
			ref.CommittedAt = time.Unix(unix, 0)
		}
	}
	if len(fields) > 4 {
		ref.Subject = fields[4]
	}
	return ref, true
}

// recentRefNames walks reflog decorations newest-first and returns branch
// names in first-seen order, restricted to the scope's namespace.
func (r *Repository) recentRefNames(ctx context.Context, scope Scope) ([]string, error) {
	lines, err := Lines(ctx, r.runner,
		"log", "--walk-reflogs", "--decorate=full", "-n"+reflogWindow,
		"--format=format:%(decorate:prefix=,suffix=,pointer=>>>,separator=%x2c)")
	if err != nil {
		return nil, err
	}

	prefixes := make([]string, 0, 2)
	for _, spec := range scope.refspecs() {
		prefixes = append(prefixes, spec+"/")
	}

	seen := make(map[string]struct{})
	var names []string
	for _, entry := range lines {
		if strings.TrimSpace(entry) == "" || strings.Contains(entry, ">>>") {
			continue
		}
		for _, decoration := range strings.Split(entry, ",") {
			for _, prefix := range prefixes {
				name, ok := strings.CutPrefix(decoration, prefix)
				if !ok {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func orderByRecency(refs []Ref, recent []string) []Ref {
	if len(recent) == 0 || len(refs) == 0 {
		return refs
	}
	index := make(map[string]int, len(refs))
	for i, ref := range refs {
		if _, dup := index[ref.Name]; !dup {
			index[ref.Name] = i
		}
	}
	used := make([]bool, len(refs))
	ordered := make([]Ref, 0, len(refs))
	for _, name := range recent {
		if i, ok := index[name]; ok && !used[i] {
			ordered = append(ordered, refs[i])
			used[i] = true
		}
	}
	for i, ref := range refs {
		if !used[i] {
			ordered = append(ordered, ref)
		}
	}
	return ordered
}
