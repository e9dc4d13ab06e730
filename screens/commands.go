package screens

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/winstack/core"
)

// Command is a palette entry. Run may return a window that replaces the
// palette; a nil window simply closes it.
type Command struct {
	ID          string
	Name        string
	Description string
	Run         func() core.Window
	Disabled    func() (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	score     int
}

type Commands struct {
	commands map[string]Command
}

func NewCommands(cmds ...Command) *Commands {
	reg := &Commands{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *Commands) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *Commands) Len() int { return len(r.commands) }

// Search ranks commands against query. Substring hits come first, then names
// within a small edit distance of the query. Disabled commands sort last.
func (r *Commands) Search(query string) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		score, ok := matchScore(q, c)
		if !ok {
			continue
		}
		disabled, reason := false, ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled()
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
			score:     score,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.score != b.score {
			return cmp.Compare(a.score, b.score)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func matchScore(q string, c Command) (int, bool) {
	if q == "" {
		return 0, true
	}
	name := strings.ToLower(c.Name)
	if strings.Contains(name, q) {
		return 0, true
	}
	if strings.Contains(strings.ToLower(c.Description+" "+c.ID), q) {
		return 1, true
	}
	// Compare against the name prefix of the same length so partial
	// queries with a typo still match.
	prefix := name
	if r := []rune(name); len(r) > len([]rune(q))+1 {
		prefix = string(r[:len([]rune(q))+1])
	}
	dist := min(levenshtein.ComputeDistance(q, name), levenshtein.ComputeDistance(q, prefix))
	if dist > max(1, len([]rune(q))/3) {
		return 0, false
	}
	return 1 + dist, true
}

// Run executes id. ok is false when the command is unknown or disabled, with
// reason explaining why.
func (r *Commands) Run(id string) (w core.Window, reason string, ok bool) {
	c, found := r.commands[id]
	if !found {
		return nil, "unknown command: " + id, false
	}
	if c.Disabled != nil {
		if disabled, why := c.Disabled(); disabled {
			if why == "" {
				why = "command is disabled"
			}
			return nil, why, false
		}
	}
	if c.Run == nil {
		return nil, "", true
	}
	return c.Run(), "", true
}
