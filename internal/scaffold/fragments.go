package scaffold

import (
	"strings"

	"github.com/frsk-dev/devhub/internal/project"
)

// fragment is one optional piece of content. It is inserted into slot when
// its flag is selected; fragments sharing a slot keep their declared order.
type fragment struct {
	slot string
	when project.Flag
	src  string
}

// assemble renders every fragment whose flag is selected and joins them per
// slot. Trailing newlines are trimmed so the host template controls spacing.
func assemble(rules []fragment, data templateData) (map[string]string, error) {
	parts := make(map[string][]string)
	for _, r := range rules {
		if r.when != "" && !data.Flags.Enabled(r.when) {
			continue
		}
		content, err := readTemplate(r.src, data)
		if err != nil {
			return nil, err
		}
		parts[r.slot] = append(parts[r.slot], strings.TrimRight(content, "\n"))
	}

	slots := make(map[string]string, len(parts))
	for name, p := range parts {
		slots[name] = strings.Join(p, "\n")
	}
	return slots, nil
}
