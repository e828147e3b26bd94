package sim

import (
	"slices"
	"strings"
	"sync"
)

// base is embedded by every device. It records the commands received and
// holds the fault injection lists.
type base struct {
	mu       sync.Mutex
	commands []string
	fail     []string
	reject   []string
}

// Commands returns the command verbs received so far, in order.
func (b *base) Commands() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.commands)
}

// FailOn makes the device drop the connection whenever verb arrives.
func (b *base) FailOn(verbs ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = append(b.fail, verbs...)
}

// RejectOn makes the device answer verb without its acknowledgement.
func (b *base) RejectOn(verbs ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reject = append(b.reject, verbs...)
}

// record splits command into its verb and arguments and notes the verb.
// Callers hold b.mu.
func (b *base) record(command string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	b.commands = append(b.commands, fields[0])
	return fields[0], fields[1:]
}

func (b *base) failing(verb string) bool  { return slices.Contains(b.fail, verb) }
func (b *base) rejected(verb string) bool { return slices.Contains(b.reject, verb) }
