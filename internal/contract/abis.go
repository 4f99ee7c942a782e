package contract

import (
	"fmt"
	"sort"
)

// Contract is an ABI compiled into the binary: one per token schema, plus the
// pool factory. Each registers itself from init() in its *_abi.go file.
type Contract struct {
	ID          string     // schema name or FactoryID
	Name        string     // human label
	Description string     // one-line summary shown by `w3tokens methods`
	ABI         []ABIEntry

	functions map[string]int
	events    map[string]int
}

var catalogue = map[string]*Contract{}

// Register indexes c's functions and events by name and adds it to the
// catalogue. For overloaded names the first entry wins. It panics on a
// duplicate ID.
func Register(c Contract) {
	if _, dup := catalogue[c.ID]; dup {
		panic(fmt.Sprintf("contract: %q registered twice", c.ID))
	}
	c.functions = map[string]int{}
	c.events = map[string]int{}
	for i, e := range c.ABI {
		var index map[string]int
		switch e.Type {
		case "function":
			index = c.functions
		case "event":
			index = c.events
		default:
			continue
		}
		if _, seen := index[e.Name]; !seen {
			index[e.Name] = i
		}
	}
	catalogue[c.ID] = &c
}

// Lookup returns the registered contract id.
func Lookup(id string) (Contract, bool) {
	c, ok := catalogue[id]
	if !ok {
		return Contract{}, false
	}
	return *c, true
}

// ABIFor returns the ABI of id, or nil when id is not registered.
func ABIFor(id string) []ABIEntry {
	if c, ok := catalogue[id]; ok {
		return c.ABI
	}
	return nil
}

// All lists the catalogue ordered by ID.
func All() []Contract {
	out := make([]Contract, 0, len(catalogue))
	for _, c := range catalogue {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindMethod returns a copy of the function name in the ABI of id.
func FindMethod(id, name string) (*ABIEntry, error) {
	return find(id, name, ErrMethodNotFound, func(c *Contract) map[string]int { return c.functions })
}

// FindEvent returns a copy of the event name in the ABI of id.
func FindEvent(id, name string) (*ABIEntry, error) {
	return find(id, name, ErrEventNotFound, func(c *Contract) map[string]int { return c.events })
}

func find(id, name string, notFound error, index func(*Contract) map[string]int) (*ABIEntry, error) {
	c, ok := catalogue[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown ABI %q", notFound, id)
	}
	i, ok := index(c)[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", notFound, name, id)
	}
	e := c.ABI[i]
	return &e, nil
}
