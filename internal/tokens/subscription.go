package tokens

import "strings"

const subscriptionDelimiter = ":"

// SubscriptionName is the decoded form of an event subscription name.
type SubscriptionName struct {
	Prefix      string
	PoolLocator string
	Event       string

	matched bool
}

// Matched reports whether the name carried the expected prefix. A matched
// name may still lack a pool locator, as in "prefix:" or "prefix::Transfer".
func (s SubscriptionName) Matched() bool {
	return s.matched
}

// PackSubscriptionName joins prefix, pool locator and (if non-empty) event.
// Neither prefix nor event may contain ':'; encoded locators never do.
func PackSubscriptionName(prefix, poolLocator, event string) string {
	parts := []string{prefix, poolLocator}
	if event != "" {
		parts = append(parts, event)
	}
	return strings.Join(parts, subscriptionDelimiter)
}

// UnpackSubscriptionName splits a subscription name created by
// PackSubscriptionName. A name that does not start with prefix followed by
// ':' belongs to someone else; the result then has no locator or event.
func UnpackSubscriptionName(prefix, data string) SubscriptionName {
	name := SubscriptionName{Prefix: prefix}
	rest, ok := strings.CutPrefix(data, prefix+subscriptionDelimiter)
	if !ok {
		return name
	}
	name.matched = true
	parts := strings.Split(rest, subscriptionDelimiter)
	name.PoolLocator = parts[0]
	if len(parts) > 1 {
		name.Event = parts[1]
	}
	return name
}
