// Package chatbot answers help-desk questions with canned replies.
//
// A message is lower-cased and trimmed, then checked against an ordered rule
// table. The first rule with a trigger phrase contained in the message wins; later
// rules are never consulted. Phrase overlap between rules is common ("hi" occurs
// inside "this"), so table order is the tie-break and must not change casually.
// Responders keep no per-conversation state and are safe for concurrent use.
package chatbot

import (
	"strings"

	"hirehub-backend/internal/domain"
)

// FallbackRule names the reply used when no rule matches
const FallbackRule = "fallback"

// Reply builds a response. displayName is empty for anonymous callers.
type Reply func(displayName string) domain.ChatResponse

// Rule is one entry of the dispatch table
type Rule struct {
	Name     string
	Triggers []string
	Reply    Reply
}

// Matches reports whether any trigger occurs in an already normalized message
func (r Rule) Matches(normalized string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

type Responder struct {
	rules    []Rule
	fallback Reply
}

// New builds a responder over rules, evaluated in slice order.
func New(rules []Rule, fallback Reply) *Responder {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Responder{rules: cp, fallback: fallback}
}

var defaultResponder = New(defaultRules, fallbackReply)

// Default returns the responder with the built-in HireHub rule table
func Default() *Responder { return defaultResponder }

// Normalize lower-cases and trims a message the way rules expect
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func (r *Responder) match(message string) (string, Reply) {
	normalized := Normalize(message)
	if normalized != "" {
		for _, rule := range r.rules {
			if rule.Matches(normalized) {
				return rule.Name, rule.Reply
			}
		}
	}
	return FallbackRule, r.fallback
}

// Respond returns the reply of the first matching rule, or the fallback.
func (r *Responder) Respond(message, displayName string) domain.ChatResponse {
	_, reply := r.match(message)
	return reply(displayName)
}

// Classify returns the name of the rule Respond would use
func (r *Responder) Classify(message string) string {
	name, _ := r.match(message)
	return name
}

// Rules lists rule names in evaluation order
func (r *Responder) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Respond answers with the default responder
func Respond(message, displayName string) domain.ChatResponse {
	return defaultResponder.Respond(message, displayName)
}

// Classify classifies with the default responder
func Classify(message string) string {
	return defaultResponder.Classify(message)
}
