package chatbot

import (
	"strings"
	"sync"
	"testing"

	"hirehub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleOrder(t *testing.T) {
	assert.Equal(t, []string{
		RuleGreeting, RuleHelp, RuleJobSearch, RuleHowToApply, RuleResume, RuleProfile,
		RuleSkills, RuleCompany, RuleMentor, RuleApplicationStatus, RuleInterviewTips,
		RuleSalary, RuleJobTypes, RuleReportJob, RuleRegistration, RuleLogin,
		RuleThanks, RuleGoodbye,
	}, Default().Rules())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"hello", RuleGreeting},
		{"Hi there!", RuleGreeting},
		{"  GOOD EVENING  ", RuleGreeting},
		{"Can you help me?", RuleHelp},
		{"what can you do", RuleHelp},
		{"find job near me", RuleJobSearch},
		{"Search jobs", RuleJobSearch},
		{"how to apply", RuleHowToApply},
		{"submit application", RuleHowToApply},
		{"Upload resume", RuleResume},
		{"upload cv", RuleResume},
		{"edit profile", RuleProfile},
		{"my account", RuleProfile},
		{"skill match", RuleSkills},
		{"employer reviews", RuleCompany},
		{"career advice", RuleMentor},
		{"check status", RuleApplicationStatus},
		{"my application", RuleApplicationStatus},
		{"tell me about the interview", RuleInterviewTips},
		{"compensation", RuleSalary},
		{"part time", RuleJobTypes},
		{"contract", RuleJobTypes},
		{"is it a scam?", RuleReportJob},
		{"sign up", RuleRegistration},
		{"forgot password", RuleLogin},
		{"thank you", RuleThanks},
		{"see you", RuleGoodbye},
		{"asdkjalksd", FallbackRule},
		{"", FallbackRule},
		{"   ", FallbackRule},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.msg))
		})
	}
}

func TestEarlierRuleWins(t *testing.T) {
	// greeting precedes help
	assert.Equal(t, RuleGreeting, Classify("hi, can you help me"))
	// "hi" occurs inside these words, so greeting shadows later rules
	assert.Equal(t, RuleGreeting, Classify("matching"))
	assert.Equal(t, RuleGreeting, Classify("internship"))
	assert.Equal(t, RuleGreeting, Classify("this job"))
	// help precedes job search
	assert.Equal(t, RuleHelp, Classify("job and help"))
	// resume precedes profile
	assert.Equal(t, RuleResume, Classify("update profile resume"))
}

func TestGreetingPersonalized(t *testing.T) {
	named := Respond("hello", "alice")
	assert.True(t, strings.HasPrefix(named.Message, "Hello alice!"))

	anon := Respond("hello", "")
	assert.True(t, strings.HasPrefix(anon.Message, "Hello there!"))
}

func TestOnlyGreetingUsesName(t *testing.T) {
	assert.Equal(t, Respond("salary", ""), Respond("salary", "bob"))
}

func TestFallback(t *testing.T) {
	for _, msg := range []string{"asdkjalksd", "", "\t\n"} {
		got := Respond(msg, "")
		assert.Contains(t, got.Message, "not sure I understood")
		assert.NotEmpty(t, got.Suggestions)
		assert.Empty(t, got.Links)
	}
}

func TestEveryReplyHasSuggestions(t *testing.T) {
	r := Default()
	for _, rule := range r.rules {
		got := rule.Reply("x")
		assert.NotEmpty(t, got.Message, rule.Name)
		assert.NotEmpty(t, got.Suggestions, rule.Name)
		for _, l := range got.Links {
			assert.NotEmpty(t, l.Text, rule.Name)
			assert.True(t, strings.HasPrefix(l.URL, "/"), rule.Name)
		}
	}
	assert.NotEmpty(t, r.fallback("").Suggestions)
}

func TestEveryRuleReachableByItsOwnTrigger(t *testing.T) {
	// each rule has at least one trigger not shadowed by an earlier rule
	r := Default()
	for _, rule := range r.rules {
		reachable := false
		for _, trig := range rule.Triggers {
			if r.Classify(trig) == rule.Name {
				reachable = true
				break
			}
		}
		assert.True(t, reachable, rule.Name)
	}
}

func TestLinksPresentWhereExpected(t *testing.T) {
	got := Respond("find job", "")
	require.Len(t, got.Links, 1)
	assert.Equal(t, domain.ChatLink{Text: "Browse Jobs", URL: "/jobs/"}, got.Links[0])

	assert.Empty(t, Respond("salary", "").Links)
}

func TestResponsesAreIndependentCopies(t *testing.T) {
	first := Respond("thanks", "")
	first.Suggestions[0] = "mutated"

	second := Respond("thanks", "")
	assert.Equal(t, "Find jobs", second.Suggestions[0])
}

func TestCustomRuleTable(t *testing.T) {
	r := New([]Rule{
		{Name: "a", Triggers: []string{"foo"}, Reply: fixed(domain.ChatResponse{Message: "A", Suggestions: []string{"1"}})},
		{Name: "b", Triggers: []string{"foo", "bar"}, Reply: fixed(domain.ChatResponse{Message: "B", Suggestions: []string{"2"}})},
	}, fixed(domain.ChatResponse{Message: "F", Suggestions: []string{"3"}}))

	assert.Equal(t, "A", r.Respond("FOO bar", "").Message)
	assert.Equal(t, "B", r.Respond("bar", "").Message)
	assert.Equal(t, "F", r.Respond("baz", "").Message)
	assert.Equal(t, []string{"a", "b"}, r.Rules())
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, RuleSalary, Classify("salary"))
				_ = Respond("hello", "x")
			}
		}()
	}
	wg.Wait()
}
