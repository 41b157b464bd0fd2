package chatbot

// Rule names, in evaluation order
const (
	RuleGreeting          = "greeting"
	RuleHelp              = "help"
	RuleJobSearch         = "job_search"
	RuleHowToApply        = "how_to_apply"
	RuleResume            = "resume"
	RuleProfile           = "profile"
	RuleSkills            = "skills"
	RuleCompany           = "company"
	RuleMentor            = "mentor"
	RuleApplicationStatus = "application_status"
	RuleInterviewTips     = "interview_tips"
	RuleSalary            = "salary"
	RuleJobTypes          = "job_types"
	RuleReportJob         = "report_job"
	RuleRegistration      = "registration"
	RuleLogin             = "login"
	RuleThanks            = "thanks"
	RuleGoodbye           = "goodbye"
)

var defaultRules = []Rule{
	{RuleGreeting, []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}, greetingReply},
	{RuleHelp, []string{"help", "assist", "support", "what can you do"}, fixed(helpResponse)},
	{RuleJobSearch, []string{"find job", "search job", "looking for job", "job opening", "available job", "job listing"}, fixed(jobSearchResponse)},
	{RuleHowToApply, []string{"how to apply", "apply for job", "application process", "submit application"}, fixed(howToApplyResponse)},
	{RuleResume, []string{"resume", "cv", "curriculum vitae", "upload resume"}, fixed(resumeResponse)},
	{RuleProfile, []string{"profile", "update profile", "edit profile", "my account"}, fixed(profileResponse)},
	{RuleSkills, []string{"skill", "skill match", "matching"}, fixed(skillsResponse)},
	{RuleCompany, []string{"company", "companies", "employer"}, fixed(companyResponse)},
	{RuleMentor, []string{"mentor", "mentorship", "guidance", "career advice"}, fixed(mentorResponse)},
	{RuleApplicationStatus, []string{"application status", "my application", "check status", "application update"}, fixed(applicationStatusResponse)},
	{RuleInterviewTips, []string{"interview", "interview tips", "prepare interview"}, fixed(interviewTipsResponse)},
	{RuleSalary, []string{"salary", "pay", "compensation", "package"}, fixed(salaryResponse)},
	{RuleJobTypes, []string{"full time", "part time", "internship", "contract", "job type"}, fixed(jobTypesResponse)},
	{RuleReportJob, []string{"report", "fake job", "scam", "fraud"}, fixed(reportJobResponse)},
	{RuleRegistration, []string{"register", "sign up", "create account", "new account"}, fixed(registrationResponse)},
	{RuleLogin, []string{"login", "sign in", "password", "forgot password", "cant login"}, fixed(loginResponse)},
	{RuleThanks, []string{"thank", "thanks", "appreciate"}, fixed(thanksResponse)},
	{RuleGoodbye, []string{"bye", "goodbye", "see you", "quit", "exit"}, fixed(goodbyeResponse)},
}
