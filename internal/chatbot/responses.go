package chatbot

import (
	"fmt"

	"hirehub-backend/internal/domain"
)

// fixed wraps a template; each call gets its own slices so callers may mutate the result
func fixed(tpl domain.ChatResponse) Reply {
	return func(string) domain.ChatResponse {
		out := domain.ChatResponse{
			Message:     tpl.Message,
			Suggestions: append([]string(nil), tpl.Suggestions...),
		}
		if len(tpl.Links) > 0 {
			out.Links = append([]domain.ChatLink(nil), tpl.Links...)
		}
		return out
	}
}

func greetingReply(displayName string) domain.ChatResponse {
	if displayName == "" {
		displayName = "there"
	}
	return domain.ChatResponse{
		Message: fmt.Sprintf("Hello %s! 👋 Welcome to HireHub. I'm your virtual assistant and I can help "+
			"with every step of your job search. How can I assist you today?", displayName),
		Suggestions: []string{"Find jobs", "How to apply", "Update profile", "Career advice"},
	}
}

var fallbackReply = fixed(domain.ChatResponse{
	Message: `I'm not sure I understood that. Could you try rephrasing your question?

Some things I can help with:
- Finding jobs
- Applying for positions
- Updating your profile
- Understanding skill matching
- Interview preparation
- Mentorship guidance

You can also type **"help"** to see every option.`,
	Suggestions: []string{"Help", "Find jobs", "How to apply", "Contact support"},
})

var helpResponse = domain.ChatResponse{
	Message: `Here's what I can help you with:

🔍 **Job Search** - Find jobs that match your skills
📝 **Applications** - Learn how to apply
👤 **Profile** - Keep your profile and resume current
🎯 **Skill Matching** - See how match percentages are calculated
🏢 **Companies** - Learn about employers
👨‍🏫 **Mentorship** - Connect with mentors
📊 **Application Status** - Track your applications
💡 **Interview Tips** - Get ready for interviews

What would you like to know more about?`,
	Suggestions: []string{"Find jobs", "How to apply", "Interview tips", "Connect with mentor"},
}

var jobSearchResponse = domain.ChatResponse{
	Message: `Looking for work? Here's how to find the right opening:

1. **Browse Jobs** - The [Jobs page](/jobs/) lists every verified posting
2. **Filter** - Narrow by job type or search by keyword, company or skill
3. **Skill Match** - Signed-in job seekers see a match percentage on every job
4. **Sort by Match** - Put the jobs that fit your profile best at the top

💡 **Tip:** Keep the skills on your profile current for better matches!`,
	Suggestions: []string{"How to apply", "Update my skills", "View companies"},
	Links:       []domain.ChatLink{{Text: "Browse Jobs", URL: "/jobs/"}},
}

var howToApplyResponse = domain.ChatResponse{
	Message: `Applying takes a few steps:

1. **Find a Job** - Open any posting you like
2. **Read the Details** - Check the description and requirements
3. **Check Your Match** - See how your skills line up
4. **Apply Now** - Press the "Apply Now" button
5. **Attach Resume** - Add your resume and a cover letter
6. **Submit** - Review and send

📌 **Requirements:**
- A Job Seeker account
- A resume (PDF recommended)

Your skill match is recorded when you submit, so update your skills first.`,
	Suggestions: []string{"Check my applications", "Update resume", "Interview tips"},
}

var resumeResponse = domain.ChatResponse{
	Message: `Your resume matters for every application.

📄 **Uploading:**
- Open your [Profile page](/profile/)
- Go to the Resume section
- Upload a file (PDF recommended)

✅ **Resume Tips:**
- One or two pages
- Lead with relevant skills and experience
- Clean, consistent formatting
- Contact details at the top
- Quantify achievements where you can`,
	Suggestions: []string{"Update profile", "Find jobs", "Interview tips"},
	Links:       []domain.ChatLink{{Text: "Go to Profile", URL: "/profile/"}},
}

var profileResponse = domain.ChatResponse{
	Message: `Your profile is your first impression.

👤 **Profile Sections:**
- **Basic Info** - Name, email, phone
- **Skills** - Technical and soft skills, comma-separated
- **Experience** - Years of experience
- **Resume** - Your latest resume

A complete profile gives better skill matches, more visibility to employers and faster applications.

Update it on your [Profile page](/profile/).`,
	Suggestions: []string{"Add skills", "Upload resume", "Find matching jobs"},
	Links:       []domain.ChatLink{{Text: "Edit Profile", URL: "/profile/"}},
}

var skillsResponse = domain.ChatResponse{
	Message: `Skill matching compares your skills with what a job asks for.

🎯 **How it works:**
1. List your skills on your profile, separated by commas
2. Each job lists its required skills the same way
3. Your match is the share of the job's required skills you have

📊 **Match Levels:**
- 🟢 **70% and above** - Strong match
- 🟡 **40-69%** - Good match, worth applying
- 🔴 **Below 40%** - Some skills may need development

💡 Use specific names ("Python", not "Programming"). Capitalization and extra spaces don't matter.`,
	Suggestions: []string{"Update my skills", "Find jobs", "View my profile"},
}

var companyResponse = domain.ChatResponse{
	Message: `Want to learn about the companies hiring on HireHub?

🏢 **Company Pages:**
- Browse everyone on the [Companies page](/companies/)
- Read each company's description and details
- See every job a company has posted
- Verified companies carry a ✓ badge

Verification is done by our admin team. Research a company before you apply!`,
	Suggestions: []string{"Browse companies", "Find jobs", "Report suspicious job"},
	Links:       []domain.ChatLink{{Text: "View Companies", URL: "/companies/"}},
}

var mentorResponse = domain.ChatResponse{
	Message: `Looking for career guidance? Our mentors can help.

👨‍🏫 **Mentorship:**
- Connect with experienced professionals
- Get career advice
- Schedule sessions

📝 **Getting Started:**
1. Browse mentors
2. Send a request describing your goals
3. Wait for the mentor to accept
4. Book your first session

💡 Be specific about what you want help with.`,
	Suggestions: []string{"Find mentors", "Update profile", "Find jobs"},
}

var applicationStatusResponse = domain.ChatResponse{
	Message: `Track your applications from your dashboard.

📊 **Statuses:**
- **Pending** - Received, awaiting review
- **Reviewed** - The employer has seen it
- **Shortlisted** - You're being considered! 🎉
- **Rejected** - Not selected this time
- **Hired** - Congratulations! 🎊

Open your [Dashboard](/seeker/dashboard/) to see every application.`,
	Suggestions: []string{"Go to dashboard", "Apply for more jobs", "Interview tips"},
	Links:       []domain.ChatLink{{Text: "View Dashboard", URL: "/seeker/dashboard/"}},
}

var interviewTipsResponse = domain.ChatResponse{
	Message: `Preparing for an interview?

📋 **Before:**
- Research the company
- Re-read the job description
- Prepare answers to common questions
- Prepare questions of your own
- Test your setup for video calls

💬 **During:**
- Be 5-10 minutes early
- Dress professionally
- Listen fully before answering
- Use the STAR method for behavioral questions

🌟 **Common Questions:**
- "Tell me about yourself"
- "Why do you want this job?"
- "What are your strengths and weaknesses?"

💡 Practice out loud with a friend.`,
	Suggestions: []string{"Find jobs", "Connect with mentor", "Update profile"},
}

var salaryResponse = domain.ChatResponse{
	Message: `Questions about salary?

💰 **On HireHub:**
- Many postings show a salary range
- Some say "Negotiable" or "As per industry standards"

📊 **Negotiating:**
- Research market rates for your role and location
- Consider the whole package, not just base pay
- Avoid discussing numbers too early
- Be ready to justify your expectations`,
	Suggestions: []string{"Find jobs", "Interview tips", "Career advice"},
}

var jobTypesResponse = domain.ChatResponse{
	Message: `HireHub lists four job types:

📋 **Job Types:**
- **Full Time** - Standard 40+ hours a week
- **Part Time** - Flexible, fewer hours
- **Internship** - Learning roles for students and freshers
- **Contract** - Fixed-term project work

Filter by type on the [Jobs page](/jobs/).`,
	Suggestions: []string{"Browse jobs", "Find internships", "Full time jobs"},
	Links:       []domain.ChatLink{{Text: "Browse All Jobs", URL: "/jobs/"}},
}

var reportJobResponse = domain.ChatResponse{
	Message: `Found a suspicious posting? Please report it.

🚨 **How to Report:**
1. Open the job's detail page
2. Press "Report Job"
3. Pick a reason (fake job, scam, misleading, ...)
4. Describe your concern
5. Submit

⚠️ **Red Flags:**
- Requests for money upfront
- Vague descriptions
- Salaries that are too good to be true
- Requests for personal or financial information

Our team reviews reports within 24-48 hours.`,
	Suggestions: []string{"Browse verified jobs", "Contact support", "Find jobs"},
}

var registrationResponse = domain.ChatResponse{
	Message: `Ready to join HireHub?

📝 **Registering:**
1. Open the [Registration page](/register/)
2. Choose a role:
   - **Job Seeker** - Looking for work
   - **Job Provider** - Hiring for a company
   - **Mentor** - Guiding job seekers
3. Fill in your details
4. Complete your profile`,
	Suggestions: []string{"Login", "Browse jobs", "Learn about roles"},
	Links:       []domain.ChatLink{{Text: "Register Now", URL: "/register/"}},
}

var loginResponse = domain.ChatResponse{
	Message: `Trouble signing in?

🔐 Sign in on the [Login page](/login/).

🔑 **Forgot your password?**
1. Press "Forgot Password?" on the login page
2. Enter your email
3. Follow the reset link we send you

⚠️ Still stuck? Check Caps Lock, clear your browser cookies, or contact support.`,
	Suggestions: []string{"Register", "Reset password", "Contact support"},
	Links:       []domain.ChatLink{{Text: "Go to Login", URL: "/login/"}},
}

var thanksResponse = domain.ChatResponse{
	Message:     "You're welcome! 😊 Is there anything else you'd like to know about HireHub?",
	Suggestions: []string{"Find jobs", "Update profile", "No, that's all"},
}

var goodbyeResponse = domain.ChatResponse{
	Message:     "Goodbye! 👋 Best of luck with your job search. Come back any time you need help.",
	Suggestions: []string{"Start new chat"},
}
