package store

import (
	"time"

	"github.com/sushant-97/ats-system/internal/models"
)

// Sample data the stores are seeded with. Mirrors the demo dataset the
// dashboard ships with; ids are stable so the UI can deep-link into them.

func seedCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID: "1", Name: "Mia Persona", Position: "Associate Customer Success Manager",
			Initials: "MP", Color: "bg-amber-100", Status: models.StatusLeads, Stage: models.StageNew,
			AIMatch: true, MatchScore: 92, Source: "AI Match",
			Location: "Barcelona, Spain", Experience: "3 years",
			Skills:       []string{"Customer Success", "Account Management", "SaaS", "CRM", "Sales"},
			LastActivity: "Added to leads", LastActivityDate: "2 days ago",
		},
		{
			ID: "2", Name: "Lil's Thompson", Position: "Senior Outbound Sales Developer",
			Initials: "LT", Color: "bg-blue-100", Status: models.StatusLeads, Stage: models.StageNew,
			AIMatch: true, MatchScore: 87, Source: "AI Match",
			Location: "London, UK", Experience: "6 years",
			Skills:       []string{"Sales Development", "Outbound Sales", "Lead Generation", "CRM", "Negotiation"},
			LastActivity: "Added to leads", LastActivityDate: "3 days ago",
		},
		{
			ID: "9", Name: "Thomas Wright", Position: "Technical Sales Engineer",
			Initials: "TW", Color: "bg-orange-100", Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: false, MatchScore: 0, Source: "Sourced (LinkedIn)",
			Location: "Chicago, USA", Experience: "7 years",
			Skills:       []string{"Technical Sales", "Sales Engineering", "Product Demos", "Solution Architecture", "Client Consulting"},
			LastActivity: "Added from sourcing", LastActivityDate: "just now",
		},
		{
			ID: "101", Name: "Mia Williams", Position: "Frontend Developer",
			Initials: "MW", Color: "bg-amber-100", JobID: "1",
			Status: models.StatusApplicationReview, Stage: models.StageNew,
			AIMatch: true, MatchScore: 92, Source: "LinkedIn",
			Location: "Austin, TX", Experience: "5 years",
			Education: "BS Computer Science, UT Austin",
			Skills:    []string{"React", "TypeScript", "CSS", "Jest", "GraphQL"},
			Email:     "mia.williams@example.com", Phone: "(555) 123-4567",
			Resume: true, CoverLetter: true,
			LastActivity: "Application received", LastActivityDate: "2 days ago",
		},
		{
			ID: "102", Name: "James Chen", Position: "Senior UI Developer",
			Initials: "JC", Color: "bg-blue-100", JobID: "1",
			Status: models.StatusApplicationReview, Stage: models.StageScreening,
			AIMatch: true, MatchScore: 88, Source: "Indeed",
			Location: "Seattle, WA", Experience: "7 years",
			Education: "MS Computer Science, University of Washington",
			Skills:    []string{"JavaScript", "React", "Vue", "TailwindCSS", "Webpack"},
			Email:     "james.chen@example.com", Phone: "(555) 987-6543",
			Resume: true,
			LastActivity: "Scheduled phone screening", LastActivityDate: "1 day ago",
		},
		{
			ID: "103", Name: "Emily Foster", Position: "React Developer",
			Initials: "EF", Color: "bg-purple-100", JobID: "1",
			Status: models.StatusInterview, Stage: models.StageTechnicalInterview,
			AIMatch: true, MatchScore: 95, Source: "Referral",
			Location: "Remote", Experience: "6 years",
			Education: "BS Software Engineering, Boston University",
			Skills:    []string{"React", "Redux", "TypeScript", "Node.js", "AWS"},
			Email:     "emily.foster@example.com", Phone: "(555) 456-7890",
			Resume: true, CoverLetter: true,
			LastActivity: "Technical interview scheduled", LastActivityDate: "5 hours ago",
		},
		{
			ID: "104", Name: "Michael Thomas", Position: "Frontend Lead",
			Initials: "MT", Color: "bg-green-100", JobID: "1",
			Status: models.StatusInterview, Stage: models.StageManagerInterview,
			AIMatch: true, MatchScore: 90, Source: "LinkedIn",
			Location: "Denver, CO", Experience: "8 years",
			Education: "BS Computer Engineering, Colorado State",
			Skills:    []string{"React", "Angular", "JavaScript", "CSS", "Leadership"},
			Email:     "michael.thomas@example.com", Phone: "(555) 789-0123",
			Resume: true, CoverLetter: true,
			LastActivity: "Completed technical interview", LastActivityDate: "yesterday",
		},
		{
			ID: "105", Name: "Sophia Rodriguez", Position: "UI Developer",
			Initials: "SR", Color: "bg-red-100", JobID: "1",
			Status: models.StatusOffer, Stage: models.StageOfferExtended,
			AIMatch: true, MatchScore: 93, Source: "AngelList",
			Location: "Portland, OR", Experience: "4 years",
			Education: "BS Computer Science, Portland State",
			Skills:    []string{"React", "CSS", "Accessibility", "UI Design", "Performance"},
			Email:     "sophia.rodriguez@example.com", Phone: "(555) 234-5678",
			Resume: true, CoverLetter: true,
			LastActivity: "Offer sent", LastActivityDate: "1 day ago",
		},
		{
			ID: "201", Name: "David Garcia", Position: "Senior Product Manager",
			Initials: "DG", Color: "bg-green-100", JobID: "2",
			Status: models.StatusApplicationReview, Stage: models.StageNew,
			AIMatch: true, MatchScore: 88, Source: "LinkedIn",
			Location: "Boston, MA", Experience: "8 years",
			Education: "MBA, Harvard University",
			Skills:    []string{"Product Strategy", "Agile", "User Research", "Data Analysis", "Roadmapping"},
			Email:     "david.garcia@example.com", Phone: "(555) 123-7890",
			Resume: true, CoverLetter: true,
			LastActivity: "Application received", LastActivityDate: "3 days ago",
		},
		{
			ID: "202", Name: "Jennifer Lopez", Position: "Product Manager",
			Initials: "JL", Color: "bg-pink-100", JobID: "2",
			Status: models.StatusInterview, Stage: models.StageManagerInterview,
			AIMatch: true, MatchScore: 92, Source: "Referral",
			Location: "New York, NY", Experience: "6 years",
			Education: "MBA, Columbia University",
			Skills:    []string{"Product Development", "User Testing", "Market Research", "Cross-functional Leadership", "Product Design"},
			Email:     "jennifer.lopez@example.com", Phone: "(555) 456-3214",
			Resume: true, CoverLetter: true,
			LastActivity: "Manager interview scheduled", LastActivityDate: "yesterday",
		},
		{
			ID: "301", Name: "Alex Rivera", Position: "Senior UX Designer",
			Initials: "AR", Color: "bg-indigo-100", JobID: "3",
			Status: models.StatusApplicationReview, Stage: models.StageScreening,
			AIMatch: true, MatchScore: 90, Source: "Dribbble",
			Location: "Los Angeles, CA", Experience: "7 years",
			Education: "BFA Design, RISD",
			Skills:    []string{"User Research", "Wireframing", "Prototyping", "Figma", "Design Systems"},
			Email:     "alex.rivera@example.com", Phone: "(555) 987-1234",
			Resume: true,
			LastActivity: "Portfolio review", LastActivityDate: "yesterday",
		},
		{
			ID: "401", Name: "Thomas Wright", Position: "Technical Sales Engineer",
			Initials: "TW", Color: "bg-orange-100", JobID: "4",
			Status: models.StatusApplicationReview, Stage: models.StageNew,
			AIMatch: true, MatchScore: 94, Source: "LinkedIn",
			Location: "Chicago, IL", Experience: "7 years",
			Education: "BS Computer Science, University of Illinois",
			Skills:    []string{"Technical Sales", "Solution Architecture", "Product Demos", "CRM", "B2B"},
			Email:     "thomas.wright@example.com", Phone: "(555) 111-2222",
			Resume: true, CoverLetter: true,
			LastActivity: "Added to leads", LastActivityDate: "2 days ago",
		},
		{
			ID: "402", Name: "Emma Johnson", Position: "Solutions Engineer",
			Initials: "EJ", Color: "bg-red-100", JobID: "4",
			Status: models.StatusApplicationReview, Stage: models.StageScreening,
			AIMatch: true, MatchScore: 91, Source: "GitHub",
			Location: "San Francisco, CA", Experience: "5 years",
			Education: "MS Computer Science, Stanford",
			Skills:    []string{"Technical Sales", "Cloud Solutions", "API Integration", "Customer Success", "B2B SaaS"},
			Email:     "emma.johnson@example.com", Phone: "(555) 333-4444",
			Resume: true,
			LastActivity: "Scheduled screening call", LastActivityDate: "1 day ago",
		},
		{
			ID: "403", Name: "Michael Patel", Position: "Sales Engineer",
			Initials: "MP", Color: "bg-teal-100", JobID: "4",
			Status: models.StatusInterview, Stage: models.StageTechnicalInterview,
			AIMatch: true, MatchScore: 89, Source: "LinkedIn",
			Location: "Austin, TX", Experience: "6 years",
			Education: "BS Software Engineering, UT Austin",
			Skills:    []string{"Solution Architecture", "Technical Sales", "Product Knowledge", "Customer Relations", "Enterprise Sales"},
			Email:     "michael.patel@example.com", Phone: "(555) 555-6666",
			Resume: true, CoverLetter: true,
			LastActivity: "Technical interview scheduled", LastActivityDate: "3 hours ago",
		},
		{
			ID: "404", Name: "Sarah Miller", Position: "Technical Account Manager",
			Initials: "SM", Color: "bg-purple-100", JobID: "4",
			Status: models.StatusRejected, Stage: models.StageRejected,
			AIMatch: true, MatchScore: 75, Source: "Indeed",
			Location: "Remote", Experience: "4 years",
			Education: "BS Business Administration, University of Colorado",
			Skills:    []string{"Account Management", "Technical Support", "Solution Selling", "Customer Success", "CRM"},
			Email:     "sarah.miller@example.com", Phone: "(555) 777-8888",
			Resume: true, CoverLetter: true,
			LastActivity: "Rejected - not enough technical experience", LastActivityDate: "1 week ago",
		},
	}
}

func seedJobs() []models.Job {
	return []models.Job{
		{
			ID: "1", Title: "Senior Frontend Developer", Department: "Engineering",
			Type: "Full-time", Location: "Remote", Status: models.JobPublished,
			Candidates: models.JobCandidateCounts{Total: 18, New: 5, Screening: 8, Interview: 3, Offer: 2},
			Progress:   75, HiringManager: "Sarah Johnson", DaysActive: 14, Priority: models.PriorityHigh,
		},
		{
			ID: "2", Title: "Product Manager", Department: "Product",
			Type: "Full-time", Location: "New York, NY", Status: models.JobPublished,
			Candidates: models.JobCandidateCounts{Total: 12, New: 3, Screening: 5, Interview: 4},
			Progress:   60, HiringManager: "Michael Chen", DaysActive: 21, Priority: models.PriorityMedium,
		},
		{
			ID: "3", Title: "UX/UI Designer", Department: "Design",
			Type: "Contract", Location: "Remote", Status: models.JobPublished,
			Candidates: models.JobCandidateCounts{Total: 24, New: 8, Screening: 10, Interview: 5, Offer: 1},
			Progress:   65, HiringManager: "Jessica Lee", DaysActive: 10, Priority: models.PriorityMedium,
		},
		{
			ID: "4", Title: "Sales Engineer", Department: "Sales",
			Type: "Full-time", Location: "Chicago, IL", Status: models.JobPublished,
			Candidates: models.JobCandidateCounts{Total: 15, New: 4, Screening: 6, Interview: 3, Offer: 2},
			Progress:   80, HiringManager: "David Wilson", DaysActive: 30, Priority: models.PriorityHigh,
		},
		{
			ID: "5", Title: "DevOps Engineer", Department: "Engineering",
			Type: "Full-time", Location: "Remote", Status: models.JobDraft,
			Progress: 0, HiringManager: "Amanda Torres", DaysActive: 0, Priority: models.PriorityLow,
		},
		{
			ID: "6", Title: "Marketing Manager", Department: "Marketing",
			Type: "Full-time", Location: "Austin, TX", Status: models.JobPublished,
			Candidates: models.JobCandidateCounts{Total: 9, New: 2, Screening: 4, Interview: 2, Offer: 1},
			Progress:   70, HiringManager: "Ryan Jackson", DaysActive: 18, Priority: models.PriorityMedium,
		},
	}
}

func seedApplications() []models.Application {
	return []models.Application{
		{ID: "1", Company: "Acme Inc", Position: "Frontend Developer", Status: models.AppApplied,
			Date: time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), Location: "Remote", Type: "Full-time"},
		{ID: "2", Company: "Globex Corporation", Position: "Full Stack Engineer", Status: models.AppInterview,
			Date: time.Date(2023, 7, 12, 0, 0, 0, 0, time.UTC), Location: "San Francisco, CA", Type: "Full-time"},
		{ID: "3", Company: "Stark Industries", Position: "UI/UX Designer", Status: models.AppRejected,
			Date: time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC), Location: "New York, NY", Type: "Contract"},
		{ID: "4", Company: "Wayne Enterprises", Position: "Software Engineer", Status: models.AppOffer,
			Date: time.Date(2023, 7, 8, 0, 0, 0, 0, time.UTC), Location: "Chicago, IL", Type: "Full-time"},
		{ID: "5", Company: "Umbrella Corporation", Position: "DevOps Engineer", Status: models.AppScreening,
			Date: time.Date(2023, 7, 5, 0, 0, 0, 0, time.UTC), Location: "Remote", Type: "Full-time"},
		{ID: "6", Company: "Cyberdyne Systems", Position: "Machine Learning Engineer", Status: models.AppApplied,
			Date: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), Location: "Boston, MA", Type: "Full-time"},
		{ID: "7", Company: "Initech", Position: "Backend Developer", Status: models.AppApplied,
			Date: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), Location: "Austin, TX", Type: "Full-time"},
		{ID: "8", Company: "Massive Dynamic", Position: "Data Scientist", Status: models.AppInterview,
			Date: time.Date(2023, 6, 28, 0, 0, 0, 0, time.UTC), Location: "Seattle, WA", Type: "Full-time"},
	}
}

func seedInterviews() []models.Interview {
	today := time.Now().Truncate(24 * time.Hour)
	return []models.Interview{
		{
			ID: "1", Company: "Acme Inc", Position: "Frontend Developer",
			Type: models.InterviewTechnical, Date: today.AddDate(0, 0, 2), Time: "14:00",
			Duration: 60, Location: "Remote - Zoom",
			Interviewers: []string{"Jane Smith (Tech Lead)", "John Doe (Engineering Manager)"},
			Notes:        "Prepare to discuss React, TypeScript, and component design patterns.",
			Reminder:     true, Status: models.InterviewUpcoming,
		},
		{
			ID: "2", Company: "Globex Corporation", Position: "Full Stack Engineer",
			Type: models.InterviewHRScreening, Date: today.AddDate(0, 0, 4), Time: "10:30",
			Duration: 30, Location: "Remote - Google Meet",
			Interviewers: []string{"Sarah Johnson (HR Manager)"},
			Notes:        "Initial screening call to discuss background and experience.",
			Reminder:     true, Status: models.InterviewUpcoming,
		},
		{
			ID: "3", Company: "Wayne Enterprises", Position: "Software Engineer",
			Type: models.InterviewFinal, Date: today.AddDate(0, 0, 7), Time: "15:00",
			Duration: 90, Location: "Onsite - Chicago Office",
			Interviewers: []string{"Bruce Wayne (CTO)", "Lucius Fox (Engineering Director)"},
			Notes:        "Panel interview with senior leadership. Be prepared to discuss system design and architecture.",
			Reminder:     true, Status: models.InterviewUpcoming,
		},
		{
			ID: "4", Company: "Stark Industries", Position: "UI/UX Designer",
			Type: models.InterviewPortfolioReview, Date: today.AddDate(0, 0, -3), Time: "11:00",
			Duration: 45, Location: "Remote - Microsoft Teams",
			Interviewers: []string{"Tony Stark (Product Lead)"},
			Notes:        "Completed. Feedback: Strong portfolio, good communication skills.",
			Reminder:     false, Status: models.InterviewCompleted,
		},
	}
}

func seedDocuments() []models.Document {
	now := time.Now()
	return []models.Document{
		{ID: "1", Name: "Resume_2023.pdf", Type: "pdf", Size: 1_245_184, SizeText: "1.19 MB",
			Category: "Resume", Date: now.AddDate(0, 0, -12)},
		{ID: "2", Name: "Cover_Letter_Acme.docx", Type: "docx", Size: 48_640, SizeText: "47.5 KB",
			Category: "Cover Letter", Date: now.AddDate(0, 0, -9)},
		{ID: "3", Name: "Portfolio_2023.pdf", Type: "pdf", Size: 8_912_896, SizeText: "8.5 MB",
			Category: "Portfolio", Date: now.AddDate(0, 0, -5)},
	}
}

func seedJobListings() []models.JobListing {
	return []models.JobListing{
		{
			ID: "1", Title: "Senior Frontend Developer", Company: "Acme Technology",
			Location: "Remote", Type: "Full-time", Salary: "$120,000 - $150,000", Posted: "3 days ago",
			Description: "We're seeking a Senior Frontend Developer proficient in React, TypeScript, and modern frontend development practices. You'll be responsible for leading frontend development initiatives, mentoring junior developers, and ensuring high-quality user experiences.",
			Requirements: []string{
				"5+ years of frontend development experience", "Expert knowledge of React",
				"TypeScript proficiency", "Experience with state management libraries",
				"Strong problem-solving skills",
			},
			Rating: 4.8, Reviews: 128,
		},
		{
			ID: "2", Title: "Full Stack Engineer", Company: "Globex Corporation",
			Location: "San Francisco, CA", Type: "Full-time", Salary: "$130,000 - $160,000", Posted: "1 week ago",
			Description: "Join our dynamic team as a Full Stack Engineer, working across our entire tech stack to build and maintain features for our rapidly growing product. You'll collaborate with product managers, designers, and other engineers to deliver high-quality, scalable solutions.",
			Requirements: []string{
				"3+ years of full stack development experience", "Proficiency in React and Node.js",
				"Experience with SQL and NoSQL databases", "Understanding of cloud services (AWS/Azure/GCP)",
				"CS degree or equivalent experience",
			},
			Rating: 4.2, Reviews: 85,
		},
		{
			ID: "3", Title: "UX/UI Designer", Company: "Stark Industries",
			Location: "Remote", Type: "Contract", Salary: "$90,000 - $110,000", Posted: "2 days ago",
			Description: "We're looking for a UX/UI Designer to create intuitive, user-centered designs for our cutting-edge products. You'll participate in the entire product development process, from research and conceptualization to detailed design and implementation support.",
			Requirements: []string{
				"3+ years of UX/UI design experience", "Proficiency in Figma and design tools",
				"Portfolio showcasing user-centered design work", "Experience conducting user research",
				"Strong communication skills",
			},
			Rating: 4.5, Reviews: 72,
		},
		{
			ID: "4", Title: "DevOps Engineer", Company: "Wayne Enterprises",
			Location: "Chicago, IL", Type: "Full-time", Salary: "$125,000 - $155,000", Posted: "5 days ago",
			Description: "We're seeking a DevOps Engineer to help us build and maintain our cloud infrastructure and deployment pipelines. You'll work on automating processes, improving system reliability, and optimizing performance across our technology stack.",
			Requirements: []string{
				"3+ years of DevOps experience", "Strong knowledge of AWS or Azure",
				"Experience with CI/CD pipelines", "Containerization (Docker, Kubernetes)",
				"Infrastructure as Code (Terraform, CloudFormation)",
			},
			Rating: 4.7, Reviews: 56,
		},
		{
			ID: "5", Title: "Data Scientist", Company: "Oscorp Industries",
			Location: "Boston, MA", Type: "Full-time", Salary: "$140,000 - $170,000", Posted: "1 week ago",
			Description: "Join our data science team to extract valuable insights from complex datasets. You'll develop machine learning models, analyze data trends, and help drive business decisions through data-driven approaches.",
			Requirements: []string{
				"MS or PhD in Computer Science, Statistics, or related field",
				"Experience with Python, R, and data analysis libraries", "Machine learning expertise",
				"Strong mathematical and statistical foundation", "Data visualization skills",
			},
			Rating: 4.0, Reviews: 48,
		},
		{
			ID: "6", Title: "Product Manager", Company: "Initech",
			Location: "Remote", Type: "Full-time", Salary: "$115,000 - $145,000", Posted: "3 days ago",
			Description: "We're looking for a Product Manager to lead the development and launch of innovative software products. You'll work closely with engineering, design, and marketing teams to identify market opportunities, define product requirements, and drive successful product launches.",
			Requirements: []string{
				"3+ years of product management experience", "Track record of successful product launches",
				"Strong analytical skills", "Excellent communication and leadership abilities",
				"Technical background preferred",
			},
			Rating: 4.3, Reviews: 61,
		},
	}
}

// SeedActivity is the monthly hiring activity series behind the dashboard
// charts.
func SeedActivity() []models.DashboardMonth {
	return []models.DashboardMonth{
		{Month: "Jan", Applications: 12, Interviews: 5, Offers: 1},
		{Month: "Feb", Applications: 19, Interviews: 8, Offers: 2},
		{Month: "Mar", Applications: 15, Interviews: 6, Offers: 0},
		{Month: "Apr", Applications: 25, Interviews: 10, Offers: 3},
		{Month: "May", Applications: 30, Interviews: 15, Offers: 4},
		{Month: "Jun", Applications: 18, Interviews: 7, Offers: 2},
		{Month: "Jul", Applications: 22, Interviews: 12, Offers: 3},
	}
}

// SeedStatusDistribution is the application status breakdown for the pie
// chart.
func SeedStatusDistribution() []models.StatusSlice {
	return []models.StatusSlice{
		{Name: "Applied", Value: 25},
		{Name: "Screening", Value: 12},
		{Name: "Interview", Value: 8},
		{Name: "Offer", Value: 3},
		{Name: "Rejected", Value: 15},
	}
}

// SeedSourcedCandidates is the canned result set the simulated natural
// language search returns; in the real product this would be an AI search.
func SeedSourcedCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID: "s1", Name: "Thomas Wright", Position: "Technical Sales Engineer",
			Initials: "TW", Color: "bg-orange-100", Company: "TechSolutions Inc.",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 94, Source: "LinkedIn",
			Location: "Chicago, USA", Experience: "7 years",
			Education:   "BS in Computer Science, University of Illinois",
			Skills:      []string{"Technical Sales", "Solution Architecture", "Product Demos", "CRM", "B2B"},
			ProfileLink: "https://linkedin.com/in/thomaswright",
			LastActivity: "Found by search", LastActivityDate: "2 weeks ago",
		},
		{
			ID: "s2", Name: "Emma Johnson", Position: "Solutions Engineer",
			Initials: "EJ", Color: "bg-red-100", Company: "CloudTech Systems",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 91, Source: "GitHub",
			Location: "Boston, USA", Experience: "5 years",
			Education:   "MS in Computer Science, MIT",
			Skills:      []string{"Technical Sales", "Cloud Solutions", "API Integration", "Customer Success", "B2B SaaS"},
			ProfileLink: "https://github.com/emmajohnson",
			LastActivity: "Found by search", LastActivityDate: "3 days ago",
		},
		{
			ID: "s3", Name: "Michael Patel", Position: "Sales Engineer",
			Initials: "MP", Color: "bg-teal-100", Company: "SoftwareInc",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 89, Source: "LinkedIn",
			Location: "Austin, USA", Experience: "6 years",
			Education:   "BS in Software Engineering, UT Austin",
			Skills:      []string{"Solution Architecture", "Technical Sales", "Product Knowledge", "Customer Relations", "Enterprise Sales"},
			ProfileLink: "https://linkedin.com/in/michaelpatel",
			LastActivity: "Found by search", LastActivityDate: "1 week ago",
		},
		{
			ID: "s4", Name: "Sarah Miller", Position: "Technical Account Manager",
			Initials: "SM", Color: "bg-purple-100", Company: "TechPlatform Co.",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 87, Source: "Online Resume",
			Location: "Denver, USA", Experience: "4 years",
			Education:   "BS in Business Administration, University of Colorado",
			Skills:      []string{"Account Management", "Technical Support", "Solution Selling", "Customer Success", "CRM"},
			ProfileLink: "#",
			LastActivity: "Found by search", LastActivityDate: "5 days ago",
		},
		{
			ID: "s5", Name: "David Chen", Position: "Solutions Consultant",
			Initials: "DC", Color: "bg-green-100", Company: "EnterpriseApp",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 85, Source: "LinkedIn",
			Location: "San Francisco, USA", Experience: "8 years",
			Education:   "MS in Information Systems, UC Berkeley",
			Skills:      []string{"Enterprise Solutions", "Technical Consulting", "Solution Architecture", "Sales Engineering", "B2B"},
			ProfileLink: "https://linkedin.com/in/davidchen",
			LastActivity: "Found by search", LastActivityDate: "2 days ago",
		},
		{
			ID: "s6", Name: "Jennifer Lopez", Position: "Pre-Sales Engineer",
			Initials: "JL", Color: "bg-pink-100", Company: "DataTech",
			Status: models.StatusSourced, Stage: models.StageNew,
			AIMatch: true, MatchScore: 83, Source: "GitHub",
			Location: "Miami, USA", Experience: "3 years",
			Education:   "BS in Computer Engineering, University of Miami",
			Skills:      []string{"Technical Demos", "Product Knowledge", "Customer Communication", "Solution Design", "Data Analytics"},
			ProfileLink: "https://github.com/jenniferlopez",
			LastActivity: "Found by search", LastActivityDate: "1 day ago",
		},
	}
}
