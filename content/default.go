package content

// Default returns the built-in profile. Each call returns a fresh copy.
func Default() Profile {
	return Profile{
		Intro: Intro{
			Name:    "Hanumantharaya",
			Tagline: "Software Engineer | Web Developer",
			Summary: "I am a Software Developer skilled in designing and building efficient, user-focused applications. " +
				"I enjoy solving real problems, improving code quality, and collaborating with teams to deliver meaningful features. " +
				"My goal is to grow as a full-stack engineer and contribute to products that make a difference.",
			Email:     "hraya0204@gmail.com",
			Phone:     "+91 89049 15708",
			GitHub:    "https://github.com/hanumantha123456",
			LinkedIn:  "https://www.linkedin.com/in/hanumantharaya-contactMe",
			ResumeURL: "/resume.pdf",
			ImageURL:  "/me.jpg",
			Location:  "Bengaluru, India",
		},
		About: "I focus on building efficient and user-friendly web applications with clean and maintainable code. " +
			"I enjoy collaborating with teams, improving performance, and learning quickly by working on real features. " +
			"My goal is to contribute as a full-stack developer and grow into a reliable software engineer.",
		Skills: []SkillGroup{
			{Title: "Frontend", Items: []string{"HTML", "CSS", "JavaScript", "React.js", "Bootstrap"}},
			{Title: "Backend", Items: []string{"Node.js", "Express.js", "PHP", "Django", "REST APIs"}},
			{Title: "Databases", Items: []string{"MySQL", "MongoDB", "SQL"}},
			{Title: "Programming", Items: []string{"Java", "Python"}},
			{Title: "Core CS", Items: []string{"OOPS", "DBMS", "Operating Systems", "Computer Networks"}},
			{Title: "Tools & Soft Skills", Items: []string{"Git", "GitHub", "Leadership", "Teamwork", "Problem Solving", "Collaboration"}},
		},
		Projects: []Project{
			{
				Name:  "Healthcare Emergency Assistance System",
				Stack: []string{"Java", "Spring Boot", "Spring Security", "MySQL", "JWT", "React"},
				Description: "Fullstack Project: Built a responsive healthcare dashboard with hospital search, appointment booking, " +
					"emergency workflows, and role-based UI screens integrated via REST APIs.",
				Links: []Link{
					{Label: "Live", Href: "https://your-live-site-link.com"},
					{Label: "GitHub", Href: "https://github.com/your-repo"},
				},
			},
			{
				Name:        "Civic Voice – Civic Problem Reporting Platform",
				Stack:       []string{"HTML", "CSS", "JavaScript", "Bootstrap", "PHP", "SQL", "Google Maps API"},
				Description: "Users can register civic complaints with location tracking, backed by scalable data management and dashboards.",
				Links: []Link{
					{Label: "Live", Href: "https://your-live-site-link.com"},
					{Label: "GitHub", Href: "https://github.com/hanumantha123456/CivicVoice"},
				},
			},
			{
				Name:        "Personal Portfolio Website",
				Stack:       []string{"React.js", "Tailwind CSS", "JavaScript"},
				Description: "Modern and responsive portfolio website highlighting my projects, skills, and professional background.",
				Links: []Link{
					{Label: "Live", Href: "https://hanumantharaya-portfolio.netlify.app/"},
					{Label: "GitHub", Href: "https://github.com/hanumantha123456/Hanmanth-portfolio"},
				},
			},
		},
		Experience: []Job{
			{
				Role:     "Web Development Intern",
				Company:  "AYUD SOFTWARE",
				Location: "Virtual (Raichur)",
				Period:   "Mar 2023 – Jun 2023",
				Bullets: []string{
					"Designed and developed an e-learning platform to enhance engagement and streamline content delivery.",
					"Worked across HTML, CSS, Bootstrap, JavaScript, Python (Django), SQL, and Git/GitHub.",
				},
			},
		},
		Education: []Education{
			{School: "New Horizon College of Engineering, Bengaluru", Degree: "B.E. in Information Science and Engineering", Period: "2022 – 2026 (Pursuing)", Meta: "CGPA: 7.49"},
			{School: "Government Polytechnic, Raichur", Degree: "Diploma in Computer Science", Period: "2020 – 2023", Meta: "CGPA: 8.45"},
			{School: "Karnataka Public School, Matamari", Degree: "SSLC (KSEEB)", Period: "2019 – 2020", Meta: "Percentage: 86.24%"},
		},
	}
}
