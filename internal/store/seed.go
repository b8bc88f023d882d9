package store

import "jobmate/recruit-service/internal/model"

// SeedOrders returns the sample order collection used on first run. Each call
// returns a fresh copy so callers can mutate freely.
func SeedOrders() []model.JobPostingOrder {
	return []model.JobPostingOrder{
		{
			ID:                    "JP-001",
			CompanyName:           "TechCorp",
			PositionTitle:         "Senior Frontend Developer",
			CareerLevel:           "5+ years",
			Responsibilities:      "Build React web applications, implement UI/UX, review code",
			Qualifications:        "React, TypeScript and Next.js experience required",
			PreferentialTreatment: "AWS experience, team lead experience",
			OtherInfo:             "Salary 60M-80M KRW, Seoul office",
			Status:                model.StatusActive,
			CreatedAt:             "2025-01-15",
			Deadline:              "2025-03-15",
			IsUrgent:              true,
			AnalysisStatus:        model.AnalysisNone,
		},
		{
			ID:                    "JP-002",
			CompanyName:           "StartupXYZ",
			PositionTitle:         "Product Manager",
			CareerLevel:           "3+ years",
			Responsibilities:      "Product planning, roadmap ownership, collaboration with engineering",
			Qualifications:        "Product planning experience, data analysis skills",
			PreferentialTreatment: "Startup background, Agile methodology experience",
			OtherInfo:             "Salary 55M-70M KRW, Busan office",
			Status:                model.StatusActive,
			CreatedAt:             "2025-01-10",
			Deadline:              "2025-04-10",
			AnalysisStatus:        model.AnalysisNone,
		},
		{
			ID:                    "JP-003",
			CompanyName:           "DesignStudio",
			PositionTitle:         "UX Designer",
			CareerLevel:           "2+ years",
			Responsibilities:      "User experience design, prototyping, usability testing",
			Qualifications:        "Proficiency with Figma and Adobe XD",
			PreferentialTreatment: "Strong portfolio, design system experience",
			OtherInfo:             "Salary 45M-60M KRW, fully remote",
			Status:                model.StatusClosed,
			CreatedAt:             "2024-01-08",
			Deadline:              "2024-01-20",
			AnalysisStatus:        model.AnalysisNone,
		},
		{
			ID:                    "JP-004",
			CompanyName:           "FinTech Solutions",
			PositionTitle:         "Backend Developer",
			CareerLevel:           "4+ years",
			Responsibilities:      "API design and development, database tuning, microservice architecture",
			Qualifications:        "Java, Spring Boot and MySQL experience required",
			PreferentialTreatment: "Kubernetes/Docker experience, finance-sector projects",
			OtherInfo:             "Salary 65M-85M KRW, Seoul Gangnam office",
			Status:                model.StatusActive,
			CreatedAt:             "2025-01-18",
			Deadline:              "2025-02-28",
			IsUrgent:              true,
			AnalysisStatus:        model.AnalysisNone,
		},
		{
			ID:                    "JP-005",
			CompanyName:           "Global Commerce",
			PositionTitle:         "DevOps Engineer",
			CareerLevel:           "3+ years",
			Responsibilities:      "CI/CD pipelines, cloud infrastructure, monitoring systems",
			Qualifications:        "AWS, Docker and Kubernetes experience",
			PreferentialTreatment: "Terraform/Jenkins experience, high-traffic operations",
			OtherInfo:             "Salary 58M-75M KRW, Pangyo office, remote-friendly",
			Status:                model.StatusActive,
			CreatedAt:             "2025-01-20",
			AnalysisStatus:        model.AnalysisNone,
		},
		{
			ID:                    "JP-006",
			CompanyName:           "AI Research Lab",
			PositionTitle:         "Machine Learning Engineer",
			CareerLevel:           "5+ years",
			Responsibilities:      "ML model development and deployment, data pipelines, model optimization",
			Qualifications:        "Python, TensorFlow and PyTorch experience required",
			PreferentialTreatment: "Published research, MLOps experience, computer vision background",
			OtherInfo:             "Salary 80M-120M KRW, Seoul Seocho office",
			Status:                model.StatusActive,
			CreatedAt:             "2025-01-12",
			Deadline:              "2025-03-31",
			AnalysisStatus:        model.AnalysisNone,
		},
	}
}

// SeedCandidates returns the sample candidate map used on first run, keyed by
// order id. Each call returns a fresh copy.
func SeedCandidates() model.CandidateMap {
	return model.CandidateMap{
		"JP-001": {
			{
				ID: 101, LastName: "Kim", BirthYear: 1990, Age: 35,
				Location: "Gangnam-gu, Seoul", Experience: "6 years", IsEmployed: true,
				MatchRate: 92, IsMatch: true,
				Education: "BSc Computer Science, Seoul National University",
				Skills:    []string{"React", "TypeScript", "Next.js", "Node.js", "AWS"},
				MatchReasons: []string{
					"6 years of React and TypeScript fully covers the required stack",
					"Multiple Next.js projects — productive from day one",
					"AWS cloud experience matches the preferred qualifications",
					"Lives in Seoul, easy commute",
				},
			},
			{
				ID: 102, LastName: "Lee", BirthYear: 1988, Age: 37,
				Location: "Seocho-gu, Seoul", Experience: "8 years", IsEmployed: false,
				MatchRate: 88, IsMatch: true,
				Education: "BSc Information Systems, Yonsei University",
				Skills:    []string{"Vue.js", "JavaScript", "Python", "AWS", "Docker"},
				MatchReasons: []string{
					"8 years of development experience meets the senior-level bar",
					"AWS cloud experience matches the preferred qualifications",
					"Currently between jobs — available immediately",
					"Lives in Seoul, easy access to the office",
				},
			},
			{
				ID: 103, LastName: "Park", BirthYear: 1992, Age: 33,
				Location: "Seongnam, Gyeonggi", Experience: "4 years", IsEmployed: true,
				MatchRate: 65, IsMatch: false,
				Education: "BSc Computer Science, KAIST",
				Skills:    []string{"React", "Angular", "MongoDB", "Express"},
				MatchReasons: []string{
					"4 years of experience falls short of the 5+ year requirement",
					"Has React experience but lacks TypeScript depth",
					"Lives in Gyeonggi — longer commute",
				},
			},
			{
				ID: 104, LastName: "Song", BirthYear: 1995, Age: 30,
				Location: "Jung-gu, Daegu", Experience: "1 year", IsEmployed: false,
				MatchRate: 35, IsMatch: false,
				Education: "BA Business Administration",
				Skills:    []string{"HTML", "CSS", "jQuery", "PHP"},
				MatchReasons: []string{
					"1 year of experience is far below the 5+ year requirement",
					"No React or TypeScript experience",
					"Lacks a frontend-focused tech stack",
					"Distance makes commuting impractical",
				},
			},
		},
		"JP-002": {
			{
				ID: 201, LastName: "Choi", BirthYear: 1987, Age: 38,
				Location: "Haeundae-gu, Busan", Experience: "7 years", IsEmployed: true,
				MatchRate: 85, IsMatch: true,
				Education: "BBA, Korea University",
				Skills:    []string{"Product Strategy", "Agile", "Data Analysis", "Figma", "Jira"},
				MatchReasons: []string{
					"7 years of product planning meets the requirement",
					"Agile methodology experience matches the preferred qualifications",
					"Lives in Busan, close to the office",
					"Strong data analysis and collaboration tooling skills",
				},
			},
			{
				ID: 202, LastName: "Jung", BirthYear: 1991, Age: 34,
				Location: "Nam-gu, Busan", Experience: "5 years", IsEmployed: false,
				MatchRate: 78, IsMatch: true,
				Education: "BSc Industrial Engineering, Pusan National University",
				Skills:    []string{"Product Management", "SQL", "Tableau", "Slack"},
				MatchReasons: []string{
					"5 years of product management meets the requirement",
					"Comfortable with data analysis tooling",
					"Currently between jobs — available immediately",
					"Based in Busan, good fit for the work location",
				},
			},
		},
		"JP-004": {
			{
				ID: 401, LastName: "Kang", BirthYear: 1989, Age: 36,
				Location: "Gangnam-gu, Seoul", Experience: "7 years", IsEmployed: true,
				MatchRate: 94, IsMatch: true,
				Education: "BSc Computer Science, Sogang University",
				Skills:    []string{"Java", "Spring Boot", "MySQL", "Redis", "Kubernetes", "Docker"},
				MatchReasons: []string{
					"7 years of Java and Spring Boot fully covers the required stack",
					"Kubernetes and Docker experience matches the preferred qualifications",
					"Hands-on large-scale database tuning experience",
					"Lives in Gangnam — ideal commute",
				},
			},
			{
				ID: 402, LastName: "Yoon", BirthYear: 1993, Age: 32,
				Location: "Songpa-gu, Seoul", Experience: "5 years", IsEmployed: false,
				MatchRate: 89, IsMatch: true,
				Education: "BSc Software Engineering, Hanyang University",
				Skills:    []string{"Java", "Spring", "PostgreSQL", "Docker", "AWS"},
				MatchReasons: []string{
					"5 years of Java and Spring meets the requirement",
					"Docker and AWS experience matches the preferred qualifications",
					"Currently between jobs — available quickly",
					"Lives in Seoul, easy access to the office",
				},
			},
			{
				ID: 403, LastName: "Cho", BirthYear: 1985, Age: 40,
				Location: "Bundang, Gyeonggi", Experience: "12 years", IsEmployed: true,
				MatchRate: 91, IsMatch: true,
				Education: "MSc Computer Science, KAIST",
				Skills:    []string{"Java", "Spring Boot", "Oracle", "MySQL", "Microservices"},
				MatchReasons: []string{
					"12 years of backend development experience",
					"Has built microservice architectures from scratch",
					"Multiple finance-sector projects",
					"Senior-level technical leadership",
				},
			},
		},
		"JP-005": {
			{
				ID: 501, LastName: "Han", BirthYear: 1990, Age: 35,
				Location: "Seongnam, Gyeonggi", Experience: "6 years", IsEmployed: true,
				MatchRate: 87, IsMatch: true,
				Education: "BSc Telecommunications, Sungkyunkwan University",
				Skills:    []string{"AWS", "Docker", "Kubernetes", "Terraform", "Jenkins", "Python"},
				MatchReasons: []string{
					"6 years of AWS, Docker and Kubernetes fully covers the required stack",
					"Terraform and Jenkins experience matches the preferred qualifications",
					"Lives in Seongnam, right next to the Pangyo office",
					"Has operated high-traffic infrastructure",
				},
			},
			{
				ID: 502, LastName: "Oh", BirthYear: 1992, Age: 33,
				Location: "Gangseo-gu, Seoul", Experience: "4 years", IsEmployed: false,
				MatchRate: 82, IsMatch: true,
				Education: "BSc Computer Science, Chung-Ang University",
				Skills:    []string{"AWS", "Docker", "GitLab CI", "Monitoring", "Linux"},
				MatchReasons: []string{
					"4 years of AWS and Docker meets the requirement",
					"Has built CI/CD pipelines end to end",
					"Currently between jobs — available immediately",
					"Prefers remote work, matching the position",
				},
			},
		},
		"JP-006": {
			{
				ID: 601, LastName: "Lim", BirthYear: 1986, Age: 39,
				Location: "Seocho-gu, Seoul", Experience: "8 years", IsEmployed: true,
				MatchRate: 96, IsMatch: true,
				Education: "PhD Computer Science, Seoul National University",
				Skills:    []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Computer Vision", "AWS"},
				MatchReasons: []string{
					"8 years of specialist Python, TensorFlow and PyTorch work",
					"MLOps and computer vision background matches the preferred qualifications",
					"Research record proven by multiple publications",
					"Lives in Seocho — ideal commute",
				},
			},
			{
				ID: 602, LastName: "Shin", BirthYear: 1988, Age: 37,
				Location: "Gwanak-gu, Seoul", Experience: "6 years", IsEmployed: false,
				MatchRate: 88, IsMatch: true,
				Education: "MSc Mathematics, Yonsei University",
				Skills:    []string{"Python", "Scikit-learn", "TensorFlow", "Pandas", "Jupyter"},
				MatchReasons: []string{
					"6 years of Python and TensorFlow meets the requirement",
					"Mathematics background gives strong modeling skills",
					"Currently between jobs — available quickly",
					"Lives in Seoul, easy access to the office",
				},
			},
		},
	}
}
