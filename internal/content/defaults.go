package content

// Default returns the built-in document used when no content file is
// configured. Each call returns a fresh copy.
func Default() *Store {
	return &Store{
		Personal: PersonalInfo{
			Name:     "Charan S Naik",
			Titles:   []string{"AI Engineer", "GenAI Engineer", "LLM Engineer", "AI Automation Developer"},
			Tagline:  "AI Engineer · GenAI · LLM",
			Location: "Bengaluru, India",
			TaglineDescription: `Hands-on experience in RAG systems, prompt engineering, local LLM inference,
vector databases, n8n automation, and full-stack AI development. I transform business
requirements into scalable AI solutions.`,
			About: About{
				Summary: `Versatile AI Engineer with hands-on expertise in building production-ready GenAI
solutions, RAG systems, and intelligent automation workflows. Experienced in deploying local
LLM inference, developing full-stack AI applications, and designing scalable data pipelines.
Proven track record in transforming complex business requirements into efficient, user-centric
AI products through strategic implementation of LangChain, vector databases, and modern web
technologies.`,
				Highlights: []string{
					"Specialized in RAG systems with ChromaDB, Pinecone, and semantic retrieval",
					"Built end-to-end AI applications using FastAPI, Next.js, and Streamlit",
					"Expert in n8n automation with custom node development and workflow orchestration",
					"Proficient in local LLM deployment using Ollama (Llama 3.2, CodeLlama, Mistral)",
					"Strong foundation in data analytics, ETL automation, and business intelligence",
				},
				Image: "profile.png",
			},
			Resume: "/resume.pdf",
			Contact: Contact{
				Email:    "charan07naik@gmail.com",
				Phone:    "+91 63622 97018",
				Location: "Bengaluru, India",
			},
			Social: Social{
				GitHub:   "https://github.com/Charan071",
				LinkedIn: "https://linkedin.com/in/charan-naik-403892294",
			},
		},
		Skills: []SkillGroup{
			{
				Category: "AI & LLM",
				Items: []string{
					"LLMs: Llama 3.2, CodeLlama, GPT-3.0 Mini",
					"Ollama, Embeddings (Ollama, OpenAI)",
					"RAG Pipelines, LangChain, Vector DBs (ChromaDB, Pinecone)",
				},
			},
			{
				Category: "Backend & Automation",
				Items: []string{
					"Python, FastAPI, n8n",
					"API Integration, ETL Automation, Workflow Orchestration",
					"Streaming (SSE), Custom Nodes",
				},
			},
			{
				Category: "Full-stack & Data",
				Items: []string{
					"React, Next.js, Vite, Streamlit, Tailwind",
					"SQL, PostgreSQL, Supabase, Airflow",
					"Power BI, Pandas, NumPy, Excel",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "RAG Document Q&A System",
				Description: "LangChain, Ollama, ChromaDB, Streamlit. Local LLM inference, PDF/TXT/CSV ingestion and semantic retrieval.",
				Link:        "https://github.com/Charan071/RAG-Document-Q-A-System",
				Featured:    true,
				Image:       "project1.png",
			},
			{
				Title:       "Code Maestro — Local AI Code Assistant",
				Description: "FastAPI + Next.js assistant with SSE streaming, multi-model backend and developer-grade UX.",
				Link:        "https://github.com/Charan071/Code-Assistant",
				Featured:    true,
				Image:       "project2.png",
			},
			{
				Title:       "AI Bulletin Daily",
				Description: "Automated AI news platform using Supabase, n8n, and Gemini summarization.",
				Link:        "https://github.com/Charan071/ai-bulletin-daily",
				Featured:    true,
				Image:       "project3.png",
			},
		},
		AutomationAgents: []AutomationAgent{
			{
				Title:       "AI Inbox Automation Agent",
				Description: "Automates email inbox tasks using n8n + Google Gemini + Gmail API. Includes workflow JSON and setup instructions.",
				Link:        "https://github.com/Charan071/my-n8n-workflows",
			},
			{
				Title:       "Onboarding Automation Agent",
				Description: "Automates employee onboarding using Slack, Jira, and Entra ID. Includes workflows and helper scripts.",
				Link:        "https://github.com/Charan071/my-n8n-workflows",
			},
			{
				Title:       "RAG Knowledge Agent",
				Description: "Retrieval-Augmented Generation workflow using n8n + Pinecone + OpenAI. Includes diagrams and setup notes.",
				Link:        "https://github.com/Charan071/my-n8n-workflows",
			},
		},
		Experience: []ExperienceEntry{
			{
				Title:    "Data Analyst Trainee",
				Company:  "Aimerz.ai",
				Location: "Bengaluru, India",
				Period:   "Jan 2025 – Jul 2025",
				Tools:    "Python, SQL, Power BI",
				Responsibilities: []string{
					"Automated multi-source data workflows, reducing manual effort by 40%.",
					"Built reusable data pipelines and dashboards for campaign insights.",
					"Developed ETL scripts that improved reporting speed and accuracy.",
				},
			},
			{
				Title:    "Product & Operations Intern",
				Company:  "SpriveApp",
				Location: "Bengaluru, India",
				Period:   "Aug 2024 – Dec 2024",
				Tools:    "REST APIs, MySQL, Power BI",
				Responsibilities: []string{
					"Built automated data workflows to streamline product analytics.",
					"Designed operational dashboards for user activation and retention.",
					"Conducted feature analysis and data validation to support product improvements.",
				},
			},
		},
		Education: Education{
			Degree:      "Bachelor of Engineering (Information Science & Engineering)",
			Institution: "CMR Institute of Technology, Bengaluru",
			Period:      "Dec 2020 – May 2024",
		},
		Certifications: []string{
			"IBM: Python for Data Science, AI & Development",
			"Udemy: AI Engineer Agentic Track – The Complete Agent & MCP Course",
			"Accenture: Data Analytics & Visualization Job Simulation (Forage)",
		},
	}
}
