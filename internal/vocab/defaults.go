package vocab

import "github.com/jonathan/ats-tailor/internal/types"

// Default returns the built-in security-domain vocabulary. Each call returns fresh slices.
func Default() Vocabulary {
	return Vocabulary{
		Tools: []string{
			"Splunk", "QRadar", "ArcSight", "Sumo Logic", "ELK Stack", "Elastic",
			"Wireshark", "Volatility", "Autopsy", "Nessus", "Qualys", "OpenVAS",
			"Rapid7", "Tenable", "Burp Suite", "BurpSuite", "OWASP ZAP", "Checkmarx",
			"SonarQube", "Palo Alto", "Cisco ASA", "Check Point", "Fortinet",
			"AWS Security", "Azure Security", "Google Cloud Security", "CloudTrail",
			"CrowdStrike", "Microsoft Sentinel", "Snort", "Suricata", "Zeek",
			"Metasploit", "Nmap", "Python", "Bash", "PowerShell", "Docker",
			"Kubernetes", "Terraform", "Git", "Linux", "AWS", "Azure", "GCP",
		},
		Concepts: []string{
			"SIEM", "threat hunting", "log analysis", "incident response", "threat detection",
			"forensics", "breach investigation", "root cause analysis", "timeline reconstruction",
			"vulnerability assessment", "vulnerability management", "risk management",
			"patch management", "CVE analysis", "secure code", "secure coding", "OWASP",
			"web security", "API security", "network security", "firewall", "IDS/IPS", "VPN",
			"network monitoring", "cloud security", "infrastructure security", "cloud compliance",
			"identity management", "threat intelligence", "malware analysis",
			"penetration testing", "access control", "encryption", "SOC", "EDR",
			"packet analysis", "security automation", "phishing",
		},
		Frameworks: []string{
			"MITRE ATT&CK", "NIST 800-53", "NIST CSF", "NIST IR", "NIST", "SANS IR",
			"SANS Top 25", "CIS Controls", "CIS Benchmarks", "CIS", "CVSS", "CVRF",
			"OWASP Top 10", "CWE", "ISO 27001", "Cloud Security Alliance", "SOC 2",
			"PCI DSS", "HIPAA", "GDPR",
		},
		Certifications: []string{
			"Security+", "CySA+", "CompTIA", "CEH", "CISSP", "CISM", "OSCP", "GCIH", "SANS",
		},
		StopWords: []string{
			"and", "the", "for", "with", "you", "are", "have", "will", "this", "that",
			"from", "our", "your", "their", "they", "role", "job", "join", "about",
			"which", "what", "who", "how", "can", "not", "but", "all", "also", "more",
			"than", "into", "has", "its", "was", "were", "been", "each", "new", "use",
			"using", "used", "well", "high", "good", "able", "get", "set", "such",
			"need", "needs", "we're", "you'll", "looking", "seeking", "must", "should",
			"strong", "ability", "skills", "skill", "knowledge", "including", "etc",
			"year", "years", "plus", "preferred", "required", "requirements",
			"responsibilities", "candidate", "candidates", "position", "company", "other",
			"within", "across", "any", "may", "would", "work", "working", "experience",
			"familiarity", "understanding", "excellent", "great", "ideal", "help", "make",
			"opportunity", "apply", "who", "them", "there", "these", "those", "through",
			"like", "based", "per", "one", "two", "three", "least", "both", "own",
		},
		ActionVerbs: []string{
			"Built", "Developed", "Created", "Designed", "Engineered", "Architected",
			"Released", "Launched", "Performed", "Conducted", "Maintained", "Wrote",
			"Ran", "Integrated", "Migrated", "Documented", "Tuned", "Hunted", "Responded",
		},
		WeakOpeners: []string{
			"responsible for", "worked on", "participated in", "helped with", "helped to",
			"assisted with", "assisted in", "involved in", "tasked with", "duties included",
		},
		Angles: []AngleTerm{
			{
				Angle: types.AngleSecurity,
				Verbs: []string{
					"Implemented", "Configured", "Deployed", "Established", "Secured",
					"Detected", "Investigated", "Analyzed", "Identified", "Mitigated",
					"Patched", "Hardened", "Monitored", "Audited", "Remediated",
					"Eliminated", "Reduced", "Prevented", "Fortified", "Strengthened",
				},
				Keywords: []string{
					"security", "incident", "threat", "vulnerability", "breach", "attack",
					"malware", "detection", "endpoint", "firewall", "intrusion", "exploit",
				},
			},
			{
				Angle: types.AngleEfficiency,
				Verbs: []string{
					"Automated", "Streamlined", "Optimized", "Accelerated", "Reduced",
					"Eliminated", "Decreased", "Saved", "Improved", "Enhanced",
				},
				Keywords: []string{
					"automation", "efficiency", "process", "streamline", "optimize",
					"workflow", "manual", "performance", "scripting", "response time",
				},
			},
			{
				Angle: types.AngleTeam,
				Verbs: []string{
					"Trained", "Mentored", "Led", "Coordinated", "Managed", "Directed",
					"Guided", "Coached", "Collaborated", "Facilitated", "Supported",
				},
				Keywords: []string{
					"team", "training", "mentoring", "leadership", "collaboration",
					"awareness", "communication", "stakeholder", "cross-functional", "coaching",
				},
			},
			{
				Angle: types.AngleBusiness,
				Verbs: []string{
					"Delivered", "Saved", "Generated", "Increased", "Drove", "Achieved",
					"Enabled", "Protected", "Secured", "Reduced",
				},
				Keywords: []string{
					"cost", "revenue", "budget", "roi", "business", "customer",
					"compliance", "audit", "savings", "executive",
				},
			},
		},
		Company: CompanyVocabulary{
			PrefixTriggers: []string{"join", "at", "we are", "we're", "welcome to"},
			SuffixTriggers: []string{"is seeking", "is looking for", "is hiring", "is searching for"},
			GenericNames: []string{
				"The", "Our", "We", "This", "That", "Your", "A", "An", "Team", "Company",
				"Least", "Scale", "Home", "Work",
			},
			StartupTerms: []string{
				"startup", "start-up", "early-stage", "founded in", "seed stage",
				"series a", "series b", "<50 employees",
			},
			EnterpriseTerms: []string{
				"enterprise", "fortune 500", "global leader", "multinational", "5000+",
				"publicly traded",
			},
			Industries: []NamedTerms{
				{Name: "security", Terms: []string{"cybersecurity", "infosec", "security"}},
				{Name: "fintech", Terms: []string{"financial", "banking", "payments", "fintech"}},
				{Name: "healthcare", Terms: []string{"healthcare", "medical", "pharma", "hospital"}},
				{Name: "cloud", Terms: []string{"cloud", "aws", "azure", "gcp"}},
				{Name: "enterprise software", Terms: []string{"b2b", "saas", "enterprise software"}},
			},
			Values: []NamedTerms{
				{Name: "innovation", Terms: []string{"innovation", "innovative", "cutting-edge", "next-generation", "forward-thinking"}},
				{Name: "security", Terms: []string{"security-first", "protecting", "safeguarding", "defending", "resilience"}},
				{Name: "diversity", Terms: []string{"diversity", "diverse", "inclusion", "inclusive", "equity"}},
				{Name: "efficiency", Terms: []string{"streamlining", "optimizing", "automating", "efficiency"}},
				{Name: "teamwork", Terms: []string{"collaboration", "collaborative", "teamwork", "partnering"}},
				{Name: "growth", Terms: []string{"growth", "scaling", "continuous learning"}},
				{Name: "quality", Terms: []string{"excellence", "quality", "precision", "reliability"}},
				{Name: "integrity", Terms: []string{"integrity", "transparency", "trust"}},
			},
			RemoteTerms: []string{"remote", "work from home", "distributed team"},
			Cities: []string{
				"New York", "San Francisco", "London", "Toronto", "Seattle", "Austin",
				"Boston", "Chicago", "Denver", "Washington",
			},
		},
	}
}
