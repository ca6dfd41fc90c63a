package analyzer

// Fixed skill catalog used for substring matching. Vocabulary order is scan
// order, which determines the insertion order of extracted skills.
var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r",

	// Web technologies
	"html", "css", "react", "angular", "vue", "svelte", "jquery", "bootstrap",
	"tailwind", "sass", "less",
	"node.js", "nodejs", "express", "fastapi", "django", "flask", "spring",
	"laravel", "rails",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"cassandra", "dynamodb", "sqlite",

	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
	"github", "ci/cd", "terraform", "ansible",

	// Data science and ML
	"machine learning", "deep learning", "data science", "tensorflow",
	"pytorch", "pandas", "numpy", "scikit-learn",
	"tableau", "power bi", "jupyter", "matplotlib", "seaborn",

	// Other
	"git", "linux", "unix", "bash", "api", "rest", "graphql", "microservices",
	"agile", "scrum", "testing", "qa",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"critical thinking", "creativity", "time management", "project management",
	"analytical thinking", "attention to detail",
}
