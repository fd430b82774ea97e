package cv

import (
	"fmt"
	"os"
	"strings"
)

// Knowledge holds the CV text the assistant grounds answers in. A missing CV
// file is not an error: the chatbot then only answers technical questions.
type Knowledge struct {
	path    string
	owner   string
	content string
}

func Load(path, owner string) (*Knowledge, error) {
	k := &Knowledge{path: path, owner: strings.ToLower(strings.TrimSpace(owner))}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return k, nil
		}
		return nil, fmt.Errorf("could not read CV file: %w", err)
	}

	k.content = string(content)
	return k, nil
}

func (k *Knowledge) Loaded() bool {
	return k.content != ""
}

func (k *Knowledge) Size() int {
	return len(k.content)
}

func (k *Knowledge) Path() string {
	return k.path
}

var cvKeywords = []string{
	// Personal
	"you", "your", "yourself",
	// Experience
	"experience", "worked", "job", "intern", "company",
	// Skills
	"skills", "know", "proficient", "expert",
	// Education
	"study", "studied", "education", "degree", "university", "college", "cgpa", "gpa",
	// Projects
	"projects", "built", "created", "developed", "portfolio",
	// Contact
	"contact", "email", "github", "reach",
	// About
	"about", "who are", "tell me about", "background",
}

var techKeywords = []string{
	"what is", "how does", "explain", "difference between",
	"algorithm", "data structure", "code", "program",
	"example", "tutorial", "learn",
}

// IsCVQuestion reports whether the message asks about the CV owner rather
// than a general technical topic.
func (k *Knowledge) IsCVQuestion(message string) bool {
	lower := strings.ToLower(message)

	hasCVKeyword := k.owner != "" && strings.Contains(lower, k.owner)
	for _, keyword := range cvKeywords {
		if strings.Contains(lower, keyword) {
			hasCVKeyword = true
			break
		}
	}

	isGeneralTech := false
	for _, keyword := range techKeywords {
		if strings.Contains(lower, keyword) {
			isGeneralTech = true
			break
		}
	}
	isGeneralTech = isGeneralTech && !hasCVKeyword

	return hasCVKeyword && !isGeneralTech
}

const cvPromptFormat = `You are the AI assistant of the person described in the CV below. Answer questions about them using ONLY the CV information provided. Be professional, concise, and accurate.

CV INFORMATION:
%s

RULES:
- Answer questions about their experience, skills, education, and projects
- Use information ONLY from the CV above
- Be conversational but professional
- If asked about something not in the CV, say you don't have that information
- Keep responses focused and concise
- Include specific details like percentages, technologies, and achievements when relevant`

const technicalPrompt = `You are a helpful technical assistant specializing in Computer Science, programming, and software development.

Your expertise includes:
- Programming languages (Python, JavaScript, Java, C++, etc.)
- Data structures and algorithms
- Web development (Frontend & Backend)
- Databases (SQL, NoSQL)
- Machine Learning and AI
- Software engineering principles
- System design and architecture

Provide clear, accurate, and practical answers. Include code examples when relevant. Be concise but thorough.`

// SystemPrompt picks the grounding prompt for a message and reports which
// query type was chosen ("cv" or "technical").
func (k *Knowledge) SystemPrompt(message string) (prompt, queryType string) {
	if k.Loaded() && k.IsCVQuestion(message) {
		return fmt.Sprintf(cvPromptFormat, k.content), "cv"
	}
	return technicalPrompt, "technical"
}
