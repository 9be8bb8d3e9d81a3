package services

import "strings"

const (
	MaxSuggestions       = 5
	DefaultSuggestionCap = 3
)

// suggestionRule fires when none of its terms occur in the text.
type suggestionRule struct {
	missing []string
	message string
}

var suggestionRules = []suggestionRule{
	{missing: []string{"project"}, message: "Add academic or personal projects."},
	{missing: []string{"internship"}, message: "Mention internships or other practical experience."},
	{missing: []string{"github"}, message: "Add a link to your GitHub profile or portfolio."},
	{missing: []string{"sql", "database"}, message: "Add SQL and database skills."},
	{missing: []string{"communication", "teamwork"}, message: "Mention communication and teamwork skills."},
}

// Suggest applies the rules in order and keeps at most limit messages.
func Suggest(text ResumeText, limit int) []string {
	limit = min(max(limit, 0), MaxSuggestions)

	suggestions := make([]string, 0, limit)
	for _, rule := range suggestionRules {
		if len(suggestions) == limit {
			break
		}
		if rule.fires(string(text)) {
			suggestions = append(suggestions, rule.message)
		}
	}

	return suggestions
}

func (r suggestionRule) fires(text string) bool {
	for _, term := range r.missing {
		if strings.Contains(text, term) {
			return false
		}
	}
	return true
}
