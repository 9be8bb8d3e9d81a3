package services

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPipelineConfig = errors.New("invalid pipeline config")

// DefaultKeywords is the ATS vocabulary, in scoring order.
var DefaultKeywords = []string{
	"python", "java", "sql", "machine learning", "react", "flask",
	"api", "html", "css", "javascript", "git", "github", "project",
	"internship", "database", "cloud", "aws", "azure",
}

// DefaultReferenceText is compared against the résumé when the job
// description is blank and the policy is EmptyReferenceDefault.
const DefaultReferenceText = "python developer machine learning data science flask api backend frontend react javascript"

// DefaultJobRoles is the role corpus used for classification, in tie-break order.
var DefaultJobRoles = []JobRole{
	{
		Name:      "Python Developer",
		Reference: "python django flask fastapi rest api backend sql postgresql git unit testing scripting automation",
	},
	{
		Name:      "Data Scientist",
		Reference: "python machine learning deep learning data analysis pandas numpy scikit-learn statistics sql visualization",
	},
	{
		Name:      "Frontend Developer",
		Reference: "html css javascript typescript react redux responsive design ui ux webpack accessibility",
	},
	{
		Name:      "Backend Developer",
		Reference: "java spring node api microservices database sql postgresql docker rest backend caching",
	},
	{
		Name:      "DevOps Engineer",
		Reference: "aws azure cloud docker kubernetes ci cd jenkins terraform linux git monitoring",
	},
}

// KeywordSet is an ordered, duplicate-free list of lowercase terms.
type KeywordSet struct {
	terms []string
}

func NewKeywordSet(terms ...string) (KeywordSet, error) {
	if len(terms) == 0 {
		return KeywordSet{}, fmt.Errorf("%w: keyword set is empty", ErrInvalidPipelineConfig)
	}

	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			return KeywordSet{}, fmt.Errorf("%w: blank keyword", ErrInvalidPipelineConfig)
		}
		if term != strings.ToLower(term) {
			return KeywordSet{}, fmt.Errorf("%w: keyword %q is not lowercase", ErrInvalidPipelineConfig, term)
		}
		if _, dup := seen[term]; dup {
			return KeywordSet{}, fmt.Errorf("%w: duplicate keyword %q", ErrInvalidPipelineConfig, term)
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	return KeywordSet{terms: out}, nil
}

// MustKeywordSet is NewKeywordSet for package-level constants.
func MustKeywordSet(terms ...string) KeywordSet {
	ks, err := NewKeywordSet(terms...)
	if err != nil {
		panic(err)
	}
	return ks
}

func (k KeywordSet) Len() int {
	return len(k.terms)
}

func (k KeywordSet) Terms() []string {
	return append([]string(nil), k.terms...)
}

// CountIn returns how many distinct keywords occur as substrings of text.
func (k KeywordSet) CountIn(text string) int {
	n := 0
	for _, term := range k.terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

type JobRole struct {
	Name      string
	Reference string
}

// JobRoleCorpus maps role names to reference skill texts and keeps the
// order in which roles were given.
type JobRoleCorpus struct {
	roles []JobRole
}

func NewJobRoleCorpus(roles ...JobRole) (JobRoleCorpus, error) {
	if len(roles) == 0 {
		return JobRoleCorpus{}, fmt.Errorf("%w: job role corpus is empty", ErrInvalidPipelineConfig)
	}

	seen := make(map[string]struct{}, len(roles))
	out := make([]JobRole, 0, len(roles))
	for _, role := range roles {
		if strings.TrimSpace(role.Name) == "" {
			return JobRoleCorpus{}, fmt.Errorf("%w: job role without a name", ErrInvalidPipelineConfig)
		}
		if strings.TrimSpace(role.Reference) == "" {
			return JobRoleCorpus{}, fmt.Errorf("%w: job role %q has an empty reference", ErrInvalidPipelineConfig, role.Name)
		}
		if _, dup := seen[role.Name]; dup {
			return JobRoleCorpus{}, fmt.Errorf("%w: duplicate job role %q", ErrInvalidPipelineConfig, role.Name)
		}
		seen[role.Name] = struct{}{}
		out = append(out, role)
	}

	return JobRoleCorpus{roles: out}, nil
}

func MustJobRoleCorpus(roles ...JobRole) JobRoleCorpus {
	c, err := NewJobRoleCorpus(roles...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c JobRoleCorpus) Len() int {
	return len(c.roles)
}

func (c JobRoleCorpus) Roles() []JobRole {
	return append([]JobRole(nil), c.roles...)
}

type EmptyReferencePolicy string

const (
	// EmptyReferenceZero scores a blank job description as 0.
	EmptyReferenceZero EmptyReferencePolicy = "zero"
	// EmptyReferenceDefault compares against DefaultReferenceText instead.
	EmptyReferenceDefault EmptyReferencePolicy = "default"
)

func ParseEmptyReferencePolicy(s string) (EmptyReferencePolicy, error) {
	switch p := EmptyReferencePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case EmptyReferenceZero, EmptyReferenceDefault:
		return p, nil
	case "":
		return EmptyReferenceZero, nil
	default:
		return "", fmt.Errorf("%w: unknown empty reference policy %q", ErrInvalidPipelineConfig, s)
	}
}

// PipelineConfig is built once at startup and shared read-only by every
// analysis.
type PipelineConfig struct {
	Keywords                  KeywordSet
	Roles                     JobRoleCorpus
	IncludeJobMatch           bool
	IncludeRoleClassification bool
	SuggestionCap             int
	EmptyReference            EmptyReferencePolicy
	DefaultReference          string
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Keywords:                  MustKeywordSet(DefaultKeywords...),
		Roles:                     MustJobRoleCorpus(DefaultJobRoles...),
		IncludeJobMatch:           true,
		IncludeRoleClassification: true,
		SuggestionCap:             DefaultSuggestionCap,
		EmptyReference:            EmptyReferenceZero,
		DefaultReference:          DefaultReferenceText,
	}
}

func (c PipelineConfig) Validate() error {
	if c.Keywords.Len() == 0 {
		return fmt.Errorf("%w: keyword set is empty", ErrInvalidPipelineConfig)
	}
	if c.IncludeRoleClassification && c.Roles.Len() == 0 {
		return fmt.Errorf("%w: role classification enabled without roles", ErrInvalidPipelineConfig)
	}
	if c.SuggestionCap < 0 || c.SuggestionCap > MaxSuggestions {
		return fmt.Errorf("%w: suggestion cap %d outside [0,%d]", ErrInvalidPipelineConfig, c.SuggestionCap, MaxSuggestions)
	}
	switch c.EmptyReference {
	case EmptyReferenceZero:
	case EmptyReferenceDefault:
		if strings.TrimSpace(c.DefaultReference) == "" {
			return fmt.Errorf("%w: default reference text is empty", ErrInvalidPipelineConfig)
		}
	default:
		return fmt.Errorf("%w: unknown empty reference policy %q", ErrInvalidPipelineConfig, c.EmptyReference)
	}
	return nil
}
