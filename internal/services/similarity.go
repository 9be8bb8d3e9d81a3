package services

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// SimilarityScorer compares résumé text with reference texts using TF-IDF
// vectors built over the documents of a single call.
type SimilarityScorer struct {
	policy           EmptyReferencePolicy
	defaultReference string
}

func NewSimilarityScorer(policy EmptyReferencePolicy, defaultReference string) *SimilarityScorer {
	return &SimilarityScorer{
		policy:           policy,
		defaultReference: defaultReference,
	}
}

// Match returns the cosine similarity of resume and reference scaled to
// [0,100]. The result is symmetric in its two arguments. An unreadable
// résumé always scores 0.
func (s *SimilarityScorer) Match(resume ResumeText, reference string) float64 {
	if resume == UnreadableText {
		return 0
	}
	if strings.TrimSpace(reference) == "" {
		if s.policy != EmptyReferenceDefault {
			return 0
		}
		reference = s.defaultReference
	}

	vectors := tfidfVectors([]string{string(resume), reference})
	return round2(cosine(vectors[0], vectors[1]) * 100)
}

// Classify scores resume against every role of corpus in one shared vector
// space and returns the per-role scores and the best role. Ties go to the
// role listed first, so an unreadable résumé scores 0 everywhere and gets the
// first role.
func (s *SimilarityScorer) Classify(resume ResumeText, corpus JobRoleCorpus) (map[string]float64, string) {
	roles := corpus.roles
	if resume == UnreadableText {
		scores := make(map[string]float64, len(roles))
		for _, role := range roles {
			scores[role.Name] = 0
		}
		bestRole := ""
		if len(roles) > 0 {
			bestRole = roles[0].Name
		}
		return scores, bestRole
	}
	docs := make([]string, 0, len(roles)+1)
	docs = append(docs, string(resume))
	for _, role := range roles {
		docs = append(docs, role.Reference)
	}

	vectors := tfidfVectors(docs)

	scores := make(map[string]float64, len(roles))
	bestRole := ""
	bestScore := math.Inf(-1)
	for i, role := range roles {
		score := round2(cosine(vectors[0], vectors[i+1]) * 100)
		scores[role.Name] = score
		if score > bestScore {
			bestScore = score
			bestRole = role.Name
		}
	}

	return scores, bestRole
}

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// tfidfVectors weights raw term counts by a smoothed idf,
// ln((1+n)/(1+df)) + 1, and L2-normalises each document vector.
func tfidfVectors(docs []string) [][]float64 {
	vocabulary := make(map[string]int)
	var docFreq []float64
	tokenized := make([][]string, len(docs))

	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[int]struct{}, len(tokens))
		for _, token := range tokens {
			idx, ok := vocabulary[token]
			if !ok {
				idx = len(vocabulary)
				vocabulary[token] = idx
				docFreq = append(docFreq, 0)
			}
			if _, counted := seen[idx]; !counted {
				seen[idx] = struct{}{}
				docFreq[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(docFreq))
	for i, df := range docFreq {
		idf[i] = math.Log((1+n)/(1+df)) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		v := make([]float64, len(vocabulary))
		for _, token := range tokens {
			v[vocabulary[token]]++
		}
		floats.Mul(v, idf)
		if norm := floats.Norm(v, 2); norm > 0 {
			floats.Scale(1/norm, v)
		}
		vectors[i] = v
	}

	return vectors
}

// cosine is 0 when either vector is zero.
func cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}

	sim := floats.Dot(a, b) / (na * nb)
	switch {
	case math.IsNaN(sim) || sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}
