package services

import "strings"

type chatRule struct {
	topics []string
	reply  string
}

// chatRules are checked in order; the first rule with a topic contained in
// the message answers.
var chatRules = []chatRule{
	{
		topics: []string{"resume", "cv"},
		reply:  "📝 Make sure your resume covers skills, projects, keywords and experience, and keep it to one page.",
	},
	{
		topics: []string{"interview"},
		reply:  "🎤 Practice HR and technical questions every day and do mock interviews.",
	},
	{
		topics: []string{"ats", "score"},
		reply:  "🚀 The ATS score checks for keywords. Use technical terms, metrics and action verbs.",
	},
	{
		topics: []string{"skill"},
		reply:  "💡 List relevant skills using industry keywords such as Python, React, SQL or AWS.",
	},
	{
		topics: []string{"project"},
		reply:  "🎯 Add two or three strong projects with GitHub links and explain what you built.",
	},
	{
		topics: []string{"experience", "job"},
		reply:  "💼 Highlight achievements with numbers, e.g. 'cut build time by 30%', rather than listing duties.",
	},
}

const ChatFallbackReply = "💬 Ask me about resumes, interviews, ATS scores, skills, projects or experience."

type ChatResponder interface {
	Reply(message string) string
}

type chatResponder struct{}

func NewChatResponder() ChatResponder {
	return &chatResponder{}
}

func (r *chatResponder) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, topic := range rule.topics {
			if strings.Contains(msg, topic) {
				return rule.reply
			}
		}
	}
	return ChatFallbackReply
}
