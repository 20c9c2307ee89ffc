package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wha4up/flymd-ai-assistant/internal/document"
)

var _ = Describe("Parse", func() {
	It("treats a buffer without the heading as pure prose", func() {
		doc := document.Parse("# Notes\n\nJust some text.")
		Expect(doc.HasSession()).To(BeFalse())
		Expect(doc.Prose).To(Equal("# Notes\n\nJust some text."))
		Expect(doc.Turns).To(BeEmpty())
	})

	It("splits prose from the session at the heading", func() {
		doc := document.Parse("# Notes\n\nBody.\n\n## AI Chat\n\n**You:** What is X?\n")
		Expect(doc.HasSession()).To(BeTrue())
		Expect(doc.Prose).To(Equal("# Notes\n\nBody.\n\n"))
		Expect(doc.Turns).To(HaveLen(1))
		Expect(doc.Turns[0].Role).To(Equal(document.RoleYou))
		Expect(doc.Turns[0].Text).To(Equal("What is X?"))
	})

	It("does not mistake an inline mention of the heading for the marker", func() {
		doc := document.Parse("see the ## AI Chat section below")
		Expect(doc.HasSession()).To(BeFalse())
	})

	It("parses alternating turns in order", func() {
		text := "## AI Chat\n\n" +
			"**You:** First question?\n\n" +
			"**AI:** First answer.\n\n" +
			"**You:** Second question?\n"
		doc := document.Parse(text)
		Expect(doc.Turns).To(HaveLen(3))
		Expect(doc.Turns[0]).To(Equal(document.Turn{Role: document.RoleYou, Text: "First question?"}))
		Expect(doc.Turns[1]).To(Equal(document.Turn{Role: document.RoleAI, Text: "First answer."}))
		Expect(doc.Turns[2]).To(Equal(document.Turn{Role: document.RoleYou, Text: "Second question?"}))
	})

	It("cuts a turn's text at a horizontal rule", func() {
		text := "## AI Chat\n\n**You:** Only this part.\n\n---\n\nloose notes after the rule\n"
		doc := document.Parse(text)
		Expect(doc.Turns).To(HaveLen(1))
		Expect(doc.Turns[0].Text).To(Equal("Only this part."))
	})

	It("supports multi-line questions", func() {
		text := "## AI Chat\n\n**You:** Line one\nline two\n\n**AI:** ok\n"
		doc := document.Parse(text)
		Expect(doc.Turns[0].Text).To(Equal("Line one\nline two"))
	})
})

var _ = Describe("LastQuestion", func() {
	DescribeTable("finds the newest unanswered question",
		func(text, want string, wantOK bool) {
			got, ok := document.Parse(text).LastQuestion()
			Expect(ok).To(Equal(wantOK))
			Expect(got).To(Equal(want))
		},
		Entry("no session", "plain text", "", false),
		Entry("session without turns", "## AI Chat\n\nnothing here", "", false),
		Entry("single question", "## AI Chat\n\n**You:** What is X?", "What is X?", true),
		Entry("question after an answered pair",
			"## AI Chat\n\n**You:** A?\n\n**AI:** a.\n\n**You:** B?", "B?", true),
		Entry("blank question", "## AI Chat\n\n**You:**   \n", "", false),
		Entry("only AI turns", "## AI Chat\n\n**AI:** hello", "", false),
	)
})
