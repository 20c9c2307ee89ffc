package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wha4up/flymd-ai-assistant/internal/document"
)

var _ = Describe("tracked blocks", func() {
	It("appends as a new paragraph and removes exactly what was appended", func() {
		buf, block := document.AppendBlock("Hello world", document.PolishingPlaceholder)
		Expect(buf).To(Equal("Hello world\n\n" + document.PolishingPlaceholder))

		restored, ok := document.RemoveBlock(buf, block)
		Expect(ok).To(BeTrue())
		Expect(restored).To(Equal("Hello world"))
	})

	It("appends without a separator to an empty buffer", func() {
		buf, block := document.AppendBlock("", "text")
		Expect(buf).To(Equal("text"))

		restored, ok := document.RemoveBlock(buf, block)
		Expect(ok).To(BeTrue())
		Expect(restored).To(BeEmpty())
	})

	It("replaces the block in place", func() {
		buf, block := document.AppendBlock("## AI Chat\n\n**You:** X?", document.ThinkingPlaceholder)

		updated, ok := document.ReplaceBlock(buf, block, "**AI:** X is Y.")
		Expect(ok).To(BeTrue())
		Expect(updated).To(Equal("## AI Chat\n\n**You:** X?\n\n**AI:** X is Y."))
	})

	It("leaves the buffer alone when the block was edited away mid-flight", func() {
		_, block := document.AppendBlock("doc", "placeholder")
		edited := "something entirely different"

		got, ok := document.RemoveBlock(edited, block)
		Expect(ok).To(BeFalse())
		Expect(got).To(Equal(edited))
	})

	It("removes the last occurrence when user text duplicates the block", func() {
		buf, block := document.AppendBlock("note: placeholder", "placeholder")

		restored, ok := document.RemoveBlock(buf, block)
		Expect(ok).To(BeTrue())
		Expect(restored).To(Equal("note: placeholder"))
	})
})
