package extension_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wha4up/flymd-ai-assistant/common/llm"
	"github.com/wha4up/flymd-ai-assistant/internal/document"
	"github.com/wha4up/flymd-ai-assistant/internal/extension"
	"github.com/wha4up/flymd-ai-assistant/internal/host"
	"github.com/wha4up/flymd-ai-assistant/internal/settings"
)

var _ = Describe("actions", func() {
	var (
		store   *settings.Store
		gateway *mockGateway
		ext     *extension.Extension
		mem     *host.Memory
		ctx     context.Context
	)

	BeforeEach(func() {
		store = settings.NewStore()
		store.Set("https://llm.example/v1", "abc")
		gateway = &mockGateway{}
		ext = extension.New(store, gateway)
		mem = host.NewMemory()
		ctx = context.Background()
	})

	Describe("Polish", func() {
		It("aborts on a blank document without calling the gateway", func() {
			mem.SetEditorValue("   \n\t")

			err := ext.Polish(ctx, mem)

			Expect(err).To(MatchError(extension.ErrEmptyDocument))
			Expect(gateway.calls).To(BeZero())
			Expect(mem.GetEditorValue()).To(Equal("   \n\t"))
			Expect(mem.DrainNotices()).To(ContainElement(ContainSubstring("empty")))
		})

		It("replaces the whole document with the polished text", func() {
			mem.SetEditorValue("Hello world")
			var duringCall string
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				duringCall = mem.GetEditorValue()
				return "Hello, world!", nil
			}

			Expect(ext.Polish(ctx, mem)).To(Succeed())

			Expect(duringCall).To(Equal("Hello world\n\n" + document.PolishingPlaceholder))
			Expect(mem.GetEditorValue()).To(Equal("Hello, world!"))
		})

		It("sends the original text verbatim with a system instruction", func() {
			mem.SetEditorValue("Hello world")
			var got []llm.Message
			gateway.completeFn = func(_ context.Context, _ llm.Config, messages []llm.Message) (string, error) {
				got = messages
				return "ok", nil
			}

			Expect(ext.Polish(ctx, mem)).To(Succeed())

			Expect(got).To(HaveLen(2))
			Expect(got[0].Role).To(Equal(llm.RoleSystem))
			Expect(got[1].Role).To(Equal(llm.RoleUser))
			Expect(got[1].Content).To(Equal("Hello world"))
		})

		It("passes the settings snapshot into the gateway", func() {
			mem.SetEditorValue("text")
			var got llm.Config
			gateway.completeFn = func(_ context.Context, cfg llm.Config, _ []llm.Message) (string, error) {
				got = cfg
				return "ok", nil
			}

			Expect(ext.Polish(ctx, mem)).To(Succeed())

			Expect(got).To(Equal(llm.Config{Endpoint: "https://llm.example/v1", APIKey: "abc"}))
		})

		It("reverts the processing block and notifies on failure", func() {
			mem.SetEditorValue("Hello world")
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				return "", errors.New("boom")
			}

			err := ext.Polish(ctx, mem)

			Expect(err).To(MatchError(ContainSubstring("boom")))
			Expect(mem.GetEditorValue()).To(Equal("Hello world"))
			Expect(mem.DrainNotices()).To(ContainElement(ContainSubstring("Polish failed")))
		})

		It("leaves a mid-flight user edit alone when the block is gone", func() {
			mem.SetEditorValue("Hello world")
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				mem.SetEditorValue("user rewrote everything")
				return "", errors.New("boom")
			}

			_ = ext.Polish(ctx, mem)

			Expect(mem.GetEditorValue()).To(Equal("user rewrote everything"))
		})
	})

	Describe("Chat", func() {
		const docText = "# Notes\n\nBody of the note.\n\n## AI Chat\n\n**You:** What is X?\n"

		It("aborts without the chat heading and issues no call", func() {
			mem.SetEditorValue("just prose")

			err := ext.Chat(ctx, mem)

			Expect(err).To(MatchError(extension.ErrNoChatSession))
			Expect(gateway.calls).To(BeZero())
			Expect(mem.GetEditorValue()).To(Equal("just prose"))
		})

		It("aborts when the session has no unanswered question", func() {
			mem.SetEditorValue("## AI Chat\n\n**AI:** hello\n")

			err := ext.Chat(ctx, mem)

			Expect(err).To(MatchError(extension.ErrNoQuestion))
			Expect(gateway.calls).To(BeZero())
		})

		It("replaces the thinking placeholder with the answer", func() {
			mem.SetEditorValue(docText)
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				return "X is Y.", nil
			}

			Expect(ext.Chat(ctx, mem)).To(Succeed())

			final := mem.GetEditorValue()
			Expect(final).To(ContainSubstring(document.AIMarker + " X is Y."))
			Expect(final).NotTo(ContainSubstring(document.ThinkingPlaceholder))
			Expect(final).To(HavePrefix("# Notes\n\nBody of the note.\n\n"))
		})

		It("grounds the system message on the prose and asks the last question", func() {
			mem.SetEditorValue(docText)
			var got []llm.Message
			gateway.completeFn = func(_ context.Context, _ llm.Config, messages []llm.Message) (string, error) {
				got = messages
				return "X is Y.", nil
			}

			Expect(ext.Chat(ctx, mem)).To(Succeed())

			Expect(got).To(HaveLen(2))
			Expect(got[0].Role).To(Equal(llm.RoleSystem))
			Expect(got[0].Content).To(ContainSubstring("Body of the note."))
			Expect(got[1].Role).To(Equal(llm.RoleUser))
			Expect(got[1].Content).To(Equal("What is X?"))
		})

		It("answers the newest question of a longer session", func() {
			mem.SetEditorValue("## AI Chat\n\n**You:** A?\n\n**AI:** a.\n\n**You:** B?\n")
			var question string
			gateway.completeFn = func(_ context.Context, _ llm.Config, messages []llm.Message) (string, error) {
				question = messages[1].Content
				return "b.", nil
			}

			Expect(ext.Chat(ctx, mem)).To(Succeed())
			Expect(question).To(Equal("B?"))
		})

		It("removes the placeholder and notifies on failure", func() {
			mem.SetEditorValue(docText)
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				return "", errors.New("boom")
			}

			err := ext.Chat(ctx, mem)

			Expect(err).To(HaveOccurred())
			Expect(mem.GetEditorValue()).To(Equal(docText))
			Expect(mem.DrainNotices()).To(ContainElement(ContainSubstring("Chat failed")))
		})
	})

	Describe("TestConnection", func() {
		It("sends a single fixed message and reports success", func() {
			mem.SetEditorValue("untouched")
			var got []llm.Message
			gateway.completeFn = func(_ context.Context, _ llm.Config, messages []llm.Message) (string, error) {
				got = messages
				return "Hi!", nil
			}

			Expect(ext.TestConnection(ctx, mem)).To(Succeed())

			Expect(got).To(Equal([]llm.Message{{Role: llm.RoleUser, Content: "Hello"}}))
			Expect(mem.GetEditorValue()).To(Equal("untouched"))
			Expect(mem.DrainNotices()).To(ContainElement("Connection test succeeded"))
		})

		It("reports the error on failure", func() {
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				return "", llm.ErrNotConfigured
			}

			err := ext.TestConnection(ctx, mem)

			Expect(err).To(MatchError(llm.ErrNotConfigured))
			Expect(mem.DrainNotices()).To(ContainElement(ContainSubstring("Connection test failed")))
		})
	})

	Describe("in-flight guard", func() {
		It("rejects a second action while one is running", func() {
			mem.SetEditorValue("Hello world")

			entered := make(chan struct{})
			proceed := make(chan struct{})
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				close(entered)
				<-proceed
				return "done", nil
			}

			done := make(chan error, 1)
			go func() {
				done <- ext.Polish(ctx, mem)
			}()

			Eventually(entered).Should(BeClosed())
			Expect(ext.TestConnection(ctx, mem)).To(MatchError(extension.ErrBusy))
			Expect(mem.DrainNotices()).To(ContainElement(ContainSubstring("still running")))

			close(proceed)
			Eventually(done).Should(Receive(BeNil()))
		})

		It("admits the next action after the previous one finishes", func() {
			mem.SetEditorValue("Hello world")
			gateway.completeFn = func(_ context.Context, _ llm.Config, _ []llm.Message) (string, error) {
				return "ok", nil
			}

			Expect(ext.Polish(ctx, mem)).To(Succeed())
			Expect(ext.TestConnection(ctx, mem)).To(Succeed())
		})
	})
})
