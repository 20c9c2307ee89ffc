package extension

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wha4up/flymd-ai-assistant/common/llm"
	"github.com/wha4up/flymd-ai-assistant/common/logger"
	"github.com/wha4up/flymd-ai-assistant/internal/document"
)

const polishSystemPrompt = "You are a careful Markdown copy editor. " +
	"Improve wording, fix grammar and typos, and keep the author's tone, " +
	"structure and meaning. Return only the polished document, with no commentary."

const chatSystemPrompt = "You are an assistant answering questions about the " +
	"user's Markdown document. Ground every answer in the document content " +
	"below and answer concisely in Markdown.\n\nDocument:\n%s"

const busyNotice = "Another AI assistant operation is still running, please wait for it to finish"

// Polish rewrites the whole document through the gateway. On success the
// buffer is replaced with exactly the returned text; on failure the
// tracked processing block is removed and the original text stands.
func (e *Extension) Polish(ctx context.Context, h Host) error {
	opID, ok := e.guard.tryAcquire()
	if !ok {
		h.Notify(busyNotice)
		return ErrBusy
	}
	defer e.guard.release()

	original := h.GetEditorValue()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OperationID: logger.Ptr(opID),
		Action:      logger.Ptr("polish"),
		DocumentLen: logger.Ptr(len(original)),
		Component:   "assistant.extension",
	})
	sc := logger.StartSpan(ctx, "assistant.polish")
	defer sc.End()
	ctx = sc.Context()

	if strings.TrimSpace(original) == "" {
		h.Notify("The document is empty, nothing to polish")
		return ErrEmptyDocument
	}

	pending, block := document.AppendBlock(original, document.PolishingPlaceholder)
	h.SetEditorValue(pending)

	polished, err := e.gateway.Complete(ctx, e.store.Get().LLMConfig(), []llm.Message{
		llm.System(polishSystemPrompt),
		llm.User(original),
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "polish failed", "error", err)
		e.revert(ctx, h, block)
		h.Notify("Polish failed: " + err.Error())
		return err
	}

	slog.InfoContext(ctx, "document polished", "result_len", len(polished))
	h.SetEditorValue(polished)
	h.Notify("Document polished")
	return nil
}

// Chat answers the newest unanswered question in the chat-session
// region, grounded on the prose before the heading. The thinking
// placeholder is replaced in place by the answer.
func (e *Extension) Chat(ctx context.Context, h Host) error {
	opID, ok := e.guard.tryAcquire()
	if !ok {
		h.Notify(busyNotice)
		return ErrBusy
	}
	defer e.guard.release()

	text := h.GetEditorValue()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OperationID: logger.Ptr(opID),
		Action:      logger.Ptr("chat"),
		DocumentLen: logger.Ptr(len(text)),
		Component:   "assistant.extension",
	})
	sc := logger.StartSpan(ctx, "assistant.chat")
	defer sc.End()
	ctx = sc.Context()

	doc := document.Parse(text)
	if !doc.HasSession() {
		h.Notify(fmt.Sprintf("No chat session found. Add a %q heading to start one", document.ChatHeading))
		return ErrNoChatSession
	}
	question, ok := doc.LastQuestion()
	if !ok {
		h.Notify(fmt.Sprintf("No question found. Write one after a %q marker", document.YouMarker))
		return ErrNoQuestion
	}

	pending, block := document.AppendBlock(text, document.ThinkingPlaceholder)
	h.SetEditorValue(pending)

	answer, err := e.gateway.Complete(ctx, e.store.Get().LLMConfig(), []llm.Message{
		llm.System(fmt.Sprintf(chatSystemPrompt, doc.Prose)),
		llm.User(question),
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "chat failed", "error", err, "question", logger.Truncate(question, 128))
		e.revert(ctx, h, block)
		h.Notify("Chat failed: " + err.Error())
		return err
	}

	slog.InfoContext(ctx, "chat answered", "answer_len", len(answer))

	answerText := document.AIMarker + " " + answer
	updated, replaced := document.ReplaceBlock(h.GetEditorValue(), block, answerText)
	if !replaced {
		// Placeholder edited away mid-flight: append instead of losing the answer.
		updated, _ = document.AppendBlock(h.GetEditorValue(), answerText)
	}
	h.SetEditorValue(updated)
	return nil
}

// TestConnection sends a single fixed message and reports the outcome
// as a notice. The document is never touched.
func (e *Extension) TestConnection(ctx context.Context, h Host) error {
	opID, ok := e.guard.tryAcquire()
	if !ok {
		h.Notify(busyNotice)
		return ErrBusy
	}
	defer e.guard.release()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OperationID: logger.Ptr(opID),
		Action:      logger.Ptr("test_connection"),
		Component:   "assistant.extension",
	})
	sc := logger.StartSpan(ctx, "assistant.test_connection")
	defer sc.End()
	ctx = sc.Context()

	_, err := e.gateway.Complete(ctx, e.store.Get().LLMConfig(), []llm.Message{
		llm.User("Hello"),
	})
	if err != nil {
		sc.RecordError(err)
		slog.WarnContext(ctx, "connection test failed", "error", err)
		h.Notify("Connection test failed: " + err.Error())
		return err
	}

	h.Notify("Connection test succeeded")
	return nil
}

// revert removes the tracked placeholder block after a failed call.
// When the user edited the block away mid-flight, the buffer is left
// exactly as they made it.
func (e *Extension) revert(ctx context.Context, h Host, block document.Block) {
	restored, ok := document.RemoveBlock(h.GetEditorValue(), block)
	if !ok {
		slog.WarnContext(ctx, "placeholder block missing on revert, leaving document unchanged")
		return
	}
	h.SetEditorValue(restored)
}
