// Package assistant implements the per-project chat panel shown in the
// project detail view.
//
// A Panel owns one transcript per open lifetime. Each user message is
// answered by a Responder: CannedResponder when no Gemini credential is
// configured, GeminiResponder otherwise. Replies that arrive after the panel
// was closed or reopened are discarded.
package assistant
