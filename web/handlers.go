package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/agent"
	"github.com/spetersoncode/scribe/research"
	"go.uber.org/zap"
)

type indexData struct {
	Reports []*research.Response
}

type resultData struct {
	Report      *research.Response
	DownloadURL string
}

type errorData struct {
	Message string
	Raw     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	reports, err := s.store.Reports(r.Context(), sid)
	if err != nil {
		s.log.Error("load reports", zap.String("session", sid), zap.Error(err))
	}

	s.render(w, http.StatusOK, "index.html", indexData{Reports: reports})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		s.render(w, http.StatusBadRequest, "error.html", errorData{
			Message: "Enter a research query.",
		})
		return
	}

	log := s.log.With(zap.String("session", sid), zap.String("query", query))

	history, err := s.store.History(r.Context(), sid)
	if err != nil {
		log.Error("load history", zap.Error(err))
	}

	messages := research.Assemble(query, s.schema.Describe(), history)

	result, err := s.agent.Run(r.Context(), messages, agent.WithMaxSteps(s.maxSteps))
	if err != nil {
		log.Error("research run failed", zap.Error(err))
		s.render(w, runErrorStatus(err), "error.html", errorData{
			Message: runErrorMessage(err),
		})
		return
	}

	log.Info("research run complete",
		zap.Int("steps", result.Steps),
		zap.Int("toolCalls", len(result.Trace)),
		zap.Int("inputTokens", result.Usage.InputTokens),
		zap.Int("outputTokens", result.Usage.OutputTokens),
	)

	report, err := research.Reconcile(s.schema, result)
	if err != nil {
		var mismatch *research.SchemaMismatchError
		if errors.As(err, &mismatch) {
			log.Warn("schema mismatch", zap.Error(err))
			s.render(w, http.StatusBadGateway, "error.html", errorData{
				Message: "The model's response did not match the expected structure.",
				Raw:     mismatch.Raw,
			})
			return
		}
		log.Error("reconcile failed", zap.Error(err))
		s.render(w, http.StatusInternalServerError, "error.html", errorData{
			Message: err.Error(),
		})
		return
	}

	if err := s.store.SaveReport(r.Context(), sid, report); err != nil {
		log.Error("save report", zap.Error(err))
	}
	if err := s.store.AppendHistory(r.Context(), sid,
		scribe.NewUserMessage(query),
		scribe.Message{Role: scribe.RoleAssistant, Content: result.Output},
	); err != nil {
		log.Error("append history", zap.Error(err))
	}

	s.render(w, http.StatusOK, "result.html", resultData{
		Report:      report,
		DownloadURL: "/download?topic=" + url.QueryEscape(report.Topic),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	topic := r.URL.Query().Get("topic")

	report, ok, err := s.store.Report(r.Context(), sid, topic)
	if err != nil {
		s.log.Error("load report", zap.String("session", sid), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := research.Export(report)
	if err != nil {
		s.log.Error("export report", zap.String("topic", topic), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", research.Filename(report.Topic)))
	w.Write(data)
}

// runErrorStatus maps run failures onto HTTP statuses: user input
// errors are the client's to fix, everything else is upstream.
func runErrorStatus(err error) int {
	var unknown *agent.UnknownToolError
	var exhausted *agent.ExhaustedError
	switch {
	case errors.As(err, &unknown), errors.As(err, &exhausted):
		return http.StatusBadGateway
	case scribe.StatusCodeOf(err) == http.StatusBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func runErrorMessage(err error) string {
	var exhausted *agent.ExhaustedError
	if errors.As(err, &exhausted) {
		return fmt.Sprintf("The research run did not finish within %d steps. Try a narrower query.", exhausted.Steps)
	}
	if scribe.IsTransient(err) {
		return "The model service is temporarily unavailable. Try again shortly."
	}
	return err.Error()
}
