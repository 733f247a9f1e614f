package webserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/mail"
	"strings"

	"github.com/decisionlab/topsis/internal/dataset"
	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/decisionlab/topsis/internal/webapi"
	"github.com/go-viper/mapstructure/v2"
)

//go:embed templates/index.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// maxUploadBytes bounds the accepted upload size.
const maxUploadBytes = 10 << 20

// attachmentName is the filename of the emailed result.
const attachmentName = "topsis_result.csv"

// registerRoutes sets up the form and API routes on the given mux.
func registerRoutes(mux *http.ServeMux, s *Server) {
	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	webapi.RegisterRoutes(mux)
}

// formPage is the template data for the index page.
type formPage struct {
	Flash string
	Error string
}

// formRequest holds the text fields of a form submission.
type formRequest struct {
	Weights string `mapstructure:"weights"`
	Impacts string `mapstructure:"impacts"`
	Email   string `mapstructure:"email"`
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.renderForm(w, http.StatusOK, formPage{})
}

// handleSubmit runs the full web flow: parse the upload, validate, rank,
// and email the result CSV. Any failure aborts before the email step and
// is rendered back to the requester.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: "Please upload input file."})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: "Please upload input file."})
		return
	}
	defer file.Close() //nolint:errcheck

	var req formRequest
	if err := mapstructure.Decode(flattenForm(r.MultipartForm.Value), &req); err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: fmt.Sprintf("Invalid form submission: %v", err)})
		return
	}

	if !validEmail(req.Email) {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: "Format of email id must be correct."})
		return
	}

	if s.cfg.Mailer == nil {
		s.renderForm(w, http.StatusServiceUnavailable, formPage{
			Error: "Email delivery is not configured. Set SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS.",
		})
		return
	}

	table, err := dataset.Read(file, header.Filename)
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: userMessage(err)})
		return
	}

	in, err := topsis.ParseInput(table.Rows, strings.TrimSpace(req.Weights), strings.TrimSpace(req.Impacts))
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: userMessage(err)})
		return
	}

	res, err := topsis.Rank(in.Matrix, in.Weights, in.Impacts)
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: userMessage(err)})
		return
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, table, res); err != nil {
		s.logger.Error("serializing result failed", "error", err)
		s.renderForm(w, http.StatusInternalServerError, formPage{Error: "Preparing the result file failed."})
		return
	}

	body := "Attached is your TOPSIS result with the Topsis Score and Rank columns."
	if err := s.cfg.Mailer.Send(r.Context(), req.Email, "TOPSIS Result", body, attachmentName, buf.Bytes()); err != nil {
		s.logger.Error("sending result email failed", "recipient", req.Email, "error", err)
		s.renderForm(w, http.StatusBadGateway, formPage{Error: "Sending the result email failed. Please try again."})
		return
	}

	s.logger.Info("result emailed", "recipient", req.Email, "rows", len(res))
	s.renderForm(w, http.StatusOK, formPage{Flash: "Result emailed successfully!"})
}

func (s *Server) renderForm(w http.ResponseWriter, status int, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTemplate.Execute(w, page); err != nil {
		s.logger.Error("rendering form failed", "error", err)
	}
}

// flattenForm keeps the first value of each field, which is all the form
// ever submits.
func flattenForm(values map[string][]string) map[string]any {
	fields := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	// Require a dot in the domain, matching the original form check.
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

// userMessage capitalizes validation errors for display; the sentinel
// messages already name the failed check.
func userMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Invalid input."
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
